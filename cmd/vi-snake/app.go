package main

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/audio"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/persistence"
	"github.com/lixenwraith/vi-snake/render"
)

// historyRecorder appends finished games to the score history
type historyRecorder interface {
	Record(score, length int, played time.Duration) (persistence.Record, error)
}

// app binds the game to its collaborators: keys in, sound and history out
type app struct {
	game      *engine.Game
	scheduler *engine.ClockScheduler
	sounds    *audio.SoundManager
	keys      *input.KeyTable
	history   historyRecorder
}

// handleKey applies one key press, returns false when the user asked to quit
func (a *app) handleKey(ev *tcell.EventKey) bool {
	intent := a.keys.Translate(ev)
	if dir, ok := intent.Direction(); ok {
		a.game.SetDirection(dir)
		return true
	}

	switch intent {
	case input.IntentStart:
		if a.game.Start() {
			a.sounds.PlayStart()
			a.scheduler.Wake()
		}
	case input.IntentPause:
		if a.game.TogglePause() {
			a.scheduler.Wake()
		}
	case input.IntentReset:
		a.scheduler.RequestReset()
	case input.IntentMute:
		a.sounds.ToggleMute()
	case input.IntentQuit:
		return false
	}
	return true
}

// onTick runs on the scheduler goroutine after each executed tick
func (a *app) onTick(res engine.TickResult) {
	switch {
	case res == engine.TickAte:
		a.sounds.PlayEat()
	case res.Ended():
		a.sounds.PlayGameOver()
		if a.history == nil {
			return
		}
		snap := a.game.Snapshot()
		rec, err := a.history.Record(snap.Score, len(snap.Snake), a.scheduler.Elapsed())
		if err != nil {
			log.Printf("failed to record game: %v", err)
			return
		}
		log.Printf("game %s over: %v score=%d length=%d", rec.ID, res, rec.Score, rec.Length)
	}
}

// frame captures everything the renderer needs
func (a *app) frame() render.Frame {
	return render.Frame{
		State:   a.game.Snapshot(),
		Elapsed: a.scheduler.Elapsed(),
		Muted:   a.sounds.IsMuted(),
	}
}
