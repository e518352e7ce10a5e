package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/status"
)

// Stepper is the simulation driven by ClockScheduler; *Game implements it
type Stepper interface {
	Tick() TickResult
	Phase() Phase
	TickInterval() time.Duration
	Reset()
}

// TickHandler observes every executed tick from the scheduler goroutine
type TickHandler func(result TickResult)

// ClockScheduler calls Tick at the game's current speed
// The interval is re-read after every tick so speed changes apply immediately
// Ticks never overlap: the loop is the only caller of Stepper.Tick
type ClockScheduler struct {
	game   Stepper
	clock  *PausableClock
	onTick TickHandler

	tickCount atomic.Uint64

	// Control channels
	stopChan  chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup
	running   atomic.Bool
	resetChan chan struct{}
	wakeChan  chan struct{}

	// Signals the render loop that a tick or reset changed the board
	updateDone chan struct{}

	// Cached metric pointers
	statTicks   *atomic.Int64
	statElapsed *status.AtomicFloat
}

// NewClockScheduler creates a scheduler for game measuring play time on clock
// Returns the scheduler and the receive side of the update signal channel
func NewClockScheduler(game Stepper, clock *PausableClock, reg *status.Registry) (*ClockScheduler, <-chan struct{}) {
	if reg == nil {
		reg = status.NewRegistry()
	}
	updateDone := make(chan struct{}, 1)

	cs := &ClockScheduler{
		game:        game,
		clock:       clock,
		stopChan:    make(chan struct{}),
		resetChan:   make(chan struct{}, 1),
		wakeChan:    make(chan struct{}, 1),
		updateDone:  updateDone,
		statTicks:   reg.Ints.Get(status.KeyTicks),
		statElapsed: reg.Floats.Get(status.KeyElapsed),
	}
	return cs, updateDone
}

// SetTickHandler installs the tick observer, must be called before Start()
func (cs *ClockScheduler) SetTickHandler(h TickHandler) {
	cs.onTick = h
}

// Start begins the scheduler loop
func (cs *ClockScheduler) Start() {
	if cs.running.CompareAndSwap(false, true) {
		cs.wg.Add(1)
		core.Go(cs.schedulerLoop)
	}
}

// Stop halts the scheduler loop and waits for it to exit
func (cs *ClockScheduler) Stop() {
	cs.stopOnce.Do(func() {
		close(cs.stopChan)
		if cs.running.CompareAndSwap(true, false) {
			cs.wg.Wait()
		}
	})
}

// Wake cuts short an idle sleep, used after start and resume
func (cs *ClockScheduler) Wake() {
	select {
	case cs.wakeChan <- struct{}{}:
	default:
	}
}

// RequestReset asks the loop to reset the game between ticks
// Reset runs synchronously when the scheduler is not running
func (cs *ClockScheduler) RequestReset() {
	if !cs.running.Load() {
		cs.executeReset()
		return
	}
	select {
	case cs.resetChan <- struct{}{}:
	default:
	}
}

// TickCount returns ticks executed since the last reset
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

// Elapsed returns play time since the last reset, excluding pauses
func (cs *ClockScheduler) Elapsed() time.Duration {
	return cs.clock.Elapsed()
}

// schedulerLoop runs the main scheduling loop with pause awareness
func (cs *ClockScheduler) schedulerLoop() {
	defer cs.wg.Done()

	timer := time.NewTimer(time.Hour)
	stopTimer(timer)
	defer timer.Stop()

	var deadline time.Time

	for {
		select {
		case <-cs.stopChan:
			return
		case <-cs.resetChan:
			cs.executeReset()
			deadline = time.Time{}
			continue
		default:
		}

		var sleepDuration time.Duration

		if cs.game.Phase() != PhaseRunning {
			// Idle, paused or over: freeze play time and poll slowly
			cs.clock.Pause()
			deadline = time.Time{}
			sleepDuration = constants.IdlePollInterval
		} else {
			cs.clock.Resume()
			now := time.Now()
			if deadline.IsZero() {
				deadline = now.Add(cs.game.TickInterval())
			}

			if !now.Before(deadline) {
				cs.processTick()

				interval := cs.game.TickInterval()
				deadline = deadline.Add(interval)
				if now.Sub(deadline) > interval*constants.MaxTickLag {
					deadline = now.Add(interval)
				}
				sleepDuration = time.Until(deadline)
			} else {
				sleepDuration = deadline.Sub(now)
			}
		}

		cs.statElapsed.Set(cs.clock.Elapsed().Seconds())

		if sleepDuration <= 0 {
			continue
		}
		timer.Reset(sleepDuration)
		select {
		case <-timer.C:
		case <-cs.wakeChan:
			stopTimer(timer)
		case <-cs.resetChan:
			stopTimer(timer)
			cs.executeReset()
			deadline = time.Time{}
		case <-cs.stopChan:
			return
		}
	}
}

// processTick executes one game tick and publishes the result
func (cs *ClockScheduler) processTick() {
	result := cs.game.Tick()
	if result == TickSkipped {
		return
	}

	cs.tickCount.Add(1)
	cs.statTicks.Add(1)

	if result.Ended() {
		cs.clock.Pause()
	}
	if cs.onTick != nil {
		cs.onTick(result)
	}
	cs.signalUpdate()
}

// executeReset reinitializes the game and the play clock
func (cs *ClockScheduler) executeReset() {
	cs.game.Reset()
	cs.clock.Reset()
	cs.tickCount.Store(0)
	cs.signalUpdate()
}

func (cs *ClockScheduler) signalUpdate() {
	select {
	case cs.updateDone <- struct{}{}:
	default:
	}
}

func stopTimer(t *time.Timer) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
}
