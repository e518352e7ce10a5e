package input

import "github.com/lixenwraith/vi-snake/engine"

// Intent is the semantic action bound to a key
type Intent uint8

const (
	IntentNone Intent = iota

	// Steering
	IntentUp
	IntentDown
	IntentLeft
	IntentRight

	// Lifecycle
	IntentStart
	IntentPause
	IntentReset

	// System
	IntentMute
	IntentQuit
)

var intentNames = [...]string{
	IntentNone:  "none",
	IntentUp:    "up",
	IntentDown:  "down",
	IntentLeft:  "left",
	IntentRight: "right",
	IntentStart: "start",
	IntentPause: "pause",
	IntentReset: "reset",
	IntentMute:  "mute",
	IntentQuit:  "quit",
}

func (i Intent) String() string {
	if int(i) < len(intentNames) {
		return intentNames[i]
	}
	return "unknown"
}

// Direction returns the steering direction for the four movement intents
func (i Intent) Direction() (engine.Direction, bool) {
	switch i {
	case IntentUp:
		return engine.DirUp, true
	case IntentDown:
		return engine.DirDown, true
	case IntentLeft:
		return engine.DirLeft, true
	case IntentRight:
		return engine.DirRight, true
	default:
		return engine.DirNone, false
	}
}
