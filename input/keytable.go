package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps terminal keys to intents
// Runes are matched for tcell.KeyRune events, Keys for everything else
type KeyTable struct {
	Keys  map[tcell.Key]Intent
	Runes map[rune]Intent
}

// DefaultKeyTable returns arrows plus wasd in both cases, space to pause
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Keys: map[tcell.Key]Intent{
			tcell.KeyUp:    IntentUp,
			tcell.KeyDown:  IntentDown,
			tcell.KeyLeft:  IntentLeft,
			tcell.KeyRight: IntentRight,
			tcell.KeyEnter: IntentStart,
			tcell.KeyEsc:   IntentQuit,
			tcell.KeyCtrlC: IntentQuit,
			tcell.KeyCtrlQ: IntentQuit,
		},
		Runes: map[rune]Intent{
			'w': IntentUp,
			'W': IntentUp,
			's': IntentDown,
			'S': IntentDown,
			'a': IntentLeft,
			'A': IntentLeft,
			'd': IntentRight,
			'D': IntentRight,
			' ': IntentPause,
			'r': IntentReset,
			'R': IntentReset,
			'm': IntentMute,
			'q': IntentQuit,
		},
	}
}

// Translate maps a key event to its intent, IntentNone when unbound
func (kt *KeyTable) Translate(ev *tcell.EventKey) Intent {
	if ev == nil {
		return IntentNone
	}
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[ev.Rune()]
	}
	return kt.Keys[ev.Key()]
}

// Clone returns a deep copy of the KeyTable with independent maps
func (kt *KeyTable) Clone() *KeyTable {
	c := &KeyTable{
		Keys:  make(map[tcell.Key]Intent, len(kt.Keys)),
		Runes: make(map[rune]Intent, len(kt.Runes)),
	}
	for k, v := range kt.Keys {
		c.Keys[k] = v
	}
	for r, v := range kt.Runes {
		c.Runes[r] = v
	}
	return c
}
