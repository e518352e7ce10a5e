package input

import "strings"

// ActionIntent resolves a keymap action name, case-insensitive
// "none" is valid and unbinds the key
func ActionIntent(name string) (Intent, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range intentNames {
		if n == name {
			return Intent(i), true
		}
	}
	return IntentNone, false
}
