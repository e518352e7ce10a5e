package input

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// keyByName indexes tcell key names case-insensitively ("up", "enter", "ctrl-c")
var keyByName map[string]tcell.Key

func init() {
	keyByName = make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		keyByName[strings.ToLower(name)] = k
	}
}

// keymapFile is the TOML layout: [keys] for named keys, [runes] for characters
type keymapFile struct {
	Keys  map[string]string `toml:"keys"`
	Runes map[string]string `toml:"runes"`
}

// LoadKeyConfig parses TOML keymap data into a sparse override KeyTable
// Only keys present in TOML are populated; the action "none" unbinds
func LoadKeyConfig(data []byte) (*KeyTable, error) {
	var raw keymapFile
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, fmt.Errorf("keymap parse: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("keymap: unknown section or key %q", undecoded[0].String())
	}

	kt := &KeyTable{
		Keys:  make(map[tcell.Key]Intent, len(raw.Keys)),
		Runes: make(map[rune]Intent, len(raw.Runes)),
	}

	for name, action := range raw.Keys {
		k, ok := keyByName[strings.ToLower(name)]
		if !ok {
			return nil, fmt.Errorf("[keys] unknown key name: %q", name)
		}
		intent, ok := ActionIntent(action)
		if !ok {
			return nil, fmt.Errorf("[keys] key %q: unknown action: %q", name, action)
		}
		kt.Keys[k] = intent
	}

	for name, action := range raw.Runes {
		r, err := resolveRune(name)
		if err != nil {
			return nil, fmt.Errorf("[runes] key %q: %w", name, err)
		}
		intent, ok := ActionIntent(action)
		if !ok {
			return nil, fmt.Errorf("[runes] key %q: unknown action: %q", name, action)
		}
		kt.Runes[r] = intent
	}

	return kt, nil
}

// resolveRune converts a TOML key string to a rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}

	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], nil
	}

	return 0, fmt.Errorf("invalid rune key: %q (expected single character or alias)", s)
}

// MergeKeyTable returns a new KeyTable with base values overridden by override
// Override entries bound to IntentNone delete the key from the result
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	if override == nil {
		return result
	}

	for k, v := range override.Keys {
		if v == IntentNone {
			delete(result.Keys, k)
		} else {
			result.Keys[k] = v
		}
	}
	for r, v := range override.Runes {
		if v == IntentNone {
			delete(result.Runes, r)
		} else {
			result.Runes[r] = v
		}
	}
	return result
}
