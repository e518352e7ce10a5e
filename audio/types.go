package audio

import (
	"errors"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundCoin SoundType = iota // Food eaten
	SoundBuzz                  // Game over
	SoundBell                  // Game start
	soundTypeCount
)

var soundTypeNames = [soundTypeCount]string{
	SoundCoin: "coin",
	SoundBuzz: "buzz",
	SoundBell: "bell",
}

func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return "unknown"
	}
	return soundTypeNames[s]
}

// ParseSoundType maps a config name to its SoundType
func ParseSoundType(name string) (SoundType, bool) {
	for i, n := range soundTypeNames {
		if n == name {
			return SoundType(i), true
		}
	}
	return 0, false
}

// Sentinel errors
var (
	ErrAudioDisabled = errors.New("audio disabled")
)
