package audio

import (
	"github.com/lixenwraith/vi-snake/constants"
)

// AudioConfig holds playback settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0-1.0
	SampleRate    int
	EffectVolumes map[SoundType]float64
}

// DefaultAudioConfig returns enabled audio at half volume
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: constants.DefaultMasterVolume,
		SampleRate:   constants.DefaultSampleRate,
		EffectVolumes: map[SoundType]float64{
			SoundCoin: 0.6,
			SoundBuzz: 0.8,
			SoundBell: 0.5,
		},
	}
}

// SetMasterPercent sets master volume from a 0-100 value, clamped
func (c *AudioConfig) SetMasterPercent(percent int) {
	c.MasterVolume = clampUnit(float64(percent) / 100.0)
}

// effectVolume returns the scaled volume for st, 1.0 when unset
func (c *AudioConfig) effectVolume(st SoundType) float64 {
	v, ok := c.EffectVolumes[st]
	if !ok {
		v = 1.0
	}
	return clampUnit(v) * clampUnit(c.MasterVolume)
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
