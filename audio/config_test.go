package audio

import (
	"testing"

	"github.com/lixenwraith/vi-snake/constants"
)

func TestDefaultAudioConfig(t *testing.T) {
	cfg := DefaultAudioConfig()

	if !cfg.Enabled {
		t.Error("Expected audio enabled by default")
	}
	if cfg.MasterVolume != constants.DefaultMasterVolume {
		t.Errorf("Expected master volume %v, got %v", constants.DefaultMasterVolume, cfg.MasterVolume)
	}
	if cfg.SampleRate != constants.DefaultSampleRate {
		t.Errorf("Expected sample rate %d, got %d", constants.DefaultSampleRate, cfg.SampleRate)
	}
	for st := SoundType(0); st < soundTypeCount; st++ {
		if _, ok := cfg.EffectVolumes[st]; !ok {
			t.Errorf("Missing default volume for %v", st)
		}
	}
}

func TestSetMasterPercent(t *testing.T) {
	tests := []struct {
		percent int
		want    float64
	}{
		{0, 0},
		{50, 0.5},
		{100, 1},
		{150, 1},
		{-20, 0},
	}

	for _, tt := range tests {
		cfg := DefaultAudioConfig()
		cfg.SetMasterPercent(tt.percent)
		if cfg.MasterVolume != tt.want {
			t.Errorf("SetMasterPercent(%d): expected %v, got %v", tt.percent, tt.want, cfg.MasterVolume)
		}
	}
}

func TestEffectVolumeScaling(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.MasterVolume = 0.5
	cfg.EffectVolumes[SoundCoin] = 0.5
	delete(cfg.EffectVolumes, SoundBell)

	if got := cfg.effectVolume(SoundCoin); got != 0.25 {
		t.Errorf("Expected 0.25, got %v", got)
	}
	if got := cfg.effectVolume(SoundBell); got != 0.5 {
		t.Errorf("Expected unset effect to use master volume, got %v", got)
	}
}

func TestParseSoundType(t *testing.T) {
	for st := SoundType(0); st < soundTypeCount; st++ {
		got, ok := ParseSoundType(st.String())
		if !ok || got != st {
			t.Errorf("ParseSoundType(%q): expected %v, got %v (ok=%v)", st.String(), st, got, ok)
		}
	}
	if _, ok := ParseSoundType("whoosh"); ok {
		t.Error("Expected unknown name to fail")
	}
	if SoundType(42).String() != "unknown" {
		t.Errorf("Expected unknown, got %s", SoundType(42).String())
	}
}
