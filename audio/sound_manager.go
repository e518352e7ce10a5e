package audio

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/vi-snake/constants"
)

// SoundManager plays one-shot effects through a shared speaker mixer
// Every method is safe before Initialize and after Cleanup; playback is simply skipped
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool

	muted   atomic.Bool
	played  atomic.Uint64
	skipped atomic.Uint64
}

// NewSoundManager creates a manager; nil cfg uses defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	sm := &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
	sm.muted.Store(!cfg.Enabled)
	return sm
}

// Initialize opens the speaker
// Returns ErrAudioDisabled when audio is turned off in config
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.cfg.Enabled {
		return ErrAudioDisabled
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences pending sounds; the speaker itself stays open
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	sm.initialized = false
}

// Play queues a sound effect; returns false when skipped
func (sm *SoundManager) Play(st SoundType) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted.Load() {
		sm.skipped.Add(1)
		return false
	}

	streamer := GetSoundEffect(st, sm.cfg)
	if streamer == nil {
		sm.skipped.Add(1)
		return false
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()

	sm.played.Add(1)
	return true
}

// PlayEat plays the food chime
func (sm *SoundManager) PlayEat() bool { return sm.Play(SoundCoin) }

// PlayGameOver plays the collision buzz
func (sm *SoundManager) PlayGameOver() bool { return sm.Play(SoundBuzz) }

// PlayStart plays the start bell
func (sm *SoundManager) PlayStart() bool { return sm.Play(SoundBell) }

// ToggleMute flips mute and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	for {
		old := sm.muted.Load()
		if sm.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// IsMuted reports whether playback is muted
func (sm *SoundManager) IsMuted() bool {
	return sm.muted.Load()
}

// IsInitialized reports whether the speaker is open
func (sm *SoundManager) IsInitialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// GetStats returns played and skipped effect counts
func (sm *SoundManager) GetStats() (played, skipped uint64) {
	return sm.played.Load(), sm.skipped.Load()
}
