package engine

import (
	"sync"
	"time"
)

// PausableClock measures play time: real elapsed time minus time spent paused
// A new clock starts paused; the scheduler resumes it when the game runs
type PausableClock struct {
	mu sync.Mutex

	source TimeProvider

	startTime       time.Time     // Real time of the last Reset
	paused          bool          // Whether play time is frozen
	pauseStartTime  time.Time     // When the current pause started (real time)
	totalPausedTime time.Duration // Cumulative pause duration since Reset
}

// NewPausableClock creates a paused clock reading from source
func NewPausableClock(source TimeProvider) *PausableClock {
	if source == nil {
		source = NewMonotonicTimeProvider()
	}
	pc := &PausableClock{source: source}
	pc.Reset()
	return pc
}

// Reset zeroes play time and leaves the clock paused
func (pc *PausableClock) Reset() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	now := pc.source.Now()
	pc.startTime = now
	pc.paused = true
	pc.pauseStartTime = now
	pc.totalPausedTime = 0
}

// Pause freezes play time; no-op when already paused
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if pc.paused {
		return
	}
	pc.paused = true
	pc.pauseStartTime = pc.source.Now()
}

// Resume continues play time; no-op when running
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if !pc.paused {
		return
	}
	pc.totalPausedTime += pc.source.Now().Sub(pc.pauseStartTime)
	pc.paused = false
	pc.pauseStartTime = time.Time{}
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	return pc.paused
}

// Elapsed returns play time since the last Reset
func (pc *PausableClock) Elapsed() time.Duration {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	now := pc.source.Now()
	if pc.paused {
		now = pc.pauseStartTime
	}
	return now.Sub(pc.startTime) - pc.totalPausedTime
}
