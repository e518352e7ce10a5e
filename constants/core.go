package constants

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// IdlePollInterval is how often the scheduler re-checks a game that is not running
	IdlePollInterval = 50 * time.Millisecond

	// MaxTickLag is how many intervals the scheduler may fall behind before resyncing
	MaxTickLag = 2
)

// Logging
const (
	LogDir      = "logs"
	LogFileName = "vi-snake.log"
	MaxLogSize  = 10 * 1024 * 1024
)
