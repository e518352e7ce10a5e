package constants

import "time"

// Audio Defaults
const (
	DefaultSampleRate   = 44100
	DefaultMasterVolume = 0.5

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond
)

// Buzz Sound Timing (game over)
const (
	BuzzSoundDuration = 250 * time.Millisecond
	BuzzSoundAttack   = 5 * time.Millisecond
	BuzzSoundRelease  = 120 * time.Millisecond
)

// Bell Sound Timing (start)
const (
	BellSoundDuration           = 600 * time.Millisecond
	BellSoundAttack             = 5 * time.Millisecond
	BellSoundFundamentalRelease = 550 * time.Millisecond
	BellSoundOvertoneRelease    = 200 * time.Millisecond
)

// Coin Sound Timing (food eaten)
const (
	CoinSoundNote1Duration = 60 * time.Millisecond
	CoinSoundNote2Duration = 160 * time.Millisecond
	CoinSoundAttack        = 5 * time.Millisecond
	CoinSoundNote1Release  = 30 * time.Millisecond
	CoinSoundNote2Release  = 120 * time.Millisecond
)
