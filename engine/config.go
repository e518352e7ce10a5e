package engine

import (
	"github.com/lixenwraith/vi-snake/constants"
)

// Config holds the immutable rules of a game
type Config struct {
	TileCount int
	Start     Point
	BaseSpeed float64
	SpeedStep float64
	MaxSpeed  float64
	ScoreStep int
	// HighScoreKey is the store key used for the persisted high score
	HighScoreKey string
}

// DefaultConfig returns the classic 20x20 rules
func DefaultConfig() Config {
	return Config{
		TileCount:    constants.TileCount,
		Start:        Point{X: constants.StartX, Y: constants.StartY},
		BaseSpeed:    constants.BaseSpeed,
		SpeedStep:    constants.SpeedStep,
		MaxSpeed:     constants.MaxSpeed,
		ScoreStep:    constants.ScoreStep,
		HighScoreKey: constants.HighScoreKey,
	}
}

// InBounds reports whether p lies on the grid
func (c Config) InBounds(p Point) bool {
	return p.X >= 0 && p.X < c.TileCount && p.Y >= 0 && p.Y < c.TileCount
}

// Cells returns the total number of grid cells
func (c Config) Cells() int {
	return c.TileCount * c.TileCount
}
