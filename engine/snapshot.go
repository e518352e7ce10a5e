package engine

// Snapshot is a read-only copy of the board for renderers
type Snapshot struct {
	TileCount int
	Snake     []Point
	Food      Point
	HasFood   bool
	Velocity  Direction
	Score     int
	HighScore int
	Speed     float64
	Phase     Phase
	// Cleared is set when the game ended because the snake filled the grid
	Cleared bool
}

// Head returns the first segment
func (s Snapshot) Head() Point {
	return s.Snake[0]
}

// Snapshot copies the current state; the returned slice is owned by the caller
func (g *Game) Snapshot() Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	snake := make([]Point, len(g.snake))
	copy(snake, g.snake)

	return Snapshot{
		TileCount: g.cfg.TileCount,
		Snake:     snake,
		Food:      g.food,
		HasFood:   g.hasFood,
		Velocity:  g.velocity,
		Score:     g.score,
		HighScore: g.highScore,
		Speed:     g.speed,
		Phase:     g.phase,
		Cleared:   g.cleared,
	}
}
