package engine

import (
	"github.com/lixenwraith/vi-snake/constants"
)

// placeFoodLocked picks a uniformly random cell not covered by the snake
// Rejection sampling is bounded; a crowded board falls back to scanning free cells
// Returns false when the snake covers the whole grid
// Grown snakes briefly hold a duplicated tail, so free cells are counted by position, not length
func (g *Game) placeFoodLocked() (Point, bool) {
	n := g.cfg.TileCount
	for attempt := 0; attempt < constants.FoodSampleAttempts; attempt++ {
		p := Point{X: g.rng.Intn(n), Y: g.rng.Intn(n)}
		if !g.occupiedLocked(p) {
			return p, true
		}
	}

	free := g.freeCellsLocked()
	if len(free) == 0 {
		return Point{}, false
	}
	return free[g.rng.Intn(len(free))], true
}

// freeCellsLocked lists every on-grid cell the snake does not cover, row-major
func (g *Game) freeCellsLocked() []Point {
	n := g.cfg.TileCount
	taken := make(map[Point]struct{}, len(g.snake))
	for _, s := range g.snake {
		taken[s] = struct{}{}
	}

	free := make([]Point, 0, g.cfg.Cells()-len(taken))
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			p := Point{X: x, Y: y}
			if _, ok := taken[p]; !ok {
				free = append(free, p)
			}
		}
	}
	return free
}

func (g *Game) occupiedLocked(p Point) bool {
	for _, s := range g.snake {
		if s == p {
			return true
		}
	}
	return false
}
