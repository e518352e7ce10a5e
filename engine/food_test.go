package engine

import (
	"math/rand"
	"testing"
)

func smallBoardGame(t *testing.T, seed int64) *Game {
	t.Helper()
	cfg := DefaultConfig()
	cfg.TileCount = 5
	cfg.Start = Point{X: 2, Y: 2}
	return NewGame(cfg, NewMemoryStore(), WithRand(rand.New(rand.NewSource(seed))))
}

// serpentine returns every cell of an n x n board as one contiguous path
func serpentine(n int) []Point {
	cells := make([]Point, 0, n*n)
	for y := 0; y < n; y++ {
		for i := 0; i < n; i++ {
			x := i
			if y%2 == 1 {
				x = n - 1 - i
			}
			cells = append(cells, Point{X: x, Y: y})
		}
	}
	return cells
}

// TestFoodNeverOnSnake verifies placement across many seeds and snake shapes
func TestFoodNeverOnSnake(t *testing.T) {
	path := serpentine(5)
	for seed := int64(0); seed < 50; seed++ {
		g := smallBoardGame(t, seed)
		g.snake = append([]Point(nil), path[:int(seed)%20+1]...)

		p, ok := g.placeFoodLocked()
		if !ok {
			t.Fatalf("Seed %d: expected a free cell", seed)
		}
		if g.occupiedLocked(p) {
			t.Fatalf("Seed %d: food %v placed on snake", seed, p)
		}
		if !g.cfg.InBounds(p) {
			t.Fatalf("Seed %d: food %v out of bounds", seed, p)
		}
	}
}

// TestFoodFallbackFindsLastCell verifies the free-cell scan when sampling is unlikely to hit
func TestFoodFallbackFindsLastCell(t *testing.T) {
	path := serpentine(5)
	last := path[len(path)-1]

	for seed := int64(0); seed < 10; seed++ {
		g := smallBoardGame(t, seed)
		g.snake = append([]Point(nil), path[:len(path)-1]...)

		p, ok := g.placeFoodLocked()
		if !ok {
			t.Fatalf("Seed %d: expected the single free cell", seed)
		}
		if p != last {
			t.Errorf("Seed %d: expected %v, got %v", seed, last, p)
		}
	}
}

// TestFoodFullGrid verifies placement reports failure when no cell is free
func TestFoodFullGrid(t *testing.T) {
	g := smallBoardGame(t, 1)
	g.snake = serpentine(5)

	if _, ok := g.placeFoodLocked(); ok {
		t.Error("Expected no placement on a full grid")
	}
	if free := g.freeCellsLocked(); len(free) != 0 {
		t.Errorf("Expected no free cells, got %v", free)
	}
}

// TestFreeCellsIgnoresDuplicatedTail verifies a grown snake's repeated tail is counted once
func TestFreeCellsIgnoresDuplicatedTail(t *testing.T) {
	g := smallBoardGame(t, 1)
	g.snake = []Point{{X: 1, Y: 0}, {X: 0, Y: 0}, {X: 0, Y: 0}}

	if got, want := len(g.freeCellsLocked()), 23; got != want {
		t.Errorf("Expected %d free cells, got %d", want, got)
	}
}

// TestBoardCleared verifies eating the last free cell ends the game as cleared
func TestBoardCleared(t *testing.T) {
	path := serpentine(5)
	g := smallBoardGame(t, 1)

	// Head on the second to last cell, body trailing back to the first, tail duplicated
	snake := make([]Point, 0, len(path))
	for i := len(path) - 2; i >= 0; i-- {
		snake = append(snake, path[i])
	}
	snake = append(snake, path[0])

	g.snake = snake
	g.velocity, g.pending = DirRight, DirRight
	g.phase = PhaseRunning
	g.food = path[len(path)-1]
	g.hasFood = true

	if res := g.Tick(); res != TickCleared {
		t.Fatalf("Expected TickCleared, got %v", res)
	}

	snap := g.Snapshot()
	if snap.Phase != PhaseOver {
		t.Errorf("Expected Over, got %v", snap.Phase)
	}
	if !snap.Cleared {
		t.Error("Expected Cleared to be set")
	}
	if snap.HasFood {
		t.Error("Expected no food after clearing the board")
	}
	if snap.Score != g.cfg.ScoreStep {
		t.Errorf("Expected the final food to score, got %d", snap.Score)
	}

	g.Reset()
	if g.Snapshot().Cleared {
		t.Error("Expected Reset to clear the Cleared flag")
	}
}
