package engine

// Point is a grid cell coordinate
type Point struct {
	X, Y int
}

// Add returns p moved by d
func (p Point) Add(d Direction) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Direction is a unit velocity on one axis, or zero before the game starts
type Direction struct {
	X, Y int
}

var (
	DirNone  = Direction{}
	DirUp    = Direction{X: 0, Y: -1}
	DirDown  = Direction{X: 0, Y: 1}
	DirLeft  = Direction{X: -1, Y: 0}
	DirRight = Direction{X: 1, Y: 0}
)

// CardinalDirections lists the four legal movement directions
var CardinalDirections = [4]Direction{DirUp, DirDown, DirLeft, DirRight}

// Opposite returns the reversed direction
func (d Direction) Opposite() Direction {
	return Direction{X: -d.X, Y: -d.Y}
}

// IsZero reports whether d is the stationary direction
func (d Direction) IsZero() bool {
	return d == DirNone
}

// IsCardinal reports whether d is one of CardinalDirections
func (d Direction) IsCardinal() bool {
	for _, c := range CardinalDirections {
		if d == c {
			return true
		}
	}
	return false
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// Phase is the game lifecycle state
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhasePaused
	PhaseOver
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// TickResult reports what a single Tick did
type TickResult int

const (
	// TickSkipped means the game was not running and nothing moved
	TickSkipped TickResult = iota
	// TickMoved is a plain move with no event
	TickMoved
	// TickAte means food was eaten: the snake grew, score and speed updated
	TickAte
	// TickWallCollision ended the game on a wall
	TickWallCollision
	// TickSelfCollision ended the game on the snake's own body
	TickSelfCollision
	// TickCleared ended the game because no free cell remained for food
	TickCleared
)

// Ended reports whether the tick moved the game to PhaseOver
func (r TickResult) Ended() bool {
	return r == TickWallCollision || r == TickSelfCollision || r == TickCleared
}

var tickResultNames = [...]string{"skipped", "moved", "ate", "wall", "self", "cleared"}

func (r TickResult) String() string {
	if r < 0 || int(r) >= len(tickResultNames) {
		return "unknown"
	}
	return tickResultNames[r]
}
