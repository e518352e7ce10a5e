package engine

import (
	"log"
	"math"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/status"
)

// Game owns the whole simulation state of one snake board
// All exported methods are safe to call from the input and scheduler goroutines;
// invalid calls for the current phase are silent no-ops
type Game struct {
	mu sync.RWMutex

	// ===== CONFIGURATION (read-only after init) =====
	cfg   Config
	rng   *rand.Rand
	store HighScoreStore

	// ===== SIMULATION STATE (mutex protected) =====
	phase    Phase
	snake    []Point
	velocity Direction // active, applied this tick
	pending  Direction // buffered from input, committed at tick start
	food     Point
	hasFood  bool
	cleared  bool
	score    int
	speed    float64

	highScore int

	// ===== METRICS (cached pointers, lock-free) =====
	statFoods *atomic.Int64
	statGames *atomic.Int64
	statScore *atomic.Int64
	statSpeed *status.AtomicFloat
}

// Option configures a Game at construction
type Option func(*Game)

// WithRand replaces the random source, used for deterministic tests and -seed
func WithRand(rng *rand.Rand) Option {
	return func(g *Game) {
		g.rng = rng
	}
}

// WithStatus publishes game counters into the registry
func WithStatus(reg *status.Registry) Option {
	return func(g *Game) {
		g.statFoods = reg.Ints.Get(status.KeyFoodsEaten)
		g.statGames = reg.Ints.Get(status.KeyGamesOver)
		g.statScore = reg.Ints.Get(status.KeyScore)
		g.statSpeed = reg.Floats.Get(status.KeySpeed)
	}
}

// NewGame creates an initialized game in PhaseIdle
// The high score is read once from store; an absent key counts as zero
func NewGame(cfg Config, store HighScoreStore, opts ...Option) *Game {
	if store == nil {
		store = NewMemoryStore()
	}
	g := &Game{
		cfg:       cfg,
		store:     store,
		statFoods: new(atomic.Int64),
		statGames: new(atomic.Int64),
		statScore: new(atomic.Int64),
		statSpeed: new(status.AtomicFloat),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	if hs, ok := store.Get(cfg.HighScoreKey); ok && hs > 0 {
		g.highScore = hs
	}

	g.mu.Lock()
	g.initLocked()
	g.mu.Unlock()
	return g
}

// initLocked resets every field except configuration and high score
func (g *Game) initLocked() {
	g.phase = PhaseIdle
	g.snake = []Point{g.cfg.Start}
	g.velocity = DirNone
	g.pending = DirNone
	g.score = 0
	g.speed = g.cfg.BaseSpeed
	g.cleared = false
	g.food, g.hasFood = g.placeFoodLocked()

	g.statScore.Store(0)
	g.statSpeed.Set(g.speed)
}

// ===== CONTROL OPERATIONS =====

// Start begins a game from PhaseIdle with a random cardinal direction
// Returns false when the call was ignored
func (g *Game) Start() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.phase != PhaseIdle {
		return false
	}
	g.pending = CardinalDirections[g.rng.Intn(len(CardinalDirections))]
	g.phase = PhaseRunning
	return true
}

// SetDirection buffers a turn for the next tick
// Rejected unless running, and when d reverses the active velocity
func (g *Game) SetDirection(d Direction) bool {
	if !d.IsCardinal() {
		return false
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.phase != PhaseRunning {
		return false
	}
	if d == g.velocity.Opposite() {
		return false
	}
	g.pending = d
	return true
}

// TogglePause flips between running and paused
func (g *Game) TogglePause() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	switch g.phase {
	case PhaseRunning:
		g.phase = PhasePaused
	case PhasePaused:
		g.phase = PhaseRunning
	default:
		return false
	}
	return true
}

// Reset reinitializes the board regardless of phase; the high score survives
func (g *Game) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.initLocked()
}

// ===== SIMULATION =====

// Tick advances the snake by one cell
// Collisions short-circuit the remaining steps; at most one food is eaten per tick
func (g *Game) Tick() TickResult {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.phase != PhaseRunning {
		return TickSkipped
	}

	// 1. Commit buffered input
	g.velocity = g.pending

	// 2. Shift body from pre-tick positions; copy is overlap-safe
	copy(g.snake[1:], g.snake[:len(g.snake)-1])

	// 3. Advance head
	head := g.snake[0].Add(g.velocity)
	g.snake[0] = head

	// 4. Walls
	if !g.cfg.InBounds(head) {
		g.endLocked()
		return TickWallCollision
	}

	// 5. Body, first segments exempt
	for i := constants.SelfCollisionStart; i < len(g.snake); i++ {
		if g.snake[i] == head {
			g.endLocked()
			return TickSelfCollision
		}
	}

	// 6. Food
	if !g.hasFood || head != g.food {
		return TickMoved
	}

	g.snake = append(g.snake, g.snake[len(g.snake)-1])
	g.score += g.cfg.ScoreStep
	g.statScore.Store(int64(g.score))
	g.statFoods.Add(1)
	if g.score > g.highScore {
		g.highScore = g.score
		if err := g.store.Set(g.cfg.HighScoreKey, g.highScore); err != nil {
			log.Printf("high score write failed: %v", err)
		}
	}
	g.speed = math.Min(g.speed+g.cfg.SpeedStep, g.cfg.MaxSpeed)
	g.statSpeed.Set(g.speed)

	g.food, g.hasFood = g.placeFoodLocked()
	if !g.hasFood {
		g.cleared = true
		g.endLocked()
		return TickCleared
	}
	return TickAte
}

func (g *Game) endLocked() {
	g.phase = PhaseOver
	g.statGames.Add(1)
}

// ===== READ ACCESSORS =====

// Phase returns the current lifecycle state
func (g *Game) Phase() Phase {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.phase
}

// Score returns the current score
func (g *Game) Score() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.score
}

// HighScore returns the best score seen by this game or loaded from the store
func (g *Game) HighScore() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.highScore
}

// Speed returns the current ticks per second
func (g *Game) Speed() float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.speed
}

// TickInterval is the scheduler delay for the current speed
func (g *Game) TickInterval() time.Duration {
	return IntervalForSpeed(g.Speed())
}

// IntervalForSpeed converts ticks per second into a tick interval
func IntervalForSpeed(speed float64) time.Duration {
	if speed <= 0 {
		return constants.IdlePollInterval
	}
	return time.Duration(float64(time.Second) / speed)
}

// Config returns the rules the game was built with
func (g *Game) Config() Config {
	return g.cfg
}
