package constants

// Grid & Spawn
const (
	// TileCount is the default side of the square playing field in cells
	TileCount = 20

	// StartX, StartY is the cell the snake occupies after initialization
	StartX = 10
	StartY = 10

	// MinTileCount is the smallest grid accepted by config validation
	MinTileCount = 5
)

// Speed is measured in ticks per second; tick interval = 1s / speed
const (
	BaseSpeed = 7.0
	SpeedStep = 0.2
	MaxSpeed  = 15.0
)

// Scoring
const (
	// ScoreStep is added to the score for every food eaten
	ScoreStep = 10

	// SelfCollisionStart is the first body index checked against the head
	// Segments 0-3 cannot be reached by the head in a single move
	SelfCollisionStart = 4

	// FoodSampleAttempts bounds random food placement before the free-cell scan
	FoodSampleAttempts = 64
)

// Persistence
const (
	// HighScoreKey is the store key for the persisted high score
	HighScoreKey = "snakeHighScore"

	// MaxHistory caps stored finished-game records
	MaxHistory = 50

	// DefaultDataDir holds the high score file
	DefaultDataDir = "data"

	// HighScoreFileName is the high score file inside the data dir
	HighScoreFileName = "highscore.toml"
)
