package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/vi-snake/audio"
	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/engine"
)

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Config is the decoded vi-snake.toml
type Config struct {
	// Keymap is a TOML key binding file, relative paths resolve against the config file
	Keymap string `toml:"keymap"`

	Game    GameConfig    `toml:"game"`
	Audio   AudioConfig   `toml:"audio"`
	Storage StorageConfig `toml:"storage"`
	Metrics MetricsConfig `toml:"metrics"`

	baseDir string
}

// GameConfig holds board and pacing rules
type GameConfig struct {
	TileCount int `toml:"tile_count"`
	// StartX, StartY default to the board center when omitted
	StartX    *int    `toml:"start_x"`
	StartY    *int    `toml:"start_y"`
	BaseSpeed float64 `toml:"base_speed"`
	SpeedStep float64 `toml:"speed_step"`
	MaxSpeed  float64 `toml:"max_speed"`
	ScoreStep int     `toml:"score_step"`
}

// AudioConfig holds sound settings; volumes are percentages
type AudioConfig struct {
	Enabled      bool           `toml:"enabled"`
	MasterVolume int            `toml:"master_volume"`
	SampleRate   int            `toml:"sample_rate"`
	Effects      map[string]int `toml:"effects"`
}

// StorageConfig locates the high score file
type StorageConfig struct {
	DataDir string `toml:"data_dir"`
}

// MetricsConfig controls the Prometheus endpoint, empty Listen disables it
type MetricsConfig struct {
	Listen string `toml:"listen"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Game: GameConfig{
			TileCount: constants.TileCount,
			BaseSpeed: constants.BaseSpeed,
			SpeedStep: constants.SpeedStep,
			MaxSpeed:  constants.MaxSpeed,
			ScoreStep: constants.ScoreStep,
		},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: int(constants.DefaultMasterVolume * 100),
			SampleRate:   constants.DefaultSampleRate,
		},
		Storage: StorageConfig{
			DataDir: constants.DefaultDataDir,
		},
	}
}

// Load reads path over the defaults, applies VI_SNAKE_* overrides, and validates
// An empty path or missing file yields the defaults
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			log.Printf("config %s not found, using defaults", path)
		case err != nil:
			return nil, fmt.Errorf("read config: %w", err)
		default:
			md, err := toml.Decode(string(data), cfg)
			if err != nil {
				return nil, fmt.Errorf("decode %s: %w", path, err)
			}
			for _, key := range md.Undecoded() {
				log.Printf("config %s: unknown key %s", path, key)
			}
			cfg.baseDir = filepath.Dir(path)
		}
	}

	cfg.ApplyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from the environment; unparsable values are ignored
func (c *Config) ApplyEnv() {
	if enabled := os.Getenv("VI_SNAKE_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			c.Audio.Enabled = val
		}
	}

	// 0-100
	if volume := os.Getenv("VI_SNAKE_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			c.Audio.MasterVolume = min(max(val, 0), 100)
		}
	}

	if sampleRate := os.Getenv("VI_SNAKE_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			c.Audio.SampleRate = val
		}
	}

	if tiles := os.Getenv("VI_SNAKE_TILE_COUNT"); tiles != "" {
		if val, err := strconv.Atoi(tiles); err == nil {
			c.Game.TileCount = val
		}
	}

	if dir := os.Getenv("VI_SNAKE_DATA_DIR"); dir != "" {
		c.Storage.DataDir = dir
	}

	if addr := os.Getenv("VI_SNAKE_METRICS_ADDR"); addr != "" {
		c.Metrics.Listen = addr
	}
}

// Validate checks the game rules and audio ranges
func (c *Config) Validate() error {
	g := c.Game
	if g.TileCount < constants.MinTileCount {
		return fmt.Errorf("%w: tile_count %d below %d", ErrInvalidConfig, g.TileCount, constants.MinTileCount)
	}
	start := c.start()
	if start.X < 0 || start.X >= g.TileCount || start.Y < 0 || start.Y >= g.TileCount {
		return fmt.Errorf("%w: start (%d,%d) outside %dx%d grid", ErrInvalidConfig, start.X, start.Y, g.TileCount, g.TileCount)
	}
	if g.BaseSpeed <= 0 || g.MaxSpeed < g.BaseSpeed {
		return fmt.Errorf("%w: need 0 < base_speed (%v) <= max_speed (%v)", ErrInvalidConfig, g.BaseSpeed, g.MaxSpeed)
	}
	if g.SpeedStep < 0 {
		return fmt.Errorf("%w: negative speed_step %v", ErrInvalidConfig, g.SpeedStep)
	}
	if g.ScoreStep <= 0 {
		return fmt.Errorf("%w: score_step must be positive, got %d", ErrInvalidConfig, g.ScoreStep)
	}
	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 100 {
		return fmt.Errorf("%w: master_volume %d outside 0-100", ErrInvalidConfig, c.Audio.MasterVolume)
	}
	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("%w: sample_rate %d", ErrInvalidConfig, c.Audio.SampleRate)
	}
	for name := range c.Audio.Effects {
		if _, ok := audio.ParseSoundType(name); !ok {
			return fmt.Errorf("%w: unknown audio effect %q", ErrInvalidConfig, name)
		}
	}
	return nil
}

func (c *Config) start() engine.Point {
	center := c.Game.TileCount / 2
	p := engine.Point{X: center, Y: center}
	if c.Game.StartX != nil {
		p.X = *c.Game.StartX
	}
	if c.Game.StartY != nil {
		p.Y = *c.Game.StartY
	}
	return p
}

// EngineConfig converts the game section into engine rules
func (c *Config) EngineConfig() engine.Config {
	return engine.Config{
		TileCount:    c.Game.TileCount,
		Start:        c.start(),
		BaseSpeed:    c.Game.BaseSpeed,
		SpeedStep:    c.Game.SpeedStep,
		MaxSpeed:     c.Game.MaxSpeed,
		ScoreStep:    c.Game.ScoreStep,
		HighScoreKey: constants.HighScoreKey,
	}
}

// AudioSettings converts the audio section for the sound manager
func (c *Config) AudioSettings() *audio.AudioConfig {
	ac := audio.DefaultAudioConfig()
	ac.Enabled = c.Audio.Enabled
	ac.SetMasterPercent(c.Audio.MasterVolume)
	ac.SampleRate = c.Audio.SampleRate
	for name, pct := range c.Audio.Effects {
		if st, ok := audio.ParseSoundType(name); ok {
			ac.EffectVolumes[st] = float64(min(max(pct, 0), 100)) / 100.0
		}
	}
	return ac
}

// KeymapPath returns the keymap file location, empty when unset
func (c *Config) KeymapPath() string {
	if c.Keymap == "" || filepath.IsAbs(c.Keymap) || c.baseDir == "" {
		return c.Keymap
	}
	return filepath.Join(c.baseDir, c.Keymap)
}
