package persistence

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"

	"github.com/lixenwraith/vi-snake/constants"
)

// Manager keeps high scores and finished-game history in one TOML file
// It satisfies engine.HighScoreStore; every write is flushed to disk
type Manager struct {
	mu sync.Mutex

	basePath   string
	fileName   string
	maxHistory int

	scores  map[string]int
	history []Record

	now func() time.Time
}

// NewManager creates an empty manager rooted at basePath
func NewManager(basePath string) *Manager {
	return &Manager{
		basePath:   basePath,
		fileName:   constants.HighScoreFileName,
		maxHistory: constants.MaxHistory,
		scores:     make(map[string]int),
		now:        time.Now,
	}
}

// Open creates a manager and loads any existing file
// A corrupt history entry is reported but the rest of the file is kept
func Open(basePath string) (*Manager, error) {
	m := NewManager(basePath)
	if err := m.Load(); err != nil {
		return m, err
	}
	return m, nil
}

// FilePath returns the high score file location
func (m *Manager) FilePath() string {
	return filepath.Join(m.basePath, m.fileName)
}

// Exists checks if the high score file exists
func (m *Manager) Exists() bool {
	_, err := os.Stat(m.FilePath())
	return err == nil
}

// Load replaces in-memory state with the file contents
// A missing file leaves the manager empty and is not an error
func (m *Manager) Load() error {
	data, err := os.ReadFile(m.FilePath())
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", m.FilePath(), err)
	}

	var dto FileDTO
	if err := toml.Unmarshal(data, &dto); err != nil {
		return fmt.Errorf("decode %s: %w", m.FilePath(), err)
	}

	scores := make(map[string]int, len(dto.Scores))
	for k, v := range dto.Scores {
		scores[k] = v
	}

	var firstErr error
	history := make([]Record, 0, len(dto.History))
	for _, rd := range dto.History {
		r, err := rd.ToRecord()
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		history = append(history, r)
	}
	if len(history) > m.maxHistory {
		history = history[len(history)-m.maxHistory:]
	}

	m.mu.Lock()
	m.scores = scores
	m.history = history
	m.mu.Unlock()

	return firstErr
}

// Save writes the current state to disk via a temp file and rename
func (m *Manager) Save() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saveLocked()
}

func (m *Manager) saveLocked() error {
	if err := os.MkdirAll(m.basePath, 0755); err != nil {
		return fmt.Errorf("create %s: %w", m.basePath, err)
	}

	dto := FileDTO{
		Scores:  m.scores,
		History: make([]RecordDTO, len(m.history)),
	}
	for i, r := range m.history {
		dto.History[i] = FromRecord(r)
	}

	data, err := toml.Marshal(dto)
	if err != nil {
		return fmt.Errorf("encode scores: %w", err)
	}

	path := m.FilePath()
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}

// ===== engine.HighScoreStore =====

// Get returns a stored score; false when the key was never written
func (m *Manager) Get(key string) (int, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.scores[key]
	return v, ok
}

// Set stores a score and flushes the file
// The in-memory value is kept even when the write fails
func (m *Manager) Set(key string, value int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scores[key] = value
	return m.saveLocked()
}

// ===== HISTORY =====

// Record appends a finished game, dropping the oldest beyond the cap, and flushes the file
func (m *Manager) Record(score, length int, played time.Duration) (Record, error) {
	r := Record{
		ID:       uuid.New(),
		Score:    score,
		Length:   length,
		Duration: played.Truncate(time.Millisecond),
		EndedAt:  m.now().UTC().Truncate(time.Second),
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.history = append(m.history, r)
	if over := len(m.history) - m.maxHistory; over > 0 {
		m.history = append([]Record(nil), m.history[over:]...)
	}
	return r, m.saveLocked()
}

// History returns finished games, oldest first
func (m *Manager) History() []Record {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Record, len(m.history))
	copy(out, m.history)
	return out
}
