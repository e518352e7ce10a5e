package engine

import "sync"

// HighScoreStore is the key-value persistence collaborator
// Get reports false when the key has never been written
type HighScoreStore interface {
	Get(key string) (int, bool)
	Set(key string, value int) error
}

// MemoryStore is an in-process HighScoreStore, used headless and in tests
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]int
	writes int
}

// NewMemoryStore creates an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]int)}
}

func (m *MemoryStore) Get(key string) (int, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok
}

func (m *MemoryStore) Set(key string, value int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	m.writes++
	return nil
}

// Writes returns how many Set calls the store has received
func (m *MemoryStore) Writes() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.writes
}
