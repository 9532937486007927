package snake

import "sync"

// HighScoreStore persists the best score as a single integer.
// LoadHighScore returns 0 when nothing has been saved yet.
type HighScoreStore interface {
	LoadHighScore() (int, error)
	SaveHighScore(score int) error
}

// MemoryStore keeps the high score in memory.
// It is used when no persistent store is available.
type MemoryStore struct {
	mu    sync.Mutex
	score int
}

// NewMemoryStore creates a store holding initial.
func NewMemoryStore(initial int) *MemoryStore {
	return &MemoryStore{score: initial}
}

// LoadHighScore implements HighScoreStore.
func (m *MemoryStore) LoadHighScore() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.score, nil
}

// SaveHighScore implements HighScoreStore.
func (m *MemoryStore) SaveHighScore(score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.score = score
	return nil
}

var _ HighScoreStore = (*MemoryStore)(nil)
