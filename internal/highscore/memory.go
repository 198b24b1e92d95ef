package highscore

import "sync"

// MemoryStore is a Store backed by a map.
type MemoryStore struct {
	mu     sync.Mutex
	scores map[string]int
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{scores: make(map[string]int)}
}

// Best returns the stored score for key, or 0.
func (m *MemoryStore) Best(key string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.scores[key], nil
}

// SetBest stores score for key when it exceeds the stored value.
func (m *MemoryStore) SetBest(key string, score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if score > m.scores[key] {
		m.scores[key] = score
	}
	return nil
}
