package score

import (
	"context"
	"sync"
)

// MemoryStore keeps scores for the life of the process
type MemoryStore struct {
	mu     sync.RWMutex
	scores []int
	slots  int
}

func NewMemoryStore(slots int) *MemoryStore {
	return &MemoryStore{slots: slots}
}

func (m *MemoryStore) Load(context.Context) ([]int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]int(nil), m.scores...), nil
}

func (m *MemoryStore) Save(_ context.Context, score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scores = Insert(m.scores, score, m.slots)
	return nil
}

func (m *MemoryStore) Close() error {
	return nil
}
