package reviewstore

import (
	"context"
	"sync"
)

// MemoryStore is a process-local per-category counter for
// single-instance and test deployments.
type MemoryStore struct {
	mu     sync.Mutex
	counts map[string]int64
}

// NewMemoryStore creates an in-memory counter.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{counts: make(map[string]int64)}
}

// Incr bumps the counter for one category and returns its new value.
func (s *MemoryStore) Incr(_ context.Context, category string) (int64, error) {
	key := categoryKey(category)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts[key]++
	return s.counts[key], nil
}

// Reset clears the counter for one category.
func (s *MemoryStore) Reset(_ context.Context, category string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.counts, categoryKey(category))
	return nil
}
