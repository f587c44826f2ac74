package storage

import (
	"context"
	"sync"
)

// NewMemoryStore returns a Store backed by an in-memory map.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string][]byte)}
}

// MemoryStore implements Store for tests and local development. Contents do
// not survive a restart.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

// Get returns the value stored under key, or ErrNotFound.
func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	value, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

// Put stores value under key.
func (s *MemoryStore) Put(_ context.Context, key string, value []byte) error {
	stored := make([]byte, len(value))
	copy(stored, value)
	s.mu.Lock()
	s.entries[key] = stored
	s.mu.Unlock()
	return nil
}

// Delete removes the entry under key.
func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
	return nil
}

// Has reports whether a key exists. Useful for tests.
func (s *MemoryStore) Has(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.entries[key]
	return ok
}
