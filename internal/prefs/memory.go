package prefs

import (
	"context"
	"sync"
)

// MemoryRepository is an in-memory Repository used by tests and as a
// fallback when no durable store is configured.
type MemoryRepository struct {
	mu      sync.RWMutex
	entries map[string]Preferences
}

// NewMemoryRepository returns an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{entries: make(map[string]Preferences)}
}

// Get returns the stored preferences for a visitor.
func (m *MemoryRepository) Get(_ context.Context, visitorID string) (Preferences, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.entries[visitorID]
	return p, ok, nil
}

// Put stores the preferences for a visitor.
func (m *MemoryRepository) Put(_ context.Context, visitorID string, p Preferences) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[visitorID] = p
	return nil
}
