// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"sync"

	"todos/internal/session"
	"todos/internal/todo"
)

// MemorySessions is an in-memory implementation of session.Store for testing.
type MemorySessions struct {
	mu    sync.RWMutex
	snaps map[string]todo.Snapshot
	saves int

	// Error injection for testing
	LoadErr   error
	SaveErr   error
	DeleteErr error

	Closed bool
}

var _ session.Store = (*MemorySessions)(nil)

// NewMemorySessions creates an empty MemorySessions.
func NewMemorySessions() *MemorySessions {
	return &MemorySessions{snaps: make(map[string]todo.Snapshot)}
}

// Put stores a snapshot directly, bypassing error injection.
func (m *MemorySessions) Put(id string, snap todo.Snapshot) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snaps[id] = snap
}

// Get returns the stored snapshot for id, bypassing error injection.
func (m *MemorySessions) Get(id string) (todo.Snapshot, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	snap, ok := m.snaps[id]
	return snap, ok
}

// Saves returns how many times Save succeeded.
func (m *MemorySessions) Saves() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.saves
}

// Load implements session.Store.
func (m *MemorySessions) Load(ctx context.Context, id string) (todo.Snapshot, error) {
	if m.LoadErr != nil {
		return todo.Snapshot{}, m.LoadErr
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	snap, ok := m.snaps[id]
	if !ok {
		return todo.EmptySnapshot(), nil
	}
	return snap, nil
}

// Save implements session.Store.
func (m *MemorySessions) Save(ctx context.Context, id string, snap todo.Snapshot) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snaps[id] = snap
	m.saves++
	return nil
}

// Delete implements session.Store.
func (m *MemorySessions) Delete(ctx context.Context, id string) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.snaps, id)
	return nil
}

// Close implements session.Store.
func (m *MemorySessions) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Closed = true
	return nil
}
