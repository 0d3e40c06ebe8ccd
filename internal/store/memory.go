// internal/store/memory.go
//
// In-memory implementation of the KV interface.
// This is a lightweight persistence layer used for ephemeral profiles,
// primarily in development/testing, or when durability is not required.
//
// Characteristics:
//   - Stores string values keyed by string in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process restarts.

package store

import (
	"context"
	"sync"
)

// KV is the persistence collaborator the stats store writes through:
// a string-valued key-value store. Implementations may be backed by
// memory (this file), SQLite (sqlite.go), Redis, etc.
type KV interface {
	// Get retrieves the value for key. The second return is false when
	// the key has never been set; that is not an error.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set persists or overwrites the value for key.
	Set(ctx context.Context, key, value string) error

	// Delete removes the value for key. Removing a missing key is a no-op.
	Delete(ctx context.Context, key string) error
}

// memory is an in-memory map-based KV implementation.
type memory struct {
	mu   sync.RWMutex      // guards values map
	vals map[string]string // keyed by caller-chosen keys
}

// NewMemoryKV constructs a new in-memory KV.
func NewMemoryKV() KV {
	return &memory{vals: make(map[string]string)}
}

// Get looks up a value by key.
func (m *memory) Get(ctx context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.vals[key]
	return v, ok, nil
}

// Set adds or updates the value in the map.
func (m *memory) Set(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.vals[key] = value
	return nil
}

// Delete removes the key if present.
func (m *memory) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.vals, key)
	return nil
}
