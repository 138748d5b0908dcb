// Package kvstore provides the durable key-value storage used to persist the
// content snapshot, the admin identity and the session flag. Backends share a
// single small interface so the store and auth layers stay agnostic of where
// the data lives.
package kvstore

import (
	"context"
	"sync"
)

// Persisted keys shared by the content store and the auth gate.
const (
	// KeySnapshot holds the serialized content snapshot.
	KeySnapshot = "adminData"
	// KeyAdminUser holds the serialized admin identity.
	KeyAdminUser = "adminUser"
	// KeyAuthFlag holds "true" while a session is active; absent means logged out.
	KeyAuthFlag = "adminAuth"
)

// Store is a durable string-to-string map scoped to one site.
type Store interface {
	// Get returns the value for key. ok is false when the key is absent;
	// absence is not an error.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	// Set writes the value for key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
	// Delete removes the key. Deleting an absent key succeeds.
	Delete(ctx context.Context, key string) error
}

// MemStore is an in-memory Store for tests and ephemeral runs. The zero
// value is an empty store.
type MemStore struct {
	mu   sync.Mutex
	data map[string]string
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{data: make(map[string]string)}
}

// Get implements Store.
func (m *MemStore) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok, nil
}

// Set implements Store.
func (m *MemStore) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		m.data = make(map[string]string)
	}
	m.data[key] = value
	return nil
}

// Delete implements Store.
func (m *MemStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}
