// Package store provides the persistence port of the data layer: named
// JSON documents addressed by string keys with whole-value read/write.
// There is no partial merge and no query language; repositories read the
// entire document, mutate it in memory, and write it back.
package store

import (
	"context"
	"sync"
)

// Document keys used by the repositories.
const (
	KeyProducts   = "products"
	KeyOrders     = "orders"
	KeyUsers      = "users"
	CartKeyPrefix = "cart_"
)

// CartKey returns the per-user cart document key
func CartKey(userID string) string {
	return CartKeyPrefix + userID
}

// Store is the document persistence capability injected into every
// repository. Get reports found=false when the key has never been
// written; Set fully overwrites any prior value.
type Store interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
}

// Memory is an in-process Store used by tests and single-node setups
type Memory struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

// NewMemory creates an empty in-memory store
func NewMemory() *Memory {
	return &Memory{docs: make(map[string][]byte)}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.docs[key]
	if !ok {
		return nil, false, nil
	}

	// Copy so callers cannot mutate the stored document
	out := make([]byte, len(value))
	copy(out, value)
	return out, true, nil
}

func (m *Memory) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	m.docs[key] = stored
	return nil
}
