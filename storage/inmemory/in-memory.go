// Package inmemory keeps the current snapshot in process memory.
package inmemory

import (
	"context"
	"sync"

	"github.com/and161185/covid19-dashboard/model"
)

// MemStorage holds the single current snapshot behind a mutex. A fresh store
// is seeded with the backup snapshot so readers always see usable figures.
type MemStorage struct {
	snap model.Snapshot
	mu   sync.RWMutex
}

func NewMemStorage() *MemStorage {
	return &MemStorage{
		snap: model.FallbackSnapshot(),
	}
}

// Save replaces the stored snapshot wholesale.
func (store *MemStorage) Save(ctx context.Context, snap model.Snapshot) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	store.snap = snap
	return nil
}

// Get returns the stored snapshot.
func (store *MemStorage) Get(ctx context.Context) (model.Snapshot, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	return store.snap, nil
}

func (store *MemStorage) Ping(ctx context.Context) error {
	return nil
}
