package repository

import (
	"context"
	"sync"

	"choukette/internal/domain/repository"
	"choukette/pkg/errors"
)

type memorySnapshotRepository struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewMemorySnapshotRepository keeps snapshots in process memory. State is
// lost on restart.
func NewMemorySnapshotRepository() repository.SnapshotRepository {
	return &memorySnapshotRepository{
		entries: make(map[string]string),
	}
}

func (r *memorySnapshotRepository) Get(ctx context.Context, key string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.entries[key]
	if !ok {
		return "", errors.NotFound("Snapshot", nil)
	}
	return v, nil
}

func (r *memorySnapshotRepository) Set(ctx context.Context, key, value string) error {
	r.mu.Lock()
	r.entries[key] = value
	r.mu.Unlock()
	return nil
}

func (r *memorySnapshotRepository) Delete(ctx context.Context, keys ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, k := range keys {
		delete(r.entries, k)
	}
	return nil
}

func (r *memorySnapshotRepository) List(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.entries))
	for k := range r.entries {
		keys = append(keys, k)
	}
	return keys, nil
}
