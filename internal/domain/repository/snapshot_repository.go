package repository

import (
	"context"
)

// SnapshotRepository stores opaque serialized state under string keys.
//
// Get returns an errors.NotFound AppError when the key is absent.
// Delete removes every given key in one atomic step; missing keys are
// ignored.
type SnapshotRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
	List(ctx context.Context) ([]string, error)
}
