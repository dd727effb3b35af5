package repository

import (
	"context"
	stderrors "errors"
	"strings"

	"github.com/redis/go-redis/v9"

	"choukette/internal/domain/repository"
	"choukette/pkg/errors"
)

type redisSnapshotRepository struct {
	client *redis.Client
	prefix string
}

// NewRedisSnapshotRepository stores each snapshot as a plain string value
// under prefix+key.
func NewRedisSnapshotRepository(client *redis.Client, prefix string) repository.SnapshotRepository {
	return &redisSnapshotRepository{
		client: client,
		prefix: prefix,
	}
}

func (r *redisSnapshotRepository) Get(ctx context.Context, key string) (string, error) {
	v, err := r.client.Get(ctx, r.prefix+key).Result()
	if err != nil {
		if stderrors.Is(err, redis.Nil) {
			return "", errors.NotFound("Snapshot", err)
		}
		return "", errors.Internal("Failed to read snapshot", err)
	}
	return v, nil
}

func (r *redisSnapshotRepository) Set(ctx context.Context, key, value string) error {
	if err := r.client.Set(ctx, r.prefix+key, value, 0).Err(); err != nil {
		return errors.Internal("Failed to write snapshot", err)
	}
	return nil
}

// Delete issues a single multi-key DEL, which Redis applies atomically.
func (r *redisSnapshotRepository) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = r.prefix + k
	}
	if err := r.client.Del(ctx, full...).Err(); err != nil {
		return errors.Internal("Failed to delete snapshots", err)
	}
	return nil
}

func (r *redisSnapshotRepository) List(ctx context.Context) ([]string, error) {
	var keys []string
	iter := r.client.Scan(ctx, 0, r.prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, strings.TrimPrefix(iter.Val(), r.prefix))
	}
	if err := iter.Err(); err != nil {
		return nil, errors.Internal("Failed to list snapshots", err)
	}
	return keys, nil
}
