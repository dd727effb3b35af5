package service

import (
	"context"
	"encoding/json"
	"sort"

	"choukette/internal/domain/repository"
	"choukette/pkg/errors"
	"choukette/pkg/logger"
)

// SnapshotService serializes store state to JSON on top of a
// SnapshotRepository.
type SnapshotService struct {
	repo repository.SnapshotRepository
}

func NewSnapshotService(repo repository.SnapshotRepository) *SnapshotService {
	return &SnapshotService{repo: repo}
}

// Save overwrites key with the JSON encoding of v.
func (s *SnapshotService) Save(ctx context.Context, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.Internal("Failed to encode snapshot "+key, err)
	}
	if err := s.repo.Set(ctx, key, string(data)); err != nil {
		return err
	}
	snapshotWrites.WithLabelValues(key).Inc()
	return nil
}

// Load decodes key into dest and reports whether a snapshot was restored.
//
// A missing key is not an error. An entry that fails to decode is logged,
// removed and reported as missing so the caller falls back to fresh state.
func (s *SnapshotService) Load(ctx context.Context, key string, dest interface{}) (bool, error) {
	raw, err := s.repo.Get(ctx, key)
	if err != nil {
		if errors.Is(err, errors.CodeNotFound) {
			return false, nil
		}
		return false, err
	}

	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		logger.LogSnapshotError(key, "decode", err)
		snapshotCorrupt.WithLabelValues(key).Inc()
		if delErr := s.repo.Delete(ctx, key); delErr != nil {
			logger.LogSnapshotError(key, "remove corrupt entry", delErr)
		}
		return false, nil
	}

	return true, nil
}

// Clear removes all keys at once.
func (s *SnapshotService) Clear(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return s.repo.Delete(ctx, keys...)
}

// Keys lists the stored keys in lexical order.
func (s *SnapshotService) Keys(ctx context.Context) ([]string, error) {
	keys, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.Strings(keys)
	return keys, nil
}

// Dump returns every stored entry, raw.
func (s *SnapshotService) Dump(ctx context.Context) (map[string]string, error) {
	keys, err := s.Keys(ctx)
	if err != nil {
		return nil, err
	}

	out := make(map[string]string, len(keys))
	for _, k := range keys {
		v, err := s.repo.Get(ctx, k)
		if err != nil {
			if errors.Is(err, errors.CodeNotFound) {
				continue
			}
			return nil, err
		}
		out[k] = v
	}
	return out, nil
}
