package main

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	adapterrepo "choukette/internal/adapter/repository"
	"choukette/internal/domain/repository"
	"choukette/internal/infrastructure/firebase"
	"choukette/pkg/config"
	"choukette/pkg/logger"
)

func noopClose() error { return nil }

func firebaseCredentials(cfg *config.Config) firebase.Credentials {
	return firebase.Credentials{
		JSON: cfg.FirebaseServiceAccountJSON,
		Path: cfg.FirebaseServiceAccountPath,
	}
}

// openSnapshotRepository connects the snapshot backend named by
// cfg.StorageDriver. The returned func releases it.
func openSnapshotRepository(ctx context.Context, cfg *config.Config) (repository.SnapshotRepository, func() error, error) {
	switch cfg.StorageDriver {
	case config.DriverMemory:
		logger.Warn("Using in-memory snapshots: sessions are lost on restart")
		return adapterrepo.NewMemorySnapshotRepository(), noopClose, nil

	case config.DriverSQLite:
		repo, closeFn, err := adapterrepo.NewSQLiteSnapshotRepository(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("Using SQLite snapshots at %s", cfg.SQLitePath)
		return repo, closeFn, nil

	case config.DriverRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("failed to reach redis at %s: %w", cfg.RedisAddr, err)
		}
		logger.Info("Using Redis snapshots at %s", cfg.RedisAddr)
		return adapterrepo.NewRedisSnapshotRepository(client, cfg.RedisKeyPrefix), client.Close, nil

	case config.DriverFirestore:
		client, err := firebase.NewFirestoreClient(ctx, cfg.FirebaseProject, firebaseCredentials(cfg))
		if err != nil {
			return nil, nil, err
		}
		logger.Info("Using Firestore snapshots in project %s", cfg.FirebaseProject)
		return adapterrepo.NewFirestoreSnapshotRepository(client), client.Close, nil
	}

	return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
}
