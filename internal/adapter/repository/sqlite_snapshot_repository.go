package repository

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // pure go sqlite driver

	"choukette/internal/domain/repository"
	"choukette/pkg/errors"
)

type sqliteSnapshotRepository struct {
	db *sql.DB
}

// NewSQLiteSnapshotRepository opens (or creates) the database at path and
// makes sure the snapshots table exists.
func NewSQLiteSnapshotRepository(path string) (repository.SnapshotRepository, func() error, error) {
	if path == "" {
		path = "choukette.db"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !stderrors.Is(err, os.ErrExist) {
		return nil, nil, fmt.Errorf("create dirs: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS snapshots (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at INTEGER NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("create snapshots table: %w", err)
	}

	return &sqliteSnapshotRepository{db: db}, db.Close, nil
}

func (r *sqliteSnapshotRepository) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM snapshots WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return "", errors.NotFound("Snapshot", err)
		}
		return "", errors.Internal("Failed to read snapshot", err)
	}
	return value, nil
}

func (r *sqliteSnapshotRepository) Set(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO snapshots (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().Unix())
	if err != nil {
		return errors.Internal("Failed to write snapshot", err)
	}
	return nil
}

func (r *sqliteSnapshotRepository) Delete(ctx context.Context, keys ...string) (retErr error) {
	if len(keys) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Internal("Failed to begin snapshot delete", err)
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()

	for _, k := range keys {
		if _, err := tx.ExecContext(ctx, `DELETE FROM snapshots WHERE key = ?`, k); err != nil {
			return errors.Internal("Failed to delete snapshot", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.Internal("Failed to commit snapshot delete", err)
	}
	return nil
}

func (r *sqliteSnapshotRepository) List(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT key FROM snapshots`)
	if err != nil {
		return nil, errors.Internal("Failed to list snapshots", err)
	}
	defer func() { _ = rows.Close() }()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, errors.Internal("Failed to scan snapshot key", err)
		}
		keys = append(keys, k)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Internal("Failed to list snapshots", err)
	}
	return keys, nil
}
