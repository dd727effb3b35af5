package repository

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"cloud.google.com/go/firestore"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"choukette/internal/domain/repository"
	"choukette/pkg/errors"
)

func exerciseSnapshotRepository(t *testing.T, repo repository.SnapshotRepository) {
	t.Helper()
	ctx := context.Background()

	_, err := repo.Get(ctx, "missing")
	assert.True(t, errors.Is(err, errors.CodeNotFound), "missing key should be NotFound, got %v", err)

	require.NoError(t, repo.Set(ctx, "a", `{"n":1}`))
	require.NoError(t, repo.Set(ctx, "b", `{"n":2}`))
	require.NoError(t, repo.Set(ctx, "c", `{"n":3}`))
	require.NoError(t, repo.Set(ctx, "a", `{"n":10}`))

	v, err := repo.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, `{"n":10}`, v)

	keys, err := repo.List(ctx)
	require.NoError(t, err)
	sort.Strings(keys)
	assert.Equal(t, []string{"a", "b", "c"}, keys)

	require.NoError(t, repo.Delete(ctx, "a", "b", "never-written"))
	require.NoError(t, repo.Delete(ctx))

	keys, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"c"}, keys)

	_, err = repo.Get(ctx, "b")
	assert.True(t, errors.Is(err, errors.CodeNotFound))
}

func TestMemorySnapshotRepository(t *testing.T) {
	exerciseSnapshotRepository(t, NewMemorySnapshotRepository())
}

func TestSQLiteSnapshotRepository(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "snapshots.db")

	repo, closeDB, err := NewSQLiteSnapshotRepository(path)
	require.NoError(t, err)
	exerciseSnapshotRepository(t, repo)
	require.NoError(t, closeDB())

	reopened, closeAgain, err := NewSQLiteSnapshotRepository(path)
	require.NoError(t, err)
	defer func() { _ = closeAgain() }()

	v, err := reopened.Get(context.Background(), "c")
	require.NoError(t, err)
	assert.Equal(t, `{"n":3}`, v)
}

func TestRedisSnapshotRepositoryKeepsToItsPrefix(t *testing.T) {
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	defer func() { _ = client.Close() }()

	require.NoError(t, srv.Set("other-app:session:42", "keep-me"))
	require.NoError(t, srv.Set("choukette-old", "keep-me-too"))

	repo := NewRedisSnapshotRepository(client, "choukette:")
	exerciseSnapshotRepository(t, repo)

	assert.True(t, srv.Exists("choukette:c"))

	ctx := context.Background()
	keys, err := repo.List(ctx)
	require.NoError(t, err)
	require.NoError(t, repo.Delete(ctx, keys...))

	keys, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, keys)

	v, err := srv.Get("other-app:session:42")
	require.NoError(t, err)
	assert.Equal(t, "keep-me", v)
	assert.True(t, srv.Exists("choukette-old"))
}

func TestRedisSnapshotRepository(t *testing.T) {
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR not set")
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	defer func() { _ = client.Close() }()

	prefix := "choukette_test:" + t.Name() + ":"
	repo := NewRedisSnapshotRepository(client, prefix)
	t.Cleanup(func() { _ = repo.Delete(context.Background(), "a", "b", "c") })

	exerciseSnapshotRepository(t, repo)
}

func TestFirestoreSnapshotRepository(t *testing.T) {
	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set")
	}

	ctx := context.Background()
	client, err := firestore.NewClient(ctx, "choukette-test")
	require.NoError(t, err)
	defer func() { _ = client.Close() }()

	repo := NewFirestoreSnapshotRepository(client)
	t.Cleanup(func() { _ = repo.Delete(context.Background(), "a", "b", "c") })

	exerciseSnapshotRepository(t, repo)
}
