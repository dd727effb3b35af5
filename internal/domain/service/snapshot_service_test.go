package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	adapterrepo "choukette/internal/adapter/repository"
	"choukette/internal/domain/service"
	"choukette/pkg/logger"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestSnapshotSaveLoad(t *testing.T) {
	ctx := context.Background()
	svc := service.NewSnapshotService(adapterrepo.NewMemorySnapshotRepository())

	var out payload
	ok, err := svc.Load(ctx, service.KeyUser, &out)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, svc.Save(ctx, service.KeyUser, payload{Name: "x", Count: 2}))

	ok, err = svc.Load(ctx, service.KeyUser, &out)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, payload{Name: "x", Count: 2}, out)
}

func TestSnapshotCorruptEntryIsRemoved(t *testing.T) {
	ctx := context.Background()
	repo := adapterrepo.NewMemorySnapshotRepository()
	svc := service.NewSnapshotService(repo)

	core, logs := observer.New(zapcore.WarnLevel)
	logger.Use(zap.New(core))
	t.Cleanup(func() { logger.Use(zap.NewNop()) })

	require.NoError(t, repo.Set(ctx, service.KeyBakeryData, "{not json"))

	var out payload
	ok, err := svc.Load(ctx, service.KeyBakeryData, &out)
	require.NoError(t, err)
	assert.False(t, ok)

	keys, err := svc.Keys(ctx)
	require.NoError(t, err)
	assert.Empty(t, keys)

	warnings := logs.FilterMessageSnippet("action=decode").All()
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0].Message, "key="+service.KeyBakeryData)
}

func TestSnapshotClearAndDump(t *testing.T) {
	ctx := context.Background()
	svc := service.NewSnapshotService(adapterrepo.NewMemorySnapshotRepository())

	for _, k := range []string{service.KeyUser, service.KeyBakeryData, service.KeyBlogPosts, service.KeyProfessionalStats} {
		require.NoError(t, svc.Save(ctx, k, payload{Name: k}))
	}

	require.NoError(t, svc.Clear(ctx, service.SessionKeys...))
	require.NoError(t, svc.Clear(ctx))

	dump, err := svc.Dump(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{service.KeyBlogPosts: `{"name":"choukette_blog_posts","count":0}`}, dump)
}
