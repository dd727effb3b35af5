package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"choukette/internal/domain/entity"
	"choukette/internal/domain/seed"
	"choukette/internal/domain/service"
	"choukette/pkg/errors"
)

func TestBlogGenerateSeedsAndPersists(t *testing.T) {
	ctx := context.Background()
	snaps, repo := newSnapshots()
	u := NewBlogUseCase(snaps)

	require.NoError(t, u.Generate(ctx))
	assert.Len(t, u.Posts(), 20)

	raw, err := repo.Get(ctx, service.KeyBlogPosts)
	require.NoError(t, err)
	assert.Contains(t, raw, `"seedVersion":1`)
}

func TestBlogIncrementViewsFromZero(t *testing.T) {
	ctx := context.Background()
	snaps, _ := newSnapshots()
	require.NoError(t, snaps.Save(ctx, service.KeyBlogPosts, blogSnapshot{
		SeedVersion: seed.BlogSeedVersion,
		Posts:       []entity.BlogPost{{ID: "x", Title: "Sans vues", Category: entity.CategoryConseils}},
	}))

	u := NewBlogUseCase(snaps)
	require.NoError(t, u.Generate(ctx))

	p, err := u.IncrementViews(ctx, "x")
	require.NoError(t, err)
	assert.Equal(t, 1, p.Views)

	p, err = u.IncrementViews(ctx, "x")
	require.NoError(t, err)
	assert.Equal(t, 2, p.Views)

	reloaded := NewBlogUseCase(snaps)
	require.NoError(t, reloaded.Generate(ctx))
	got, err := reloaded.GetByID("x")
	require.NoError(t, err)
	assert.Equal(t, 2, got.Views)

	_, err = u.IncrementViews(ctx, "missing")
	assert.True(t, errors.Is(err, errors.CodeNotFound))
}

func TestBlogReseedsOnVersionChange(t *testing.T) {
	ctx := context.Background()
	snaps, repo := newSnapshots()
	require.NoError(t, snaps.Save(ctx, service.KeyBlogPosts, blogSnapshot{
		SeedVersion: seed.BlogSeedVersion - 1,
		Posts:       []entity.BlogPost{{ID: "stale"}},
	}))

	u := NewBlogUseCase(snaps)
	require.NoError(t, u.Generate(ctx))
	assert.Len(t, u.Posts(), 20)

	require.NoError(t, repo.Set(ctx, service.KeyBlogPosts, `[{"id":"legacy"}]`))
	require.NoError(t, u.Generate(ctx))
	assert.Len(t, u.Posts(), 20)
	_, err := u.GetByID("legacy")
	assert.True(t, errors.Is(err, errors.CodeNotFound))
}

func TestBlogDerivedViews(t *testing.T) {
	ctx := context.Background()
	snaps, _ := newSnapshots()
	u := NewBlogUseCase(snaps)

	_, err := u.LatestPost()
	assert.True(t, errors.Is(err, errors.CodeNotFound))

	require.NoError(t, u.Generate(ctx))

	sorted := u.SortedPosts()
	for i := 1; i < len(sorted); i++ {
		assert.False(t, sorted[i].PublishedAt.After(sorted[i-1].PublishedAt))
	}

	latest, err := u.LatestPost()
	require.NoError(t, err)
	assert.Equal(t, "1", latest.ID)
	assert.Equal(t, time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC), latest.PublishedAt.UTC())

	var featured []string
	for _, p := range u.FeaturedPosts() {
		featured = append(featured, p.ID)
	}
	assert.Equal(t, []string{"1", "3", "12", "18"}, featured)

	technique := u.PostsByCategory(entity.CategoryTechnique)
	require.NotEmpty(t, technique)
	for _, p := range technique {
		assert.Equal(t, entity.CategoryTechnique, p.Category)
	}
	assert.Len(t, u.Categories(), 6)
}
