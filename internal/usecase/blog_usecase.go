package usecase

import (
	"context"
	"sort"
	"sync"

	"choukette/internal/domain/entity"
	"choukette/internal/domain/seed"
	"choukette/internal/domain/service"
	"choukette/pkg/errors"
	"choukette/pkg/logger"
)

// blogSnapshot is the persisted layout of choukette_blog_posts.
type blogSnapshot struct {
	SeedVersion int               `json:"seedVersion"`
	Posts       []entity.BlogPost `json:"posts"`
}

type BlogUseCase struct {
	mu        sync.RWMutex
	snapshots *service.SnapshotService
	posts     []entity.BlogPost
}

func NewBlogUseCase(snapshots *service.SnapshotService) *BlogUseCase {
	return &BlogUseCase{
		snapshots: snapshots,
		posts:     []entity.BlogPost{},
	}
}

// Generate loads the persisted posts when they were written by the current
// seed version, and reseeds otherwise.
func (u *BlogUseCase) Generate(ctx context.Context) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	var snap blogSnapshot
	ok, err := u.snapshots.Load(ctx, service.KeyBlogPosts, &snap)
	if err != nil {
		return err
	}
	if ok && snap.SeedVersion == seed.BlogSeedVersion {
		u.posts = nonNil(snap.Posts)
		return nil
	}
	if ok {
		logger.Info("Blog snapshot has seed version %d, reseeding with version %d", snap.SeedVersion, seed.BlogSeedVersion)
	}

	u.posts = seed.BlogPosts()
	return u.saveLocked(ctx)
}

func (u *BlogUseCase) saveLocked(ctx context.Context) error {
	return u.snapshots.Save(ctx, service.KeyBlogPosts, blogSnapshot{
		SeedVersion: seed.BlogSeedVersion,
		Posts:       u.posts,
	})
}

func (u *BlogUseCase) Categories() []entity.BlogCategoryInfo {
	return seed.BlogCategories()
}

func (u *BlogUseCase) Posts() []entity.BlogPost {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return append([]entity.BlogPost{}, u.posts...)
}

// SortedPosts returns every post, newest first.
func (u *BlogUseCase) SortedPosts() []entity.BlogPost {
	posts := u.Posts()
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].PublishedAt.After(posts[j].PublishedAt)
	})
	return posts
}

func (u *BlogUseCase) FeaturedPosts() []entity.BlogPost {
	out := []entity.BlogPost{}
	for _, p := range u.SortedPosts() {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

func (u *BlogUseCase) LatestPost() (*entity.BlogPost, error) {
	sorted := u.SortedPosts()
	if len(sorted) == 0 {
		return nil, errors.NotFound("Blog post", nil)
	}
	return &sorted[0], nil
}

func (u *BlogUseCase) PostsByCategory(category entity.BlogCategory) []entity.BlogPost {
	out := []entity.BlogPost{}
	for _, p := range u.SortedPosts() {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

func (u *BlogUseCase) GetByID(id string) (*entity.BlogPost, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	for _, p := range u.posts {
		if p.ID == id {
			found := p
			return &found, nil
		}
	}
	return nil, errors.NotFound("Blog post", nil)
}

// IncrementViews bumps the post's view counter and persists the full list.
func (u *BlogUseCase) IncrementViews(ctx context.Context, id string) (*entity.BlogPost, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	for i := range u.posts {
		if u.posts[i].ID != id {
			continue
		}
		u.posts[i].Views++
		blogViewsTotal.Inc()

		if err := u.saveLocked(ctx); err != nil {
			logger.LogSnapshotError(service.KeyBlogPosts, "save views", err)
		}
		post := u.posts[i]
		return &post, nil
	}
	return nil, errors.NotFound("Blog post", nil)
}
