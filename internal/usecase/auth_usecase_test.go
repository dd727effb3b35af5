package usecase

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"choukette/internal/domain/entity"
	"choukette/internal/domain/repository"
	"choukette/internal/domain/service"
	"choukette/pkg/errors"
)

type authFixture struct {
	snaps         *service.SnapshotService
	repo          repository.SnapshotRepository
	missions      *MissionUseCase
	bakeries      *BakeryUseCase
	professionals *ProfessionalUseCase
	stats         *ProfessionalStatsUseCase
	auth          *AuthUseCase
}

func newAuthFixture(repo repository.SnapshotRepository) *authFixture {
	snaps := service.NewSnapshotService(repo)
	f := &authFixture{
		snaps:         snaps,
		repo:          repo,
		missions:      NewMissionUseCase(fixedClock),
		bakeries:      NewBakeryUseCase(snaps, fixedClock, 0),
		professionals: NewProfessionalUseCase(fixedClock, 0),
		stats:         NewProfessionalStatsUseCase(snaps, fixedClock),
	}
	f.auth = NewAuthUseCase(snaps, f.bakeries, f.professionals, f.stats, fixedClock)
	return f
}

// countingRepository records every Delete call.
type countingRepository struct {
	repository.SnapshotRepository
	deletes [][]string
}

func (r *countingRepository) Delete(ctx context.Context, keys ...string) error {
	r.deletes = append(r.deletes, keys)
	return r.SnapshotRepository.Delete(ctx, keys...)
}

type emptyDirectory struct{}

func (emptyDirectory) EnsureGenerated()              {}
func (emptyDirectory) List() []entity.Professional { return nil }

func TestLoginProjectsCurrentBakery(t *testing.T) {
	ctx := context.Background()
	_, repo := newSnapshots()
	f := newAuthFixture(repo)

	_, err := f.bakeries.Login(ctx, "boulangerie@moulin.fr", "demo123", f.missions.Missions())
	require.NoError(t, err)

	user, err := f.auth.Login(ctx, "boulangerie@moulin.fr", "demo123", entity.UserTypeBakery)
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "Boulangerie du Moulin", user.Name)
	require.NotNil(t, user.BakeryProfile)
	assert.Equal(t, "bakery1", user.BakeryProfile.BakeryID)
	assert.Equal(t, "23 Rue de Rivoli, 75001 Paris", user.BakeryProfile.Address)
	assert.True(t, f.auth.IsAuthenticated())
}

func TestLoginBakeryUsesVerifiedAccount(t *testing.T) {
	ctx := context.Background()
	_, repo := newSnapshots()
	f := newAuthFixture(repo)

	_, err := f.bakeries.Login(ctx, "boulangerie@moulin.fr", "demo123", f.missions.Missions())
	require.NoError(t, err)

	other, err := f.bakeries.GetByID("bakery2")
	require.NoError(t, err)

	user := f.auth.LoginBakery(ctx, *other)
	require.NotNil(t, user.BakeryProfile)
	assert.Equal(t, "bakery2", user.BakeryProfile.BakeryID)
	assert.Equal(t, other.Name, user.Name)
	assert.Equal(t, user.ID, f.auth.CurrentUser().ID)
}

func TestLoginBakeryFallsBackToDefaultProfile(t *testing.T) {
	_, repo := newSnapshots()
	f := newAuthFixture(repo)

	user, err := f.auth.Login(context.Background(), "x@y.fr", "", entity.UserTypeBakery)
	require.NoError(t, err)
	assert.Equal(t, "Boulangerie Martin", user.Name)
	assert.Equal(t, "15 Rue de la Paix, 75001 Paris", user.BakeryProfile.Address)
	assert.Empty(t, user.BakeryProfile.BakeryID)
}

func TestLoginProfessionalMatchesEmail(t *testing.T) {
	ctx := context.Background()
	_, repo := newSnapshots()
	f := newAuthFixture(repo)

	user, err := f.auth.Login(ctx, "omar.bensaid@choukette.fr", "", entity.UserTypeProfessional)
	require.NoError(t, err)
	require.NotNil(t, user.ProfessionalProfile)
	assert.Equal(t, "pro3", user.ProfessionalProfile.ProfessionalID)
	assert.Equal(t, "Omar Bensaïd", user.Name)

	user, err = f.auth.Login(ctx, "inconnu@choukette.fr", "", entity.UserTypeProfessional)
	require.NoError(t, err)
	assert.Equal(t, "pro1", user.ProfessionalProfile.ProfessionalID)

	first, err := f.auth.Login(ctx, "a@b.fr", "", entity.UserTypeProfessional)
	require.NoError(t, err)
	assert.NotEqual(t, user.ID, first.ID, "every login gets a fresh session id")
}

func TestLoginProfessionalDefaultProfile(t *testing.T) {
	snaps, _ := newSnapshots()
	bakeries := NewBakeryUseCase(snaps, fixedClock, 0)
	stats := NewProfessionalStatsUseCase(snaps, fixedClock)
	auth := NewAuthUseCase(snaps, bakeries, emptyDirectory{}, stats, fixedClock)

	user, err := auth.Login(context.Background(), "jean@x.fr", "", entity.UserTypeProfessional)
	require.NoError(t, err)
	assert.Equal(t, "Jean Dupont", user.Name)
	assert.Equal(t, 8, user.ProfessionalProfile.Experience)
	assert.Equal(t, entity.StatusAutoEntrepreneur, user.ProfessionalProfile.Status)
}

func TestLoginAdminAndUnknownType(t *testing.T) {
	_, repo := newSnapshots()
	f := newAuthFixture(repo)

	admin, err := f.auth.Login(context.Background(), "admin@choukette.fr", "", entity.UserTypeAdmin)
	require.NoError(t, err)
	assert.Equal(t, entity.UserTypeAdmin, admin.Type)
	assert.Nil(t, admin.BakeryProfile)
	assert.Nil(t, admin.ProfessionalProfile)

	_, err = f.auth.Login(context.Background(), "a@b.fr", "", entity.UserType("robot"))
	assert.True(t, errors.Is(err, errors.CodeBadRequest))
}

func TestLogoutClearsEverySession(t *testing.T) {
	ctx := context.Background()
	_, mem := newSnapshots()
	repo := &countingRepository{SnapshotRepository: mem}
	f := newAuthFixture(repo)

	_, err := f.bakeries.Login(ctx, "boulangerie@moulin.fr", "demo123", f.missions.Missions())
	require.NoError(t, err)
	f.stats.LoadData(ctx, "pro1")
	_, err = f.auth.Login(ctx, "boulangerie@moulin.fr", "demo123", entity.UserTypeBakery)
	require.NoError(t, err)

	blog := NewBlogUseCase(f.snaps)
	require.NoError(t, blog.Generate(ctx))

	require.NoError(t, f.auth.Logout(ctx))

	assert.Nil(t, f.auth.CurrentUser())
	assert.Nil(t, f.bakeries.CurrentBakery())
	assert.Equal(t, []entity.Mission{}, f.bakeries.BakeryMissions())
	assert.Equal(t, []entity.Application{}, f.bakeries.BakeryApplications())
	assert.Equal(t, []entity.CompletedMission{}, f.stats.CompletedMissions())
	_, ok := f.stats.CurrentProfessionalID()
	assert.False(t, ok)

	keys, err := mem.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{service.KeyBlogPosts}, keys)

	require.Len(t, repo.deletes, 1)
	assert.ElementsMatch(t, service.SessionKeys, repo.deletes[0])
}

func TestInitializeRestoresUser(t *testing.T) {
	ctx := context.Background()
	_, repo := newSnapshots()
	f := newAuthFixture(repo)

	user, err := f.auth.Login(ctx, "camille.moreau@choukette.fr", "", entity.UserTypeProfessional)
	require.NoError(t, err)

	restored := newAuthFixture(repo)
	require.NoError(t, restored.auth.Initialize(ctx))

	if diff := cmp.Diff(user, restored.auth.CurrentUser()); diff != "" {
		t.Errorf("restored user mismatch (-want +got):\n%s", diff)
	}
}

func TestInitializeDropsCorruptUser(t *testing.T) {
	ctx := context.Background()
	_, repo := newSnapshots()
	require.NoError(t, repo.Set(ctx, service.KeyUser, "not json{"))

	f := newAuthFixture(repo)
	require.NoError(t, f.auth.Initialize(ctx))

	assert.Nil(t, f.auth.CurrentUser())
	assert.False(t, f.auth.IsAuthenticated())
	_, err := repo.Get(ctx, service.KeyUser)
	assert.True(t, errors.Is(err, errors.CodeNotFound))
}
