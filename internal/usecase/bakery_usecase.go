package usecase

import (
	"context"
	"sync"
	"time"

	"choukette/internal/domain/entity"
	"choukette/internal/domain/seed"
	"choukette/internal/domain/service"
	"choukette/pkg/errors"
	"choukette/pkg/logger"
)

// bakerySnapshot is the persisted layout of choukette_bakery_data.
type bakerySnapshot struct {
	CurrentBakery      *entity.Bakery              `json:"currentBakery"`
	BakeryMissions     []entity.Mission            `json:"bakeryMissions"`
	BakeryApplications []entity.Application        `json:"bakeryApplications"`
	MonthlyStatsData   []entity.BakeryMonthlyStats `json:"monthlyStatsData"`
}

type BakeryUseCase struct {
	mu         sync.RWMutex
	snapshots  *service.SnapshotService
	clock      Clock
	avatarSeed uint64

	bakeries     []entity.Bakery
	current      *entity.Bakery
	missions     []entity.Mission
	applications []entity.Application
	monthly      []entity.BakeryMonthlyStats
}

func NewBakeryUseCase(snapshots *service.SnapshotService, clock Clock, avatarSeed uint64) *BakeryUseCase {
	u := &BakeryUseCase{
		snapshots:    snapshots,
		clock:        clock,
		avatarSeed:   avatarSeed,
		missions:     []entity.Mission{},
		applications: []entity.Application{},
	}
	u.monthly = buildBakeryMonthly(clock())
	u.Generate()
	return u
}

func buildBakeryMonthly(now time.Time) []entity.BakeryMonthlyStats {
	rows := seed.BakeryMonthRows()
	window := monthWindow(now)

	out := make([]entity.BakeryMonthlyStats, 0, len(rows))
	for i, r := range rows {
		out = append(out, entity.BakeryMonthlyStats{
			Month:                window[i].Label,
			MonthKey:             window[i].Key,
			MissionsPosted:       r.MissionsPosted,
			MissionsFilled:       r.MissionsFilled,
			ApplicationsReceived: r.ApplicationsReceived,
			AvgRating:            r.AvgRating,
		})
	}
	return out
}

// Generate reseeds the account list with deterministic avatars.
func (u *BakeryUseCase) Generate() {
	bakeries := seed.Bakeries()
	pool := seed.BakeryAvatars()
	for i := range bakeries {
		bakeries[i].Avatar = seed.PickAvatar(pool, u.avatarSeed, bakeries[i].ID)
	}

	u.mu.Lock()
	u.bakeries = bakeries
	u.mu.Unlock()
}

// Initialize restores the persisted session, if any, and writes it back so
// the stored monthly window is always present.
func (u *BakeryUseCase) Initialize(ctx context.Context) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if _, err := u.restoreLocked(ctx); err != nil {
		return err
	}
	if u.current != nil {
		return u.saveLocked(ctx)
	}
	return nil
}

func (u *BakeryUseCase) Bakeries() []entity.Bakery {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return append([]entity.Bakery(nil), u.bakeries...)
}

func (u *BakeryUseCase) GetByID(id string) (*entity.Bakery, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	if b := u.findLocked(id); b != nil {
		return b, nil
	}
	return nil, errors.NotFound("Bakery", nil)
}

func (u *BakeryUseCase) findLocked(id string) *entity.Bakery {
	for _, b := range u.bakeries {
		if b.ID == id {
			found := b
			return &found
		}
	}
	return nil
}

// Login checks the credentials against the account list and loads the
// bakery's dashboard. Passwords are compared in plain text.
func (u *BakeryUseCase) Login(ctx context.Context, email, password string, missions []entity.Mission) (*entity.Bakery, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	var match *entity.Bakery
	for _, b := range u.bakeries {
		if b.Email == email && b.Password == password {
			found := b
			match = &found
			break
		}
	}
	if match == nil {
		loginsTotal.WithLabelValues(string(entity.UserTypeBakery), "rejected").Inc()
		return nil, errors.InvalidCredentials()
	}

	u.current = match
	u.loadDataLocked(ctx, match.ID, missions)
	if err := u.saveLocked(ctx); err != nil {
		logger.LogSnapshotError(service.KeyBakeryData, "save after login", err)
	}

	current := *u.current
	return &current, nil
}

// LoadData fills the dashboard for bakeryID. A persisted session for the
// same bakery is reused as is; otherwise the bakery's own missions are
// taken from missions, padded with fillers, and paired with the demo
// applications. Storage failures are logged and the dashboard is rebuilt
// from seed.
func (u *BakeryUseCase) LoadData(ctx context.Context, bakeryID string, missions []entity.Mission) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.loadDataLocked(ctx, bakeryID, missions)
}

func (u *BakeryUseCase) loadDataLocked(ctx context.Context, bakeryID string, missions []entity.Mission) {
	restored, err := u.restoreLocked(ctx)
	if err != nil {
		logger.LogSnapshotError(service.KeyBakeryData, "restore", err)
	}
	if restored && u.current != nil && u.current.ID == bakeryID {
		return
	}

	u.current = u.findLocked(bakeryID)

	own := []entity.Mission{}
	for _, m := range missions {
		if m.BakeryID == bakeryID {
			own = append(own, m)
		}
	}
	if len(own) < seed.MinBakeryMissions {
		owner := entity.Bakery{ID: bakeryID}
		if u.current != nil {
			owner = *u.current
		}
		own = append(own, seed.FillerMissions(owner)...)
	}

	u.missions = own
	u.applications = seed.DemoApplications()

	if err := u.saveLocked(ctx); err != nil {
		logger.LogSnapshotError(service.KeyBakeryData, "save after load", err)
	}
}

func (u *BakeryUseCase) restoreLocked(ctx context.Context) (bool, error) {
	var snap bakerySnapshot
	ok, err := u.snapshots.Load(ctx, service.KeyBakeryData, &snap)
	if err != nil || !ok {
		return false, err
	}

	u.current = snap.CurrentBakery
	u.missions = nonNil(snap.BakeryMissions)
	u.applications = nonNil(snap.BakeryApplications)
	if len(snap.MonthlyStatsData) > 0 {
		u.monthly = snap.MonthlyStatsData
	}
	return true, nil
}

// SaveSnapshot persists the session. It does nothing without a current
// bakery.
func (u *BakeryUseCase) SaveSnapshot(ctx context.Context) error {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.saveLocked(ctx)
}

func (u *BakeryUseCase) saveLocked(ctx context.Context) error {
	if u.current == nil {
		return nil
	}
	return u.snapshots.Save(ctx, service.KeyBakeryData, bakerySnapshot{
		CurrentBakery:      u.current,
		BakeryMissions:     u.missions,
		BakeryApplications: u.applications,
		MonthlyStatsData:   u.monthly,
	})
}

func (u *BakeryUseCase) ClearSnapshot(ctx context.Context) error {
	return u.snapshots.Clear(ctx, service.KeyBakeryData)
}

// Reset drops the in-memory session. The snapshot is left to the caller.
func (u *BakeryUseCase) Reset() {
	u.mu.Lock()
	u.current = nil
	u.missions = []entity.Mission{}
	u.applications = []entity.Application{}
	u.mu.Unlock()
}

func (u *BakeryUseCase) CurrentBakery() *entity.Bakery {
	u.mu.RLock()
	defer u.mu.RUnlock()

	if u.current == nil {
		return nil
	}
	b := *u.current
	return &b
}

func (u *BakeryUseCase) BakeryMissions() []entity.Mission {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return append([]entity.Mission{}, u.missions...)
}

func (u *BakeryUseCase) BakeryApplications() []entity.Application {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return append([]entity.Application{}, u.applications...)
}

// Stats counts over the loaded missions and applications.
func (u *BakeryUseCase) Stats() entity.BakeryStats {
	u.mu.RLock()
	defer u.mu.RUnlock()

	s := entity.BakeryStats{
		TotalMissions:     len(u.missions),
		TotalApplications: len(u.applications),
	}
	for _, m := range u.missions {
		switch m.Status {
		case entity.MissionStatusOpen:
			s.OpenMissions++
		case entity.MissionStatusFilled:
			s.FilledMissions++
		}
	}
	for _, a := range u.applications {
		if a.Status == entity.ApplicationStatusPending {
			s.PendingApplications++
		}
	}
	return s
}

func (u *BakeryUseCase) MonthlyStats() []entity.BakeryMonthlyStats {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return append([]entity.BakeryMonthlyStats(nil), u.monthly...)
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
