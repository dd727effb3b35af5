package usecase

import (
	"context"
	"sync"
	"time"

	"choukette/internal/domain/entity"
	"choukette/internal/domain/seed"
	"choukette/internal/domain/service"
	"choukette/pkg/logger"
)

// statsSnapshot is the persisted layout of choukette_professional_stats.
type statsSnapshot struct {
	CurrentProfessionalID *string                           `json:"currentProfessionalId"`
	CompletedMissions     []entity.CompletedMission         `json:"completedMissions"`
	MonthlyStatsData      []entity.ProfessionalMonthlyStats `json:"monthlyStatsData"`
}

// ProfessionalStatsUseCase owns the completed-mission history of the
// professional currently signed in.
type ProfessionalStatsUseCase struct {
	mu        sync.RWMutex
	snapshots *service.SnapshotService
	clock     Clock

	currentID *string
	completed []entity.CompletedMission
	monthly   []entity.ProfessionalMonthlyStats
}

func NewProfessionalStatsUseCase(snapshots *service.SnapshotService, clock Clock) *ProfessionalStatsUseCase {
	return &ProfessionalStatsUseCase{
		snapshots: snapshots,
		clock:     clock,
		completed: []entity.CompletedMission{},
		monthly:   buildProfessionalMonthly(clock()),
	}
}

func buildProfessionalMonthly(now time.Time) []entity.ProfessionalMonthlyStats {
	rows := seed.ProfessionalMonthRows()
	window := monthWindow(now)

	out := make([]entity.ProfessionalMonthlyStats, 0, len(rows))
	for i, r := range rows {
		out = append(out, entity.ProfessionalMonthlyStats{
			Month:             window[i].Label,
			MonthKey:          window[i].Key,
			MissionsCompleted: r.MissionsCompleted,
			TotalHours:        r.TotalHours,
			TotalEarnings:     r.TotalEarnings,
			AvgRating:         r.AvgRating,
		})
	}
	return out
}

// Initialize restores a persisted session.
func (u *ProfessionalStatsUseCase) Initialize(ctx context.Context) error {
	var snap statsSnapshot
	ok, err := u.snapshots.Load(ctx, service.KeyProfessionalStats, &snap)
	if err != nil || !ok {
		return err
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	u.currentID = snap.CurrentProfessionalID
	u.completed = nonNil(snap.CompletedMissions)
	if len(snap.MonthlyStatsData) > 0 {
		u.monthly = snap.MonthlyStatsData
	}
	return nil
}

// LoadData activates professionalID and loads the history it owns.
func (u *ProfessionalStatsUseCase) LoadData(ctx context.Context, professionalID string) {
	u.mu.Lock()
	defer u.mu.Unlock()

	id := professionalID
	u.currentID = &id
	u.completed = seed.CompletedMissionsFor(professionalID)

	err := u.snapshots.Save(ctx, service.KeyProfessionalStats, statsSnapshot{
		CurrentProfessionalID: u.currentID,
		CompletedMissions:     u.completed,
		MonthlyStatsData:      u.monthly,
	})
	if err != nil {
		logger.LogSnapshotError(service.KeyProfessionalStats, "save", err)
	}
}

func (u *ProfessionalStatsUseCase) Reset() {
	u.mu.Lock()
	u.currentID = nil
	u.completed = []entity.CompletedMission{}
	u.mu.Unlock()
}

func (u *ProfessionalStatsUseCase) CurrentProfessionalID() (string, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	if u.currentID == nil {
		return "", false
	}
	return *u.currentID, true
}

func (u *ProfessionalStatsUseCase) CompletedMissions() []entity.CompletedMission {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return append([]entity.CompletedMission{}, u.completed...)
}

func (u *ProfessionalStatsUseCase) TotalEarnings() float64 {
	u.mu.RLock()
	defer u.mu.RUnlock()

	var total float64
	for _, m := range u.completed {
		total += m.TotalEarnings
	}
	return total
}

func (u *ProfessionalStatsUseCase) TotalHours() float64 {
	u.mu.RLock()
	defer u.mu.RUnlock()

	var total float64
	for _, m := range u.completed {
		total += m.Hours
	}
	return total
}

// AverageRating averages rated missions only. It is 0 when none is rated.
func (u *ProfessionalStatsUseCase) AverageRating() float64 {
	u.mu.RLock()
	defer u.mu.RUnlock()

	var sum, n int
	for _, m := range u.completed {
		if m.IsRated() {
			sum += m.Rating
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func (u *ProfessionalStatsUseCase) MissionsThisMonth() []entity.CompletedMission {
	now := u.clock()

	u.mu.RLock()
	defer u.mu.RUnlock()

	out := []entity.CompletedMission{}
	for _, m := range u.completed {
		on, err := m.CompletedOn()
		if err != nil {
			continue
		}
		if on.Year() == now.Year() && on.Month() == now.Month() {
			out = append(out, m)
		}
	}
	return out
}

func (u *ProfessionalStatsUseCase) MonthlyStats() []entity.ProfessionalMonthlyStats {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return append([]entity.ProfessionalMonthlyStats(nil), u.monthly...)
}

// Summary bundles the dashboard aggregates.
func (u *ProfessionalStatsUseCase) Summary() entity.ProfessionalStats {
	return entity.ProfessionalStats{
		TotalEarnings:     u.TotalEarnings(),
		TotalHours:        u.TotalHours(),
		AverageRating:     u.AverageRating(),
		MissionsThisMonth: u.MissionsThisMonth(),
	}
}
