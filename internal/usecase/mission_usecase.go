package usecase

import (
	"strings"
	"sync"

	"github.com/google/uuid"

	"choukette/internal/domain/entity"
	"choukette/internal/domain/seed"
	"choukette/pkg/errors"
	"choukette/pkg/logger"
)

// MissionFilter narrows Search. Zero values impose no constraint.
type MissionFilter struct {
	Position   entity.Position    `query:"position" validate:"omitempty,oneof=boulanger patissier vendeur tourneur"`
	Type       entity.MissionType `query:"type" validate:"omitempty,oneof=ponctuel recurrent urgence evenement"`
	Location   string             `query:"location"`
	MinRate    float64            `query:"minRate" validate:"gte=0"`
	MaxRate    float64            `query:"maxRate" validate:"omitempty,gte=0,gtefield=MinRate"`
	UrgentOnly bool               `query:"urgentOnly"`
}

type ApplyInput struct {
	MissionID          string
	ProfessionalID     string
	ProfessionalName   string
	ProfessionalAvatar string
	Message            string
	ProposedRate       *float64
}

type MissionUseCase struct {
	mu           sync.RWMutex
	clock        Clock
	missions     []entity.Mission
	applications []entity.Application
}

func NewMissionUseCase(clock Clock) *MissionUseCase {
	u := &MissionUseCase{clock: clock}
	u.Generate()
	return u
}

// Generate replaces the catalogue with the seed set. Applications and
// counter increments made since are discarded.
func (u *MissionUseCase) Generate() {
	missions := seed.Missions(u.clock())

	u.mu.Lock()
	u.missions = missions
	u.applications = []entity.Application{}
	u.mu.Unlock()

	logger.Debug("Generated %d missions", len(missions))
}

func (u *MissionUseCase) Missions() []entity.Mission {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return append([]entity.Mission(nil), u.missions...)
}

func (u *MissionUseCase) Applications() []entity.Application {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return append([]entity.Application{}, u.applications...)
}

func (u *MissionUseCase) OpenMissions() []entity.Mission {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.openLocked()
}

func (u *MissionUseCase) openLocked() []entity.Mission {
	out := []entity.Mission{}
	for _, m := range u.missions {
		if m.IsOpen() {
			out = append(out, m)
		}
	}
	return out
}

// UrgentMissions returns open missions needed today at the latest.
func (u *MissionUseCase) UrgentMissions() []entity.Mission {
	u.mu.RLock()
	defer u.mu.RUnlock()

	out := []entity.Mission{}
	for _, m := range u.openLocked() {
		if m.IsUrgent() {
			out = append(out, m)
		}
	}
	return out
}

func (u *MissionUseCase) MissionsByType() map[entity.MissionType][]entity.Mission {
	u.mu.RLock()
	defer u.mu.RUnlock()

	out := make(map[entity.MissionType][]entity.Mission)
	for _, m := range u.openLocked() {
		out[m.Type] = append(out[m.Type], m)
	}
	return out
}

// Search returns the open missions matching every set filter field.
func (u *MissionUseCase) Search(f MissionFilter) []entity.Mission {
	u.mu.RLock()
	defer u.mu.RUnlock()

	location := strings.ToLower(f.Location)
	out := []entity.Mission{}
	for _, m := range u.openLocked() {
		if f.Position != "" && m.Position != f.Position {
			continue
		}
		if f.Type != "" && m.Type != f.Type {
			continue
		}
		if location != "" && !strings.Contains(strings.ToLower(m.Location.City), location) {
			continue
		}
		if f.MinRate > 0 && m.HourlyRate < f.MinRate {
			continue
		}
		if f.MaxRate > 0 && m.HourlyRate > f.MaxRate {
			continue
		}
		if f.UrgentOnly && m.Urgency == "" {
			continue
		}
		out = append(out, m)
	}
	return out
}

// Apply records a pending application. The mission's applicant counter is
// bumped when the mission exists; an unknown id still records the
// application.
func (u *MissionUseCase) Apply(in ApplyInput) entity.Application {
	app := entity.Application{
		ID:                 uuid.New().String(),
		MissionID:          in.MissionID,
		ProfessionalID:     in.ProfessionalID,
		ProfessionalName:   in.ProfessionalName,
		ProfessionalAvatar: in.ProfessionalAvatar,
		Message:            in.Message,
		ProposedRate:       in.ProposedRate,
		Status:             entity.ApplicationStatusPending,
		AppliedAt:          u.clock(),
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	u.applications = append(u.applications, app)
	for i := range u.missions {
		if u.missions[i].ID == in.MissionID {
			u.missions[i].Applicants++
			break
		}
	}
	applicationsTotal.Inc()

	return app
}

func (u *MissionUseCase) GetByID(id string) (*entity.Mission, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	for _, m := range u.missions {
		if m.ID == id {
			found := m
			return &found, nil
		}
	}
	return nil, errors.NotFound("Mission", nil)
}

func (u *MissionUseCase) ApplicationsFor(missionID string) []entity.Application {
	u.mu.RLock()
	defer u.mu.RUnlock()

	out := []entity.Application{}
	for _, a := range u.applications {
		if a.MissionID == missionID {
			out = append(out, a)
		}
	}
	return out
}
