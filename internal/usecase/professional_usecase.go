package usecase

import (
	"sync"

	"choukette/internal/domain/entity"
	"choukette/internal/domain/seed"
	"choukette/pkg/errors"
)

// ProfessionalUseCase holds the read-only worker directory.
type ProfessionalUseCase struct {
	mu            sync.RWMutex
	clock         Clock
	avatarSeed    uint64
	professionals []entity.Professional
}

func NewProfessionalUseCase(clock Clock, avatarSeed uint64) *ProfessionalUseCase {
	u := &ProfessionalUseCase{clock: clock, avatarSeed: avatarSeed}
	u.Generate()
	return u
}

func (u *ProfessionalUseCase) Generate() {
	pros := seed.Professionals(u.clock())
	pool := seed.ProfessionalAvatars()
	for i := range pros {
		pros[i].Avatar = seed.PickAvatar(pool, u.avatarSeed, pros[i].ID)
	}

	u.mu.Lock()
	u.professionals = pros
	u.mu.Unlock()
}

// EnsureGenerated seeds the directory if it is empty.
func (u *ProfessionalUseCase) EnsureGenerated() {
	u.mu.RLock()
	empty := len(u.professionals) == 0
	u.mu.RUnlock()

	if empty {
		u.Generate()
	}
}

func (u *ProfessionalUseCase) List() []entity.Professional {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return append([]entity.Professional(nil), u.professionals...)
}

func (u *ProfessionalUseCase) GetByID(id string) (*entity.Professional, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	for _, p := range u.professionals {
		if p.ID == id {
			found := p
			return &found, nil
		}
	}
	return nil, errors.NotFound("Professional", nil)
}

func (u *ProfessionalUseCase) PremiumProfessionals() []entity.Professional {
	u.mu.RLock()
	defer u.mu.RUnlock()

	out := []entity.Professional{}
	for _, p := range u.professionals {
		if p.IsPremium {
			out = append(out, p)
		}
	}
	return out
}
