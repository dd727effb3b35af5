package usecase

import (
	"time"

	"choukette/internal/domain/entity"
)

// Clock returns the current time. Use cases take one so tests can pin dates.
type Clock func() time.Time

// BakerySession is the part of the bakery store the auth flow reads and
// resets.
type BakerySession interface {
	CurrentBakery() *entity.Bakery
	Reset()
}

// ProfessionalDirectory resolves professional profiles at login.
type ProfessionalDirectory interface {
	EnsureGenerated()
	List() []entity.Professional
}

// StatsSession is reset on logout.
type StatsSession interface {
	Reset()
}
