package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"choukette/pkg/errors"
)

func TestProfessionalAvatarsAreDeterministic(t *testing.T) {
	a := NewProfessionalUseCase(fixedClock, 7)
	b := NewProfessionalUseCase(fixedClock, 7)

	assert.Equal(t, a.List(), b.List())
	for _, p := range a.List() {
		assert.NotEmpty(t, p.Avatar, p.ID)
	}
}

func TestPremiumProfessionals(t *testing.T) {
	u := NewProfessionalUseCase(fixedClock, 0)

	premium := u.PremiumProfessionals()
	require.NotEmpty(t, premium)
	for _, p := range premium {
		assert.True(t, p.IsPremium)
	}
	assert.Less(t, len(premium), len(u.List()))
}

func TestProfessionalGetByID(t *testing.T) {
	u := NewProfessionalUseCase(fixedClock, 0)

	p, err := u.GetByID("pro3")
	require.NoError(t, err)
	assert.Equal(t, "Omar Bensaïd", p.FullName())

	_, err = u.GetByID("pro404")
	assert.True(t, errors.Is(err, errors.CodeNotFound))
}

func TestEnsureGeneratedRefillsEmptyDirectory(t *testing.T) {
	u := NewProfessionalUseCase(fixedClock, 0)
	u.professionals = nil

	u.EnsureGenerated()
	assert.Len(t, u.List(), 20)
}
