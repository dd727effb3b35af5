package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"choukette/internal/domain/entity"
)

func TestIssueAndParse(t *testing.T) {
	now := time.Date(2024, 2, 15, 10, 0, 0, 0, time.UTC)
	iss := NewIssuer("secret", time.Hour)
	iss.now = func() time.Time { return now }

	user := &entity.User{ID: "session-1", Email: "a@b.fr", Type: entity.UserTypeBakery}
	signed, exp, err := iss.Issue(user)
	require.NoError(t, err)
	assert.Equal(t, now.Add(time.Hour), exp)

	claims, err := iss.Parse(signed)
	require.NoError(t, err)
	assert.Equal(t, "session-1", claims.UserID)
	assert.Equal(t, entity.UserTypeBakery, claims.UserType)

	now = now.Add(2 * time.Hour)
	_, err = iss.Parse(signed)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestParseRejectsForeignSignature(t *testing.T) {
	other := NewIssuer("other", time.Hour)
	signed, _, err := other.Issue(&entity.User{ID: "x"})
	require.NoError(t, err)

	_, err = NewIssuer("secret", time.Hour).Parse(signed)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}
