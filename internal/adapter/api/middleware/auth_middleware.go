package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"choukette/internal/domain/entity"
	"choukette/internal/infrastructure/token"
	"choukette/pkg/errors"
	"choukette/pkg/response"
)

// Context keys set by Authenticate.
const (
	ContextUID      = "uid"
	ContextUserType = "userType"
	ContextUser     = "user"
)

// SessionSource returns the user of the live session, or nil.
type SessionSource interface {
	CurrentUser() *entity.User
}

type AuthMiddleware struct {
	issuer   *token.Issuer
	sessions SessionSource
}

func NewAuthMiddleware(issuer *token.Issuer, sessions SessionSource) *AuthMiddleware {
	return &AuthMiddleware{
		issuer:   issuer,
		sessions: sessions,
	}
}

// Authenticate accepts a bearer token only while it belongs to the live
// session; a token issued before a logout or a newer login is rejected.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Error(c, errors.Unauthorized("Authorization header is required", nil))
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return response.Error(c, errors.Unauthorized("Invalid authorization format", nil))
		}

		claims, err := m.issuer.Parse(parts[1])
		if err != nil {
			return response.Error(c, errors.Unauthorized("Invalid or expired token", err))
		}

		user := m.sessions.CurrentUser()
		if user == nil || user.ID != claims.UserID {
			return response.Error(c, errors.Unauthorized("Session is no longer active", nil))
		}

		c.Set(ContextUID, user.ID)
		c.Set(ContextUserType, user.Type)
		c.Set(ContextUser, user)

		return next(c)
	}
}

// CurrentUser returns the user stored by Authenticate.
func CurrentUser(c echo.Context) (*entity.User, bool) {
	u, ok := c.Get(ContextUser).(*entity.User)
	return u, ok && u != nil
}
