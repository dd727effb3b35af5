package middleware

import (
	"github.com/labstack/echo/v4"

	"choukette/internal/domain/entity"
	"choukette/pkg/errors"
	"choukette/pkg/response"
)

type AdminMiddleware struct{}

func NewAdminMiddleware() *AdminMiddleware {
	return &AdminMiddleware{}
}

func (m *AdminMiddleware) AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return RequireUserType(entity.UserTypeAdmin)(next)
}

// RequireUserType lets through sessions of the given account type. It must
// run after Authenticate.
func RequireUserType(userType entity.UserType) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			t, ok := c.Get(ContextUserType).(entity.UserType)
			if !ok {
				return response.Error(c, errors.Unauthorized("Authentication required", nil))
			}
			if t != userType {
				return response.Error(c, errors.Forbidden(string(userType)+" account required", nil))
			}
			return next(c)
		}
	}
}
