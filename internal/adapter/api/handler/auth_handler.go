package handler

import (
	"crypto/subtle"
	"time"

	"github.com/labstack/echo/v4"

	"choukette/internal/adapter/api/middleware"
	"choukette/internal/domain/entity"
	"choukette/internal/infrastructure/token"
	"choukette/internal/usecase"
	"choukette/pkg/errors"
	"choukette/pkg/logger"
	"choukette/pkg/response"
)

// AdminCredentials is the single back-office account. An empty password
// disables admin login.
type AdminCredentials struct {
	Email    string
	Password string
}

func (a AdminCredentials) matches(email, password string) bool {
	if a.Password == "" {
		return false
	}
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(a.Email)) == 1
	passwordOK := subtle.ConstantTimeCompare([]byte(password), []byte(a.Password)) == 1
	return emailOK && passwordOK
}

type AuthHandler struct {
	authUseCase    *usecase.AuthUseCase
	bakeryUseCase  *usecase.BakeryUseCase
	missionUseCase *usecase.MissionUseCase
	issuer         *token.Issuer
	admin          AdminCredentials
}

func NewAuthHandler(
	authUseCase *usecase.AuthUseCase,
	bakeryUseCase *usecase.BakeryUseCase,
	missionUseCase *usecase.MissionUseCase,
	issuer *token.Issuer,
	admin AdminCredentials,
) *AuthHandler {
	return &AuthHandler{
		authUseCase:    authUseCase,
		bakeryUseCase:  bakeryUseCase,
		missionUseCase: missionUseCase,
		issuer:         issuer,
		admin:          admin,
	}
}

type loginRequest struct {
	Email    string          `json:"email" validate:"required,email"`
	Password string          `json:"password" validate:"required"`
	Type     entity.UserType `json:"type" validate:"required,oneof=bakery professional admin"`
}

type bakeryLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      *entity.User `json:"user"`
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	return h.login(c, req.Email, req.Password, req.Type)
}

// BakeryLogin is the bakery portal entry point: credentials are checked
// against the bakery directory before a session is opened.
func (h *AuthHandler) BakeryLogin(c echo.Context) error {
	var req bakeryLoginRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	return h.login(c, req.Email, req.Password, entity.UserTypeBakery)
}

func (h *AuthHandler) login(c echo.Context, email, password string, userType entity.UserType) error {
	ctx := c.Request().Context()

	var user *entity.User
	switch userType {
	case entity.UserTypeBakery:
		bakery, err := h.bakeryUseCase.Login(ctx, email, password, h.missionUseCase.Missions())
		if err != nil {
			return response.Error(c, err)
		}
		user = h.authUseCase.LoginBakery(ctx, *bakery)

	case entity.UserTypeAdmin:
		if !h.admin.matches(email, password) {
			logger.Warn("Rejected admin login for %s", email)
			return response.Error(c, errors.InvalidCredentials())
		}
		fallthrough

	default:
		var err error
		user, err = h.authUseCase.Login(ctx, email, password, userType)
		if err != nil {
			return response.Error(c, err)
		}
	}

	signed, expiresAt, err := h.issuer.Issue(user)
	if err != nil {
		return response.Error(c, errors.Internal("Failed to issue session token", err))
	}

	return response.Success(c, authResponse{
		Token:     signed,
		ExpiresAt: expiresAt,
		User:      user,
	})
}

func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.authUseCase.Logout(c.Request().Context()); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Logged out successfully",
	})
}

func (h *AuthHandler) Me(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return response.Error(c, errors.Unauthorized("Authentication required", nil))
	}
	return response.Success(c, user)
}
