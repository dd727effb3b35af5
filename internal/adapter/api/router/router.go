package router

import (
	"choukette/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func Setup(
	e *echo.Echo,
	authMiddleware *middleware.AuthMiddleware,
	adminMiddleware *middleware.AdminMiddleware,
	rateLimitMiddleware *middleware.RateLimitMiddleware,
) {
	SetupHealthRouter(e)
	SetupHomeRouter(e)
	SetupAuthRouter(e, authMiddleware, rateLimitMiddleware)
	SetupMissionRouter(e, authMiddleware, rateLimitMiddleware)
	SetupProfessionalRouter(e)
	SetupDashboardRouter(e, authMiddleware)
	SetupAdminRouter(e, authMiddleware, adminMiddleware)
	SetupBlogRouter(e, rateLimitMiddleware)
}
