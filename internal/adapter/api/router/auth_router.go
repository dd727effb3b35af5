package router

import (
	"choukette/internal/adapter/api/handler"
	"choukette/internal/adapter/api/middleware"
	"choukette/internal/infrastructure/ratelimit"

	"github.com/labstack/echo/v4"
)

// SetupAuthRouter initializes auth routes
func SetupAuthRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, rateLimitMiddleware *middleware.RateLimitMiddleware) {
	authHandler := handler.GetAuthHandler()
	loginLimit := rateLimitMiddleware.Limit(ratelimit.ActionLogin)

	// Public routes
	e.POST("/v1/auth/login", authHandler.Login, loginLimit)
	e.POST("/v1/bakeries/login", authHandler.BakeryLogin, loginLimit)

	// Protected routes
	protected := e.Group("/v1/auth")
	protected.Use(authMiddleware.Authenticate)

	protected.POST("/logout", authHandler.Logout)
	protected.GET("/me", authHandler.Me)
}
