package router

import (
	"choukette/internal/adapter/api/handler"
	"choukette/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupAdminRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	adminHandler := handler.GetAdminHandler()

	// Admin routes - require authentication and admin role
	admin := e.Group("/v1/admin")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)

	admin.GET("/bakeries", adminHandler.ListBakeries)
	admin.GET("/bakeries/:id", adminHandler.GetBakery)
	admin.GET("/professionals/:id", adminHandler.GetProfessional)
}
