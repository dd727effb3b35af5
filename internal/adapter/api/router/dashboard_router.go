package router

import (
	"choukette/internal/adapter/api/handler"
	"choukette/internal/adapter/api/middleware"
	"choukette/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

func SetupDashboardRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	dashboardHandler := handler.GetDashboardHandler()

	dashboard := e.Group("/v1/dashboard")
	dashboard.Use(authMiddleware.Authenticate)

	dashboard.GET("/bakery", dashboardHandler.GetBakeryDashboard, middleware.RequireUserType(entity.UserTypeBakery))
	dashboard.GET("/professional", dashboardHandler.GetProfessionalDashboard, middleware.RequireUserType(entity.UserTypeProfessional))
}
