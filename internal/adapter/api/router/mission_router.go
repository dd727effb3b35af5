package router

import (
	"choukette/internal/adapter/api/handler"
	"choukette/internal/adapter/api/middleware"
	"choukette/internal/domain/entity"
	"choukette/internal/infrastructure/ratelimit"

	"github.com/labstack/echo/v4"
)

func SetupMissionRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, rateLimitMiddleware *middleware.RateLimitMiddleware) {
	missionHandler := handler.GetMissionHandler()

	missions := e.Group("/v1/missions")
	missions.GET("", missionHandler.SearchMissions)
	missions.GET("/urgent", missionHandler.GetUrgentMissions)
	missions.GET("/by-type", missionHandler.GetMissionsByType)
	missions.GET("/:id", missionHandler.GetMission)
	missions.GET("/:id/applications", missionHandler.GetApplications)

	missions.POST("/:id/applications", missionHandler.Apply,
		rateLimitMiddleware.Limit(ratelimit.ActionApply),
		authMiddleware.Authenticate,
		middleware.RequireUserType(entity.UserTypeProfessional),
	)
}
