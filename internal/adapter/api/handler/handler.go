package handler

import (
	"choukette/internal/domain/service"
	"choukette/internal/infrastructure/token"
	"choukette/internal/usecase"
)

var (
	healthHandler       *HealthHandler
	homeHandler         *HomeHandler
	authHandler         *AuthHandler
	missionHandler      *MissionHandler
	professionalHandler *ProfessionalHandler
	dashboardHandler    *DashboardHandler
	adminHandler        *AdminHandler
	blogHandler         *BlogHandler
)

func Setup(
	snapshots *service.SnapshotService,
	issuer *token.Issuer,
	admin AdminCredentials,
	authUseCase *usecase.AuthUseCase,
	missionUseCase *usecase.MissionUseCase,
	professionalUseCase *usecase.ProfessionalUseCase,
	bakeryUseCase *usecase.BakeryUseCase,
	statsUseCase *usecase.ProfessionalStatsUseCase,
	blogUseCase *usecase.BlogUseCase,
) {
	healthHandler = NewHealthHandler(snapshots)
	homeHandler = NewHomeHandler(missionUseCase, professionalUseCase, blogUseCase)
	authHandler = NewAuthHandler(authUseCase, bakeryUseCase, missionUseCase, issuer, admin)
	missionHandler = NewMissionHandler(missionUseCase)
	professionalHandler = NewProfessionalHandler(professionalUseCase)
	dashboardHandler = NewDashboardHandler(bakeryUseCase, statsUseCase, missionUseCase)
	adminHandler = NewAdminHandler(bakeryUseCase, professionalUseCase)
	blogHandler = NewBlogHandler(blogUseCase)
}

func GetHealthHandler() *HealthHandler {
	return healthHandler
}

func GetHomeHandler() *HomeHandler {
	return homeHandler
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetMissionHandler() *MissionHandler {
	return missionHandler
}

func GetProfessionalHandler() *ProfessionalHandler {
	return professionalHandler
}

func GetDashboardHandler() *DashboardHandler {
	return dashboardHandler
}

func GetAdminHandler() *AdminHandler {
	return adminHandler
}

func GetBlogHandler() *BlogHandler {
	return blogHandler
}
