package handler

import (
	"github.com/labstack/echo/v4"

	"choukette/internal/adapter/api/middleware"
	"choukette/internal/usecase"
	"choukette/pkg/errors"
	"choukette/pkg/response"
)

type DashboardHandler struct {
	bakeryUseCase  *usecase.BakeryUseCase
	statsUseCase   *usecase.ProfessionalStatsUseCase
	missionUseCase *usecase.MissionUseCase
}

func NewDashboardHandler(
	bakeryUseCase *usecase.BakeryUseCase,
	statsUseCase *usecase.ProfessionalStatsUseCase,
	missionUseCase *usecase.MissionUseCase,
) *DashboardHandler {
	return &DashboardHandler{
		bakeryUseCase:  bakeryUseCase,
		statsUseCase:   statsUseCase,
		missionUseCase: missionUseCase,
	}
}

// GetBakeryDashboard loads the session bakery's data on first access and
// returns its missions, applications and statistics.
func (h *DashboardHandler) GetBakeryDashboard(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok || user.BakeryProfile == nil {
		return response.Error(c, errors.Forbidden("Bakery account required", nil))
	}

	bakeryID := user.BakeryProfile.BakeryID
	if bakeryID != "" {
		current := h.bakeryUseCase.CurrentBakery()
		if current == nil || current.ID != bakeryID {
			h.bakeryUseCase.LoadData(c.Request().Context(), bakeryID, h.missionUseCase.Missions())
		}
	}

	return response.Success(c, map[string]interface{}{
		"bakery":       toBakeryResponse(h.bakeryUseCase.CurrentBakery()),
		"missions":     h.bakeryUseCase.BakeryMissions(),
		"applications": h.bakeryUseCase.BakeryApplications(),
		"stats":        h.bakeryUseCase.Stats(),
		"monthlyStats": h.bakeryUseCase.MonthlyStats(),
	})
}

func (h *DashboardHandler) GetProfessionalDashboard(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok || user.ProfessionalProfile == nil {
		return response.Error(c, errors.Forbidden("Professional account required", nil))
	}

	professionalID := user.ProfessionalProfile.ProfessionalID
	if current, loaded := h.statsUseCase.CurrentProfessionalID(); !loaded || current != professionalID {
		h.statsUseCase.LoadData(c.Request().Context(), professionalID)
	}

	return response.Success(c, map[string]interface{}{
		"professionalId":    professionalID,
		"stats":             h.statsUseCase.Summary(),
		"completedMissions": h.statsUseCase.CompletedMissions(),
		"monthlyStats":      h.statsUseCase.MonthlyStats(),
	})
}
