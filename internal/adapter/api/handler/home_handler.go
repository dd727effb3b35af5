package handler

import (
	"github.com/labstack/echo/v4"

	"choukette/internal/usecase"
	"choukette/pkg/errors"
	"choukette/pkg/response"
)

// HomeHandler serves the landing page aggregates.
type HomeHandler struct {
	missionUseCase      *usecase.MissionUseCase
	professionalUseCase *usecase.ProfessionalUseCase
	blogUseCase         *usecase.BlogUseCase
}

func NewHomeHandler(
	missionUseCase *usecase.MissionUseCase,
	professionalUseCase *usecase.ProfessionalUseCase,
	blogUseCase *usecase.BlogUseCase,
) *HomeHandler {
	return &HomeHandler{
		missionUseCase:      missionUseCase,
		professionalUseCase: professionalUseCase,
		blogUseCase:         blogUseCase,
	}
}

func (h *HomeHandler) GetHome(c echo.Context) error {
	h.professionalUseCase.EnsureGenerated()

	result := map[string]interface{}{
		"urgentMissions":       h.missionUseCase.UrgentMissions(),
		"openMissions":         len(h.missionUseCase.OpenMissions()),
		"premiumProfessionals": h.professionalUseCase.PremiumProfessionals(),
		"featuredPosts":        h.blogUseCase.FeaturedPosts(),
	}

	latest, err := h.blogUseCase.LatestPost()
	switch {
	case err == nil:
		result["latestPost"] = latest
	case !errors.Is(err, errors.CodeNotFound):
		return response.Error(c, err)
	}

	return response.Success(c, result)
}
