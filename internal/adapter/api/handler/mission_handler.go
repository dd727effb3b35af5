package handler

import (
	"github.com/labstack/echo/v4"

	"choukette/internal/adapter/api/middleware"
	"choukette/internal/usecase"
	"choukette/pkg/errors"
	"choukette/pkg/response"
	"choukette/pkg/utils"
)

type MissionHandler struct {
	missionUseCase *usecase.MissionUseCase
}

func NewMissionHandler(missionUseCase *usecase.MissionUseCase) *MissionHandler {
	return &MissionHandler{
		missionUseCase: missionUseCase,
	}
}

type applyRequest struct {
	Message      string   `json:"message" validate:"required,max=2000"`
	ProposedRate *float64 `json:"proposedRate" validate:"omitempty,gt=0"`
}

// SearchMissions lists open missions matching the query filters, paginated
// with page and limit.
func (h *MissionHandler) SearchMissions(c echo.Context) error {
	var filter usecase.MissionFilter
	if err := c.Bind(&filter); err != nil {
		return response.Error(c, errors.BadRequest("Invalid search parameters", err))
	}

	if err := c.Validate(&filter); err != nil {
		return response.Error(c, err)
	}

	missions := h.missionUseCase.Search(filter)
	pagination := utils.GetPaginationParams(c)

	return response.Paginated(c, utils.Paginate(missions, pagination), int64(len(missions)), pagination.Page, pagination.PageSize)
}

func (h *MissionHandler) GetUrgentMissions(c echo.Context) error {
	return response.Success(c, h.missionUseCase.UrgentMissions())
}

func (h *MissionHandler) GetMissionsByType(c echo.Context) error {
	return response.Success(c, h.missionUseCase.MissionsByType())
}

func (h *MissionHandler) GetMission(c echo.Context) error {
	mission, err := h.missionUseCase.GetByID(c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, mission)
}

func (h *MissionHandler) GetApplications(c echo.Context) error {
	missionID := c.Param("id")
	if _, err := h.missionUseCase.GetByID(missionID); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, h.missionUseCase.ApplicationsFor(missionID))
}

// Apply records an application from the authenticated professional.
func (h *MissionHandler) Apply(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok || user.ProfessionalProfile == nil {
		return response.Error(c, errors.Forbidden("Professional account required", nil))
	}

	missionID := c.Param("id")
	if _, err := h.missionUseCase.GetByID(missionID); err != nil {
		return response.Error(c, err)
	}

	var req applyRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	professionalID := user.ProfessionalProfile.ProfessionalID
	if professionalID == "" {
		professionalID = user.ID
	}

	app := h.missionUseCase.Apply(usecase.ApplyInput{
		MissionID:          missionID,
		ProfessionalID:     professionalID,
		ProfessionalName:   user.Name,
		ProfessionalAvatar: user.Avatar,
		Message:            req.Message,
		ProposedRate:       req.ProposedRate,
	})

	return response.Created(c, app)
}
