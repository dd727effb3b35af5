package handler

import (
	"github.com/labstack/echo/v4"

	"choukette/internal/usecase"
	"choukette/pkg/response"
	"choukette/pkg/utils"
)

// AdminHandler exposes the back-office views over bakeries and
// professionals, including their verification records.
type AdminHandler struct {
	bakeryUseCase       *usecase.BakeryUseCase
	professionalUseCase *usecase.ProfessionalUseCase
}

func NewAdminHandler(
	bakeryUseCase *usecase.BakeryUseCase,
	professionalUseCase *usecase.ProfessionalUseCase,
) *AdminHandler {
	return &AdminHandler{
		bakeryUseCase:       bakeryUseCase,
		professionalUseCase: professionalUseCase,
	}
}

// ListBakeries returns a paginated list of every bakery account
func (h *AdminHandler) ListBakeries(c echo.Context) error {
	bakeries := h.bakeryUseCase.Bakeries()
	pagination := utils.GetPaginationParams(c)

	page := toBakeryResponses(utils.Paginate(bakeries, pagination))
	return response.Paginated(c, page, int64(len(bakeries)), pagination.Page, pagination.PageSize)
}

func (h *AdminHandler) GetBakery(c echo.Context) error {
	bakery, err := h.bakeryUseCase.GetByID(c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, toBakeryResponse(bakery))
}

func (h *AdminHandler) GetProfessional(c echo.Context) error {
	h.professionalUseCase.EnsureGenerated()

	professional, err := h.professionalUseCase.GetByID(c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, professional)
}
