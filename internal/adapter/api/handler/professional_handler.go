package handler

import (
	"github.com/labstack/echo/v4"

	"choukette/internal/usecase"
	"choukette/pkg/response"
)

type ProfessionalHandler struct {
	professionalUseCase *usecase.ProfessionalUseCase
}

func NewProfessionalHandler(professionalUseCase *usecase.ProfessionalUseCase) *ProfessionalHandler {
	return &ProfessionalHandler{
		professionalUseCase: professionalUseCase,
	}
}

// ListProfessionals returns the directory, or only premium profiles with
// ?premium=true.
func (h *ProfessionalHandler) ListProfessionals(c echo.Context) error {
	h.professionalUseCase.EnsureGenerated()

	if c.QueryParam("premium") == "true" {
		return response.Success(c, h.professionalUseCase.PremiumProfessionals())
	}
	return response.Success(c, h.professionalUseCase.List())
}

func (h *ProfessionalHandler) GetProfessional(c echo.Context) error {
	h.professionalUseCase.EnsureGenerated()

	professional, err := h.professionalUseCase.GetByID(c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, professional)
}
