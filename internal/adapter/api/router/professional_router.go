package router

import (
	"choukette/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupProfessionalRouter(e *echo.Echo) {
	professionalHandler := handler.GetProfessionalHandler()

	professionals := e.Group("/v1/professionals")
	professionals.GET("", professionalHandler.ListProfessionals)
	professionals.GET("/:id", professionalHandler.GetProfessional)
}
