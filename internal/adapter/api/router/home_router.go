package router

import (
	"choukette/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupHomeRouter(e *echo.Echo) {
	e.GET("/v1/home", handler.GetHomeHandler().GetHome)
}
