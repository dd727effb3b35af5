package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"choukette/internal/domain/service"
)

type HealthHandler struct {
	snapshots *service.SnapshotService
}

func NewHealthHandler(snapshots *service.SnapshotService) *HealthHandler {
	return &HealthHandler{
		snapshots: snapshots,
	}
}

func (h *HealthHandler) CheckHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "Server is running",
		"time":   time.Now().Format(time.RFC3339),
	})
}

// CheckStorageHealth lists the snapshot keys to prove the backend answers.
func (h *HealthHandler) CheckStorageHealth(c echo.Context) error {
	keys, err := h.snapshots.Keys(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"status": "Snapshot storage unreachable",
			"error":  err.Error(),
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":    "Snapshot storage connected",
		"snapshots": len(keys),
	})
}
