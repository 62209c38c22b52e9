package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abyansyah052/deploytps/internal/service"
)

type DashboardHandler struct {
	dashboard *service.DashboardService
}

// Stats handles GET /api/dashboard/stats.
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.dashboard.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
