package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abyansyah052/deploytps/internal/service"
)

type SopHandler struct {
	sops *service.SopService
}

// Get handles GET /api/sop.
func (h *SopHandler) Get(c *gin.Context) {
	doc, err := h.sops.Get(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, doc)
}

type sopRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Update handles POST /api/sop.
func (h *SopHandler) Update(c *gin.Context) {
	var req sopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	doc, err := h.sops.Update(c.Request.Context(), req.Title, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, doc)
}
