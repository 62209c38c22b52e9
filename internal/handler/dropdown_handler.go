package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abyansyah052/deploytps/internal/service"
)

type DropdownHandler struct {
	dropdowns *service.DropdownService
}

// List handles GET /api/master/dropdowns, returning all taxonomies
// grouped by type.
func (h *DropdownHandler) List(c *gin.Context) {
	result, err := h.dropdowns.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

type dropdownRequest struct {
	Type     string `json:"type"`
	Value    string `json:"value"`
	Division string `json:"division"`
}

// Create handles POST /api/master/dropdowns.
func (h *DropdownHandler) Create(c *gin.Context) {
	var req dropdownRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.dropdowns.Add(c.Request.Context(), req.Type, req.Value, req.Division); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Option added"})
}

// Delete handles DELETE /api/master/dropdowns.
func (h *DropdownHandler) Delete(c *gin.Context) {
	var req dropdownRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// Allow query-param form too.
		req.Type = c.Query("type")
		req.Value = c.Query("value")
		req.Division = c.Query("division")
	}

	if err := h.dropdowns.Remove(c.Request.Context(), req.Type, req.Value, req.Division); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Option removed"})
}
