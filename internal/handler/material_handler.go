package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/abyansyah052/deploytps/internal/repository"
	"github.com/abyansyah052/deploytps/internal/service"
)

type MaterialHandler struct {
	materials *service.MaterialService
	logger    *zap.Logger
}

// List handles GET /api/materials with search, filter, sort and
// pagination query parameters.
func (h *MaterialHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))

	params := repository.MaterialListParams{
		Page:      page,
		PageSize:  limit,
		Search:    c.Query("search"),
		Category:  c.Query("category"),
		Division:  c.Query("division"),
		Status:    c.Query("status"),
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
	}

	result, err := h.materials.List(c.Request.Context(), params)
	if err != nil {
		h.logger.Error("List materials failed", zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Get handles GET /api/materials/:id.
func (h *MaterialHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid material id"})
		return
	}

	material, err := h.materials.Get(c.Request.Context(), uint(id))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": material})
}

// Create handles POST /api/materials.
func (h *MaterialHandler) Create(c *gin.Context) {
	var req service.CreateMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	material, err := h.materials.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, material)
}

// Update handles PUT /api/materials. The body is a partial field map
// carrying the record id alongside the fields to change.
func (h *MaterialHandler) Update(c *gin.Context) {
	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	rawID, ok := body["id"]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Material id is required"})
		return
	}
	id, ok := parseID(rawID)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid material id"})
		return
	}
	delete(body, "id")

	material, err := h.materials.Update(c.Request.Context(), id, body)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": material})
}

// Delete handles DELETE /api/materials?id=N and echoes the removed
// record back.
func (h *MaterialHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Query("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid material id"})
		return
	}

	material, err := h.materials.Delete(c.Request.Context(), uint(id))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Material deleted", "data": material})
}

// parseID accepts the id as a JSON number or string.
func parseID(raw interface{}) (uint, bool) {
	switch v := raw.(type) {
	case float64:
		if v < 1 {
			return 0, false
		}
		return uint(v), true
	case string:
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil || id < 1 {
			return 0, false
		}
		return uint(id), true
	default:
		return 0, false
	}
}
