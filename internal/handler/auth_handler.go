package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abyansyah052/deploytps/internal/service"
)

type AuthHandler struct {
	auth *service.AuthService
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	result, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Me handles GET /api/auth/me behind JWT auth.
func (h *AuthHandler) Me(c *gin.Context) {
	email := c.GetString("user_email")
	user, err := h.auth.Profile(c.Request.Context(), email)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
