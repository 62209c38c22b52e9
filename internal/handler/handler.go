package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/abyansyah052/deploytps/internal/config"
	"github.com/abyansyah052/deploytps/internal/repository"
	"github.com/abyansyah052/deploytps/internal/service"
)

// Handlers bundles all HTTP handlers.
type Handlers struct {
	Auth      *AuthHandler
	Material  *MaterialHandler
	Transfer  *TransferHandler
	Dropdown  *DropdownHandler
	Dashboard *DashboardHandler
	Sop       *SopHandler
	Upload    *UploadHandler
}

func NewHandlers(services *service.Services, cfg *config.Config, logger *zap.Logger) *Handlers {
	return &Handlers{
		Auth:      &AuthHandler{auth: services.Auth},
		Material:  &MaterialHandler{materials: services.Material, logger: logger},
		Transfer:  &TransferHandler{transfers: services.Transfer, logger: logger},
		Dropdown:  &DropdownHandler{dropdowns: services.Dropdown},
		Dashboard: &DashboardHandler{dashboard: services.Dashboard},
		Sop:       &SopHandler{sops: services.Sop},
		Upload:    &UploadHandler{uploads: services.Upload},
	}
}

// respondError maps domain errors to status codes and writes the
// {"error": ...} body the frontend expects.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrMalformedFile):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
	case errors.Is(err, repository.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "Record already exists"})
	case errors.Is(err, service.ErrStorageUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
