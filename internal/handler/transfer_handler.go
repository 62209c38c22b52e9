package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/abyansyah052/deploytps/internal/service"
)

type TransferHandler struct {
	transfers *service.TransferService
	logger    *zap.Logger
}

// Import handles POST /api/materials/upload with an xlsx multipart
// file.
func (h *TransferHandler) Import(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot read uploaded file"})
		return
	}
	defer file.Close()

	result, err := h.transfers.Import(c.Request.Context(), file, fileHeader.Filename)
	if err != nil {
		h.logger.Warn("Import failed", zap.String("filename", fileHeader.Filename), zap.Error(err))
		respondError(c, err)
		return
	}

	h.logger.Info("Import finished",
		zap.String("filename", fileHeader.Filename),
		zap.Int("imported", result.Imported),
		zap.Int("skipped", result.Skipped),
	)

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Successfully imported %d materials", result.Imported),
		"count":   result.Imported,
		"skipped": result.Skipped,
	})
}

// Export handles GET /api/materials/export, streaming the filtered
// inventory as an xlsx attachment.
func (h *TransferHandler) Export(c *gin.Context) {
	filter := service.ExportFilter{
		Category: c.Query("category"),
		Division: c.Query("division"),
		Status:   c.Query("status"),
	}

	f, filename, err := h.transfers.Export(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("Export failed", zap.Error(err))
		respondError(c, err)
		return
	}

	writeWorkbook(c, f, filename)
}

// Template handles GET /api/materials/template.
func (h *TransferHandler) Template(c *gin.Context) {
	f, err := h.transfers.GenerateTemplate()
	if err != nil {
		respondError(c, err)
		return
	}

	writeWorkbook(c, f, "material_import_template.xlsx")
}

func writeWorkbook(c *gin.Context, f *excelize.File, filename string) {
	defer f.Close()

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Cache-Control", "no-store")

	if err := f.Write(c.Writer); err != nil {
		c.Status(http.StatusInternalServerError)
	}
}
