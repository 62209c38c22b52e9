package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abyansyah052/deploytps/internal/service"
)

// 10 MB is plenty for a material photo.
const maxImageSize = 10 << 20

type UploadHandler struct {
	uploads *service.UploadService
}

// Upload handles POST /api/upload with a multipart image file.
func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}

	if fileHeader.Size > maxImageSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File exceeds the 10MB limit"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot read uploaded file"})
		return
	}
	defer file.Close()

	url, err := h.uploads.UploadImage(c.Request.Context(), file, fileHeader.Filename, fileHeader.Size)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"url":      url,
		"filename": fileHeader.Filename,
		"size":     fileHeader.Size,
	})
}
