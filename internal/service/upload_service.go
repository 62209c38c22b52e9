package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"github.com/abyansyah052/deploytps/internal/config"
)

// ErrStorageUnavailable is returned when no object store is configured.
var ErrStorageUnavailable = errors.New("object storage is not configured")

var allowedImageExtensions = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
	".gif":  "image/gif",
}

// UploadService stores material images in MinIO and hands back a public
// URL to save on the material record.
type UploadService struct {
	client *minio.Client
	cfg    config.MinIOConfig
}

func NewUploadService(client *minio.Client, cfg config.MinIOConfig) *UploadService {
	return &UploadService{client: client, cfg: cfg}
}

// UploadImage stores one image and returns its public URL.
func (s *UploadService) UploadImage(ctx context.Context, file io.Reader, filename string, size int64) (string, error) {
	if s.client == nil {
		return "", ErrStorageUnavailable
	}

	ext := strings.ToLower(filepath.Ext(filename))
	contentType, ok := allowedImageExtensions[ext]
	if !ok {
		return "", fmt.Errorf("%w: unsupported image type %q", ErrValidation, ext)
	}

	objectName := fmt.Sprintf("materials/%s/%s%s", time.Now().Format("2006-01-02"), uuid.New().String(), ext)

	_, err := s.client.PutObject(ctx, s.cfg.Bucket, objectName, file, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("store image: %w", err)
	}

	return s.publicURL(objectName), nil
}

func (s *UploadService) publicURL(objectName string) string {
	base := strings.TrimRight(s.cfg.PublicURL, "/")
	if base == "" {
		scheme := "http"
		if s.cfg.UseSSL {
			scheme = "https"
		}
		base = fmt.Sprintf("%s://%s/%s", scheme, s.cfg.Endpoint, s.cfg.Bucket)
	}
	return base + "/" + objectName
}
