package service

import (
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/abyansyah052/deploytps/internal/config"
	"github.com/abyansyah052/deploytps/internal/repository"
)

// Services bundles all business services.
type Services struct {
	Auth      *AuthService
	Material  *MaterialService
	Transfer  *TransferService
	Dropdown  *DropdownService
	Dashboard *DashboardService
	Sop       *SopService
	Upload    *UploadService
}

// NewServices wires the service layer. Redis and MinIO are optional: a
// nil redis client disables stats caching and a missing MinIO endpoint
// disables image uploads.
func NewServices(repos *repository.Repositories, rdb *redis.Client, cfg *config.Config, logger *zap.Logger) *Services {
	var minioClient *minio.Client
	if cfg.MinIO.Endpoint != "" {
		var err error
		minioClient, err = minio.New(cfg.MinIO.Endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, ""),
			Secure: cfg.MinIO.UseSSL,
		})
		if err != nil {
			logger.Warn("MinIO init failed, image uploads disabled",
				zap.String("endpoint", cfg.MinIO.Endpoint),
				zap.Error(err),
			)
			minioClient = nil
		}
	}

	materialSvc := NewMaterialService(repos.Material)

	return &Services{
		Auth:      NewAuthService(repos.User, cfg),
		Material:  materialSvc,
		Transfer:  NewTransferService(repos.Material),
		Dropdown:  NewDropdownService(repos.Dropdown, repos.Material),
		Dashboard: NewDashboardService(repos.Material, rdb),
		Sop:       NewSopService(repos.Sop),
		Upload:    NewUploadService(minioClient, cfg.MinIO),
	}
}
