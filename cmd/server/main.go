package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/abyansyah052/deploytps/internal/config"
	"github.com/abyansyah052/deploytps/internal/entity"
	"github.com/abyansyah052/deploytps/internal/handler"
	"github.com/abyansyah052/deploytps/internal/middleware"
	"github.com/abyansyah052/deploytps/internal/repository"
	"github.com/abyansyah052/deploytps/internal/service"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zapLogger, err := initLogger(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer zapLogger.Sync()

	zapLogger.Info("Starting tps-dashboard service",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
	)

	db, err := initDatabase(cfg.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.Error(err))
	}

	if err := db.AutoMigrate(
		&entity.Material{},
		&entity.DropdownOption{},
		&entity.User{},
		&entity.SopDocument{},
	); err != nil {
		zapLogger.Fatal("AutoMigrate failed", zap.Error(err))
	}

	rdb := initRedis(cfg.Redis)
	if rdb != nil {
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			zapLogger.Warn("Redis unreachable, stats caching disabled", zap.Error(err))
			rdb = nil
		}
	}

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, rdb, cfg, zapLogger)
	handlers := handler.NewHandlers(services, cfg, zapLogger)

	if err := services.Auth.EnsureAdmin(context.Background()); err != nil {
		zapLogger.Fatal("Failed to bootstrap admin account", zap.Error(err))
	}

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(zapLogger))
	router.Use(middleware.CORS())
	router.Use(middleware.RequestID())
	router.Use(gzip.Gzip(gzip.DefaultCompression))

	registerRoutes(router, handlers, cfg, db)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		zapLogger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	zapLogger.Info("Server exited")
}

func initLogger(cfg config.LogConfig) (*zap.Logger, error) {
	var zapCfg zap.Config

	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	switch cfg.Level {
	case "debug":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "warn":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	}

	return zapCfg.Build()
}

func initDatabase(cfg config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)
	if cfg.StatementTimeout > 0 {
		// Caps any runaway query server-side.
		dsn += fmt.Sprintf(" options='-c statement_timeout=%d'", cfg.StatementTimeout.Milliseconds())
	}

	gormConfig := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	}

	db, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	return db, nil
}

// initRedis returns nil when no host is configured; the stats cache is
// optional.
func initRedis(cfg config.RedisConfig) *redis.Client {
	if cfg.Host == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})
}

func registerRoutes(r *gin.Engine, h *handler.Handlers, cfg *config.Config, db *gorm.DB) {
	r.GET("/health/live", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/health/ready", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "database unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"version":    Version,
			"build_time": BuildTime,
		})
	})

	api := r.Group("/api")
	{
		api.POST("/auth/login", h.Auth.Login)

		// Read endpoints are open; the dashboard is an internal tool.
		api.GET("/materials", h.Material.List)
		api.GET("/materials/:id", h.Material.Get)
		api.GET("/master/dropdowns", h.Dropdown.List)
		api.GET("/dashboard/stats", h.Dashboard.Stats)
		api.GET("/sop", h.Sop.Get)
		api.GET("/materials/template", h.Transfer.Template)

		// Export carries the token as a query param since browser
		// downloads cannot set headers.
		downloads := api.Group("")
		downloads.Use(middleware.JWTAuth(cfg.JWT.Secret))
		{
			downloads.GET("/materials/export", h.Transfer.Export)
		}

		authorized := api.Group("")
		authorized.Use(middleware.JWTAuth(cfg.JWT.Secret))
		{
			authorized.GET("/auth/me", h.Auth.Me)

			authorized.POST("/materials", h.Material.Create)
			authorized.PUT("/materials", h.Material.Update)
			authorized.DELETE("/materials", h.Material.Delete)
			authorized.POST("/materials/upload", h.Transfer.Import)

			authorized.POST("/upload", h.Upload.Upload)

			authorized.POST("/sop", h.Sop.Update)

			admin := authorized.Group("/master", middleware.RequireAdmin())
			{
				admin.POST("/dropdowns", h.Dropdown.Create)
				admin.DELETE("/dropdowns", h.Dropdown.Delete)
			}
		}
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})
}
