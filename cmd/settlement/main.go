package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/richxcame/motorent/internal/settings"
	"github.com/richxcame/motorent/internal/settlement"
	"github.com/richxcame/motorent/pkg/common"
	"github.com/richxcame/motorent/pkg/config"
	"github.com/richxcame/motorent/pkg/database"
	"github.com/richxcame/motorent/pkg/logger"
	"github.com/richxcame/motorent/pkg/middleware"
	redisClient "github.com/richxcame/motorent/pkg/redis"
	"go.uber.org/zap"
)

const (
	serviceName = "settlement-service"
	version     = "1.0.0"
)

func main() {
	// Load configuration
	cfg, err := config.Load(serviceName)
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	// Initialize logger
	if err := logger.Init(cfg.Server.Environment, cfg.Log.Level); err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer logger.Sync()

	log := logger.Named(serviceName)
	log.Info("Starting settlement service", zap.String("version", version))

	// Initialize database
	db, err := database.NewPostgresPool(context.Background(), &cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.Close(db)

	log.Info("Connected to database")

	checks := map[string]common.Checker{
		"database": func(ctx context.Context) error {
			return db.Ping(ctx)
		},
	}

	// Redis only caches settings; without it every read goes to the database
	var settingsCache redisClient.ClientInterface
	rdb, err := redisClient.NewRedisClient(&cfg.Redis)
	if err != nil {
		log.Warn("Redis unavailable, settings cache disabled", zap.Error(err))
	} else {
		defer rdb.Close()
		settingsCache = rdb
		checks["redis"] = func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		}
		log.Info("Connected to Redis")
	}

	settingsService := settings.NewService(settings.NewRepository(db), settingsCache, cfg.Settlement)
	settlementService := settlement.NewService(settlement.NewRepository(db), settingsService, cfg.Settlement.MaxReportDays)

	settingsHandler := settings.NewHandler(settingsService)
	settlementHandler := settlement.NewHandler(settlementService)

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(middleware.Recovery())
	router.Use(middleware.CorrelationID())
	router.Use(middleware.RequestLogger(serviceName))
	router.Use(middleware.Metrics(serviceName))

	router.GET("/healthz", common.HealthCheck(serviceName, version))
	router.GET("/readyz", common.ReadinessProbe(serviceName, version, checks))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	admin := router.Group("/api/v1/admin")
	admin.Use(middleware.RequestTimeout(time.Duration(cfg.Server.RequestTimeout) * time.Second))
	settingsHandler.RegisterRoutes(admin)
	settlementHandler.RegisterRoutes(admin)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("Server starting", zap.String("port", cfg.Server.Port), zap.String("environment", cfg.Server.Environment))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server stopped")
}
