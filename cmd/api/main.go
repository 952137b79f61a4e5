package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/proffy-go/proffy-api/api/swagger"
	"github.com/proffy-go/proffy-api/internal/handler"
	"github.com/proffy-go/proffy-api/internal/middleware"
	"github.com/proffy-go/proffy-api/internal/repository"
	"github.com/proffy-go/proffy-api/internal/service"
	"github.com/proffy-go/proffy-api/pkg/cache"
	"github.com/proffy-go/proffy-api/pkg/config"
	"github.com/proffy-go/proffy-api/pkg/database"
	"github.com/proffy-go/proffy-api/pkg/logger"
	corsmiddleware "github.com/proffy-go/proffy-api/pkg/middleware/cors"
	reqidmiddleware "github.com/proffy-go/proffy-api/pkg/middleware/requestid"
)

// @title Proffy API
// @version 1.0.0
// @description Matches students to tutors by subject, weekday and time of day.
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close() //nolint:errcheck

	if err := database.Migrate(db, cfg.Database); err != nil {
		logr.Sugar().Fatalw("failed to run migrations", "error", err)
	}

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Sugar().Warnw("redis unavailable, search cache disabled", "error", err)
		redisClient = nil
	}

	validate := validator.New()
	metricsSvc := service.NewMetricsService()

	classRepo := repository.NewClassRepository(db)
	connectionRepo := repository.NewConnectionRepository(db)
	cacheRepo := repository.NewCacheRepository(redisClient, logr)

	classSvc := service.NewClassService(classRepo, cacheRepo, cfg.Search.CacheTTL, metricsSvc, validate, logr)
	connectionSvc := service.NewConnectionService(connectionRepo, logr)

	classHandler := handler.NewClassHandler(classSvc)
	connectionHandler := handler.NewConnectionHandler(connectionSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", metricsHandler.Prometheus)

	api := r.Group(cfg.APIPrefix)
	api.GET("/classes", classHandler.Index)
	api.POST("/classes", classHandler.Create)
	api.GET("/connections", connectionHandler.Index)
	api.POST("/connections", connectionHandler.Create)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
