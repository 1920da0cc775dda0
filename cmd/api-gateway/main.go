package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/campusdine/mess-manager-api/api/swagger"
	"github.com/campusdine/mess-manager-api/internal/handler"
	"github.com/campusdine/mess-manager-api/internal/middleware"
	"github.com/campusdine/mess-manager-api/internal/repository"
	"github.com/campusdine/mess-manager-api/internal/service"
	"github.com/campusdine/mess-manager-api/pkg/cache"
	"github.com/campusdine/mess-manager-api/pkg/config"
	"github.com/campusdine/mess-manager-api/pkg/database"
	"github.com/campusdine/mess-manager-api/pkg/logger"
	corsmiddleware "github.com/campusdine/mess-manager-api/pkg/middleware/cors"
	reqidmiddleware "github.com/campusdine/mess-manager-api/pkg/middleware/requestid"
	"github.com/campusdine/mess-manager-api/pkg/response"
)

// @title Mess Manager API
// @version 1.0.0
// @description College dining management: student registry, waste ledger, menu suggestions
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

	ctx := context.Background()

	mongoClient, err := database.NewMongo(ctx, cfg.Mongo)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect document store", "error", err)
	}
	defer func() {
		if err := database.Disconnect(context.Background(), mongoClient); err != nil {
			logr.Sugar().Warnw("document store disconnect failed", "error", err)
		}
	}()

	db := mongoClient.Database(cfg.Mongo.Database)
	if err := database.EnsureIndexes(ctx, db); err != nil {
		logr.Sugar().Fatalw("failed to ensure indexes", "error", err)
	}

	metricsSvc := service.NewMetricsService()

	var cacheSvc *service.CacheService
	if cfg.Dashboard.CacheEnabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, dashboard cache disabled", "error", err)
		} else {
			cacheRepo := repository.NewCacheRepository(redisClient, logr)
			cacheSvc = service.NewCacheService(cacheRepo, metricsSvc, cfg.Dashboard.CacheTTL, logr, true)
		}
	}

	validate := service.NewValidator()

	studentRepo := repository.NewStudentRepository(db)
	wasteRepo := repository.NewWasteRepository(db)
	suggestionRepo := repository.NewSuggestionRepository(db)

	studentSvc := service.NewStudentService(studentRepo, validate, cacheSvc, logr)
	wasteSvc := service.NewWasteService(wasteRepo, validate, cacheSvc, logr, cfg.Waste.RecentLimit)
	suggestionSvc := service.NewSuggestionService(suggestionRepo, validate, cacheSvc, logr)
	dashboardSvc := service.NewDashboardService(wasteRepo, studentRepo, suggestionRepo, cacheSvc, cfg.Dashboard.CacheTTL, logr)

	r := gin.New()
	r.Use(gin.CustomRecovery(recoveryHandler(logr, cfg)))
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	handler.RegisterRoutes(r,
		handler.NewStudentHandler(studentSvc),
		handler.NewWasteHandler(wasteSvc),
		handler.NewSuggestionHandler(suggestionSvc),
		handler.NewDashboardHandler(dashboardSvc),
	)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, response.Envelope{Success: false, Message: "Route not found"})
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}

// recoveryHandler turns panics into the generic 500 envelope. Detail is
// echoed back only outside production; it is always logged.
func recoveryHandler(logr *zap.Logger, cfg *config.Config) gin.RecoveryFunc {
	return func(c *gin.Context, recovered interface{}) {
		logr.Error("panic recovered",
			zap.Any("error", recovered),
			zap.String("path", c.Request.URL.Path),
			zap.String("request_id", reqidmiddleware.Value(c)),
		)
		envelope := response.Envelope{Success: false, Message: "Something went wrong!"}
		if cfg.Env != config.EnvProduction {
			envelope.Errors = []string{fmt.Sprint(recovered)}
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, envelope)
	}
}
