package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/manpower-erp-api/api/swagger"
	"github.com/noah-isme/manpower-erp-api/internal/handler"
	"github.com/noah-isme/manpower-erp-api/internal/middleware"
	"github.com/noah-isme/manpower-erp-api/internal/repository"
	"github.com/noah-isme/manpower-erp-api/internal/service"
	"github.com/noah-isme/manpower-erp-api/internal/session"
	"github.com/noah-isme/manpower-erp-api/pkg/cache"
	"github.com/noah-isme/manpower-erp-api/pkg/config"
	"github.com/noah-isme/manpower-erp-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/manpower-erp-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/manpower-erp-api/pkg/middleware/requestid"
)

// @title Manpower ERP API
// @version 1.0.0
// @description Recruitment records, attendance, payroll and agent commissions for overseas placement agencies.
// @BasePath /api/v1
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

	metrics := service.NewMetricsService()

	redisClient, err := cache.NewRedis(context.Background(), cfg.Redis)
	if err != nil {
		logr.Warn("redis unavailable, dashboard cache disabled", zap.Error(err))
		redisClient = nil
	}
	cacheRepo := repository.NewCacheRepository(redisClient, logr)
	defer cacheRepo.Close() //nolint:errcheck
	cacheSvc := service.NewCacheService(cacheRepo, metrics, cfg.Dashboard.CacheTTL, logr, redisClient != nil)

	validate := service.NewValidator()
	commissions := service.NewCommissionService()
	dashboard := service.NewDashboardService(cacheSvc, service.DashboardServiceConfig{
		CacheTTL:           cfg.Dashboard.CacheTTL,
		HighlightCountries: cfg.Dashboard.HighlightCountries,
		HighlightStatuses:  cfg.Dashboard.HighlightStatuses,
	}, logr)

	exports := service.NewExportService(commissions, metrics, logr)
	if cfg.Export.CSVWithBOM {
		exports.WithCSVBOM()
	}

	registry := session.NewRegistry(session.Config{
		IdleTTL:     cfg.Sessions.IdleTTL,
		MaxSessions: cfg.Sessions.MaxSessions,
	}, logr)
	registry.OnCreate(func(s *session.Session) {
		s.Records.Subscribe(dashboard.InvalidateOnEvent(s.ID))
		s.Records.Subscribe(metrics.RecordMutation)
	})
	registry.OnEnd(func(s *session.Session) {
		dashboard.Invalidate(context.Background(), s.ID)
	})
	metrics.TrackSessions(registry.Len)

	handlers := handler.Handlers{
		Sessions:    handler.NewSessionHandler(registry),
		Candidates:  handler.NewCandidateHandler(service.NewCandidateService(validate, logr)),
		Attendance:  handler.NewAttendanceHandler(service.NewAttendanceService(validate, logr)),
		Dashboard:   handler.NewDashboardHandler(dashboard),
		Alerts:      handler.NewAlertHandler(service.NewExpiryService(cfg.Expiry.WindowDays)),
		Commissions: handler.NewCommissionHandler(commissions),
		Payroll:     handler.NewPayrollHandler(service.NewPayrollService(cfg.Payroll.DivisorDays, validate, logr)),
		Exports:     handler.NewExportHandler(exports),
		Shop:        handler.NewShopHandler(service.NewShopService(validate, metrics, logr)),
	}
	ops := handler.NewMetricsHandler(metrics, cacheRepo)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metrics, "/health", "/ready", "/metrics"))
	r.Use(middleware.WithResponseMeta())

	r.GET("/health", ops.Health)
	r.GET("/ready", ops.Ready)
	r.GET("/metrics", ops.Prometheus)
	if cfg.EnableDocs {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	handler.RegisterRoutes(r.Group(cfg.APIPrefix), handlers, middleware.Session(registry))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env, "prefix", cfg.APIPrefix)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logr.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logr.Error("forced shutdown", zap.Error(err))
	}
}
