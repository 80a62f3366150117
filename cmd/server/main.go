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
	"go.uber.org/zap"

	"github.com/sunseat-app/service-schedule/internal/application"
	"github.com/sunseat-app/service-schedule/internal/config"
	"github.com/sunseat-app/service-schedule/internal/domain/seat"
	"github.com/sunseat-app/service-schedule/internal/handler"
	"github.com/sunseat-app/service-schedule/internal/logger"
	"github.com/sunseat-app/service-schedule/internal/lookup"
	"github.com/sunseat-app/service-schedule/internal/metrics"
	"github.com/sunseat-app/service-schedule/internal/middleware"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.NewNamed(cfg.AppEnv, "service-schedule")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting service-schedule",
		zap.String("port", cfg.Port),
		zap.String("provider", cfg.RoutingProvider),
	)

	// Initialize lookup collaborators for the configured provider
	geocoder, planner, err := buildLookup(cfg)
	if err != nil {
		log.Fatal("failed to initialize lookup provider", zap.Error(err))
	}

	// Initialize metrics
	collector := metrics.NewCollector()

	// Initialize application service
	scheduleService := application.NewScheduleService(geocoder, planner, collector, log)

	// Initialize HTTP handler
	scheduleHandler := handler.NewScheduleHandler(scheduleService)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	// Apply global middleware
	router.Use(middleware.RecoveryMiddleware(log))
	router.Use(middleware.LoggerMiddleware(log))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())

	// Liveness and metrics endpoints
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "service-schedule"})
	})
	router.GET("/metrics", gin.WrapH(collector.Handler()))

	// Register routes
	scheduleHandler.RegisterRoutes(&router.RouterGroup)

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("HTTP server starting", zap.String("addr", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down service-schedule...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server forced shutdown", zap.Error(err))
	}

	log.Info("service-schedule stopped")
}

// buildLookup wires the geocoder and route planner for the configured
// provider. Credentials come from config, never from globals.
func buildLookup(cfg *config.ServiceConfig) (seat.Geocoder, seat.RoutePlanner, error) {
	switch cfg.RoutingProvider {
	case config.ProviderGoogle:
		gm, err := lookup.NewGoogleMapsLookup(cfg.GoogleMapsAPIKey)
		if err != nil {
			return nil, nil, err
		}
		return gm, gm, nil
	default:
		geocoder := lookup.NewNominatimGeocoder(cfg.NominatimBaseURL, cfg.NominatimUserAgent, cfg.UpstreamTimeout)
		planner := lookup.NewORSRoutePlanner(cfg.ORSBaseURL, cfg.ORSAPIKey, cfg.UpstreamTimeout)
		return geocoder, planner, nil
	}
}
