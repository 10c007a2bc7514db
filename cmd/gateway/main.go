package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/sokonihub/sokoni_gateway/internal/adapters/backendapi"
	"github.com/sokonihub/sokoni_gateway/internal/adapters/localstore"
	"github.com/sokonihub/sokoni_gateway/internal/core/services"
	"github.com/sokonihub/sokoni_gateway/internal/handlers"
	"github.com/sokonihub/sokoni_gateway/internal/middleware"
	"github.com/sokonihub/sokoni_gateway/internal/platform/config"
	"github.com/sokonihub/sokoni_gateway/internal/utils"
)

const shutdownTimeout = 10 * time.Second

// @title Sokoni Gateway API
// @version 1.0
// @description Storefront gateway for the Sokoni marketplace.

// @host localhost:8080
// @BasePath /
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Open the embedded store backing preferences and cached rates.
	durable, err := localstore.NewBoltStore(cfg.LocalStorePath)
	if err != nil {
		logger.Error("Failed to open local store", slog.String("path", cfg.LocalStorePath), slog.String("error", err.Error()))
		os.Exit(1)
	}
	kv := localstore.NewDebouncedStore(durable, localstore.DefaultWriteDelay, logger)
	logger.Info("Local store opened", slog.String("path", cfg.LocalStorePath))

	backend := backendapi.NewClient(cfg.BackendBaseURL, logger)

	container := services.NewServiceContainer(kv, backend, logger,
		services.WithCacheDuration(cfg.RateCacheDuration),
		services.WithRefreshInterval(cfg.RateRefreshInterval),
	)

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, logger)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, container, backend, posthogClient, logger)

	// Proactive rate refresh runs until shutdown.
	refreshCtx, stopRefresh := context.WithCancel(context.Background())
	container.Currency.StartAutoRefresh(refreshCtx)
	// Warm the snapshot without delaying startup.
	go container.Currency.RefreshRates(refreshCtx)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Block until an interrupt, then drain connections and flush state.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", slog.String("error", err.Error()))
	}

	stopRefresh()
	kv.FlushPendingWrites()
	if err := durable.Close(); err != nil {
		logger.Error("Error closing local store", slog.String("error", err.Error()))
	}
	posthogClient.Close()

	logger.Info("Server exited")
}
