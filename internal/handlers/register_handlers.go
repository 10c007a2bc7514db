package handlers

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
	memorystore "github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/sokonihub/sokoni_gateway/cmd/docs"
	"github.com/sokonihub/sokoni_gateway/internal/core/ports"
	portssvc "github.com/sokonihub/sokoni_gateway/internal/core/ports/services"
	"github.com/sokonihub/sokoni_gateway/internal/middleware"
	"github.com/sokonihub/sokoni_gateway/internal/platform/config"
	"github.com/sokonihub/sokoni_gateway/internal/utils"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	backend ports.BackendAPI,
	posthogClient *utils.PosthogClientWrapper,
	logger *slog.Logger,
) {

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupAPIV1Routes(r, cfg, services, backend, posthogClient, logger)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	backend ports.BackendAPI,
	posthogClient *utils.PosthogClientWrapper,
	logger *slog.Logger,
) {
	v1 := r.Group("/api/v1")

	RegisterCurrencyRoutes(v1, services.Currency)
	RegisterStreamRoutes(v1, services.Notifier, cfg.StreamPingInterval)
	RegisterWebhookRoutes(v1, services.Notifier, webhookRateLimiter(cfg, logger))
	RegisterAnalyticsRoutes(v1, backend, posthogClient)
}

// webhookRateLimiter builds the ingress rate limit middleware from config.
// An unparsable rate disables limiting rather than blocking startup.
func webhookRateLimiter(cfg *config.Config, logger *slog.Logger) gin.HandlerFunc {
	rate, err := limiter.NewRateFromFormatted(cfg.WebhookRateLimit)
	if err != nil {
		logger.Warn("Invalid WEBHOOK_RATE_LIMIT, webhook rate limiting disabled",
			slog.String("value", cfg.WebhookRateLimit), slog.String("error", err.Error()))
		return func(c *gin.Context) { c.Next() }
	}
	return middleware.RateLimit(limiter.New(memorystore.NewStore(), rate))
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// Swagger setup
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
