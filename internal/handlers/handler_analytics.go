package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sokonihub/sokoni_gateway/internal/core/ports"
	"github.com/sokonihub/sokoni_gateway/internal/dto"
	"github.com/sokonihub/sokoni_gateway/internal/middleware"
	"github.com/sokonihub/sokoni_gateway/internal/utils"
)

const viewCountTimeout = 5 * time.Second

// analyticsHandler forwards click events to the backend and analytics sink.
// Analytics must never break the storefront, so every path answers 200.
type analyticsHandler struct {
	backend ports.BackendAPI
	posthog *utils.PosthogClientWrapper
}

func newAnalyticsHandler(backend ports.BackendAPI, posthog *utils.PosthogClientWrapper) *analyticsHandler {
	return &analyticsHandler{backend: backend, posthog: posthog}
}

// RegisterAnalyticsRoutes registers the analytics ingestion endpoint.
func RegisterAnalyticsRoutes(rg *gin.RouterGroup, backend ports.BackendAPI, posthog *utils.PosthogClientWrapper) {
	h := newAnalyticsHandler(backend, posthog)

	analytics := rg.Group("/analytics")
	{
		analytics.POST("/click", h.trackClick)
	}
}

// trackClick godoc
// @Summary Track a storefront click event
// @Description Records a click event, forwarding product views to the backend; always acknowledges success
// @Tags analytics
// @Accept  json
// @Produce  json
// @Param   event body dto.ClickEventRequest true "Click event"
// @Success 200 {object} dto.ClickEventResponse
// @Router /analytics/click [post]
func (h *analyticsHandler) trackClick(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ClickEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Dropping malformed click event", slog.String("error", err.Error()))
		c.JSON(http.StatusOK, dto.ClickEventResponse{Success: true})
		return
	}

	if req.ProductID != "" {
		token := middleware.BearerToken(c)
		// Detached from the request context so the forward survives the
		// client disconnecting right after firing the event.
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), viewCountTimeout)
			defer cancel()
			if err := h.backend.IncrementViewCount(ctx, req.ProductID, token); err != nil {
				logger.Warn("View count forward failed",
					slog.String("product_id", req.ProductID),
					slog.String("error", err.Error()))
			}
		}()
	}

	properties := map[string]any{"product_id": req.ProductID}
	for k, v := range req.Metadata {
		properties[k] = v
	}
	h.posthog.Enqueue(c.ClientIP(), req.Event, properties)

	c.JSON(http.StatusOK, dto.ClickEventResponse{Success: true})
}
