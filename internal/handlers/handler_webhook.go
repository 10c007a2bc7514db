package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sokonihub/sokoni_gateway/internal/apperrors"
	"github.com/sokonihub/sokoni_gateway/internal/core/domain"
	portssvc "github.com/sokonihub/sokoni_gateway/internal/core/ports/services"
	"github.com/sokonihub/sokoni_gateway/internal/dto"
	"github.com/sokonihub/sokoni_gateway/internal/middleware"
)

// webhookHandler ingests payment provider notifications and relays them to
// order-update stream subscribers.
type webhookHandler struct {
	notifier portssvc.OrderNotifierSvc
}

func newWebhookHandler(notifier portssvc.OrderNotifierSvc) *webhookHandler {
	return &webhookHandler{notifier: notifier}
}

// RegisterWebhookRoutes registers the payment webhook ingress.
func RegisterWebhookRoutes(rg *gin.RouterGroup, notifier portssvc.OrderNotifierSvc, rateLimit gin.HandlerFunc) {
	h := newWebhookHandler(notifier)

	webhooks := rg.Group("/webhooks")
	webhooks.Use(rateLimit)
	{
		webhooks.POST("/payment", h.paymentWebhook)
	}
}

// paymentWebhook godoc
// @Summary Ingest a payment status notification
// @Description Accepts a payment provider webhook, validates it and relays the status to order-update stream subscribers
// @Tags webhooks
// @Accept  json
// @Produce  json
// @Param   event body dto.PaymentWebhookRequest true "Payment notification"
// @Success 200 {object} dto.WebhookResponse
// @Failure 400 {object} dto.WebhookResponse "Missing paymentStatus or malformed body"
// @Failure 500 {object} dto.WebhookResponse "Processing failure"
// @Router /webhooks/payment [post]
func (h *webhookHandler) paymentWebhook(c *gin.Context) {
	start := time.Now()
	requestID := uuid.NewString()
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(
		slog.String("webhook_request_id", requestID))

	// Acknowledge with a 500 rather than letting a relay panic tear down
	// the connection; the provider retries on anything but a 2xx.
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Webhook processing panicked", slog.Any("panic", r))
			c.JSON(http.StatusInternalServerError, dto.WebhookResponse{
				Success:          false,
				Message:          "Internal error processing webhook",
				RequestID:        requestID,
				ProcessingTimeMs: time.Since(start).Milliseconds(),
				Error:            "internal error",
			})
		}
	}()

	var req dto.PaymentWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind webhook payload", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.WebhookResponse{
			Success:          false,
			Message:          "invalid JSON payload",
			RequestID:        requestID,
			ProcessingTimeMs: time.Since(start).Milliseconds(),
		})
		return
	}

	event := req.ToWebhookEvent()
	if err := event.Validate(); err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Webhook payload rejected", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, dto.WebhookResponse{
				Success:          false,
				Message:          apperrors.ValidationMessage(err),
				RequestID:        requestID,
				ProcessingTimeMs: time.Since(start).Milliseconds(),
			})
			return
		}
		logger.Error("Webhook validation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.WebhookResponse{
			Success:          false,
			Message:          "Failed to process webhook",
			RequestID:        requestID,
			ProcessingTimeMs: time.Since(start).Milliseconds(),
			Error:            err.Error(),
		})
		return
	}

	delivered := 0
	if event.OrderID != "" {
		delivered = h.notifier.Publish(event.OrderID, domain.PaymentStatusEvent(event))
	}

	logger.Info("Payment webhook processed",
		slog.String("order_id", event.OrderID),
		slog.String("payment_status", event.PaymentStatus),
		slog.Int("subscribers_notified", delivered),
	)

	c.JSON(http.StatusOK, dto.WebhookResponse{
		Success:          true,
		Message:          "Webhook processed",
		OrderID:          event.OrderID,
		RequestID:        requestID,
		ProcessingTimeMs: time.Since(start).Milliseconds(),
	})
}
