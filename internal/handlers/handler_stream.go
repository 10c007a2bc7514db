package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sokonihub/sokoni_gateway/internal/core/domain"
	portssvc "github.com/sokonihub/sokoni_gateway/internal/core/ports/services"
	"github.com/sokonihub/sokoni_gateway/internal/middleware"
)

// streamHandler serves order-update streams over server-sent events.
type streamHandler struct {
	notifier     portssvc.OrderNotifierSvc
	pingInterval time.Duration
}

func newStreamHandler(notifier portssvc.OrderNotifierSvc, pingInterval time.Duration) *streamHandler {
	if pingInterval <= 0 {
		pingInterval = 30 * time.Second
	}
	return &streamHandler{notifier: notifier, pingInterval: pingInterval}
}

// RegisterStreamRoutes registers the order-update stream endpoint.
func RegisterStreamRoutes(rg *gin.RouterGroup, notifier portssvc.OrderNotifierSvc, pingInterval time.Duration) {
	h := newStreamHandler(notifier, pingInterval)

	orders := rg.Group("/orders")
	{
		orders.GET("/stream", h.streamOrderUpdates)
	}
}

// streamOrderUpdates godoc
// @Summary Stream order status updates
// @Description Opens a server-sent events stream delivering payment status updates for one order
// @Tags orders
// @Produce  text/event-stream
// @Param   orderId query string true "Order identifier to follow"
// @Success 200 {string} string "SSE stream of events"
// @Failure 400 {string} string "Missing orderId"
// @Router /orders/stream [get]
func (h *streamHandler) streamOrderUpdates(c *gin.Context) {
	orderID := c.Query("orderId")
	if orderID == "" {
		c.String(http.StatusBadRequest, "Missing orderId")
		return
	}

	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(
		slog.String("order_id", orderID))

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	// Disable proxy buffering so frames reach the client immediately.
	c.Header("X-Accel-Buffering", "no")

	sub := h.notifier.Subscribe(orderID)
	defer h.notifier.Unsubscribe(sub)

	logger.Info("Order stream opened")

	ticker := time.NewTicker(h.pingInterval)
	defer ticker.Stop()

	ctx := c.Request.Context()
	for {
		select {
		case <-ctx.Done():
			logger.Info("Order stream closed by client")
			return
		case ev, ok := <-sub.Events():
			if !ok {
				return
			}
			if !h.writeEvent(c, ev) {
				logger.Warn("Order stream write failed, closing")
				return
			}
		case <-ticker.C:
			if !h.writeEvent(c, domain.PingEvent()) {
				logger.Warn("Order stream ping failed, closing")
				return
			}
		}
	}
}

// writeEvent pushes one SSE frame and flushes it. Returns false when the
// connection is no longer writable.
func (h *streamHandler) writeEvent(c *gin.Context, ev domain.StreamEvent) bool {
	b, err := json.Marshal(ev)
	if err != nil {
		return true // skip the frame, keep the stream
	}
	if _, err := c.Writer.Write([]byte("data: " + string(b) + "\n\n")); err != nil {
		return false
	}
	c.Writer.Flush()
	return true
}
