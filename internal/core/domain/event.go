package domain

import (
	"fmt"

	"github.com/sokonihub/sokoni_gateway/internal/apperrors"
)

// WebhookEvent is an inbound payment/order status notification from the
// payment provider. PaymentStatus is the only required field; everything
// else is carried through for logging and relay.
type WebhookEvent struct {
	PaymentStatus string         `json:"paymentStatus"`
	OrderID       string         `json:"orderId,omitempty"`
	TransactionID string         `json:"transactionId,omitempty"`
	Reference     string         `json:"reference,omitempty"`
	Amount        float64        `json:"amount,omitempty"`
	Currency      string         `json:"currency,omitempty"`
	Metadata      map[string]any `json:"metadata,omitempty"`
}

// Validate enforces the required-vs-optional field contract in one place.
func (e WebhookEvent) Validate() error {
	if e.PaymentStatus == "" {
		return fmt.Errorf("%w: paymentStatus is required", apperrors.ErrValidation)
	}
	return nil
}

// Stream event types pushed over an order-update stream.
const (
	StreamEventConnected     = "connected"
	StreamEventPing          = "ping"
	StreamEventPaymentStatus = "payment_status"
)

// StreamEvent is one frame pushed to subscribers of an order-update stream.
type StreamEvent struct {
	Type          string `json:"type"`
	OrderID       string `json:"orderId,omitempty"`
	PaymentStatus string `json:"paymentStatus,omitempty"`
	TransactionID string `json:"transactionId,omitempty"`
	Reference     string `json:"reference,omitempty"`
}

// ConnectedEvent is the acknowledgement frame pushed immediately after a
// subscription is registered.
func ConnectedEvent(orderID string) StreamEvent {
	return StreamEvent{Type: StreamEventConnected, OrderID: orderID}
}

// PingEvent is the periodic keep-alive frame.
func PingEvent() StreamEvent {
	return StreamEvent{Type: StreamEventPing}
}

// PaymentStatusEvent converts an accepted webhook event into a stream frame.
func PaymentStatusEvent(e WebhookEvent) StreamEvent {
	return StreamEvent{
		Type:          StreamEventPaymentStatus,
		OrderID:       e.OrderID,
		PaymentStatus: e.PaymentStatus,
		TransactionID: e.TransactionID,
		Reference:     e.Reference,
	}
}
