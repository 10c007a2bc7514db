package dto

import "github.com/sokonihub/sokoni_gateway/internal/core/domain"

// PaymentWebhookRequest is the loosely-typed inbound payment notification.
// Field presence is checked by domain.WebhookEvent.Validate, not binding tags,
// so the error message stays under our control.
type PaymentWebhookRequest struct {
	PaymentStatus string         `json:"paymentStatus"`
	OrderID       string         `json:"orderId"`
	TransactionID string         `json:"transactionId"`
	Reference     string         `json:"reference"`
	Amount        float64        `json:"amount"`
	Currency      string         `json:"currency"`
	Metadata      map[string]any `json:"metadata"`
}

// ToWebhookEvent converts the request into the domain event.
func (r PaymentWebhookRequest) ToWebhookEvent() domain.WebhookEvent {
	return domain.WebhookEvent{
		PaymentStatus: r.PaymentStatus,
		OrderID:       r.OrderID,
		TransactionID: r.TransactionID,
		Reference:     r.Reference,
		Amount:        r.Amount,
		Currency:      r.Currency,
		Metadata:      r.Metadata,
	}
}

// WebhookResponse is the acknowledgement returned to the payment provider.
type WebhookResponse struct {
	Success          bool   `json:"success"`
	Message          string `json:"message"`
	OrderID          string `json:"orderId,omitempty"`
	RequestID        string `json:"requestId,omitempty"`
	ProcessingTimeMs int64  `json:"processingTimeMs"`
	Error            string `json:"error,omitempty"`
}
