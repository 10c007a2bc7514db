package services

import "github.com/sokonihub/sokoni_gateway/internal/core/domain"

// OrderSubscription is one open order-update stream handle.
type OrderSubscription interface {
	// OrderID returns the order identifier this subscription watches.
	OrderID() string

	// Events is the channel the relay pushes frames on. It is closed on
	// unsubscribe.
	Events() <-chan domain.StreamEvent
}

// OrderNotifierSvc is the in-memory registry mapping an order identifier to
// its open stream handles.
type OrderNotifierSvc interface {
	// Subscribe registers a new handle and immediately queues the connected
	// acknowledgement event.
	Subscribe(orderID string) OrderSubscription

	// Unsubscribe deregisters a handle. Idempotent under repeated calls.
	Unsubscribe(sub OrderSubscription)

	// Publish fans an event out to every subscriber of the order. Slow
	// subscribers are skipped, never blocked on. Returns the delivery count.
	Publish(orderID string, event domain.StreamEvent) int

	// SubscriberCount reports open handles for an order. Introspection hook.
	SubscriberCount(orderID string) int
}
