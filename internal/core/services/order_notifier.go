package services

import (
	"log/slog"
	"sync"

	"github.com/sokonihub/sokoni_gateway/internal/core/domain"
	portssvc "github.com/sokonihub/sokoni_gateway/internal/core/ports/services"
)

// subscriptionBuffer bounds the per-handle event queue. A subscriber that
// falls this far behind misses events rather than blocking the publisher.
const subscriptionBuffer = 16

// orderSubscription is one open stream handle.
type orderSubscription struct {
	id      uint64
	orderID string
	events  chan domain.StreamEvent
}

func (s *orderSubscription) OrderID() string                   { return s.orderID }
func (s *orderSubscription) Events() <-chan domain.StreamEvent { return s.events }

// OrderNotifier is the in-memory registry mapping an order identifier to its
// open stream handles. It is shared across all concurrent subscription
// handlers; registration and deregistration are the only mutations and
// deregistration is idempotent.
type OrderNotifier struct {
	logger *slog.Logger

	mu     sync.Mutex
	subs   map[string]map[uint64]*orderSubscription
	nextID uint64
}

var _ portssvc.OrderNotifierSvc = (*OrderNotifier)(nil)

// NewOrderNotifier creates an empty registry.
func NewOrderNotifier(logger *slog.Logger) *OrderNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &OrderNotifier{
		logger: logger,
		subs:   make(map[string]map[uint64]*orderSubscription),
	}
}

// Subscribe registers a new handle under the order identifier and immediately
// queues the connected acknowledgement event.
func (n *OrderNotifier) Subscribe(orderID string) portssvc.OrderSubscription {
	n.mu.Lock()
	n.nextID++
	sub := &orderSubscription{
		id:      n.nextID,
		orderID: orderID,
		events:  make(chan domain.StreamEvent, subscriptionBuffer),
	}
	handles, ok := n.subs[orderID]
	if !ok {
		handles = make(map[uint64]*orderSubscription)
		n.subs[orderID] = handles
	}
	handles[sub.id] = sub
	n.mu.Unlock()

	sub.events <- domain.ConnectedEvent(orderID)

	n.logger.Debug("Order stream subscribed",
		slog.String("order_id", orderID), slog.Uint64("subscription_id", sub.id))
	return sub
}

// Unsubscribe removes a handle from the registry and closes its event
// channel. The registry entry itself is dropped with the last handle.
// Safe to call repeatedly for the same handle.
func (n *OrderNotifier) Unsubscribe(s portssvc.OrderSubscription) {
	sub, ok := s.(*orderSubscription)
	if !ok {
		return
	}

	n.mu.Lock()
	handles, ok := n.subs[sub.orderID]
	if !ok {
		n.mu.Unlock()
		return
	}
	if _, ok := handles[sub.id]; !ok {
		n.mu.Unlock()
		return
	}
	delete(handles, sub.id)
	if len(handles) == 0 {
		delete(n.subs, sub.orderID)
	}
	n.mu.Unlock()

	close(sub.events)

	n.logger.Debug("Order stream unsubscribed",
		slog.String("order_id", sub.orderID), slog.Uint64("subscription_id", sub.id))
}

// Publish fans the event out to every current subscriber of the order.
// Sends are non-blocking: a subscriber with a full buffer is skipped so no
// subscriber can stall another. Returns the number of deliveries.
func (n *OrderNotifier) Publish(orderID string, event domain.StreamEvent) int {
	// Sends happen under the lock so a concurrent Unsubscribe cannot close a
	// channel mid-send. They are non-blocking, so the hold time stays short.
	n.mu.Lock()
	defer n.mu.Unlock()

	delivered := 0
	for _, sub := range n.subs[orderID] {
		select {
		case sub.events <- event:
			delivered++
		default:
			n.logger.Warn("Dropping event for slow order stream subscriber",
				slog.String("order_id", orderID), slog.Uint64("subscription_id", sub.id))
		}
	}
	return delivered
}

// SubscriberCount reports how many handles are open for an order.
func (n *OrderNotifier) SubscriberCount(orderID string) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.subs[orderID])
}
