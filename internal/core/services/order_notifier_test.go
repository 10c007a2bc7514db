package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sokonihub/sokoni_gateway/internal/core/domain"
	"github.com/sokonihub/sokoni_gateway/internal/core/services"
)

func TestSubscribe_QueuesConnectedEvent(t *testing.T) {
	n := services.NewOrderNotifier(nil)

	sub := n.Subscribe("ORD-1")
	defer n.Unsubscribe(sub)

	ev := <-sub.Events()
	assert.Equal(t, domain.StreamEventConnected, ev.Type)
	assert.Equal(t, "ORD-1", ev.OrderID)
	assert.Equal(t, 1, n.SubscriberCount("ORD-1"))
}

func TestUnsubscribe_RemovesHandleAndClosesChannel(t *testing.T) {
	n := services.NewOrderNotifier(nil)
	sub := n.Subscribe("ORD-1")

	n.Unsubscribe(sub)
	assert.Equal(t, 0, n.SubscriberCount("ORD-1"))

	<-sub.Events() // drain connected
	_, open := <-sub.Events()
	assert.False(t, open, "event channel closed on unsubscribe")
}

func TestUnsubscribe_Idempotent(t *testing.T) {
	n := services.NewOrderNotifier(nil)
	sub := n.Subscribe("ORD-1")

	n.Unsubscribe(sub)
	n.Unsubscribe(sub) // must not panic or double-close
	assert.Equal(t, 0, n.SubscriberCount("ORD-1"))
}

func TestPublish_FansOutToAllSubscribers(t *testing.T) {
	n := services.NewOrderNotifier(nil)
	a := n.Subscribe("ORD-1")
	b := n.Subscribe("ORD-1")
	other := n.Subscribe("ORD-2")
	defer n.Unsubscribe(a)
	defer n.Unsubscribe(b)
	defer n.Unsubscribe(other)

	// Drain connected events.
	<-a.Events()
	<-b.Events()
	<-other.Events()

	ev := domain.StreamEvent{Type: domain.StreamEventPaymentStatus, OrderID: "ORD-1", PaymentStatus: "COMPLETED"}
	delivered := n.Publish("ORD-1", ev)
	assert.Equal(t, 2, delivered)

	got := <-a.Events()
	assert.Equal(t, "COMPLETED", got.PaymentStatus)
	got = <-b.Events()
	assert.Equal(t, "COMPLETED", got.PaymentStatus)

	select {
	case unexpected := <-other.Events():
		t.Fatalf("subscriber of another order received %+v", unexpected)
	default:
	}
}

func TestPublish_NoSubscribers(t *testing.T) {
	n := services.NewOrderNotifier(nil)
	assert.Equal(t, 0, n.Publish("ORD-404", domain.PingEvent()))
}

func TestPublish_SkipsSlowSubscriber(t *testing.T) {
	n := services.NewOrderNotifier(nil)
	sub := n.Subscribe("ORD-1")
	defer n.Unsubscribe(sub)

	// Fill the buffer without draining; the connected event occupies one slot.
	for i := 0; i < 64; i++ {
		n.Publish("ORD-1", domain.PingEvent())
	}

	// Publisher must not block even though the subscriber is saturated.
	delivered := n.Publish("ORD-1", domain.PingEvent())
	assert.Equal(t, 0, delivered)
}

func TestRegistryEntry_RemovedWithLastHandle(t *testing.T) {
	n := services.NewOrderNotifier(nil)
	a := n.Subscribe("ORD-1")
	b := n.Subscribe("ORD-1")

	n.Unsubscribe(a)
	require.Equal(t, 1, n.SubscriberCount("ORD-1"))
	n.Unsubscribe(b)
	require.Equal(t, 0, n.SubscriberCount("ORD-1"))
}
