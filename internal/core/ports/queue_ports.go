package ports

import "context"

// Delivery is a single message taken from the queue. Ack must be called
// only after processing so a crash in between causes redelivery.
type Delivery interface {
	Body() []byte
	Ack() error
}

// DeliverySource connects to the broker and hands out deliveries one at a
// time. The returned channel closes when the connection is lost; callers
// reconnect by calling Open again.
type DeliverySource interface {
	Open(ctx context.Context) (<-chan Delivery, error)
}
