package rabbitmq

import (
	"context"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/lostfound/board/internal/core/ports"
)

// Source implements ports.DeliverySource over a RabbitMQ consumer channel.
// The channel returned by Open closes when the broker connection drops;
// the worker reopens it on its own schedule.
type Source struct {
	url   string
	queue string
}

var _ ports.DeliverySource = (*Source)(nil)

func NewSource(url, queue string) *Source {
	return &Source{url: url, queue: queue}
}

func (s *Source) Open(ctx context.Context) (<-chan ports.Delivery, error) {
	conn, err := amqp.Dial(s.url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to broker: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if _, err := ch.QueueDeclare(s.queue, true, false, false, false, nil); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	deliveries, err := ch.Consume(s.queue, "", false, false, false, false, nil)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to start consuming: %w", err)
	}

	out := make(chan ports.Delivery)
	go func() {
		defer close(out)
		defer conn.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case d, ok := <-deliveries:
				if !ok {
					return
				}
				select {
				case out <- delivery{d: d}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}

type delivery struct {
	d amqp.Delivery
}

func (d delivery) Body() []byte {
	return d.d.Body
}

func (d delivery) Ack() error {
	return d.d.Ack(false)
}
