package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/lostfound/board/internal/core/domain"
	"github.com/lostfound/board/internal/core/ports"
	"github.com/sirupsen/logrus"
)

type WorkerState string

const (
	StateDisconnected WorkerState = "disconnected"
	StateConsuming    WorkerState = "consuming"
)

// NotificationWorker consumes notification events one at a time. When the
// broker connection is lost it retries forever at a fixed interval. A
// message that fails to parse is logged and acknowledged so it leaves the
// queue; a valid message is delivered (logged) and then acknowledged.
// Acknowledgment always happens after processing, which makes delivery
// at-least-once.
type NotificationWorker struct {
	source  ports.DeliverySource
	backoff time.Duration
	log     *logrus.Logger

	mu    sync.Mutex
	state WorkerState
}

func NewNotificationWorker(source ports.DeliverySource, backoff time.Duration, log *logrus.Logger) *NotificationWorker {
	return &NotificationWorker{
		source:  source,
		backoff: backoff,
		log:     log,
		state:   StateDisconnected,
	}
}

func (w *NotificationWorker) State() WorkerState {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

func (w *NotificationWorker) setState(s WorkerState) {
	w.mu.Lock()
	w.state = s
	w.mu.Unlock()
}

// Run blocks until ctx is cancelled.
func (w *NotificationWorker) Run(ctx context.Context) error {
	for {
		deliveries, err := w.source.Open(ctx)
		if err != nil {
			w.setState(StateDisconnected)
			w.log.WithError(err).Warnf("broker unavailable, retrying in %s", w.backoff)

			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(w.backoff):
				continue
			}
		}

		w.setState(StateConsuming)
		w.log.Info("consuming notifications")

		w.consume(ctx, deliveries)

		w.setState(StateDisconnected)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(w.backoff):
		}
	}
}

// consume drains the delivery channel until it closes (connection lost) or
// the context is cancelled.
func (w *NotificationWorker) consume(ctx context.Context, deliveries <-chan ports.Delivery) {
	for {
		select {
		case <-ctx.Done():
			return
		case d, ok := <-deliveries:
			if !ok {
				w.log.Warn("broker connection lost")
				return
			}

			if err := w.process(d.Body()); err != nil {
				w.log.WithError(err).Error("discarding message")
			}
			if err := d.Ack(); err != nil {
				w.log.WithError(err).Error("failed to acknowledge message")
			}
		}
	}
}

func (w *NotificationWorker) process(body []byte) error {
	var event domain.NotificationEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrMalformedMessage, err)
	}
	if event.RecipientUserID == 0 || event.Content == "" {
		return fmt.Errorf("%w: missing user_id or content", domain.ErrMalformedMessage)
	}

	// Delivery is a log line here; real push or email dispatch is an
	// external collaborator.
	w.log.WithFields(logrus.Fields{
		"user_id":         event.RecipientUserID,
		"announcement_id": event.AnnouncementID,
	}).Infof("notification delivered: %s", event.Content)
	return nil
}
