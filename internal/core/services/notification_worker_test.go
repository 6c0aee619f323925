package services

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lostfound/board/internal/core/domain"
	"github.com/lostfound/board/internal/core/ports"
)

type fakeDelivery struct {
	body []byte

	mu    sync.Mutex
	acked bool
}

func (d *fakeDelivery) Body() []byte { return d.body }

func (d *fakeDelivery) Ack() error {
	d.mu.Lock()
	d.acked = true
	d.mu.Unlock()
	return nil
}

func (d *fakeDelivery) Acked() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.acked
}

// fakeSource fails the first failures calls to Open, then hands out the
// configured delivery channel.
type fakeSource struct {
	mu        sync.Mutex
	failures  int
	attempts  int
	delivered chan ports.Delivery
}

func (s *fakeSource) Open(ctx context.Context) (<-chan ports.Delivery, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attempts++
	if s.attempts <= s.failures {
		return nil, errors.New("connection refused")
	}
	return s.delivered, nil
}

func (s *fakeSource) Attempts() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.attempts
}

func TestNotificationWorker_ReconnectsUntilBrokerAvailable(t *testing.T) {
	source := &fakeSource{failures: 3, delivered: make(chan ports.Delivery)}
	log, _ := logrustest.NewNullLogger()
	worker := NewNotificationWorker(source, 10*time.Millisecond, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go worker.Run(ctx)

	require.Eventually(t, func() bool {
		return worker.State() == StateConsuming
	}, time.Second, 5*time.Millisecond)

	assert.Equal(t, 4, source.Attempts())
}

func TestNotificationWorker_DeliversValidEvent(t *testing.T) {
	deliveries := make(chan ports.Delivery, 1)
	source := &fakeSource{delivered: deliveries}
	log, hook := logrustest.NewNullLogger()
	worker := NewNotificationWorker(source, 10*time.Millisecond, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go worker.Run(ctx)

	body, err := json.Marshal(domain.NotificationEvent{
		RecipientUserID:  1,
		RespondingUserID: 2,
		AnnouncementID:   1,
		Content:          "User 2 responded to your announcement: Found it!",
	})
	require.NoError(t, err)

	d := &fakeDelivery{body: body}
	deliveries <- d

	require.Eventually(t, d.Acked, time.Second, 5*time.Millisecond)

	var delivered bool
	for _, entry := range hook.AllEntries() {
		if entry.Level == logrus.InfoLevel && entry.Message != "" &&
			entry.Data["user_id"] == int64(1) {
			delivered = true
		}
	}
	assert.True(t, delivered, "expected a delivery log entry for user 1")
}

func TestNotificationWorker_DiscardsMalformedMessage(t *testing.T) {
	deliveries := make(chan ports.Delivery, 2)
	source := &fakeSource{delivered: deliveries}
	log, hook := logrustest.NewNullLogger()
	worker := NewNotificationWorker(source, 10*time.Millisecond, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go worker.Run(ctx)

	bad := &fakeDelivery{body: []byte("not json at all")}
	deliveries <- bad

	// Malformed messages are acknowledged anyway so they leave the queue.
	require.Eventually(t, bad.Acked, time.Second, 5*time.Millisecond)
	assert.Equal(t, StateConsuming, worker.State())

	var loggedError bool
	for _, entry := range hook.AllEntries() {
		if entry.Level == logrus.ErrorLevel {
			loggedError = true
		}
	}
	assert.True(t, loggedError, "expected the malformed message to be logged as an error")

	// The worker keeps consuming afterwards.
	body, err := json.Marshal(domain.NotificationEvent{RecipientUserID: 3, Content: "hi"})
	require.NoError(t, err)
	good := &fakeDelivery{body: body}
	deliveries <- good
	require.Eventually(t, good.Acked, time.Second, 5*time.Millisecond)
}

func TestNotificationWorker_MissingFieldsAreMalformed(t *testing.T) {
	deliveries := make(chan ports.Delivery, 1)
	source := &fakeSource{delivered: deliveries}
	log, hook := logrustest.NewNullLogger()
	worker := NewNotificationWorker(source, 10*time.Millisecond, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go worker.Run(ctx)

	// Valid JSON but no recipient and no content.
	d := &fakeDelivery{body: []byte(`{"announcement_id": 5}`)}
	deliveries <- d

	require.Eventually(t, d.Acked, time.Second, 5*time.Millisecond)

	require.Eventually(t, func() bool {
		for _, entry := range hook.AllEntries() {
			if entry.Level == logrus.ErrorLevel {
				return true
			}
		}
		return false
	}, time.Second, 5*time.Millisecond)
}

func TestNotificationWorker_ClosedChannelTriggersReconnect(t *testing.T) {
	deliveries := make(chan ports.Delivery)
	source := &fakeSource{delivered: deliveries}
	log, _ := logrustest.NewNullLogger()
	worker := NewNotificationWorker(source, 10*time.Millisecond, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go worker.Run(ctx)

	require.Eventually(t, func() bool {
		return worker.State() == StateConsuming
	}, time.Second, 5*time.Millisecond)

	close(deliveries)

	// The worker drops to Disconnected and then reconnects to the same
	// (now closed) channel; it must have reopened at least once more.
	require.Eventually(t, func() bool {
		return source.Attempts() >= 2
	}, time.Second, 5*time.Millisecond)
}
