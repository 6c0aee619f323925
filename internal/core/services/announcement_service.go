package services

import (
	"context"
	"fmt"
	"time"

	"github.com/lostfound/board/internal/core/domain"
	"github.com/lostfound/board/internal/core/ports"
	"github.com/sirupsen/logrus"
)

type announcementService struct {
	store     ports.AnnouncementStore
	publisher ports.NotificationPublisher
	log       *logrus.Logger
}

func NewAnnouncementService(store ports.AnnouncementStore, publisher ports.NotificationPublisher, log *logrus.Logger) ports.AnnouncementService {
	return &announcementService{
		store:     store,
		publisher: publisher,
		log:       log,
	}
}

func (s *announcementService) Create(ctx context.Context, identity domain.VerifiedIdentity, input ports.CreateAnnouncementInput) (*domain.Announcement, error) {
	when := input.Time
	if when.IsZero() {
		when = time.Now().UTC()
	}

	announcement := &domain.Announcement{
		UserID: identity.UserID,
		Item:   input.Item,
		Place:  input.Place,
		Time:   when,
		Type:   input.Type,
	}

	return s.store.CreateAnnouncement(ctx, announcement)
}

func (s *announcementService) Get(ctx context.Context, id int64) (*domain.Announcement, error) {
	return s.store.GetAnnouncement(ctx, id)
}

func (s *announcementService) List(ctx context.Context) ([]domain.Announcement, error) {
	return s.store.ListAnnouncements(ctx)
}

// Respond persists a response to an announcement and then publishes a
// notification for the announcement's owner. The publish is best-effort:
// once the response row exists the caller gets success, and a failed
// publish is logged and swallowed.
func (s *announcementService) Respond(ctx context.Context, identity domain.VerifiedIdentity, input ports.RespondInput) error {
	announcement, err := s.store.GetAnnouncement(ctx, input.AnnouncementID)
	if err != nil {
		return err
	}

	when := input.Time
	if when.IsZero() {
		when = time.Now().UTC()
	}

	response := &domain.Response{
		AnnouncementID:   input.AnnouncementID,
		RespondingUserID: identity.UserID,
		Message:          input.Message,
		Time:             when,
	}
	if _, err := s.store.CreateResponse(ctx, response); err != nil {
		return err
	}

	event := domain.NotificationEvent{
		RecipientUserID:  announcement.UserID,
		RespondingUserID: identity.UserID,
		AnnouncementID:   input.AnnouncementID,
		Content:          fmt.Sprintf("User %d responded to your announcement: %s", identity.UserID, input.Message),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.log.WithError(err).WithFields(logrus.Fields{
			"announcement_id": input.AnnouncementID,
			"recipient":       announcement.UserID,
		}).Error("failed to publish notification")
	}

	return nil
}
