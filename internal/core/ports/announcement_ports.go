package ports

import (
	"context"
	"time"

	"github.com/lostfound/board/internal/core/domain"
)

// AnnouncementStore is the slice of the data service the announcement
// workflow depends on.
type AnnouncementStore interface {
	CreateAnnouncement(ctx context.Context, a *domain.Announcement) (*domain.Announcement, error)
	GetAnnouncement(ctx context.Context, id int64) (*domain.Announcement, error)
	ListAnnouncements(ctx context.Context) ([]domain.Announcement, error)
	CreateResponse(ctx context.Context, r *domain.Response) (*domain.Response, error)
}

// NotificationPublisher puts a notification event on the durable queue.
type NotificationPublisher interface {
	Publish(ctx context.Context, event domain.NotificationEvent) error
}

type CreateAnnouncementInput struct {
	Item  string
	Place string
	Type  bool
	Time  time.Time
}

type RespondInput struct {
	AnnouncementID int64
	Message        string
	Time           time.Time
}

type AnnouncementService interface {
	Create(ctx context.Context, identity domain.VerifiedIdentity, input CreateAnnouncementInput) (*domain.Announcement, error)
	Get(ctx context.Context, id int64) (*domain.Announcement, error)
	List(ctx context.Context) ([]domain.Announcement, error)
	Respond(ctx context.Context, identity domain.VerifiedIdentity, input RespondInput) error
}
