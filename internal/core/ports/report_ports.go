package ports

import (
	"context"

	"github.com/lostfound/board/internal/core/domain"
)

// ReportStore is the read-only slice of the data service the reporting
// service aggregates over.
type ReportStore interface {
	AnnouncementsByUser(ctx context.Context, userID int64) ([]domain.Announcement, error)
	AnnouncementsByType(ctx context.Context, itemType bool) ([]domain.Announcement, error)
	ResponsesByAnnouncement(ctx context.Context, announcementID int64) ([]domain.Response, error)
	ResponsesByUser(ctx context.Context, userID int64) ([]domain.Response, error)
}

type ReportService interface {
	UserAnnouncements(ctx context.Context, userID int64) ([]domain.Announcement, error)
	AnnouncementsOfType(ctx context.Context, itemType bool) ([]domain.Announcement, error)
	AnnouncementResponses(ctx context.Context, announcementID int64) ([]domain.Response, error)
	UserResponses(ctx context.Context, userID int64) ([]domain.Response, error)
}
