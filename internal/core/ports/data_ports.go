package ports

import (
	"context"

	"github.com/lostfound/board/internal/core/domain"
)

// DataService is the full persistence surface exposed by the data service.
// It is the union of the slices the other services consume remotely.
type DataService interface {
	CreateUser(ctx context.Context, username, hashedPassword string) (*domain.User, error)
	GetUser(ctx context.Context, id int64) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)

	CreateAnnouncement(ctx context.Context, a *domain.Announcement) (*domain.Announcement, error)
	GetAnnouncement(ctx context.Context, id int64) (*domain.Announcement, error)
	ListAnnouncements(ctx context.Context) ([]domain.Announcement, error)

	CreateResponse(ctx context.Context, r *domain.Response) (*domain.Response, error)

	ReportStore
}
