package ports

import (
	"context"

	"github.com/lostfound/board/internal/core/domain"
)

// Repositories backing the data service. These are the only components in
// the system that touch the database.

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

type AnnouncementRepository interface {
	Create(ctx context.Context, a *domain.Announcement) error
	GetByID(ctx context.Context, id int64) (*domain.Announcement, error)
	GetAll(ctx context.Context) ([]domain.Announcement, error)
	GetByUser(ctx context.Context, userID int64) ([]domain.Announcement, error)
	GetByType(ctx context.Context, itemType bool) ([]domain.Announcement, error)
}

type ResponseRepository interface {
	Create(ctx context.Context, r *domain.Response) error
	GetByAnnouncement(ctx context.Context, announcementID int64) ([]domain.Response, error)
	GetByUser(ctx context.Context, userID int64) ([]domain.Response, error)
}
