package services

import (
	"context"
	"errors"
	"time"

	"github.com/lostfound/board/internal/core/domain"
	"github.com/lostfound/board/internal/core/ports"
)

type dataService struct {
	users         ports.UserRepository
	announcements ports.AnnouncementRepository
	responses     ports.ResponseRepository
}

func NewDataService(users ports.UserRepository, announcements ports.AnnouncementRepository, responses ports.ResponseRepository) ports.DataService {
	return &dataService{
		users:         users,
		announcements: announcements,
		responses:     responses,
	}
}

func (s *dataService) CreateUser(ctx context.Context, username, hashedPassword string) (*domain.User, error) {
	existing, err := s.users.GetByUsername(ctx, username)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUsernameTaken
	}

	user := &domain.User{
		Username:       username,
		HashedPassword: hashedPassword,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *dataService) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *dataService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.users.GetByUsername(ctx, username)
}

func (s *dataService) CreateAnnouncement(ctx context.Context, a *domain.Announcement) (*domain.Announcement, error) {
	if a.Time.IsZero() {
		a.Time = time.Now().UTC()
	}
	if err := s.announcements.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *dataService) GetAnnouncement(ctx context.Context, id int64) (*domain.Announcement, error) {
	return s.announcements.GetByID(ctx, id)
}

func (s *dataService) ListAnnouncements(ctx context.Context) ([]domain.Announcement, error) {
	return s.announcements.GetAll(ctx)
}

// CreateResponse checks that both the announcement and the responding user
// exist before inserting the response row.
func (s *dataService) CreateResponse(ctx context.Context, r *domain.Response) (*domain.Response, error) {
	if _, err := s.announcements.GetByID(ctx, r.AnnouncementID); err != nil {
		return nil, err
	}
	if _, err := s.users.GetByID(ctx, r.RespondingUserID); err != nil {
		return nil, err
	}

	if r.Time.IsZero() {
		r.Time = time.Now().UTC()
	}
	if err := s.responses.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *dataService) AnnouncementsByUser(ctx context.Context, userID int64) ([]domain.Announcement, error) {
	return s.announcements.GetByUser(ctx, userID)
}

func (s *dataService) AnnouncementsByType(ctx context.Context, itemType bool) ([]domain.Announcement, error) {
	return s.announcements.GetByType(ctx, itemType)
}

func (s *dataService) ResponsesByAnnouncement(ctx context.Context, announcementID int64) ([]domain.Response, error) {
	return s.responses.GetByAnnouncement(ctx, announcementID)
}

func (s *dataService) ResponsesByUser(ctx context.Context, userID int64) ([]domain.Response, error) {
	return s.responses.GetByUser(ctx, userID)
}
