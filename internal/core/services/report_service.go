package services

import (
	"context"

	"github.com/lostfound/board/internal/core/domain"
	"github.com/lostfound/board/internal/core/ports"
)

type reportService struct {
	store ports.ReportStore
}

func NewReportService(store ports.ReportStore) ports.ReportService {
	return &reportService{store: store}
}

func (s *reportService) UserAnnouncements(ctx context.Context, userID int64) ([]domain.Announcement, error) {
	announcements, err := s.store.AnnouncementsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(announcements) == 0 {
		return nil, domain.ErrNoResults
	}
	return announcements, nil
}

func (s *reportService) AnnouncementsOfType(ctx context.Context, itemType bool) ([]domain.Announcement, error) {
	announcements, err := s.store.AnnouncementsByType(ctx, itemType)
	if err != nil {
		return nil, err
	}
	if len(announcements) == 0 {
		return nil, domain.ErrNoResults
	}
	return announcements, nil
}

func (s *reportService) AnnouncementResponses(ctx context.Context, announcementID int64) ([]domain.Response, error) {
	responses, err := s.store.ResponsesByAnnouncement(ctx, announcementID)
	if err != nil {
		return nil, err
	}
	if len(responses) == 0 {
		return nil, domain.ErrNoResults
	}
	return responses, nil
}

func (s *reportService) UserResponses(ctx context.Context, userID int64) ([]domain.Response, error) {
	responses, err := s.store.ResponsesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(responses) == 0 {
		return nil, domain.ErrNoResults
	}
	return responses, nil
}
