package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lostfound/board/internal/core/domain"
)

type fakeReportStore struct {
	announcements []domain.Announcement
	responses     []domain.Response
	err           error
}

func (s *fakeReportStore) AnnouncementsByUser(ctx context.Context, userID int64) ([]domain.Announcement, error) {
	return s.announcements, s.err
}

func (s *fakeReportStore) AnnouncementsByType(ctx context.Context, itemType bool) ([]domain.Announcement, error) {
	return s.announcements, s.err
}

func (s *fakeReportStore) ResponsesByAnnouncement(ctx context.Context, announcementID int64) ([]domain.Response, error) {
	return s.responses, s.err
}

func (s *fakeReportStore) ResponsesByUser(ctx context.Context, userID int64) ([]domain.Response, error) {
	return s.responses, s.err
}

func TestReportService_UserAnnouncements(t *testing.T) {
	store := &fakeReportStore{announcements: []domain.Announcement{{ID: 1, UserID: 5, Item: "Wallet"}}}
	svc := NewReportService(store)

	announcements, err := svc.UserAnnouncements(context.Background(), 5)
	require.NoError(t, err)
	assert.Len(t, announcements, 1)
}

func TestReportService_EmptyResultsAreNotFound(t *testing.T) {
	svc := NewReportService(&fakeReportStore{})

	_, err := svc.UserAnnouncements(context.Background(), 5)
	assert.ErrorIs(t, err, domain.ErrNoResults)

	_, err = svc.AnnouncementsOfType(context.Background(), true)
	assert.ErrorIs(t, err, domain.ErrNoResults)

	_, err = svc.AnnouncementResponses(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrNoResults)

	_, err = svc.UserResponses(context.Background(), 5)
	assert.ErrorIs(t, err, domain.ErrNoResults)
}

func TestReportService_UpstreamErrorPassesThrough(t *testing.T) {
	svc := NewReportService(&fakeReportStore{err: domain.ErrUpstream})

	_, err := svc.UserResponses(context.Background(), 5)
	assert.ErrorIs(t, err, domain.ErrUpstream)
}
