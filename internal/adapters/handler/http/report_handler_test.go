package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lostfound/board/internal/core/domain"
	"github.com/lostfound/board/internal/core/services"
)

type memoryReportStore struct {
	announcements []domain.Announcement
	responses     []domain.Response
	err           error
}

func (s *memoryReportStore) AnnouncementsByUser(ctx context.Context, userID int64) ([]domain.Announcement, error) {
	return s.announcements, s.err
}

func (s *memoryReportStore) AnnouncementsByType(ctx context.Context, itemType bool) ([]domain.Announcement, error) {
	return s.announcements, s.err
}

func (s *memoryReportStore) ResponsesByAnnouncement(ctx context.Context, announcementID int64) ([]domain.Response, error) {
	return s.responses, s.err
}

func (s *memoryReportStore) ResponsesByUser(ctx context.Context, userID int64) ([]domain.Response, error) {
	return s.responses, s.err
}

func newReportTestServer(t *testing.T, store *memoryReportStore) *httptest.Server {
	t.Helper()
	verifier := &identityVerifier{identities: map[string]domain.VerifiedIdentity{
		"token-a": {UserID: 1},
	}}
	server := httptest.NewServer(NewReportRouter(NewReportHandler(services.NewReportService(store)), verifier))
	t.Cleanup(server.Close)
	return server
}

func reportGet(t *testing.T, url, token string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, url, nil)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func TestReportRouter_RequiresAuth(t *testing.T) {
	server := newReportTestServer(t, &memoryReportStore{})

	resp := reportGet(t, server.URL+"/reports/announcements/user/1", "")
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestReportRouter_UserAnnouncements(t *testing.T) {
	store := &memoryReportStore{announcements: []domain.Announcement{{ID: 1, UserID: 1, Item: "Wallet", Place: "Mall", Type: true}}}
	server := newReportTestServer(t, store)

	resp := reportGet(t, server.URL+"/reports/announcements/user/1", "token-a")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var announcements []domain.Announcement
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&announcements))
	assert.Len(t, announcements, 1)
}

func TestReportRouter_EmptyIsNotFound(t *testing.T) {
	server := newReportTestServer(t, &memoryReportStore{})

	resp := reportGet(t, server.URL+"/reports/responses/user/1", "token-a")
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestReportRouter_UpstreamUnavailable(t *testing.T) {
	server := newReportTestServer(t, &memoryReportStore{err: domain.ErrUpstream})

	resp := reportGet(t, server.URL+"/reports/responses/announcement/1", "token-a")
	resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}
