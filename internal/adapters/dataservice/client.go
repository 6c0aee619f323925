// Package dataservice is an HTTP client for the data service, the sole
// owner of persistent state. It implements the store slices the other
// services consume.
package dataservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/lostfound/board/internal/core/domain"
)

const defaultTimeout = 10 * time.Second

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: defaultTimeout},
	}
}

func (c *Client) CreateUser(ctx context.Context, username, hashedPassword string) (*domain.User, error) {
	body := map[string]string{
		"username":        username,
		"hashed_password": hashedPassword,
	}
	var user domain.User
	err := c.do(ctx, http.MethodPost, "/users/", body, &user, map[int]error{
		http.StatusBadRequest: domain.ErrUsernameTaken,
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	var user domain.User
	err := c.do(ctx, http.MethodGet, "/users/?user_id="+strconv.FormatInt(id, 10), nil, &user, map[int]error{
		http.StatusNotFound: domain.ErrUserNotFound,
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	var user domain.User
	err := c.do(ctx, http.MethodGet, "/users/by-username/?username="+url.QueryEscape(username), nil, &user, map[int]error{
		http.StatusNotFound: domain.ErrUserNotFound,
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) CreateAnnouncement(ctx context.Context, a *domain.Announcement) (*domain.Announcement, error) {
	var created domain.Announcement
	if err := c.do(ctx, http.MethodPost, "/announcements/", a, &created, nil); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) GetAnnouncement(ctx context.Context, id int64) (*domain.Announcement, error) {
	var a domain.Announcement
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/announcements/%d", id), nil, &a, map[int]error{
		http.StatusNotFound: domain.ErrAnnouncementNotFound,
	})
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (c *Client) ListAnnouncements(ctx context.Context) ([]domain.Announcement, error) {
	var announcements []domain.Announcement
	if err := c.do(ctx, http.MethodGet, "/announcements/", nil, &announcements, nil); err != nil {
		return nil, err
	}
	return announcements, nil
}

func (c *Client) CreateResponse(ctx context.Context, r *domain.Response) (*domain.Response, error) {
	var created domain.Response
	err := c.do(ctx, http.MethodPost, "/responses/", r, &created, map[int]error{
		http.StatusNotFound: domain.ErrAnnouncementNotFound,
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) AnnouncementsByUser(ctx context.Context, userID int64) ([]domain.Announcement, error) {
	var announcements []domain.Announcement
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/announcements/user/%d", userID), nil, &announcements, map[int]error{
		http.StatusNotFound: domain.ErrNoResults,
	})
	if err != nil {
		return nil, err
	}
	return announcements, nil
}

func (c *Client) AnnouncementsByType(ctx context.Context, itemType bool) ([]domain.Announcement, error) {
	var announcements []domain.Announcement
	err := c.do(ctx, http.MethodGet, "/announcements/type/?item_type="+strconv.FormatBool(itemType), nil, &announcements, nil)
	if err != nil {
		return nil, err
	}
	return announcements, nil
}

func (c *Client) ResponsesByAnnouncement(ctx context.Context, announcementID int64) ([]domain.Response, error) {
	var responses []domain.Response
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/responses/announcement/%d", announcementID), nil, &responses, map[int]error{
		http.StatusNotFound: domain.ErrNoResults,
	})
	if err != nil {
		return nil, err
	}
	return responses, nil
}

func (c *Client) ResponsesByUser(ctx context.Context, userID int64) ([]domain.Response, error) {
	var responses []domain.Response
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/responses/user/%d", userID), nil, &responses, map[int]error{
		http.StatusNotFound: domain.ErrNoResults,
	})
	if err != nil {
		return nil, err
	}
	return responses, nil
}

// do performs one request against the data service. Status codes listed in
// statusErrs map to sentinel errors; any other non-200 response and any
// transport failure surface as ErrUpstream with the cause wrapped.
func (c *Client) do(ctx context.Context, method, path string, body, out any, statusErrs map[int]error) error {
	var reqBody *bytes.Buffer
	if body != nil {
		reqBody = &bytes.Buffer{}
		if err := json.NewEncoder(reqBody).Encode(body); err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		if sentinel, ok := statusErrs[resp.StatusCode]; ok {
			return sentinel
		}
		return fmt.Errorf("%w: data service returned %d", domain.ErrUpstream, resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%w: failed to decode response: %v", domain.ErrUpstream, err)
		}
	}
	return nil
}
