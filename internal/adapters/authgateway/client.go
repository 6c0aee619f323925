// Package authgateway exchanges bearer tokens for verified identities by
// calling the token authority's verification endpoint.
package authgateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/lostfound/board/internal/core/domain"
	"github.com/lostfound/board/internal/core/ports"
)

const defaultTimeout = 5 * time.Second

// Client makes a single verification attempt per call; it never retries.
// Every failure mode — rejected token, non-200 status, timeout, transport
// error — surfaces as domain.ErrUnauthorized. The underlying cause is
// wrapped for callers that need to tell them apart.
type Client struct {
	verifyURL string
	http      *http.Client
}

var _ ports.TokenVerifier = (*Client)(nil)

func NewClient(verifyURL string) *Client {
	return &Client{
		verifyURL: verifyURL,
		http:      &http.Client{Timeout: defaultTimeout},
	}
}

func (c *Client) Verify(ctx context.Context, token string) (domain.VerifiedIdentity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.verifyURL, nil)
	if err != nil {
		return domain.VerifiedIdentity{}, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.VerifiedIdentity{}, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.VerifiedIdentity{}, fmt.Errorf("%w: verification returned %d", domain.ErrUnauthorized, resp.StatusCode)
	}

	var identity domain.VerifiedIdentity
	if err := json.NewDecoder(resp.Body).Decode(&identity); err != nil {
		return domain.VerifiedIdentity{}, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	return identity, nil
}
