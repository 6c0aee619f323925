package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lostfound/board/internal/core/domain"
)

type stubVerifier struct {
	identity domain.VerifiedIdentity
	err      error
	calls    int
}

func (v *stubVerifier) Verify(ctx context.Context, token string) (domain.VerifiedIdentity, error) {
	v.calls++
	if v.err != nil {
		return domain.VerifiedIdentity{}, v.err
	}
	return v.identity, nil
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	verifier := &stubVerifier{}
	handler := RequireAuth(verifier)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be reached")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	// The verifier is never called when the header is absent.
	assert.Zero(t, verifier.calls)
}

func TestRequireAuth_MalformedHeader(t *testing.T) {
	verifier := &stubVerifier{}
	handler := RequireAuth(verifier)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuth_RejectedToken(t *testing.T) {
	verifier := &stubVerifier{err: domain.ErrUnauthorized}
	handler := RequireAuth(verifier)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer some-token")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuth_InstallsIdentity(t *testing.T) {
	verifier := &stubVerifier{identity: domain.VerifiedIdentity{UserID: 9}}

	var seen domain.VerifiedIdentity
	handler := RequireAuth(verifier)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := IdentityFromContext(r.Context())
		require.True(t, ok)
		seen = identity
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer some-token")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(9), seen.UserID)
}

func TestRequireAuth_VerifiesEveryRequest(t *testing.T) {
	verifier := &stubVerifier{identity: domain.VerifiedIdentity{UserID: 9}}
	handler := RequireAuth(verifier)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	for range 3 {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer some-token")
		handler.ServeHTTP(httptest.NewRecorder(), req)
	}

	// No caching of verification results across requests.
	assert.Equal(t, 3, verifier.calls)
}
