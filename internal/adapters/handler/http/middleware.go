package http

import (
	"context"
	"net/http"

	"github.com/lostfound/board/internal/core/domain"
	"github.com/lostfound/board/internal/core/ports"
)

type contextKey string

const identityKey contextKey = "verified-identity"

// RequireAuth gates a route behind token verification. The token is
// verified on every request; the resulting identity lives only in this
// request's context and is never reused across requests.
func RequireAuth(verifier ports.TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "missing authorization header"})
				return
			}

			identity, err := verifier.Verify(r.Context(), token)
			if err != nil {
				writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid token"})
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFromContext returns the verified identity installed by RequireAuth.
func IdentityFromContext(ctx context.Context) (domain.VerifiedIdentity, bool) {
	identity, ok := ctx.Value(identityKey).(domain.VerifiedIdentity)
	return identity, ok
}
