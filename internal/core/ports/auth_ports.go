package ports

import (
	"context"

	"github.com/lostfound/board/internal/core/domain"
)

// CredentialStore is the slice of the data service the token authority
// needs: creating users and looking them up by username.
type CredentialStore interface {
	CreateUser(ctx context.Context, username, hashedPassword string) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
}

// TokenVerifier exchanges a raw bearer token for a verified identity.
// Implemented in-process by the token service and remotely by the
// auth gateway client.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (domain.VerifiedIdentity, error)
}

type AuthService interface {
	Register(ctx context.Context, username, password string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, error)
	TokenVerifier
}
