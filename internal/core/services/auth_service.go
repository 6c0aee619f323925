package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/lostfound/board/internal/core/domain"
	"github.com/lostfound/board/internal/core/ports"
	"golang.org/x/crypto/bcrypt"
)

type authService struct {
	store  ports.CredentialStore
	tokens *TokenService
}

func NewAuthService(store ports.CredentialStore, tokens *TokenService) ports.AuthService {
	return &authService{
		store:  store,
		tokens: tokens,
	}
}

func (s *authService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.store.CreateUser(ctx, username, string(hash))
	if err != nil {
		return nil, err
	}

	user.HashedPassword = ""
	return user, nil
}

func (s *authService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.store.GetUserByUsername(ctx, username)
	if err != nil {
		// A missing user is reported the same way as a bad password so
		// usernames cannot be enumerated through the login endpoint.
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}

func (s *authService) Verify(ctx context.Context, token string) (domain.VerifiedIdentity, error) {
	return s.tokens.Verify(ctx, token)
}
