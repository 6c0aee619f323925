package services

import (
	"context"
	"errors"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
	"github.com/lostfound/board/internal/core/domain"
)

// TokenService mints and verifies HS256 bearer tokens whose subject is the
// user id. Tokens carry no expiry claim: they stay valid until the signing
// secret is rotated. Verification is pure and consults no external service.
type TokenService struct {
	secret []byte
}

func NewTokenService(secret []byte) *TokenService {
	return &TokenService{secret: secret}
}

func (s *TokenService) Issue(userID int64) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject: strconv.FormatInt(userID, 10),
	})
	return token.SignedString(s.secret)
}

func (s *TokenService) Verify(ctx context.Context, tokenString string) (domain.VerifiedIdentity, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenMalformed) {
			return domain.VerifiedIdentity{}, domain.ErrTokenMalformed
		}
		return domain.VerifiedIdentity{}, domain.ErrTokenInvalid
	}
	if !token.Valid {
		return domain.VerifiedIdentity{}, domain.ErrTokenInvalid
	}

	if claims.Subject == "" {
		return domain.VerifiedIdentity{}, domain.ErrTokenMissingSubject
	}
	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return domain.VerifiedIdentity{}, domain.ErrTokenMissingSubject
	}

	return domain.VerifiedIdentity{UserID: userID}, nil
}
