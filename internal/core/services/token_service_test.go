package services

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lostfound/board/internal/core/domain"
)

func TestTokenService_IssueAndVerify(t *testing.T) {
	svc := NewTokenService([]byte("test-secret"))

	token, err := svc.Issue(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	identity, err := svc.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), identity.UserID)
}

func TestTokenService_VerifyIsIdempotent(t *testing.T) {
	svc := NewTokenService([]byte("test-secret"))

	token, err := svc.Issue(7)
	require.NoError(t, err)

	first, err := svc.Verify(context.Background(), token)
	require.NoError(t, err)
	second, err := svc.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestTokenService_TamperedSignature(t *testing.T) {
	svc := NewTokenService([]byte("test-secret"))

	token, err := svc.Issue(42)
	require.NoError(t, err)

	// Flip the last character of the signature segment.
	tampered := []byte(token)
	last := len(tampered) - 1
	if tampered[last] == 'A' {
		tampered[last] = 'B'
	} else {
		tampered[last] = 'A'
	}

	_, err = svc.Verify(context.Background(), string(tampered))
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestTokenService_WrongSecret(t *testing.T) {
	issuer := NewTokenService([]byte("right-secret"))
	verifier := NewTokenService([]byte("wrong-secret"))

	token, err := issuer.Issue(42)
	require.NoError(t, err)

	_, err = verifier.Verify(context.Background(), token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestTokenService_Malformed(t *testing.T) {
	svc := NewTokenService([]byte("test-secret"))

	_, err := svc.Verify(context.Background(), "not.a.jwt")
	assert.ErrorIs(t, err, domain.ErrTokenMalformed)
}

func TestTokenService_MissingSubject(t *testing.T) {
	secret := []byte("test-secret")
	svc := NewTokenService(secret)

	noSubject := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{})
	token, err := noSubject.SignedString(secret)
	require.NoError(t, err)

	_, err = svc.Verify(context.Background(), token)
	assert.ErrorIs(t, err, domain.ErrTokenMissingSubject)
}
