package domain

import "errors"

var (
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrUserNotFound         = errors.New("user not found")
	ErrUsernameTaken        = errors.New("username already exists")
	ErrAnnouncementNotFound = errors.New("announcement not found")
	ErrNoResults            = errors.New("no results found")
	ErrUpstream             = errors.New("upstream service failure")
	ErrMalformedMessage     = errors.New("malformed queue message")

	ErrTokenMalformed      = errors.New("token is malformed")
	ErrTokenInvalid        = errors.New("token signature is invalid")
	ErrTokenMissingSubject = errors.New("token payload has no subject")
)
