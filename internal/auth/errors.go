package auth

import "errors"

var (
	// ErrMissingToken is returned when no bearer token is present on the request.
	ErrMissingToken = errors.New("missing bearer token")

	// ErrInvalidToken is returned when a token fails signature or structural checks.
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired is returned when a token's expiry has passed.
	ErrTokenExpired = errors.New("token expired")

	// ErrNoSecret is returned when the signing secret is not configured.
	ErrNoSecret = errors.New("signing secret not configured")
)
