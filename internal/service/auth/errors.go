package auth

import "errors"

// Token validation errors returned by the JWT service.
var (
	// ErrInvalidToken is returned when a token is malformed, has a bad
	// signature or carries unusable claims.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken is returned when a token's expiry has passed.
	ErrExpiredToken = errors.New("token expired")
)
