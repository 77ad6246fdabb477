// Package auth provides token signing/verification and password
// hashing for the API. Both are treated as external capabilities by
// the handlers, which only see the interfaces defined here.
package auth

import "context"

// Identity is the authenticated caller attached to a request after
// token validation. It mirrors the token payload.
type Identity struct {
	ID      int64  `json:"id"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
}

// JWTService defines the interface for generating and validating the
// bearer tokens issued at login.
type JWTService interface {
	// GenerateToken creates a signed token carrying the identity.
	GenerateToken(ctx context.Context, identity Identity) (string, error)

	// ValidateToken verifies a token and returns the embedded identity.
	// Returns ErrExpiredToken or ErrInvalidToken on failure.
	ValidateToken(ctx context.Context, token string) (*Identity, error)
}
