package mocks

import (
	"context"
	"fmt"

	"github.com/inkwell-api/inkwell/internal/service/auth"
)

// MockJWTService implements auth.JWTService for testing.
type MockJWTService struct {
	GenerateTokenFn func(ctx context.Context, identity auth.Identity) (string, error)
	ValidateTokenFn func(ctx context.Context, token string) (*auth.Identity, error)
}

var _ auth.JWTService = (*MockJWTService)(nil)

// GenerateToken implements the JWTService interface. The default
// implementation returns a deterministic fake token.
func (m *MockJWTService) GenerateToken(ctx context.Context, identity auth.Identity) (string, error) {
	if m.GenerateTokenFn != nil {
		return m.GenerateTokenFn(ctx, identity)
	}
	return fmt.Sprintf("token-for-%d", identity.ID), nil
}

// ValidateToken implements the JWTService interface. The default
// implementation rejects every token.
func (m *MockJWTService) ValidateToken(ctx context.Context, token string) (*auth.Identity, error) {
	if m.ValidateTokenFn != nil {
		return m.ValidateTokenFn(ctx, token)
	}
	return nil, auth.ErrInvalidToken
}

// MockPasswordHasher implements auth.PasswordHasher for testing. The
// default implementation prefixes the password so tests can pair it
// with MockPasswordVerifier without paying bcrypt cost.
type MockPasswordHasher struct {
	HashFn func(password string) (string, error)
}

var _ auth.PasswordHasher = (*MockPasswordHasher)(nil)

// Hash implements the PasswordHasher interface.
func (m *MockPasswordHasher) Hash(password string) (string, error) {
	if m.HashFn != nil {
		return m.HashFn(password)
	}
	return "hashed:" + password, nil
}

// MockPasswordVerifier implements auth.PasswordVerifier for testing.
type MockPasswordVerifier struct {
	CompareFn func(hashedPassword, password string) error
}

var _ auth.PasswordVerifier = (*MockPasswordVerifier)(nil)

// Compare implements the PasswordVerifier interface, accepting hashes
// produced by MockPasswordHasher's default Hash.
func (m *MockPasswordVerifier) Compare(hashedPassword, password string) error {
	if m.CompareFn != nil {
		return m.CompareFn(hashedPassword, password)
	}
	if hashedPassword != "hashed:"+password {
		return fmt.Errorf("password mismatch")
	}
	return nil
}
