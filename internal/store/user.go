package store

import (
	"context"

	"github.com/inkwell-api/inkwell/internal/domain"
)

// UserStore defines the persistence interface for user accounts.
// User lookups are not soft-delete filtered: a name or email stays
// reserved forever.
type UserStore interface {
	// Create inserts a new user. The caller must have hashed the
	// password and derived the slug beforehand.
	Create(ctx context.Context, user *domain.User) error

	// GetByEmail retrieves a user by email address.
	// Returns ErrUserNotFound if no such user exists.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// ExistsByEmail reports whether any user has the given email.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// ExistsBySlug reports whether any user has the given name slug.
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
}
