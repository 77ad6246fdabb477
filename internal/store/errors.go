package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist
	// (or is soft-deleted, which reads treat the same way).
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a
	// duplicate of a unique value (slug or email).
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when an entity fails a database
	// constraint before being stored.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrUserNotFound indicates that the requested user does not exist.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	// ErrCategoryNotFound indicates that the requested category does
	// not exist among non-deleted rows.
	ErrCategoryNotFound = fmt.Errorf("%w: category", ErrNotFound)

	// ErrArticleNotFound indicates that the requested article does not
	// exist among non-deleted rows.
	ErrArticleNotFound = fmt.Errorf("%w: article", ErrNotFound)
)

// IsNotFoundError checks whether err is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}
