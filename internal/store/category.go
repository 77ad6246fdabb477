package store

import (
	"context"

	"github.com/inkwell-api/inkwell/internal/domain"
)

// CategoryStore defines the persistence interface for categories.
// Every read, update target and uniqueness check excludes soft-deleted
// rows; a deleted category's slug may be reused by a new row.
type CategoryStore interface {
	// List returns one page of non-deleted categories. Pages are 1-based
	// and hold PageSize rows.
	List(ctx context.Context, page int) ([]domain.Category, error)

	// FindByIdentifier returns the non-deleted categories matching the
	// identifier: a single-element or empty slice, mirroring the API's
	// `data` array.
	FindByIdentifier(ctx context.Context, ident domain.Identifier) ([]domain.Category, error)

	// ExistsByIdentifier reports whether a non-deleted category matches
	// the identifier.
	ExistsByIdentifier(ctx context.Context, ident domain.Identifier) (bool, error)

	// ExistsByID reports whether a non-deleted category has the given
	// primary key. Used by article writes to verify their reference.
	ExistsByID(ctx context.Context, id int64) (bool, error)

	// ExistsBySlug reports whether a non-deleted category has the slug.
	ExistsBySlug(ctx context.Context, slug string) (bool, error)

	// ExistsBySlugExcluding is ExistsBySlug minus the row the identifier
	// denotes, so an update never collides with itself.
	ExistsBySlugExcluding(ctx context.Context, slug string, exclude domain.Identifier) (bool, error)

	// Create inserts a new category.
	Create(ctx context.Context, category *domain.Category) error

	// Update replaces the name and slug of the category the identifier
	// denotes. Returns ErrCategoryNotFound if no non-deleted row matches.
	Update(ctx context.Context, ident domain.Identifier, category *domain.Category) error

	// SoftDelete marks the matching category deleted.
	// Returns ErrCategoryNotFound if no non-deleted row matches.
	SoftDelete(ctx context.Context, ident domain.Identifier) error
}
