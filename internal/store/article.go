package store

import (
	"context"

	"github.com/inkwell-api/inkwell/internal/domain"
)

// PageSize is the fixed number of rows per list page.
const PageSize = 10

// ArticleStore defines the persistence interface for articles, with
// the same soft-delete semantics as CategoryStore.
type ArticleStore interface {
	// List returns one page of non-deleted articles.
	List(ctx context.Context, page int) ([]domain.Article, error)

	// FindByIdentifier returns the non-deleted articles matching the
	// identifier as a single-element or empty slice.
	FindByIdentifier(ctx context.Context, ident domain.Identifier) ([]domain.Article, error)

	// ExistsByIdentifier reports whether a non-deleted article matches
	// the identifier.
	ExistsByIdentifier(ctx context.Context, ident domain.Identifier) (bool, error)

	// ExistsBySlug reports whether a non-deleted article has the slug.
	ExistsBySlug(ctx context.Context, slug string) (bool, error)

	// ExistsBySlugExcluding is ExistsBySlug minus the row the identifier
	// denotes.
	ExistsBySlugExcluding(ctx context.Context, slug string, exclude domain.Identifier) (bool, error)

	// Create inserts a new article.
	Create(ctx context.Context, article *domain.Article) error

	// Update replaces all mutable fields of the matching article.
	// Returns ErrArticleNotFound if no non-deleted row matches.
	Update(ctx context.Context, ident domain.Identifier, article *domain.Article) error

	// SoftDelete marks the matching article deleted.
	// Returns ErrArticleNotFound if no non-deleted row matches.
	SoftDelete(ctx context.Context, ident domain.Identifier) error
}
