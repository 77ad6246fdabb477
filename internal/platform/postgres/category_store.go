package postgres

import (
	"context"
	"log/slog"

	"github.com/inkwell-api/inkwell/internal/domain"
	"github.com/inkwell-api/inkwell/internal/platform/logger"
	"github.com/inkwell-api/inkwell/internal/store"
)

// CategoryStore implements store.CategoryStore on PostgreSQL.
type CategoryStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewCategoryStore creates a PostgreSQL implementation of
// store.CategoryStore.
func NewCategoryStore(db store.DBTX, log *slog.Logger) *CategoryStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &CategoryStore{
		db:     db,
		logger: log.With(slog.String("component", "category_store")),
	}
}

var _ store.CategoryStore = (*CategoryStore)(nil)

const categoryColumns = "id, category, author_id, slug, created_at, is_deleted"

// List implements store.CategoryStore.List.
func (s *CategoryStore) List(ctx context.Context, page int) ([]domain.Category, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT ` + categoryColumns + `
		FROM categories
		WHERE is_deleted = FALSE
		ORDER BY id
		LIMIT $1 OFFSET $2
	`
	rows, err := s.db.QueryContext(ctx, query, store.PageSize, (page-1)*store.PageSize)
	if err != nil {
		log.Error("failed to list categories", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	categories := make([]domain.Category, 0, store.PageSize)
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Category, &c.AuthorID, &c.Slug, &c.CreatedAt, &c.IsDeleted); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// FindByIdentifier implements store.CategoryStore.FindByIdentifier.
func (s *CategoryStore) FindByIdentifier(ctx context.Context, ident domain.Identifier) ([]domain.Category, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	cond, arg := wherePredicate(ident, 1)
	rows, err := s.db.QueryContext(ctx, `SELECT `+categoryColumns+` FROM categories WHERE `+cond, arg)
	if err != nil {
		log.Error("failed to find category",
			slog.String("error", err.Error()),
			slog.String("identifier", ident.String()))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	categories := make([]domain.Category, 0, 1)
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Category, &c.AuthorID, &c.Slug, &c.CreatedAt, &c.IsDeleted); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// ExistsByIdentifier implements store.CategoryStore.ExistsByIdentifier.
func (s *CategoryStore) ExistsByIdentifier(ctx context.Context, ident domain.Identifier) (bool, error) {
	cond, arg := wherePredicate(ident, 1)
	return s.exists(ctx, `SELECT EXISTS (SELECT 1 FROM categories WHERE `+cond+`)`, arg)
}

// ExistsByID implements store.CategoryStore.ExistsByID.
func (s *CategoryStore) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return s.exists(ctx, `SELECT EXISTS (SELECT 1 FROM categories WHERE id = $1 AND is_deleted = FALSE)`, id)
}

// ExistsBySlug implements store.CategoryStore.ExistsBySlug.
func (s *CategoryStore) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	return s.exists(ctx, `SELECT EXISTS (SELECT 1 FROM categories WHERE slug = $1 AND is_deleted = FALSE)`, slug)
}

// ExistsBySlugExcluding implements store.CategoryStore.ExistsBySlugExcluding.
func (s *CategoryStore) ExistsBySlugExcluding(ctx context.Context, slug string, exclude domain.Identifier) (bool, error) {
	cond, arg := excludePredicate(exclude, 2)
	query := `SELECT EXISTS (SELECT 1 FROM categories WHERE slug = $1 AND is_deleted = FALSE AND ` + cond + `)`

	log := logger.FromContextOrDefault(ctx, s.logger)
	var exists bool
	if err := s.db.QueryRowContext(ctx, query, slug, arg).Scan(&exists); err != nil {
		log.Error("category slug uniqueness query failed", slog.String("error", err.Error()))
		return false, err
	}
	return exists, nil
}

// Create implements store.CategoryStore.Create.
func (s *CategoryStore) Create(ctx context.Context, category *domain.Category) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO categories (category, author_id, slug)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, is_deleted
	`
	err := s.db.QueryRowContext(ctx, query, category.Category, category.AuthorID, category.Slug).
		Scan(&category.ID, &category.CreatedAt, &category.IsDeleted)
	if err != nil {
		log.Error("failed to create category",
			slog.String("error", err.Error()),
			slog.String("slug", category.Slug))
		return MapError(err)
	}

	log.Info("category created",
		slog.Int64("category_id", category.ID),
		slog.String("slug", category.Slug))
	return nil
}

// Update implements store.CategoryStore.Update.
func (s *CategoryStore) Update(ctx context.Context, ident domain.Identifier, category *domain.Category) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	cond, arg := wherePredicate(ident, 3)
	query := `UPDATE categories SET category = $1, slug = $2 WHERE ` + cond

	result, err := s.db.ExecContext(ctx, query, category.Category, category.Slug, arg)
	if err != nil {
		log.Error("failed to update category",
			slog.String("error", err.Error()),
			slog.String("identifier", ident.String()))
		return MapError(err)
	}
	if err := checkRowsAffected(result, store.ErrCategoryNotFound); err != nil {
		return err
	}

	log.Info("category updated",
		slog.String("identifier", ident.String()),
		slog.String("slug", category.Slug))
	return nil
}

// SoftDelete implements store.CategoryStore.SoftDelete.
func (s *CategoryStore) SoftDelete(ctx context.Context, ident domain.Identifier) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	cond, arg := wherePredicate(ident, 1)
	result, err := s.db.ExecContext(ctx, `UPDATE categories SET is_deleted = TRUE WHERE `+cond, arg)
	if err != nil {
		log.Error("failed to soft-delete category",
			slog.String("error", err.Error()),
			slog.String("identifier", ident.String()))
		return MapError(err)
	}
	if err := checkRowsAffected(result, store.ErrCategoryNotFound); err != nil {
		return err
	}

	log.Info("category soft-deleted", slog.String("identifier", ident.String()))
	return nil
}

func (s *CategoryStore) exists(ctx context.Context, query string, arg any) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var exists bool
	if err := s.db.QueryRowContext(ctx, query, arg).Scan(&exists); err != nil {
		log.Error("category existence query failed", slog.String("error", err.Error()))
		return false, err
	}
	return exists, nil
}
