package postgres

import (
	"context"
	"log/slog"

	"github.com/inkwell-api/inkwell/internal/domain"
	"github.com/inkwell-api/inkwell/internal/platform/logger"
	"github.com/inkwell-api/inkwell/internal/store"
)

// ArticleStore implements store.ArticleStore on PostgreSQL.
type ArticleStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewArticleStore creates a PostgreSQL implementation of
// store.ArticleStore.
func NewArticleStore(db store.DBTX, log *slog.Logger) *ArticleStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &ArticleStore{
		db:     db,
		logger: log.With(slog.String("component", "article_store")),
	}
}

var _ store.ArticleStore = (*ArticleStore)(nil)

const articleColumns = "id, title, description, article, category_id, author_id, slug, created_at, is_deleted"

func scanArticle(scan func(dest ...any) error) (domain.Article, error) {
	var a domain.Article
	err := scan(
		&a.ID,
		&a.Title,
		&a.Description,
		&a.Article,
		&a.CategoryID,
		&a.AuthorID,
		&a.Slug,
		&a.CreatedAt,
		&a.IsDeleted,
	)
	return a, err
}

// List implements store.ArticleStore.List.
func (s *ArticleStore) List(ctx context.Context, page int) ([]domain.Article, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT ` + articleColumns + `
		FROM articles
		WHERE is_deleted = FALSE
		ORDER BY id
		LIMIT $1 OFFSET $2
	`
	rows, err := s.db.QueryContext(ctx, query, store.PageSize, (page-1)*store.PageSize)
	if err != nil {
		log.Error("failed to list articles", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	articles := make([]domain.Article, 0, store.PageSize)
	for rows.Next() {
		a, err := scanArticle(rows.Scan)
		if err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}

// FindByIdentifier implements store.ArticleStore.FindByIdentifier.
func (s *ArticleStore) FindByIdentifier(ctx context.Context, ident domain.Identifier) ([]domain.Article, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	cond, arg := wherePredicate(ident, 1)
	rows, err := s.db.QueryContext(ctx, `SELECT `+articleColumns+` FROM articles WHERE `+cond, arg)
	if err != nil {
		log.Error("failed to find article",
			slog.String("error", err.Error()),
			slog.String("identifier", ident.String()))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	articles := make([]domain.Article, 0, 1)
	for rows.Next() {
		a, err := scanArticle(rows.Scan)
		if err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}

// ExistsByIdentifier implements store.ArticleStore.ExistsByIdentifier.
func (s *ArticleStore) ExistsByIdentifier(ctx context.Context, ident domain.Identifier) (bool, error) {
	cond, arg := wherePredicate(ident, 1)
	return s.exists(ctx, `SELECT EXISTS (SELECT 1 FROM articles WHERE `+cond+`)`, arg)
}

// ExistsBySlug implements store.ArticleStore.ExistsBySlug.
func (s *ArticleStore) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	return s.exists(ctx, `SELECT EXISTS (SELECT 1 FROM articles WHERE slug = $1 AND is_deleted = FALSE)`, slug)
}

// ExistsBySlugExcluding implements store.ArticleStore.ExistsBySlugExcluding.
func (s *ArticleStore) ExistsBySlugExcluding(ctx context.Context, slug string, exclude domain.Identifier) (bool, error) {
	cond, arg := excludePredicate(exclude, 2)
	query := `SELECT EXISTS (SELECT 1 FROM articles WHERE slug = $1 AND is_deleted = FALSE AND ` + cond + `)`

	log := logger.FromContextOrDefault(ctx, s.logger)
	var exists bool
	if err := s.db.QueryRowContext(ctx, query, slug, arg).Scan(&exists); err != nil {
		log.Error("article slug uniqueness query failed", slog.String("error", err.Error()))
		return false, err
	}
	return exists, nil
}

// Create implements store.ArticleStore.Create.
func (s *ArticleStore) Create(ctx context.Context, article *domain.Article) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO articles (title, description, article, category_id, author_id, slug)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, is_deleted
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		article.Title,
		article.Description,
		article.Article,
		article.CategoryID,
		article.AuthorID,
		article.Slug,
	).Scan(&article.ID, &article.CreatedAt, &article.IsDeleted)
	if err != nil {
		log.Error("failed to create article",
			slog.String("error", err.Error()),
			slog.String("slug", article.Slug))
		return MapError(err)
	}

	log.Info("article created",
		slog.Int64("article_id", article.ID),
		slog.String("slug", article.Slug))
	return nil
}

// Update implements store.ArticleStore.Update.
func (s *ArticleStore) Update(ctx context.Context, ident domain.Identifier, article *domain.Article) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	cond, arg := wherePredicate(ident, 6)
	query := `
		UPDATE articles
		SET title = $1, description = $2, article = $3, category_id = $4, slug = $5
		WHERE ` + cond

	result, err := s.db.ExecContext(
		ctx,
		query,
		article.Title,
		article.Description,
		article.Article,
		article.CategoryID,
		article.Slug,
		arg,
	)
	if err != nil {
		log.Error("failed to update article",
			slog.String("error", err.Error()),
			slog.String("identifier", ident.String()))
		return MapError(err)
	}
	if err := checkRowsAffected(result, store.ErrArticleNotFound); err != nil {
		return err
	}

	log.Info("article updated",
		slog.String("identifier", ident.String()),
		slog.String("slug", article.Slug))
	return nil
}

// SoftDelete implements store.ArticleStore.SoftDelete.
func (s *ArticleStore) SoftDelete(ctx context.Context, ident domain.Identifier) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	cond, arg := wherePredicate(ident, 1)
	result, err := s.db.ExecContext(ctx, `UPDATE articles SET is_deleted = TRUE WHERE `+cond, arg)
	if err != nil {
		log.Error("failed to soft-delete article",
			slog.String("error", err.Error()),
			slog.String("identifier", ident.String()))
		return MapError(err)
	}
	if err := checkRowsAffected(result, store.ErrArticleNotFound); err != nil {
		return err
	}

	log.Info("article soft-deleted", slog.String("identifier", ident.String()))
	return nil
}

func (s *ArticleStore) exists(ctx context.Context, query string, arg any) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var exists bool
	if err := s.db.QueryRowContext(ctx, query, arg).Scan(&exists); err != nil {
		log.Error("article existence query failed", slog.String("error", err.Error()))
		return false, err
	}
	return exists, nil
}
