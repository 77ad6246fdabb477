package mocks

import (
	"context"

	"github.com/inkwell-api/inkwell/internal/domain"
	"github.com/inkwell-api/inkwell/internal/store"
)

// MockArticleStore implements store.ArticleStore for testing, with the
// same in-memory soft-delete semantics as MockCategoryStore.
type MockArticleStore struct {
	ListFn                  func(ctx context.Context, page int) ([]domain.Article, error)
	FindByIdentifierFn      func(ctx context.Context, ident domain.Identifier) ([]domain.Article, error)
	ExistsByIdentifierFn    func(ctx context.Context, ident domain.Identifier) (bool, error)
	ExistsBySlugFn          func(ctx context.Context, slug string) (bool, error)
	ExistsBySlugExcludingFn func(ctx context.Context, slug string, exclude domain.Identifier) (bool, error)
	CreateFn                func(ctx context.Context, article *domain.Article) error
	UpdateFn                func(ctx context.Context, ident domain.Identifier, article *domain.Article) error
	SoftDeleteFn            func(ctx context.Context, ident domain.Identifier) error

	Articles []domain.Article
	nextID   int64
}

var _ store.ArticleStore = (*MockArticleStore)(nil)

// NewMockArticleStore creates a mock store with initialized defaults.
func NewMockArticleStore() *MockArticleStore {
	return &MockArticleStore{}
}

// Seed inserts an article row directly, bypassing validation.
func (m *MockArticleStore) Seed(title string, categoryID, authorID int64) domain.Article {
	m.nextID++
	a := domain.Article{
		ID:         m.nextID,
		Title:      title,
		CategoryID: categoryID,
		AuthorID:   authorID,
		Slug:       domain.Slugify(title),
	}
	m.Articles = append(m.Articles, a)
	return a
}

func (m *MockArticleStore) matches(a domain.Article, ident domain.Identifier) bool {
	if a.IsDeleted {
		return false
	}
	if ident.IsNumeric() {
		return a.ID == ident.ID()
	}
	return a.Slug == ident.Slug()
}

// List implements the ArticleStore interface.
func (m *MockArticleStore) List(ctx context.Context, page int) ([]domain.Article, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, page)
	}
	live := make([]domain.Article, 0, store.PageSize)
	for _, a := range m.Articles {
		if !a.IsDeleted {
			live = append(live, a)
		}
	}
	start := (page - 1) * store.PageSize
	if start >= len(live) {
		return []domain.Article{}, nil
	}
	end := start + store.PageSize
	if end > len(live) {
		end = len(live)
	}
	return live[start:end], nil
}

// FindByIdentifier implements the ArticleStore interface.
func (m *MockArticleStore) FindByIdentifier(ctx context.Context, ident domain.Identifier) ([]domain.Article, error) {
	if m.FindByIdentifierFn != nil {
		return m.FindByIdentifierFn(ctx, ident)
	}
	result := make([]domain.Article, 0, 1)
	for _, a := range m.Articles {
		if m.matches(a, ident) {
			result = append(result, a)
		}
	}
	return result, nil
}

// ExistsByIdentifier implements the ArticleStore interface.
func (m *MockArticleStore) ExistsByIdentifier(ctx context.Context, ident domain.Identifier) (bool, error) {
	if m.ExistsByIdentifierFn != nil {
		return m.ExistsByIdentifierFn(ctx, ident)
	}
	for _, a := range m.Articles {
		if m.matches(a, ident) {
			return true, nil
		}
	}
	return false, nil
}

// ExistsBySlug implements the ArticleStore interface.
func (m *MockArticleStore) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	if m.ExistsBySlugFn != nil {
		return m.ExistsBySlugFn(ctx, slug)
	}
	for _, a := range m.Articles {
		if !a.IsDeleted && a.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

// ExistsBySlugExcluding implements the ArticleStore interface.
func (m *MockArticleStore) ExistsBySlugExcluding(ctx context.Context, slug string, exclude domain.Identifier) (bool, error) {
	if m.ExistsBySlugExcludingFn != nil {
		return m.ExistsBySlugExcludingFn(ctx, slug, exclude)
	}
	for _, a := range m.Articles {
		if a.IsDeleted || a.Slug != slug {
			continue
		}
		if exclude.IsNumeric() {
			if a.ID != exclude.ID() {
				return true, nil
			}
		} else if a.Slug != exclude.Slug() {
			return true, nil
		}
	}
	return false, nil
}

// Create implements the ArticleStore interface.
func (m *MockArticleStore) Create(ctx context.Context, article *domain.Article) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, article)
	}
	m.nextID++
	article.ID = m.nextID
	m.Articles = append(m.Articles, *article)
	return nil
}

// Update implements the ArticleStore interface.
func (m *MockArticleStore) Update(ctx context.Context, ident domain.Identifier, article *domain.Article) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, ident, article)
	}
	for i := range m.Articles {
		if m.matches(m.Articles[i], ident) {
			m.Articles[i].Title = article.Title
			m.Articles[i].Description = article.Description
			m.Articles[i].Article = article.Article
			m.Articles[i].CategoryID = article.CategoryID
			m.Articles[i].Slug = article.Slug
			return nil
		}
	}
	return store.ErrArticleNotFound
}

// SoftDelete implements the ArticleStore interface.
func (m *MockArticleStore) SoftDelete(ctx context.Context, ident domain.Identifier) error {
	if m.SoftDeleteFn != nil {
		return m.SoftDeleteFn(ctx, ident)
	}
	for i := range m.Articles {
		if m.matches(m.Articles[i], ident) {
			m.Articles[i].IsDeleted = true
			return nil
		}
	}
	return store.ErrArticleNotFound
}
