package mocks

import (
	"context"

	"github.com/inkwell-api/inkwell/internal/domain"
	"github.com/inkwell-api/inkwell/internal/store"
)

// MockCategoryStore implements store.CategoryStore for testing. The
// default implementation keeps rows in a slice and honors the same
// soft-delete semantics as the real store.
type MockCategoryStore struct {
	ListFn                  func(ctx context.Context, page int) ([]domain.Category, error)
	FindByIdentifierFn      func(ctx context.Context, ident domain.Identifier) ([]domain.Category, error)
	ExistsByIdentifierFn    func(ctx context.Context, ident domain.Identifier) (bool, error)
	ExistsByIDFn            func(ctx context.Context, id int64) (bool, error)
	ExistsBySlugFn          func(ctx context.Context, slug string) (bool, error)
	ExistsBySlugExcludingFn func(ctx context.Context, slug string, exclude domain.Identifier) (bool, error)
	CreateFn                func(ctx context.Context, category *domain.Category) error
	UpdateFn                func(ctx context.Context, ident domain.Identifier, category *domain.Category) error
	SoftDeleteFn            func(ctx context.Context, ident domain.Identifier) error

	Categories []domain.Category
	nextID     int64
}

var _ store.CategoryStore = (*MockCategoryStore)(nil)

// NewMockCategoryStore creates a mock store with initialized defaults.
func NewMockCategoryStore() *MockCategoryStore {
	return &MockCategoryStore{}
}

// Seed inserts a category row directly, bypassing validation.
func (m *MockCategoryStore) Seed(name string, authorID int64) domain.Category {
	m.nextID++
	c := domain.Category{
		ID:       m.nextID,
		Category: name,
		AuthorID: authorID,
		Slug:     domain.Slugify(name),
	}
	m.Categories = append(m.Categories, c)
	return c
}

func (m *MockCategoryStore) matches(c domain.Category, ident domain.Identifier) bool {
	if c.IsDeleted {
		return false
	}
	if ident.IsNumeric() {
		return c.ID == ident.ID()
	}
	return c.Slug == ident.Slug()
}

// List implements the CategoryStore interface.
func (m *MockCategoryStore) List(ctx context.Context, page int) ([]domain.Category, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, page)
	}
	live := make([]domain.Category, 0, store.PageSize)
	for _, c := range m.Categories {
		if !c.IsDeleted {
			live = append(live, c)
		}
	}
	start := (page - 1) * store.PageSize
	if start >= len(live) {
		return []domain.Category{}, nil
	}
	end := start + store.PageSize
	if end > len(live) {
		end = len(live)
	}
	return live[start:end], nil
}

// FindByIdentifier implements the CategoryStore interface.
func (m *MockCategoryStore) FindByIdentifier(ctx context.Context, ident domain.Identifier) ([]domain.Category, error) {
	if m.FindByIdentifierFn != nil {
		return m.FindByIdentifierFn(ctx, ident)
	}
	result := make([]domain.Category, 0, 1)
	for _, c := range m.Categories {
		if m.matches(c, ident) {
			result = append(result, c)
		}
	}
	return result, nil
}

// ExistsByIdentifier implements the CategoryStore interface.
func (m *MockCategoryStore) ExistsByIdentifier(ctx context.Context, ident domain.Identifier) (bool, error) {
	if m.ExistsByIdentifierFn != nil {
		return m.ExistsByIdentifierFn(ctx, ident)
	}
	for _, c := range m.Categories {
		if m.matches(c, ident) {
			return true, nil
		}
	}
	return false, nil
}

// ExistsByID implements the CategoryStore interface.
func (m *MockCategoryStore) ExistsByID(ctx context.Context, id int64) (bool, error) {
	if m.ExistsByIDFn != nil {
		return m.ExistsByIDFn(ctx, id)
	}
	for _, c := range m.Categories {
		if !c.IsDeleted && c.ID == id {
			return true, nil
		}
	}
	return false, nil
}

// ExistsBySlug implements the CategoryStore interface.
func (m *MockCategoryStore) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	if m.ExistsBySlugFn != nil {
		return m.ExistsBySlugFn(ctx, slug)
	}
	for _, c := range m.Categories {
		if !c.IsDeleted && c.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

// ExistsBySlugExcluding implements the CategoryStore interface.
func (m *MockCategoryStore) ExistsBySlugExcluding(ctx context.Context, slug string, exclude domain.Identifier) (bool, error) {
	if m.ExistsBySlugExcludingFn != nil {
		return m.ExistsBySlugExcludingFn(ctx, slug, exclude)
	}
	for _, c := range m.Categories {
		if c.IsDeleted || c.Slug != slug {
			continue
		}
		if exclude.IsNumeric() {
			if c.ID != exclude.ID() {
				return true, nil
			}
		} else if c.Slug != exclude.Slug() {
			return true, nil
		}
	}
	return false, nil
}

// Create implements the CategoryStore interface.
func (m *MockCategoryStore) Create(ctx context.Context, category *domain.Category) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, category)
	}
	m.nextID++
	category.ID = m.nextID
	m.Categories = append(m.Categories, *category)
	return nil
}

// Update implements the CategoryStore interface.
func (m *MockCategoryStore) Update(ctx context.Context, ident domain.Identifier, category *domain.Category) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, ident, category)
	}
	for i := range m.Categories {
		if m.matches(m.Categories[i], ident) {
			m.Categories[i].Category = category.Category
			m.Categories[i].Slug = category.Slug
			return nil
		}
	}
	return store.ErrCategoryNotFound
}

// SoftDelete implements the CategoryStore interface.
func (m *MockCategoryStore) SoftDelete(ctx context.Context, ident domain.Identifier) error {
	if m.SoftDeleteFn != nil {
		return m.SoftDeleteFn(ctx, ident)
	}
	for i := range m.Categories {
		if m.matches(m.Categories[i], ident) {
			m.Categories[i].IsDeleted = true
			return nil
		}
	}
	return store.ErrCategoryNotFound
}
