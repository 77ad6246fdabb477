package mocks

import (
	"context"

	"github.com/inkwell-api/inkwell/internal/domain"
	"github.com/inkwell-api/inkwell/internal/store"
)

// MockUserStore implements store.UserStore for testing.
type MockUserStore struct {
	CreateFn        func(ctx context.Context, user *domain.User) error
	GetByEmailFn    func(ctx context.Context, email string) (*domain.User, error)
	ExistsByEmailFn func(ctx context.Context, email string) (bool, error)
	ExistsBySlugFn  func(ctx context.Context, slug string) (bool, error)

	// Users holds the default implementation's rows, keyed by email.
	Users  map[string]*domain.User
	nextID int64
}

var _ store.UserStore = (*MockUserStore)(nil)

// NewMockUserStore creates a mock store with initialized defaults.
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{Users: make(map[string]*domain.User)}
}

// Create implements the UserStore interface.
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}
	m.nextID++
	user.ID = m.nextID
	m.Users[user.Email] = user
	return nil
}

// GetByEmail implements the UserStore interface.
func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	user, ok := m.Users[email]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return user, nil
}

// ExistsByEmail implements the UserStore interface.
func (m *MockUserStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.ExistsByEmailFn != nil {
		return m.ExistsByEmailFn(ctx, email)
	}
	_, ok := m.Users[email]
	return ok, nil
}

// ExistsBySlug implements the UserStore interface.
func (m *MockUserStore) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	if m.ExistsBySlugFn != nil {
		return m.ExistsBySlugFn(ctx, slug)
	}
	for _, user := range m.Users {
		if user.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}
