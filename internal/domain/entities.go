package domain

import "time"

// Field length bounds shared by the validators, the identifier resolver
// and the database schema.
const (
	UserNameMinLength     = 3
	UserNameMaxLength     = 20
	UserEmailMinLength    = 3
	UserEmailMaxLength    = 50
	UserPasswordMinLength = 8
	UserPasswordMaxLength = 512

	CategoryNameMinLength = 1
	CategoryNameMaxLength = 50

	ArticleTitleMinLength       = 1
	ArticleTitleMaxLength       = 100
	ArticleDescriptionMinLength = 1
	ArticleDescriptionMaxLength = 200
)

// User is a registered account. The password hash is never serialized.
type User struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"`
	IsAdmin        bool      `json:"is_admin"`
	IsEmailPublic  bool      `json:"is_email_public"`
	ProfilePicture *string   `json:"profile_picture"`
	Slug           string    `json:"slug"`
	CreatedAt      time.Time `json:"created_at"`
}

// Category groups articles. Rows are soft-deleted, never removed.
type Category struct {
	ID        int64     `json:"id"`
	Category  string    `json:"category"`
	AuthorID  int64     `json:"author_id"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
	IsDeleted bool      `json:"is_deleted"`
}

// Article is a published post. AuthorID always comes from the
// authenticated caller, never from the request body.
type Article struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Article     string    `json:"article"`
	CategoryID  int64     `json:"category_id"`
	AuthorID    int64     `json:"author_id"`
	Slug        string    `json:"slug"`
	CreatedAt   time.Time `json:"created_at"`
	IsDeleted   bool      `json:"is_deleted"`
}

// Commentary is a threaded reply on an article. The schema exists but
// no routes are implemented yet.
type Commentary struct {
	ID           int64     `json:"id"`
	Commentary   string    `json:"commentary"`
	ArticleID    int64     `json:"article_id"`
	CommentaryID *int64    `json:"commentary_id"`
	AuthorID     int64     `json:"author_id"`
	CreatedAt    time.Time `json:"created_at"`
	IsDeleted    bool      `json:"is_deleted"`
}
