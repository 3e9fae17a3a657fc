package entities

import (
	"time"
)

// Book is a shared catalog record. The primary key is the external catalog
// identifier supplied by the client (e.g. from an upstream book API), so the
// store itself guarantees at most one row per book id.
type Book struct {
	BookID        string    `gorm:"primaryKey;size:64;column:book_id" json:"book_id"`
	Authors       string    `gorm:"size:512" json:"authors"`
	Title         string    `gorm:"column:book_name;size:512" json:"title"`
	ImageURL      string    `gorm:"size:2048" json:"image_url,omitempty"`
	AverageRating float64   `json:"average_rating"` // informational, from the upstream catalog
	Publisher     string    `gorm:"size:256" json:"publisher,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// User is a registered account. The id is assigned at registration and never
// changes. Email is unique in practice but not enforced at the store.
type User struct {
	UserID       string    `gorm:"primaryKey;size:36;column:user_id" json:"id"`
	Email        string    `gorm:"index;size:255" json:"email"`
	Name         string    `gorm:"size:256" json:"name"`
	PasswordHash string    `gorm:"size:128;column:password_hash" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// UserSummary is the (id, name) projection returned by friend search and
// friend listing.
type UserSummary struct {
	UserID string `gorm:"column:user_id" json:"id"`
	Name   string `gorm:"column:name" json:"name"`
}

// Annotation is a user's private reflection/rating for one book. The
// composite unique index makes the pair (user, book) the logical identity,
// so concurrent upserts for the same pair cannot produce duplicate rows.
type Annotation struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     string    `gorm:"uniqueIndex:idx_user_book;size:36;column:user_id" json:"user_id"`
	BookID     string    `gorm:"uniqueIndex:idx_user_book;size:64;column:book_id" json:"book_id"`
	Reflection string    `gorm:"type:text" json:"reflection"` // "" = absent
	Rating     int       `json:"rating"`                      // 0 = absent
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Friendship is one directed edge of the friend graph. The composite unique
// index makes re-adding an existing friend a no-op rather than a duplicate.
type Friendship struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	OwnerID   string    `gorm:"uniqueIndex:idx_owner_friend;size:36;column:owner_id" json:"owner_id"`
	FriendID  string    `gorm:"uniqueIndex:idx_owner_friend;size:36;column:friend_id" json:"friend_id"`
	CreatedAt time.Time `json:"created_at"`
}

// ShelfEntry is the read model for a user's shelf: one annotation joined
// with its book's catalog metadata. Reviewed is derived, never stored.
type ShelfEntry struct {
	BookID        string  `gorm:"column:book_id" json:"book_id"`
	Authors       string  `gorm:"column:authors" json:"authors"`
	Title         string  `gorm:"column:book_name" json:"title"`
	ImageURL      string  `gorm:"column:image_url" json:"image_url,omitempty"`
	AverageRating float64 `gorm:"column:average_rating" json:"average_rating"`
	Publisher     string  `gorm:"column:publisher" json:"publisher,omitempty"`
	Reflection    string  `gorm:"column:reflection" json:"reflection"`
	Rating        int     `gorm:"column:rating" json:"rating"`
	Reviewed      bool    `gorm:"-" json:"reviewed"`
}

func (Book) TableName() string {
	return "books_data"
}

func (User) TableName() string {
	return "user_logins"
}

func (Annotation) TableName() string {
	return "user_actions"
}

func (Friendship) TableName() string {
	return "friendships"
}
