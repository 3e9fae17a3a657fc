// Package annotations provides database operations for the per-(user, book)
// reflection/rating ledger.
//
// This package implements the ShelfStore interface defined in
// internal/http/shelf.go.
//
// # Usage
//
//	repo := annotations.NewRepository(db)
//	err := repo.Upsert(userID, bookID, "great read", 5)
//	shelf, err := repo.ListForUser(userID)
package annotations

import (
	"fmt"

	"gorm.io/gorm/clause"

	"github.com/bookcircle/server/internal/database"
	"github.com/bookcircle/server/internal/entities"
)

// Repository handles all annotation database operations.
type Repository struct {
	store *database.Database
}

// NewRepository creates a new annotations repository.
func NewRepository(store *database.Database) *Repository {
	return &Repository{store: store}
}

// Upsert stores the reflection and rating for the (user, book) pair,
// inserting on first write and overwriting in place thereafter. The
// conflict clause targets the unique (user_id, book_id) index, so the
// insert-or-update happens in one round trip and concurrent callers for
// the same pair cannot create duplicate rows or lose each other's write
// mid-check.
func (r *Repository) Upsert(userID, bookID, reflection string, rating int) error {
	if userID == "" {
		return fmt.Errorf("%w: user id is required", database.ErrValidation)
	}
	if bookID == "" {
		return fmt.Errorf("%w: book id is required", database.ErrValidation)
	}

	db, err := r.store.Conn()
	if err != nil {
		return err
	}

	annotation := entities.Annotation{
		UserID:     userID,
		BookID:     bookID,
		Reflection: reflection,
		Rating:     rating,
	}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "book_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"reflection", "rating", "updated_at"}),
	}).Create(&annotation).Error
}

// ListForUser returns every annotation of the user joined with its book's
// catalog metadata. Annotations whose book has been removed are silently
// skipped by the inner join. A user with no annotations gets an empty
// slice, not an error.
func (r *Repository) ListForUser(userID string) ([]entities.ShelfEntry, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", database.ErrValidation)
	}

	db, err := r.store.Conn()
	if err != nil {
		return nil, err
	}

	entries := []entities.ShelfEntry{}
	err = db.Table("user_actions").
		Select("user_actions.book_id, books_data.authors, books_data.book_name, books_data.image_url, books_data.average_rating, books_data.publisher, user_actions.reflection, user_actions.rating").
		Joins("INNER JOIN books_data ON books_data.book_id = user_actions.book_id").
		Where("user_actions.user_id = ?", userID).
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}

	for i := range entries {
		entries[i].Reviewed = entries[i].Reflection != "" && entries[i].Rating != 0
	}
	return entries, nil
}
