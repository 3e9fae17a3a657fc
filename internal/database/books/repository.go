// Package books provides database operations for the shared book catalog.
//
// This package implements the BookStore interface defined in
// internal/http/books.go.
//
// # Usage
//
//	repo := books.NewRepository(db)
//	book, err := repo.GetByID("B1")
package books

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/bookcircle/server/internal/database"
	"github.com/bookcircle/server/internal/entities"
)

// Repository handles all book catalog database operations.
type Repository struct {
	store *database.Database
}

// NewRepository creates a new books repository.
func NewRepository(store *database.Database) *Repository {
	return &Repository{store: store}
}

// AddOrSkip inserts the book unless a row with the same id already exists.
// First writer wins: later metadata for the same id is discarded, not
// merged. The conflict clause resolves the duplicate check and the insert
// in one round trip, so two concurrent callers cannot both insert.
func (r *Repository) AddOrSkip(book *entities.Book) error {
	if book.BookID == "" {
		return fmt.Errorf("%w: book id is required", database.ErrValidation)
	}

	db, err := r.store.Conn()
	if err != nil {
		return err
	}

	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "book_id"}},
		DoNothing: true,
	}).Create(book).Error
}

// GetByID retrieves a book by its catalog id. Returns (nil, nil) when no
// such book exists.
func (r *Repository) GetByID(bookID string) (*entities.Book, error) {
	if bookID == "" {
		return nil, fmt.Errorf("%w: book id is required", database.ErrValidation)
	}

	db, err := r.store.Conn()
	if err != nil {
		return nil, err
	}

	var book entities.Book
	err = db.Where("book_id = ?", bookID).First(&book).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// Remove deletes the book and every annotation referencing it in a single
// transaction. Removing a nonexistent id is a no-op.
func (r *Repository) Remove(bookID string) error {
	if bookID == "" {
		return fmt.Errorf("%w: book id is required", database.ErrValidation)
	}

	db, err := r.store.Conn()
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("book_id = ?", bookID).Delete(&entities.Annotation{}).Error; err != nil {
			return err
		}
		return tx.Where("book_id = ?", bookID).Delete(&entities.Book{}).Error
	})
}
