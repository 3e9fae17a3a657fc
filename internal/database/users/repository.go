// Package users provides database operations for registration and
// credential verification.
//
// This package implements the UserStore interface defined in
// internal/http/users.go.
//
// # Usage
//
//	repo := users.NewRepository(db, bcryptCost)
//	user, err := repo.Register("alice@example.com", "Alice", password)
package users

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bookcircle/server/internal/auth"
	"github.com/bookcircle/server/internal/database"
	"github.com/bookcircle/server/internal/entities"
)

// Repository handles all user database operations.
type Repository struct {
	store      *database.Database
	bcryptCost int
}

// NewRepository creates a new users repository.
func NewRepository(store *database.Database, bcryptCost int) *Repository {
	return &Repository{store: store, bcryptCost: bcryptCost}
}

// Register creates a new user with a generated id and a bcrypt password
// hash. The plaintext password is never stored or logged.
func (r *Repository) Register(email, name, password string) (*entities.User, error) {
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", database.ErrValidation)
	}
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", database.ErrValidation)
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password is required", database.ErrValidation)
	}

	hash, err := auth.HashPassword(password, r.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	db, err := r.store.Conn()
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		UserID:       uuid.NewString(),
		Email:        email,
		Name:         name,
		PasswordHash: hash,
	}
	if err := db.Create(user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// Authenticate verifies the credentials and returns the user record on
// match. An unknown email and a wrong password both return (nil, nil);
// callers cannot tell the two apart.
func (r *Repository) Authenticate(email, password string) (*entities.User, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", database.ErrValidation)
	}

	db, err := r.store.Conn()
	if err != nil {
		return nil, err
	}

	var user entities.User
	err = db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if err := auth.CheckPassword(password, user.PasswordHash); err != nil {
		return nil, nil
	}
	return &user, nil
}

// FindByID retrieves a user by id. Returns (nil, nil) when no such user
// exists.
func (r *Repository) FindByID(userID string) (*entities.User, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", database.ErrValidation)
	}

	db, err := r.store.Conn()
	if err != nil {
		return nil, err
	}

	var user entities.User
	err = db.Where("user_id = ?", userID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// SearchByName returns (id, name) summaries of users whose name contains
// the fragment, case-insensitively.
func (r *Repository) SearchByName(fragment string) ([]entities.UserSummary, error) {
	if fragment == "" {
		return nil, fmt.Errorf("%w: search fragment is required", database.ErrValidation)
	}

	db, err := r.store.Conn()
	if err != nil {
		return nil, err
	}

	pattern := "%" + fragment + "%"
	results := []entities.UserSummary{}
	err = db.Model(&entities.User{}).
		Select("user_id, name").
		Where("LOWER(name) LIKE LOWER(?)", pattern).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
