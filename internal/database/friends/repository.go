// Package friends provides database operations for the friend graph.
//
// Edges are directed rows (owner_id, friend_id) with a unique index on the
// pair, so adding an existing friend is idempotent.
//
// This package implements the FriendStore interface defined in
// internal/http/friends.go.
package friends

import (
	"fmt"

	"gorm.io/gorm/clause"

	"github.com/bookcircle/server/internal/database"
	"github.com/bookcircle/server/internal/entities"
)

// ErrSelfFriendship is returned when a user tries to befriend themselves.
var ErrSelfFriendship = fmt.Errorf("%w: cannot add yourself as a friend", database.ErrValidation)

// Repository handles all friendship database operations.
type Repository struct {
	store *database.Database
}

// NewRepository creates a new friends repository.
func NewRepository(store *database.Database) *Repository {
	return &Repository{store: store}
}

// AddFriend creates the edge owner -> friend. Self-friendship is rejected
// without touching the store. Re-adding an existing friend is a no-op: the
// conflict clause targets the unique (owner_id, friend_id) index.
func (r *Repository) AddFriend(ownerID, friendID string) error {
	if ownerID == "" || friendID == "" {
		return fmt.Errorf("%w: owner and friend ids are required", database.ErrValidation)
	}
	if ownerID == friendID {
		return ErrSelfFriendship
	}

	db, err := r.store.Conn()
	if err != nil {
		return err
	}

	edge := entities.Friendship{OwnerID: ownerID, FriendID: friendID}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "owner_id"}, {Name: "friend_id"}},
		DoNothing: true,
	}).Create(&edge).Error
}

// RemoveFriend deletes the edge owner -> friend. Removing a nonexistent
// edge is a no-op.
func (r *Repository) RemoveFriend(ownerID, friendID string) error {
	if ownerID == "" || friendID == "" {
		return fmt.Errorf("%w: owner and friend ids are required", database.ErrValidation)
	}

	db, err := r.store.Conn()
	if err != nil {
		return err
	}

	return db.Where("owner_id = ? AND friend_id = ?", ownerID, friendID).
		Delete(&entities.Friendship{}).Error
}

// ListFriends returns (id, name) summaries of the owner's friends.
func (r *Repository) ListFriends(ownerID string) ([]entities.UserSummary, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("%w: owner id is required", database.ErrValidation)
	}

	db, err := r.store.Conn()
	if err != nil {
		return nil, err
	}

	results := []entities.UserSummary{}
	err = db.Table("friendships").
		Select("user_logins.user_id, user_logins.name").
		Joins("INNER JOIN user_logins ON user_logins.user_id = friendships.friend_id").
		Where("friendships.owner_id = ?", ownerID).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
