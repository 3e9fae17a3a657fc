package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookcircle/server/internal/entities"
)

// FriendStore defines database operations for friend graph management.
type FriendStore interface {
	AddFriend(ownerID, friendID string) error
	RemoveFriend(ownerID, friendID string) error
	ListFriends(ownerID string) ([]entities.UserSummary, error)
}

type FriendsController struct {
	store FriendStore
}

func NewFriendsController(store FriendStore) *FriendsController {
	return &FriendsController{store: store}
}

type friendEdgeRequest struct {
	OwnerID  string `json:"owner_id"`
	FriendID string `json:"friend_id"`
}

// AddFriend adds friend_id to owner_id's friend list. Adding an existing
// friend changes nothing; adding yourself is rejected.
// POST /api/friends
func (fc *FriendsController) AddFriend(c *gin.Context) {
	var req friendEdgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	if err := fc.store.AddFriend(req.OwnerID, req.FriendID); err != nil {
		respondCoreError(c, err, "add friend")
		return
	}

	respondSuccess(c, "friend added")
}

// RemoveFriend removes friend_id from owner_id's friend list.
// DELETE /api/friends
func (fc *FriendsController) RemoveFriend(c *gin.Context) {
	var req friendEdgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	if err := fc.store.RemoveFriend(req.OwnerID, req.FriendID); err != nil {
		respondCoreError(c, err, "remove friend")
		return
	}

	respondSuccess(c, "friend removed")
}

// ListFriends returns the owner's friends as (id, name) pairs.
// GET /api/friends/:ownerID
func (fc *FriendsController) ListFriends(c *gin.Context) {
	friends, err := fc.store.ListFriends(c.Param("ownerID"))
	if err != nil {
		respondCoreError(c, err, "list friends")
		return
	}

	c.JSON(http.StatusOK, gin.H{"friends": friends, "total": len(friends)})
}
