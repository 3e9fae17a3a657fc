package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookcircle/server/internal/entities"
)

// ShelfStore defines database operations for the annotation ledger.
type ShelfStore interface {
	Upsert(userID, bookID, reflection string, rating int) error
	ListForUser(userID string) ([]entities.ShelfEntry, error)
}

type ShelfController struct {
	store ShelfStore
}

func NewShelfController(store ShelfStore) *ShelfController {
	return &ShelfController{store: store}
}

type upsertAnnotationRequest struct {
	UserID     string `json:"user_id"`
	BookID     string `json:"book_id"`
	Reflection string `json:"reflection"`
	Rating     int    `json:"rating"`
}

// UpsertAnnotation stores the rating/reflection for a (user, book) pair,
// overwriting any previous values.
// PUT /api/shelf
func (sc *ShelfController) UpsertAnnotation(c *gin.Context) {
	var req upsertAnnotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	if err := sc.store.Upsert(req.UserID, req.BookID, req.Reflection, req.Rating); err != nil {
		respondCoreError(c, err, "save annotation")
		return
	}

	respondSuccess(c, "annotation saved")
}

// GetShelf returns the user's annotated books with catalog metadata.
// GET /api/shelf/:userID
func (sc *ShelfController) GetShelf(c *gin.Context) {
	entries, err := sc.store.ListForUser(c.Param("userID"))
	if err != nil {
		respondCoreError(c, err, "list shelf")
		return
	}

	c.JSON(http.StatusOK, gin.H{"shelf": entries, "total": len(entries)})
}
