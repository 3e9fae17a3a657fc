package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookcircle/server/internal/entities"
)

// BookStore defines database operations for catalog management.
type BookStore interface {
	AddOrSkip(book *entities.Book) error
	GetByID(bookID string) (*entities.Book, error)
	Remove(bookID string) error
}

type BooksController struct {
	store BookStore
}

func NewBooksController(store BookStore) *BooksController {
	return &BooksController{store: store}
}

type addBookRequest struct {
	BookID        string  `json:"book_id"`
	Authors       string  `json:"authors"`
	Title         string  `json:"title"`
	ImageURL      string  `json:"image_url"`
	AverageRating float64 `json:"average_rating"`
	Publisher     string  `json:"publisher"`
}

// AddBook inserts a book into the shared catalog; a book that is already
// present keeps its original metadata.
// POST /api/books
func (bc *BooksController) AddBook(c *gin.Context) {
	var req addBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	book := &entities.Book{
		BookID:        req.BookID,
		Authors:       req.Authors,
		Title:         req.Title,
		ImageURL:      req.ImageURL,
		AverageRating: req.AverageRating,
		Publisher:     req.Publisher,
	}
	if err := bc.store.AddOrSkip(book); err != nil {
		respondCoreError(c, err, "add book")
		return
	}

	respondSuccess(c, "book added to catalog")
}

// GetBook returns one catalog record.
// GET /api/books/:id
func (bc *BooksController) GetBook(c *gin.Context) {
	book, err := bc.store.GetByID(c.Param("id"))
	if err != nil {
		respondCoreError(c, err, "get book")
		return
	}
	if book == nil {
		respondNotFound(c, "book")
		return
	}

	c.JSON(http.StatusOK, book)
}

// DeleteBook removes a book and all annotations referencing it.
// DELETE /api/books/:id
func (bc *BooksController) DeleteBook(c *gin.Context) {
	if err := bc.store.Remove(c.Param("id")); err != nil {
		respondCoreError(c, err, "delete book")
		return
	}

	respondSuccess(c, "book deleted")
}
