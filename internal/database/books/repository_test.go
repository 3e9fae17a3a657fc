package books

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookcircle/server/internal/database"
	"github.com/bookcircle/server/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, *database.Database, func()) {
	t.Helper()
	dbPath := "./test_books_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"

	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return repo, db, cleanup
}

func TestRepository_AddOrSkip(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	err := repo.AddOrSkip(&entities.Book{
		BookID:        "B1",
		Authors:       "Frank Herbert",
		Title:         "Dune",
		ImageURL:      "https://covers.example.com/dune.jpg",
		AverageRating: 4.5,
		Publisher:     "Chilton Books",
	})
	require.NoError(t, err)

	book, err := repo.GetByID("B1")
	require.NoError(t, err)
	require.NotNil(t, book)
	assert.Equal(t, "Dune", book.Title)
	assert.Equal(t, "Frank Herbert", book.Authors)
	assert.Equal(t, "Chilton Books", book.Publisher)
}

func TestRepository_AddOrSkip_FirstWriterWins(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, repo.AddOrSkip(&entities.Book{BookID: "B1", Title: "Dune"}))
	require.NoError(t, repo.AddOrSkip(&entities.Book{BookID: "B1", Title: "Dune 2", Authors: "Someone Else"}))

	book, err := repo.GetByID("B1")
	require.NoError(t, err)
	require.NotNil(t, book)
	assert.Equal(t, "Dune", book.Title)
	assert.Empty(t, book.Authors)
}

func TestRepository_AddOrSkip_RequiresID(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	err := repo.AddOrSkip(&entities.Book{Title: "No ID"})
	assert.ErrorIs(t, err, database.ErrValidation)
}

func TestRepository_GetByID_Absent(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	book, err := repo.GetByID("missing")
	require.NoError(t, err)
	assert.Nil(t, book)
}

func TestRepository_Remove_CascadesToAnnotations(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, repo.AddOrSkip(&entities.Book{BookID: "B1", Title: "Dune"}))

	conn, err := db.Conn()
	require.NoError(t, err)
	require.NoError(t, conn.Create(&entities.Annotation{UserID: "U1", BookID: "B1", Reflection: "great", Rating: 5}).Error)
	require.NoError(t, conn.Create(&entities.Annotation{UserID: "U2", BookID: "B1", Rating: 3}).Error)

	require.NoError(t, repo.Remove("B1"))

	book, err := repo.GetByID("B1")
	require.NoError(t, err)
	assert.Nil(t, book)

	var count int64
	require.NoError(t, conn.Model(&entities.Annotation{}).Where("book_id = ?", "B1").Count(&count).Error)
	assert.Zero(t, count)
}

func TestRepository_Remove_NonexistentIsNoop(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	assert.NoError(t, repo.Remove("missing"))
}
