package annotations

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
	dbPath := "./test_annotations_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"

	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return repo, db, cleanup
}

func createBook(t *testing.T, db *database.Database, bookID, title string) {
	t.Helper()
	conn, err := db.Conn()
	require.NoError(t, err)
	require.NoError(t, conn.Create(&entities.Book{BookID: bookID, Title: title}).Error)
}

func countAnnotations(t *testing.T, db *database.Database, userID, bookID string) int64 {
	t.Helper()
	conn, err := db.Conn()
	require.NoError(t, err)
	var count int64
	require.NoError(t, conn.Model(&entities.Annotation{}).
		Where("user_id = ? AND book_id = ?", userID, bookID).Count(&count).Error)
	return count
}

func TestRepository_Upsert_InsertThenUpdate(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()
	createBook(t, db, "B1", "Dune")

	require.NoError(t, repo.Upsert("U1", "B1", "great", 5))
	require.NoError(t, repo.Upsert("U1", "B1", "", 5))

	assert.EqualValues(t, 1, countAnnotations(t, db, "U1", "B1"))

	entries, err := repo.ListForUser("U1")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "", entries[0].Reflection)
	assert.Equal(t, 5, entries[0].Rating)
	assert.False(t, entries[0].Reviewed)
}

func TestRepository_Upsert_RequiresIDs(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	assert.ErrorIs(t, repo.Upsert("", "B1", "x", 1), database.ErrValidation)
	assert.ErrorIs(t, repo.Upsert("U1", "", "x", 1), database.ErrValidation)
}

func TestRepository_ListForUser_EmptyShelf(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	entries, err := repo.ListForUser("nobody")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRepository_ListForUser_JoinsBookMetadata(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	conn, err := db.Conn()
	require.NoError(t, err)
	require.NoError(t, conn.Create(&entities.Book{
		BookID:        "B1",
		Authors:       "Frank Herbert",
		Title:         "Dune",
		ImageURL:      "https://covers.example.com/dune.jpg",
		AverageRating: 4.5,
		Publisher:     "Chilton Books",
	}).Error)

	require.NoError(t, repo.Upsert("U1", "B1", "a classic", 5))

	entries, err := repo.ListForUser("U1")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Dune", entries[0].Title)
	assert.Equal(t, "Frank Herbert", entries[0].Authors)
	assert.Equal(t, "https://covers.example.com/dune.jpg", entries[0].ImageURL)
	assert.Equal(t, 4.5, entries[0].AverageRating)
	assert.Equal(t, "Chilton Books", entries[0].Publisher)
	assert.Equal(t, "a classic", entries[0].Reflection)
}

func TestRepository_ListForUser_ReviewedFlag(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	tests := []struct {
		name       string
		bookID     string
		reflection string
		rating     int
		reviewed   bool
	}{
		{"reflection and rating", "B1", "great", 5, true},
		{"reflection only", "B2", "great", 0, false},
		{"rating only", "B3", "", 5, false},
		{"neither", "B4", "", 0, false},
	}

	for _, tt := range tests {
		createBook(t, db, tt.bookID, "Book "+tt.bookID)
		require.NoError(t, repo.Upsert("U1", tt.bookID, tt.reflection, tt.rating))
	}

	entries, err := repo.ListForUser("U1")
	require.NoError(t, err)
	require.Len(t, entries, len(tests))

	byBook := make(map[string]entities.ShelfEntry)
	for _, e := range entries {
		byBook[e.BookID] = e
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.reviewed, byBook[tt.bookID].Reviewed)
		})
	}
}

func TestRepository_ListForUser_SkipsDanglingAnnotations(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	createBook(t, db, "B1", "Dune")
	createBook(t, db, "B2", "Hyperion")
	require.NoError(t, repo.Upsert("U1", "B1", "great", 5))
	require.NoError(t, repo.Upsert("U1", "B2", "also great", 4))

	// Remove one book out from under its annotation.
	conn, err := db.Conn()
	require.NoError(t, err)
	require.NoError(t, conn.Where("book_id = ?", "B1").Delete(&entities.Book{}).Error)

	entries, err := repo.ListForUser("U1")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "B2", entries[0].BookID)
}
