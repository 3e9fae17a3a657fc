// Package database provides the data access layer for the application.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection lifecycle, table creation, error taxonomy
//	├── books/           # Shared book catalog (insert-once semantics)
//	├── annotations/     # Per-(user, book) reflection/rating ledger
//	├── users/           # Registration and credential verification
//	└── friends/         # Friend graph edge table
//
// # Using Sub-packages
//
// Each sub-package provides a Repository type with domain-specific operations:
//
//	// Initialize database connection
//	db, err := database.NewDatabase("./bookcircle.db")
//
//	// Create domain-specific repositories
//	booksRepo := books.NewRepository(db)
//	shelfRepo := annotations.NewRepository(db)
//
//	// Use repositories
//	book, err := booksRepo.GetByID("B1")
//	shelf, err := shelfRepo.ListForUser(userID)
//
// Repositories borrow the connection through Database.Conn at the start of
// every call, which transparently reopens a dead connection once before the
// triggering operation runs.
//
// # Absent results
//
// Lookups that match no row return (nil, nil), never an error. Credential
// verification uses the same convention so that an unknown email and a
// wrong password are indistinguishable to callers.
package database
