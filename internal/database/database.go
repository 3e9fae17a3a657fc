package database

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/bookcircle/server/internal/entities"
)

var (
	// ErrStoreUnavailable means the connection could not be reestablished.
	// Fatal for the current request; the caller must not retry internally.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrValidation is the base error for missing or malformed required
	// fields. Repositories wrap it with a field-specific message.
	ErrValidation = errors.New("validation failed")
)

// Database owns the single live store connection. Repositories borrow the
// handle for the duration of one call via Conn and never retain it.
type Database struct {
	db   *gorm.DB
	path string
}

func NewDatabase(dbPath string) (*Database, error) {
	db, err := open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(
		&entities.Book{},
		&entities.User{},
		&entities.Annotation{},
		&entities.Friendship{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	log.Printf("Database initialized successfully at %s", dbPath)

	return &Database{db: db, path: dbPath}, nil
}

func open(dbPath string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
}

// Conn verifies liveness of the current connection and returns the handle.
// On a failed ping the connection is replaced with a freshly opened one;
// this single reconnect is the only retry performed at this layer. When the
// store cannot be reached at all, the returned error wraps
// ErrStoreUnavailable.
func (d *Database) Conn() (*gorm.DB, error) {
	sqlDB, err := d.db.DB()
	if err == nil && sqlDB.Ping() == nil {
		return d.db, nil
	}

	log.Printf("Store connection lost, reopening %s", d.path)
	db, err := open(d.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if sqlDB, err := db.DB(); err != nil || sqlDB.Ping() != nil {
		return nil, fmt.Errorf("%w: reopened connection failed liveness check", ErrStoreUnavailable)
	}

	d.db = db
	return d.db, nil
}

// Ping runs the liveness check without handing out the connection. Used by
// the periodic store probe.
func (d *Database) Ping() error {
	_, err := d.Conn()
	return err
}

func (d *Database) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
