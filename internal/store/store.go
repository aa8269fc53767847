// Package store is the persistence layer: solved problems, user feedback
// and the routing activity log, in a single SQLite database via GORM.
package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Store holds the database handle and provides access to repositories.
type Store struct {
	db *gorm.DB
}

// Open connects to the SQLite database at dsn, applies the recommended
// pragmas and runs auto-migration.
func Open(dsn string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if err := db.AutoMigrate(&Problem{}, &Feedback{}, &Activity{}); err != nil {
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	return &Store{db: db}, nil
}

// DB returns the underlying gorm handle for raw queries.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Problems returns a ProblemRepo backed by this store.
func (s *Store) Problems() ProblemRepo { return &problemRepo{db: s.db} }

// Feedback returns a FeedbackRepo backed by this store.
func (s *Store) Feedback() FeedbackRepo { return &feedbackRepo{db: s.db} }

// Activities returns an ActivityRepo backed by this store.
func (s *Store) Activities() ActivityRepo { return &activityRepo{db: s.db} }

// Reset deletes every stored row. Used by the reset command.
func (s *Store) Reset(ctx context.Context) error {
	for _, table := range []string{"feedbacks", "problems", "activities"} {
		if err := s.db.WithContext(ctx).Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	return nil
}

// applyPragmas configures SQLite for optimal single-user performance.
func applyPragmas(db *gorm.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if err := db.Exec(p).Error; err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. MATHROUTE_DB environment variable
// 2. $XDG_DATA_HOME/mathroute/mathroute.db
// 3. ~/.local/share/mathroute/mathroute.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("MATHROUTE_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "mathroute", "mathroute.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
