// Package store owns the local SQLite database: opening the file, running
// embedded migrations, and handing out repositories bound to the shared
// connection.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/apavlova/daybook/internal/migrations"
	"github.com/apavlova/daybook/internal/repositories/entries"
	"github.com/apavlova/daybook/internal/repositories/prefs"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// Repositories bundles the repositories backed by one database handle.
type Repositories struct {
	Entries entries.Repository
	Prefs   prefs.Repository
}

// Store is a lazy, initialize-once handle to the local database. The first
// caller of Repos (or DB) opens the file and runs migrations; concurrent
// callers block until that finishes and then share the same handle. A failed
// initialization is not retried: every later call returns the same error.
type Store struct {
	dsn string

	initOnce sync.Once
	db       *sql.DB
	repos    *Repositories
	initErr  error
}

// New returns an unopened Store for the given SQLite DSN. No I/O happens
// until the first operation.
func New(dsn string) *Store {
	return &Store{dsn: dsn}
}

// Repos initializes the database if needed and returns the repositories.
func (s *Store) Repos(ctx context.Context) (*Repositories, error) {
	if err := s.init(ctx); err != nil {
		return nil, err
	}
	return s.repos, nil
}

// DB initializes the database if needed and returns the raw handle.
func (s *Store) DB(ctx context.Context) (*sql.DB, error) {
	if err := s.init(ctx); err != nil {
		return nil, err
	}
	return s.db, nil
}

func (s *Store) init(ctx context.Context) error {
	s.initOnce.Do(func() {
		db, err := sql.Open("sqlite", s.dsn)
		if err != nil {
			s.initErr = fmt.Errorf("failed to open database: %w", err)
			return
		}

		// Single local writer; one connection also keeps ":memory:" DSNs
		// usable from the connection pool.
		db.SetMaxOpenConns(1)

		if err := RunMigrations(ctx, db); err != nil {
			_ = db.Close()
			s.initErr = fmt.Errorf("failed to run migrations: %w", err)
			return
		}

		s.db = db
		s.repos = &Repositories{
			Entries: entries.NewSQLiteRepository(db),
			Prefs:   prefs.NewSQLiteRepository(db),
		}
	})
	return s.initErr
}

// RunMigrations applies the embedded goose migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// Close releases the database handle if it was ever opened.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
