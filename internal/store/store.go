package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/aristath/AriDB/internal/querysql"
	"github.com/aristath/AriDB/internal/schema"
)

// SchemaStore owns one SQLite connection and a declared schema, and builds
// parameterized CRUD statements from that schema. The schema is supplied
// wholly at construction; the store never infers it from the database.
type SchemaStore struct {
	db      *sql.DB
	schema  schema.Schema
	builder *querysql.Builder
}

// Open creates or opens a SQLite database at the given path and brings it
// up to date with the declared schema: every declared table is created if
// absent, and every declared column missing from an existing table is
// added with its declared default. Existing columns, tables, and data are
// never dropped or altered.
//
// The database is configured with:
//   - WAL mode for concurrent reads during writes
//   - NORMAL synchronous mode (balance durability/performance)
//   - 5-second busy timeout for lock contention
//   - a single connection (SQLite supports one writer at a time)
//
// This function is idempotent - safe to call multiple times against the
// same file, including with an additively-extended schema.
func Open(path string, sch schema.Schema) (*SchemaStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Verify connection works
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// SQLite only supports one writer at a time, so hold one connection
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}

	s := &SchemaStore{
		db:      db,
		schema:  sch,
		builder: querysql.NewBuilder(sch),
	}

	if err := s.migrate(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
// Should be called when the store is no longer needed.
func (s *SchemaStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Schema returns the declared schema the store was constructed with.
func (s *SchemaStore) Schema() schema.Schema {
	return s.schema
}

// applyPragmas sets required SQLite configuration.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}

	return nil
}
