package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aristath/AriDB/internal/schema"
)

func TestOpen_CreatesNewDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	s, err := Open(path, usersSchema())
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer s.Close()

	// Verify file was created
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
}

func TestOpen_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	// Open multiple times
	for i := 0; i < 3; i++ {
		s, err := Open(path, usersSchema())
		if err != nil {
			t.Fatalf("Open() iteration %d failed: %v", i, err)
		}
		s.Close()
	}

	// Final open should work and declared columns should exist
	s, err := Open(path, usersSchema())
	if err != nil {
		t.Fatalf("final Open() failed: %v", err)
	}
	defer s.Close()

	for _, column := range []string{"id", "name", "email", "age"} {
		exists, err := s.ColumnExists(context.Background(), "users", column)
		if err != nil {
			t.Fatalf("ColumnExists(%q) failed: %v", column, err)
		}
		if !exists {
			t.Errorf("column %q not found after idempotent opens", column)
		}
	}
}

func TestOpen_InvalidPath(t *testing.T) {
	// Try to open in non-existent directory
	path := "/nonexistent/dir/test.db"

	_, err := Open(path, usersSchema())
	if err == nil {
		t.Error("expected error for invalid path, got nil")
	}
}

func TestOpen_MalformedTypeFragment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	sch := schema.Schema{
		"broken": schema.NewTableSchema(
			schema.ColumnSpec{Name: "id", Type: "NOT VALID SQL %%%", Bind: schema.BindInt},
		),
	}

	_, err := Open(path, sch)
	if err == nil {
		t.Error("expected error for malformed type fragment, got nil")
	}
}

// Reopening an existing file with an additively-extended schema must keep
// prior rows intact and add the new column with its declared default.
func TestOpen_AdditiveMigration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	s1, err := Open(path, usersSchema())
	if err != nil {
		t.Fatalf("first Open() failed: %v", err)
	}
	insertJohn(t, s1)
	s1.Close()

	extended := usersSchema()
	cols := append(extended["users"].Columns(),
		schema.ColumnSpec{Name: "city", Type: "TEXT", Bind: schema.BindString, Default: `"unknown"`, HasDefault: true},
	)
	extended["users"] = schema.NewTableSchema(cols...)

	s2, err := Open(path, extended)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer s2.Close()

	rows, err := s2.GetAll(context.Background(), "users")
	if err != nil {
		t.Fatalf("GetAll() failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows after migration, want 1", len(rows))
	}
	if rows[0]["name"] != schema.Text("John Doe") {
		t.Errorf("name = %v, want John Doe", rows[0]["name"])
	}
	if rows[0]["city"] != schema.Text("unknown") {
		t.Errorf("city = %v, want declared default \"unknown\"", rows[0]["city"])
	}
}

func TestColumnExists_ReflectsPhysicalSchema(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	exists, err := s.ColumnExists(ctx, "users", "nonexistent")
	if err != nil {
		t.Fatalf("ColumnExists() failed: %v", err)
	}
	if exists {
		t.Error("ColumnExists() = true for a column that was never added")
	}

	if err := s.AddColumn(ctx, "users", "nickname", "TEXT", ""); err != nil {
		t.Fatalf("AddColumn() failed: %v", err)
	}

	exists, err = s.ColumnExists(ctx, "users", "nickname")
	if err != nil {
		t.Fatalf("ColumnExists() after AddColumn failed: %v", err)
	}
	if !exists {
		t.Error("ColumnExists() = false after AddColumn")
	}

	// Adding again is a no-op, not an error
	if err := s.AddColumn(ctx, "users", "nickname", "TEXT", ""); err != nil {
		t.Errorf("repeated AddColumn() errored: %v", err)
	}
}
