package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/aristath/AriDB/internal/schema"
)

// usersSchema declares the table used by most tests: an AUTOINCREMENT key
// plus three text-ish columns with empty declared defaults.
func usersSchema() schema.Schema {
	return schema.Schema{
		"users": schema.NewTableSchema(
			schema.ColumnSpec{Name: "id", Type: "INTEGER PRIMARY KEY AUTOINCREMENT", Bind: schema.BindInt},
			schema.ColumnSpec{Name: "name", Type: "TEXT", Bind: schema.BindString, HasDefault: true},
			schema.ColumnSpec{Name: "email", Type: "TEXT", Bind: schema.BindString, HasDefault: true},
			schema.ColumnSpec{Name: "age", Type: "INTEGER", Bind: schema.BindInt, HasDefault: true},
		),
	}
}

// createTestStore opens a store on a fresh temp file with the users schema.
func createTestStore(t *testing.T) *SchemaStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path, usersSchema())
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// insertJohn inserts the canonical test row.
func insertJohn(t *testing.T, s *SchemaStore) {
	t.Helper()
	err := s.Insert(context.Background(), "users", map[string]schema.Value{
		"name":  schema.Text("John Doe"),
		"email": schema.Text("john.doe@example.com"),
	})
	if err != nil {
		t.Fatalf("Insert() failed: %v", err)
	}
}
