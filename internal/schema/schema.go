package schema

import "fmt"

// ColumnSpec declares a single column: its name, the raw SQL type fragment
// used in DDL (e.g. "INTEGER PRIMARY KEY AUTOINCREMENT"), the parameter
// bind type, and the declared default.
//
// HasDefault distinguishes a declared empty-string default from no default
// at all. A column with no default is never filled in on insert, which is
// what lets AUTOINCREMENT keys be engine-assigned.
//
// Type and Default are trusted literal text embedded directly into
// generated SQL. They are expected to come from statically-declared
// configuration, never from end users.
type ColumnSpec struct {
	Name       string
	Type       string
	Bind       BindType
	Default    string
	HasDefault bool
}

// TableSchema is an ordered set of column declarations. Declaration order
// drives column enumeration (DDL and default merging); lookups are by name.
type TableSchema struct {
	columns []ColumnSpec
	index   map[string]int
}

// NewTableSchema builds a TableSchema from column declarations in order.
// A duplicate column name panics: schemas are static program configuration
// and a duplicate is a programming error, not a runtime condition.
func NewTableSchema(cols ...ColumnSpec) TableSchema {
	ts := TableSchema{
		columns: make([]ColumnSpec, len(cols)),
		index:   make(map[string]int, len(cols)),
	}
	copy(ts.columns, cols)
	for i, col := range cols {
		if _, dup := ts.index[col.Name]; dup {
			panic(fmt.Sprintf("schema: duplicate column %q", col.Name))
		}
		ts.index[col.Name] = i
	}
	return ts
}

// Columns returns the column declarations in declaration order.
// The returned slice is shared; callers must not modify it.
func (ts TableSchema) Columns() []ColumnSpec {
	return ts.columns
}

// Column returns the declaration for a column name.
func (ts TableSchema) Column(name string) (ColumnSpec, bool) {
	i, ok := ts.index[name]
	if !ok {
		return ColumnSpec{}, false
	}
	return ts.columns[i], true
}

// Len returns the number of declared columns.
func (ts TableSchema) Len() int {
	return len(ts.columns)
}

// Schema maps table names to their declared columns. It is supplied wholly
// at store construction and is the source of truth for migration and
// binding; it is never inferred from the database file.
type Schema map[string]TableSchema

// Table returns the declared schema for a table name.
func (s Schema) Table(name string) (TableSchema, error) {
	ts, ok := s[name]
	if !ok {
		return TableSchema{}, fmt.Errorf("table %q is not declared in the schema", name)
	}
	return ts, nil
}
