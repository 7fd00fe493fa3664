package schema

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Descriptor is the YAML form of a schema declaration: the database file
// path plus the tables and their columns. Columns are a list so that the
// file's declaration order is preserved.
type Descriptor struct {
	// Path is the database file to open or create.
	Path string `yaml:"path"`

	// Tables maps table names to ordered column declarations.
	Tables map[string][]ColumnDecl `yaml:"tables"`
}

// ColumnDecl is one column entry in a descriptor file.
type ColumnDecl struct {
	// Name is the column name.
	Name string `yaml:"name"`

	// Type is the raw SQL type fragment, e.g. "INTEGER PRIMARY KEY AUTOINCREMENT".
	Type string `yaml:"type"`

	// Bind names the parameter bind type: int, string, bool, null, or float.
	Bind string `yaml:"bind"`

	// Default is the declared default. A pointer so that an explicit
	// `default: ""` is distinguishable from no default at all.
	Default *string `yaml:"default,omitempty"`
}

// LoadDescriptor reads and parses a YAML schema descriptor file.
func LoadDescriptor(path string) (*Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema descriptor: %w", err)
	}

	// Strict field validation catches typos like "bindtype:" vs "bind:"
	var desc Descriptor
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&desc); err != nil {
		return nil, fmt.Errorf("failed to parse schema descriptor: %w", err)
	}

	if err := validateDescriptor(&desc); err != nil {
		return nil, fmt.Errorf("invalid schema descriptor: %w", err)
	}

	return &desc, nil
}

// Schema converts the descriptor's table declarations to a Schema.
func (d *Descriptor) Schema() (Schema, error) {
	sch := make(Schema, len(d.Tables))
	for table, decls := range d.Tables {
		cols := make([]ColumnSpec, 0, len(decls))
		seen := make(map[string]bool, len(decls))
		for _, decl := range decls {
			if seen[decl.Name] {
				return nil, fmt.Errorf("table %q: duplicate column %q", table, decl.Name)
			}
			seen[decl.Name] = true

			bt, err := ParseBindType(decl.Bind)
			if err != nil {
				return nil, fmt.Errorf("table %q column %q: %w", table, decl.Name, err)
			}
			spec := ColumnSpec{
				Name: decl.Name,
				Type: decl.Type,
				Bind: bt,
			}
			if decl.Default != nil {
				spec.Default = *decl.Default
				spec.HasDefault = true
			}
			cols = append(cols, spec)
		}
		sch[table] = NewTableSchema(cols...)
	}
	return sch, nil
}

// validateDescriptor checks required fields.
func validateDescriptor(d *Descriptor) error {
	if d.Path == "" {
		return fmt.Errorf("path is required")
	}
	if len(d.Tables) == 0 {
		return fmt.Errorf("at least one table is required")
	}
	for table, decls := range d.Tables {
		if len(decls) == 0 {
			return fmt.Errorf("table %q declares no columns", table)
		}
		for i, decl := range decls {
			if decl.Name == "" {
				return fmt.Errorf("table %q: column %d has no name", table, i)
			}
			if decl.Type == "" {
				return fmt.Errorf("table %q column %q: type is required", table, decl.Name)
			}
		}
	}
	return nil
}
