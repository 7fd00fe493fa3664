package store

import (
	"context"
	"database/sql"
	"fmt"
	"sort"

	"github.com/aristath/AriDB/internal/querysql"
)

// migrate brings the database file up to date with the declared schema.
// Additive only: tables are created if absent, missing columns are added
// with their declared defaults. Nothing is ever dropped or retyped.
func (s *SchemaStore) migrate(ctx context.Context) error {
	// Sorted for deterministic DDL order
	tables := make([]string, 0, len(s.schema))
	for name := range s.schema {
		tables = append(tables, name)
	}
	sort.Strings(tables)

	for _, table := range tables {
		stmt, err := s.builder.CreateTable(table)
		if err != nil {
			return err
		}
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create table %s: %w", table, err)
		}

		for _, col := range s.schema[table].Columns() {
			if err := s.AddColumn(ctx, table, col.Name, col.Type, col.Default); err != nil {
				return err
			}
		}
	}

	return nil
}

// ColumnExists reports whether a column of that exact name currently
// exists physically in storage, independent of the declared schema. This
// is what drives the additive migration.
func (s *SchemaStore) ColumnExists(ctx context.Context, table, column string) (bool, error) {
	rows, err := s.db.QueryContext(ctx, `PRAGMA table_info(`+table+`)`)
	if err != nil {
		return false, fmt.Errorf("query table info %s: %w", table, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			cid     int
			name    string
			typeStr string
			notNull int
			dfltVal sql.NullString
			pk      int
		)
		if err := rows.Scan(&cid, &name, &typeStr, &notNull, &dfltVal, &pk); err != nil {
			return false, fmt.Errorf("scan table info %s: %w", table, err)
		}
		if name == column {
			return true, nil
		}
	}
	if err := rows.Err(); err != nil {
		return false, fmt.Errorf("iterate table info %s: %w", table, err)
	}
	return false, nil
}

// AddColumn adds a column to a table's physical structure with the given
// raw type fragment and default literal; an empty default is normalized to
// the empty-string literal "". A no-op if the column already exists, so
// calling it repeatedly is safe.
func (s *SchemaStore) AddColumn(ctx context.Context, table, column, typ, deflt string) error {
	exists, err := s.ColumnExists(ctx, table, column)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	if _, err := s.db.ExecContext(ctx, querysql.AddColumn(table, column, typ, deflt)); err != nil {
		return fmt.Errorf("add column %s.%s: %w", table, column, err)
	}
	return nil
}
