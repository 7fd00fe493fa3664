package store

import (
	"context"
	"fmt"

	"github.com/aristath/AriDB/internal/querysql"
	"github.com/aristath/AriDB/internal/schema"
)

// Row is one record read from a table: column name to scalar value, typed
// per the engine's native return typing (not coerced back through the
// declared bind types).
type Row map[string]schema.Value

// Get returns every row of a declared table matching conds. Each entry is
// either an equality (querysql.Eq) or an explicit operator form
// (querysql.Op); an empty conds matches all rows.
//
// A limit of -1 means unbounded; any non-negative limit is emitted as a
// literal LIMIT clause, with offset emitted only when positive. orderBy is
// appended verbatim when non-empty - it is NOT parameterized, so callers
// must not pass attacker-controlled text.
//
// Returns an empty slice (never nil) if no rows match.
func (s *SchemaStore) Get(ctx context.Context, table string, conds querysql.Conds, limit, offset int, orderBy string) ([]Row, error) {
	stmt, args, err := s.builder.Select(table, conds, limit, offset, orderBy)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", table, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", table, err)
	}

	var result []Row
	for rows.Next() {
		raw := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range raw {
			ptrs[i] = &raw[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan %s: %w", table, err)
		}

		row := make(Row, len(columns))
		for i, name := range columns {
			v, err := schema.FromDriver(raw[i])
			if err != nil {
				return nil, fmt.Errorf("scan %s column %q: %w", table, name, err)
			}
			row[name] = v
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", table, err)
	}

	// Return empty slice instead of nil
	if result == nil {
		result = []Row{}
	}

	return result, nil
}

// GetAll returns every row of a declared table: no conditions, no limit,
// no ordering beyond the engine's default scan order.
func (s *SchemaStore) GetAll(ctx context.Context, table string) ([]Row, error) {
	return s.Get(ctx, table, nil, -1, 0, "")
}
