package store

import (
	"context"
	"fmt"

	"github.com/aristath/AriDB/internal/schema"
)

// Insert executes exactly one parameterized INSERT into a declared table.
// data may be a partial column set: declared defaults fill any declared
// column it omits. Columns with no declared default (AUTOINCREMENT keys)
// are left to the engine. Columns present in data but not declared are
// still included in the statement; if the physical table has no such
// column, the driver's error propagates.
//
// On failure (constraint violation, bind-type mismatch) the error
// propagates to the caller; a failed statement leaves no partial state
// beyond what SQLite guarantees for a single auto-committed statement.
func (s *SchemaStore) Insert(ctx context.Context, table string, data map[string]schema.Value) error {
	stmt, args, err := s.builder.Insert(table, data)
	if err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, stmt, args...); err != nil {
		return fmt.Errorf("insert into %s: %w", table, err)
	}

	return nil
}

// Update executes exactly one UPDATE setting data on every row matching
// where (equality conditions ANDed together; an empty where matches all
// rows). No row-count feedback is returned.
//
// When where and data share a column name, the data value drives both the
// SET and the WHERE occurrence of that placeholder: the binds are merged
// into a single named-parameter map with data merged after where. This is
// load-bearing behavior, pinned by a regression test.
func (s *SchemaStore) Update(ctx context.Context, table string, where, data map[string]schema.Value) error {
	stmt, args, err := s.builder.Update(table, where, data)
	if err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, stmt, args...); err != nil {
		return fmt.Errorf("update %s: %w", table, err)
	}

	return nil
}

// Delete removes every row where column equals value. Single-column
// equality only - the richer operator conditions of Get are deliberately
// not supported here.
func (s *SchemaStore) Delete(ctx context.Context, table, column string, value schema.Value) error {
	stmt, args, err := s.builder.Delete(table, column, value)
	if err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, stmt, args...); err != nil {
		return fmt.Errorf("delete from %s: %w", table, err)
	}

	return nil
}
