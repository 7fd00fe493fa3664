// Package store provides the SQLite-backed schema-driven accessor for AriDB.
//
// A SchemaStore owns one connection to one database file and a declarative
// schema (table -> column -> {sql type, bind type, default}) supplied
// wholly at construction. Construction creates missing tables and
// additively migrates existing ones; after it returns, every declared
// table exists and contains at least the declared columns.
//
// # Operations
//
//   - Insert: one parameterized INSERT, data merged over declared defaults
//   - Update: one UPDATE, equality WHERE map, no row-count feedback
//   - Delete: single-column equality only
//   - Get / GetAll: filtered reads with operator conditions, literal
//     LIMIT/OFFSET, verbatim ORDER BY
//   - ColumnExists / AddColumn: physical-schema introspection and the
//     additive migration primitive
//
// # Error handling
//
// Fail-fast throughout: driver errors propagate to the immediate caller
// wrapped with context, with no retries and no recovery logic beyond what
// a single auto-committed statement guarantees.
//
// # Sharp edges
//
// Table and column names, SQL type fragments, declared defaults, condition
// operators, and ORDER BY text are interpolated into SQL verbatim; only
// values are parameterized. All of these are expected to originate from
// trusted, statically-declared configuration, never from end users.
//
// # Concurrency
//
// Synchronous and single-connection. Each call is its own implicit unit of
// work under SQLite's auto-commit; cross-process contention is handled by
// SQLite's own locking (busy_timeout is set), not by this package.
package store
