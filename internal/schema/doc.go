// Package schema provides the declarative table metadata for AriDB.
//
// This package contains value types and the descriptor loader only. All
// other internal packages import schema; schema imports nothing internal.
//
// Key design constraints:
//   - ColumnSpec/TableSchema/Schema are plain immutable value structures
//   - Column values are a sealed tagged union (Value) - int, string,
//     float, bool, or null - never bare interface{} maps
//   - Type and Default fields are raw SQL fragments passed through
//     verbatim; they are trusted configuration, not user input
package schema
