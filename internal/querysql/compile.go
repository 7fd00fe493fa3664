package querysql

import (
	"database/sql"
	"fmt"
	"sort"
	"strings"

	"github.com/aristath/AriDB/internal/schema"
)

// Builder compiles schema declarations plus untyped column/value maps into
// parameterized SQL for SQLite.
//
// Values are ALWAYS bound as named parameters, never interpolated.
// Identifiers, operators, ORDER BY text, and type/default fragments are
// interpolated verbatim: they are trusted, statically-declared
// configuration, and callers must not pass attacker-controlled text there.
type Builder struct {
	// Schema is the declared table metadata, source of truth for column
	// lookup and bind types.
	Schema schema.Schema
}

// NewBuilder creates a Builder over a declared schema.
func NewBuilder(sch schema.Schema) *Builder {
	return &Builder{Schema: sch}
}

// Cond is one WHERE entry: a comparison operator and a value. An empty
// operator means equality. The operator text is inserted into the SQL
// verbatim; only the value is parameterized.
type Cond struct {
	Op    string
	Value schema.Value
}

// Eq builds an equality condition.
func Eq(v schema.Value) Cond {
	return Cond{Value: v}
}

// Op builds a condition with an explicit comparison operator,
// e.g. Op(">", schema.Int(18)) or Op("LIKE", schema.Text("a%")).
func Op(op string, v schema.Value) Cond {
	return Cond{Op: op, Value: v}
}

// Conds maps column names to conditions, ANDed together. An empty map
// compiles to an always-true predicate.
type Conds map[string]Cond

// CreateTable compiles the idempotent DDL for a declared table,
// enumerating every column with its raw SQL type fragment in declaration
// order. It never alters an existing table.
func (b *Builder) CreateTable(table string) (string, error) {
	ts, err := b.Schema.Table(table)
	if err != nil {
		return "", err
	}

	var parts []string
	for _, col := range ts.Columns() {
		parts = append(parts, col.Name+" "+col.Type)
	}

	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", table, strings.Join(parts, ", ")), nil
}

// AddColumn compiles the additive-migration DDL for a single column. An
// empty default is normalized to the empty-string literal "".
func AddColumn(table, column, typ, deflt string) string {
	if deflt == "" {
		deflt = `""`
	}
	return fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s DEFAULT %s", table, column, typ, deflt)
}

// Insert compiles a single parameterized INSERT. Declared defaults fill
// any declared column data omits; a column with no declared default is
// left out entirely so the engine assigns it (AUTOINCREMENT keys).
// Columns present in data but not declared for the table are still
// included, bound by their native value type - if the physical table has
// no such column the statement fails at execution.
//
// Default values bind as their literal text, not through the column's
// bind type: they are declared as raw text in the schema.
func (b *Builder) Insert(table string, data map[string]schema.Value) (string, []any, error) {
	ts, err := b.Schema.Table(table)
	if err != nil {
		return "", nil, err
	}

	var columns []string
	var args []any

	for _, col := range ts.Columns() {
		if v, ok := data[col.Name]; ok {
			param, err := col.Bind.Bind(v)
			if err != nil {
				return "", nil, fmt.Errorf("insert into %s: column %q: %w", table, col.Name, err)
			}
			columns = append(columns, col.Name)
			args = append(args, sql.Named(col.Name, param))
			continue
		}
		if col.HasDefault {
			columns = append(columns, col.Name)
			args = append(args, sql.Named(col.Name, col.Default))
		}
	}

	// Undeclared extras ride along sorted, bound natively.
	var extras []string
	for name := range data {
		if _, ok := ts.Column(name); !ok {
			extras = append(extras, name)
		}
	}
	sort.Strings(extras)
	for _, name := range extras {
		param, err := schema.Param(data[name])
		if err != nil {
			return "", nil, fmt.Errorf("insert into %s: column %q: %w", table, name, err)
		}
		columns = append(columns, name)
		args = append(args, sql.Named(name, param))
	}

	if len(columns) == 0 {
		return "", nil, fmt.Errorf("insert into %s: no columns to insert", table)
	}

	placeholders := make([]string, len(columns))
	for i, name := range columns {
		placeholders[i] = ":" + name
	}

	stmt := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		table,
		strings.Join(columns, ", "),
		strings.Join(placeholders, ", "))

	return stmt, args, nil
}

// Update compiles a single parameterized UPDATE. The where map is
// interpreted as equality conditions ANDed together; an empty where
// matches all rows.
//
// Every column in where and data must be declared for the table. The
// binds for both clauses are merged into one named-parameter map with
// data merged after where, so when the two share a column name the data
// value drives BOTH the SET and the WHERE occurrence of that placeholder.
// Callers depend on this named-placeholder behavior; do not split the
// shared name into two parameters.
func (b *Builder) Update(table string, where, data map[string]schema.Value) (string, []any, error) {
	ts, err := b.Schema.Table(table)
	if err != nil {
		return "", nil, err
	}

	if len(data) == 0 {
		return "", nil, fmt.Errorf("update %s: no columns to set", table)
	}

	setCols := sortedKeys(data)
	setParts := make([]string, len(setCols))
	for i, name := range setCols {
		if _, ok := ts.Column(name); !ok {
			return "", nil, fmt.Errorf("update %s: column %q is not declared", table, name)
		}
		setParts[i] = name + " = :" + name
	}

	whereSQL := "1 = 1"
	if len(where) > 0 {
		whereCols := sortedKeys(where)
		whereParts := make([]string, len(whereCols))
		for i, name := range whereCols {
			if _, ok := ts.Column(name); !ok {
				return "", nil, fmt.Errorf("update %s: where column %q is not declared", table, name)
			}
			whereParts[i] = name + " = :" + name
		}
		whereSQL = "(" + strings.Join(whereParts, " AND ") + ")"
	}

	// One bind per name: where first, then data overwrites.
	merged := make(map[string]schema.Value, len(where)+len(data))
	for name, v := range where {
		merged[name] = v
	}
	for name, v := range data {
		merged[name] = v
	}

	var args []any
	for _, name := range sortedKeys(merged) {
		col, _ := ts.Column(name)
		param, err := col.Bind.Bind(merged[name])
		if err != nil {
			return "", nil, fmt.Errorf("update %s: column %q: %w", table, name, err)
		}
		args = append(args, sql.Named(name, param))
	}

	stmt := fmt.Sprintf("UPDATE %s SET %s WHERE %s",
		table,
		strings.Join(setParts, ", "),
		whereSQL)

	return stmt, args, nil
}

// Delete compiles a single-column equality DELETE. Compound conditions
// and operator forms are deliberately not supported here.
func (b *Builder) Delete(table, column string, value schema.Value) (string, []any, error) {
	ts, err := b.Schema.Table(table)
	if err != nil {
		return "", nil, err
	}

	col, ok := ts.Column(column)
	if !ok {
		return "", nil, fmt.Errorf("delete from %s: column %q is not declared", table, column)
	}

	param, err := col.Bind.Bind(value)
	if err != nil {
		return "", nil, fmt.Errorf("delete from %s: column %q: %w", table, column, err)
	}

	stmt := fmt.Sprintf("DELETE FROM %s WHERE %s = :%s", table, column, column)
	return stmt, []any{sql.Named(column, param)}, nil
}

// Select compiles a filtered SELECT *. An empty conds map compiles to an
// always-true predicate. A limit of -1 means no LIMIT clause; offset is
// only emitted when positive and a LIMIT is present. orderBy is appended
// verbatim when non-empty. Condition keys are sorted so the SQL text is
// deterministic.
func (b *Builder) Select(table string, conds Conds, limit, offset int, orderBy string) (string, []any, error) {
	ts, err := b.Schema.Table(table)
	if err != nil {
		return "", nil, err
	}

	whereSQL := "1 = 1"
	var args []any
	if len(conds) > 0 {
		names := make([]string, 0, len(conds))
		for name := range conds {
			names = append(names, name)
		}
		sort.Strings(names)

		parts := make([]string, len(names))
		for i, name := range names {
			col, ok := ts.Column(name)
			if !ok {
				return "", nil, fmt.Errorf("select from %s: column %q is not declared", table, name)
			}
			cond := conds[name]
			op := cond.Op
			if op == "" {
				op = "="
			}
			param, err := col.Bind.Bind(cond.Value)
			if err != nil {
				return "", nil, fmt.Errorf("select from %s: column %q: %w", table, name, err)
			}
			parts[i] = fmt.Sprintf("%s %s :%s", name, op, name)
			args = append(args, sql.Named(name, param))
		}
		whereSQL = "(" + strings.Join(parts, " AND ") + ")"
	}

	stmt := fmt.Sprintf("SELECT * FROM %s WHERE %s", table, whereSQL)
	if orderBy != "" {
		stmt += " ORDER BY " + orderBy
	}
	if limit >= 0 {
		stmt += fmt.Sprintf(" LIMIT %d", limit)
		if offset > 0 {
			stmt += fmt.Sprintf(" OFFSET %d", offset)
		}
	}

	return stmt, args, nil
}

// sortedKeys returns map keys sorted for deterministic SQL text.
func sortedKeys(m map[string]schema.Value) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
