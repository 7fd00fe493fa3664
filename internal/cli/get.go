package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aristath/AriDB/internal/querysql"
	"github.com/aristath/AriDB/internal/schema"
)

// GetOptions holds flags for the get command.
type GetOptions struct {
	*RootOptions
	Where   []string
	Limit   int
	Offset  int
	OrderBy string
}

// NewGetCommand creates the get command.
func NewGetCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GetOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "get <table>",
		Short: "Read rows from a declared table",
		Long: `Read rows from a declared table, printed as one JSON object per line.

Each --where entry is "column=value" for equality or "column<op>value"
with one of < > <= >= != as the operator. Values parse as JSON scalars
where possible, otherwise as plain text.

Examples:
  aridb get users
  aridb get users --where 'name=John Doe'
  aridb get users --where 'age>18' --order-by 'age DESC' --limit 10`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringArrayVar(&opts.Where, "where", nil, "condition, repeatable")
	cmd.Flags().IntVar(&opts.Limit, "limit", -1, "maximum rows, -1 for unbounded")
	cmd.Flags().IntVar(&opts.Offset, "offset", 0, "rows to skip, requires --limit")
	cmd.Flags().StringVar(&opts.OrderBy, "order-by", "", "raw ORDER BY text")

	return cmd
}

func runGet(opts *GetOptions, table string, cmd *cobra.Command) error {
	conds, err := parseConds(opts.Where)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid --where", err)
	}

	st, err := openStore(opts.RootOptions)
	if err != nil {
		return err
	}
	defer st.Close()

	rows, err := st.Get(context.Background(), table, conds, opts.Limit, opts.Offset, opts.OrderBy)
	if err != nil {
		return WrapExitError(ExitFailure, "query failed", err)
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	for _, row := range rows {
		if err := enc.Encode(row); err != nil {
			return WrapExitError(ExitCommandError, "failed to encode row", err)
		}
	}

	if opts.Verbose {
		fmt.Fprintf(cmd.ErrOrStderr(), "%d row(s)\n", len(rows))
	}
	return nil
}

// condOps are the operator spellings recognized in --where entries,
// longest first so "<=" wins over "<".
var condOps = []string{"<=", ">=", "!=", "=", "<", ">"}

// parseConds turns --where entries into conditions. The first operator
// occurrence splits column from value.
func parseConds(entries []string) (querysql.Conds, error) {
	if len(entries) == 0 {
		return nil, nil
	}

	conds := make(querysql.Conds, len(entries))
	for _, entry := range entries {
		op, idx := "", -1
		for _, candidate := range condOps {
			if i := strings.Index(entry, candidate); i > 0 && (idx == -1 || i < idx) {
				op, idx = candidate, i
			}
		}
		if idx == -1 {
			return nil, fmt.Errorf("condition %q has no operator", entry)
		}

		column := strings.TrimSpace(entry[:idx])
		value := parseScalar(entry[idx+len(op):])
		if op == "=" {
			conds[column] = querysql.Eq(value)
		} else {
			conds[column] = querysql.Op(op, value)
		}
	}
	return conds, nil
}

// parseScalar reads a value as a JSON scalar when it looks like one,
// falling back to plain text.
func parseScalar(s string) schema.Value {
	if v, err := schema.UnmarshalValue([]byte(s)); err == nil {
		return v
	}
	return schema.Text(s)
}
