package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aristath/AriDB/internal/schema"
)

// InsertOptions holds flags for the insert command.
type InsertOptions struct {
	*RootOptions
	Data string
}

// NewInsertCommand creates the insert command.
func NewInsertCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &InsertOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "insert <table>",
		Short: "Insert one row into a declared table",
		Long: `Insert one row into a declared table.

--data is a JSON object of column to scalar value. Declared defaults fill
any declared column the object omits.

Example:
  aridb insert users --data '{"name":"John Doe","email":"john.doe@example.com"}'`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInsert(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Data, "data", "", "row data as a JSON object (required)")
	_ = cmd.MarkFlagRequired("data")

	return cmd
}

func runInsert(opts *InsertOptions, table string, cmd *cobra.Command) error {
	data, err := parseRowData(opts.Data)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid --data JSON", err)
	}

	st, err := openStore(opts.RootOptions)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.Insert(context.Background(), table, data); err != nil {
		return WrapExitError(ExitFailure, "insert failed", err)
	}

	if opts.Verbose {
		fmt.Fprintf(cmd.ErrOrStderr(), "inserted into %s\n", table)
	}
	return nil
}

// parseRowData decodes a JSON object of column to scalar value.
func parseRowData(raw string) (map[string]schema.Value, error) {
	dec := json.NewDecoder(bytes.NewReader([]byte(raw)))
	dec.UseNumber()

	var obj map[string]any
	if err := dec.Decode(&obj); err != nil {
		return nil, err
	}

	data := make(map[string]schema.Value, len(obj))
	for column, raw := range obj {
		v, err := schema.FromAny(raw)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", column, err)
		}
		data[column] = v
	}
	return data, nil
}
