package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

// NewMigrateCommand creates the migrate command.
func NewMigrateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create or additively migrate the database",
		Long: `Open the database declared by the schema descriptor. Opening creates
missing tables and adds missing columns with their declared defaults;
existing tables, columns, and data are never dropped or altered.

Running migrate against an up-to-date database is a no-op.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate(rootOpts, cmd)
		},
	}

	return cmd
}

func runMigrate(opts *RootOptions, cmd *cobra.Command) error {
	st, err := openStore(opts)
	if err != nil {
		return err
	}
	defer st.Close()

	tables := make([]string, 0, len(st.Schema()))
	for name := range st.Schema() {
		tables = append(tables, name)
	}
	sort.Strings(tables)

	for _, table := range tables {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d column(s)\n", table, st.Schema()[table].Len())
	}
	return nil
}
