package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// NewDeleteCommand creates the delete command.
func NewDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <table> <column> <value>",
		Short: "Delete rows matching a single-column equality",
		Long: `Delete every row where column equals value. The value parses as a JSON
scalar where possible, otherwise as plain text.

Example:
  aridb delete users name 'John Doe'`,
		Args:          cobra.ExactArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(rootOpts, args[0], args[1], args[2], cmd)
		},
	}

	return cmd
}

func runDelete(opts *RootOptions, table, column, raw string, cmd *cobra.Command) error {
	st, err := openStore(opts)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.Delete(context.Background(), table, column, parseScalar(raw)); err != nil {
		return WrapExitError(ExitFailure, "delete failed", err)
	}

	if opts.Verbose {
		fmt.Fprintf(cmd.ErrOrStderr(), "deleted from %s where %s = %s\n", table, column, raw)
	}
	return nil
}
