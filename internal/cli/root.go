package cli

import (
	"github.com/spf13/cobra"

	"github.com/aristath/AriDB/internal/schema"
	"github.com/aristath/AriDB/internal/store"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose    bool
	Descriptor string // path to the YAML schema descriptor
}

// NewRootCommand creates the root command for the AriDB CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "aridb",
		Short: "AriDB - schema-driven SQLite accessor",
		Long: `AriDB is a developer utility over a schema-driven SQLite store.

Tables are declared in a YAML descriptor (columns, SQL types, bind types,
defaults); opening the database creates missing tables and additively adds
missing columns. The subcommands run single CRUD statements built from
that declared schema.`,
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Descriptor, "schema", "aridb.yaml", "path to YAML schema descriptor")

	// Add subcommands
	cmd.AddCommand(NewMigrateCommand(opts))
	cmd.AddCommand(NewGetCommand(opts))
	cmd.AddCommand(NewInsertCommand(opts))
	cmd.AddCommand(NewDeleteCommand(opts))

	return cmd
}

// openStore loads the descriptor and opens the store it declares. Opening
// runs the additive migration as a side effect.
func openStore(opts *RootOptions) (*store.SchemaStore, error) {
	desc, err := schema.LoadDescriptor(opts.Descriptor)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to load schema descriptor", err)
	}

	sch, err := desc.Schema()
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "invalid schema descriptor", err)
	}

	st, err := store.Open(desc.Path, sch)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to open database", err)
	}
	return st, nil
}
