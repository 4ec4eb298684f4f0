package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spendlog-dev/spendlog/internal/buildinfo"
	"github.com/spendlog-dev/spendlog/internal/importer"
	"github.com/spendlog-dev/spendlog/internal/shell"
)

// globalOptions holds the persistent flags shared by every subcommand.
type globalOptions struct {
	store   string
	config  string
	verbose bool
}

// NewRootCommand creates the root CLI command with all subcommands registered.
// Run without a subcommand it starts the interactive menu.
func NewRootCommand() *cobra.Command {
	opts := &globalOptions{}
	var format string

	rootCmd := &cobra.Command{
		Use:     "spendlog",
		Short:   "Personal expense tracker",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		Args:    cobra.NoArgs,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, opts)
			if err != nil {
				return err
			}
			return shell.New(s.tracker, s.prompter, cmd.OutOrStdout(), s.logger, format).Run()
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.store, "store", "", "expense CSV file (overrides config and $SPENDLOG_STORE)")
	rootCmd.PersistentFlags().StringVar(&opts.config, "config", "", "config file (default $SPENDLOG_CONFIG or spendlog.yaml)")
	rootCmd.PersistentFlags().BoolVar(&opts.verbose, "verbose", false, "enable debug logging")
	rootCmd.Flags().StringVar(&format, "format", importer.DefaultFormat, "statement format used by the import option")

	rootCmd.AddCommand(
		newInitCommand(opts),
		newAddCommand(opts),
		newImportCommand(opts),
		newTotalsCommand(opts),
		newCategoriesCommand(opts),
		newRenameCommand(opts),
		newCheckCommand(opts),
	)

	return rootCmd
}
