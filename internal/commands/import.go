package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spendlog-dev/spendlog/internal/importer"
	"github.com/spendlog-dev/spendlog/internal/shell"
)

func newImportCommand(opts *globalOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import withdrawals from a bank statement CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, opts)
			if err != nil {
				return err
			}
			added, err := s.tracker.Import(shell.CleanPath(args[0]), format)
			if err != nil {
				if len(added) > 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "Imported %d expense(s) before the failure.\n", len(added))
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Import complete. %d expense(s) added.\n", len(added))
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", importer.DefaultFormat, "statement format (hdfc or chase)")

	return cmd
}
