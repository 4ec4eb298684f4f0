package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spendlog-dev/spendlog/internal/editor"
	"github.com/spendlog-dev/spendlog/internal/ledger"
)

func newRenameCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "rename",
		Short: "Review a category and rename it everywhere",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, opts)
			if err != nil {
				return err
			}
			_, err = s.tracker.EditCategory()
			switch {
			case errors.Is(err, ledger.ErrNoStore):
				return errors.New("expense file not found")
			case errors.Is(err, editor.ErrCancelled):
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
				return nil
			}
			return err
		},
	}
}
