package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spendlog-dev/spendlog/internal/ledger"
)

func newTotalsCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "totals",
		Short: "Show total spent per category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, opts)
			if err != nil {
				return err
			}
			return s.tracker.PrintTotals()
		},
	}
}

func newCategoriesCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the categories in use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, opts)
			if err != nil {
				return err
			}
			cats, err := s.tracker.Categories()
			if errors.Is(err, ledger.ErrNoStore) {
				fmt.Fprintln(cmd.OutOrStdout(), "No expense file found.")
				return nil
			}
			if err != nil {
				return err
			}
			for _, c := range cats {
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}
			return nil
		},
	}
}
