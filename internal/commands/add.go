package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newAddCommand(opts *globalOptions) *cobra.Command {
	var amount, category, description, date string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record an expense",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := decimal.NewFromString(strings.TrimSpace(amount)); err != nil {
				return fmt.Errorf("invalid amount %q: %w", amount, err)
			}
			if date != "" {
				if _, err := time.Parse("2006-01-02", date); err != nil {
					return fmt.Errorf("invalid date %q: expected YYYY-MM-DD", date)
				}
			}

			s, err := newSession(cmd, opts)
			if err != nil {
				return err
			}
			e, err := s.tracker.AddExpense(strings.TrimSpace(amount), category, description, date)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Expense added. (ID: %d)\n", e.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&amount, "amount", "", "amount spent (required)")
	cmd.Flags().StringVar(&category, "category", "", "category, e.g. Food or Travel (required)")
	cmd.Flags().StringVar(&description, "description", "", "what the money was spent on")
	cmd.Flags().StringVar(&date, "date", "", "date as YYYY-MM-DD (default today)")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}
