package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the expense store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, opts)
			if err != nil {
				return err
			}
			problems, err := s.tracker.Check()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, p := range problems {
				fmt.Fprintln(out, p.Error())
			}
			if len(problems) > 0 {
				return fmt.Errorf("%d problem(s) found in %s", len(problems), s.cfg.Store.Path)
			}
			fmt.Fprintf(out, "%s: OK\n", s.cfg.Store.Path)
			return nil
		},
	}
}
