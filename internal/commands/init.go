package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/spendlog-dev/spendlog/internal/config"
)

func newInitCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the expense store and a default config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, opts)
			if err != nil {
				return err
			}
			return runInit(cmd, s)
		},
	}
}

func runInit(cmd *cobra.Command, s *session) error {
	out := cmd.OutOrStdout()

	if _, err := os.Stat(s.configPath); errors.Is(err, fs.ErrNotExist) {
		if err := config.Save(s.configPath, config.Default()); err != nil {
			return fmt.Errorf("writing config: %w", err)
		}
		fmt.Fprintf(out, "Wrote %s\n", s.configPath)
	} else if err != nil {
		return fmt.Errorf("checking config: %w", err)
	}

	created, err := s.tracker.Init()
	if err != nil {
		return fmt.Errorf("creating store: %w", err)
	}
	if created {
		fmt.Fprintf(out, "Created expense store at %s\n", s.cfg.Store.Path)
	} else {
		fmt.Fprintf(out, "Expense store already exists at %s\n", s.cfg.Store.Path)
	}
	return nil
}
