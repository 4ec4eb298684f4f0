package commands

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/spendlog-dev/spendlog/internal/config"
	"github.com/spendlog-dev/spendlog/internal/prompt"
	"github.com/spendlog-dev/spendlog/internal/tracker"
)

// session is the per-invocation state built from flags, environment and
// config file.
type session struct {
	cfg        *config.Config
	configPath string
	logger     *log.Logger
	prompter   prompt.Prompter
	tracker    *tracker.Tracker
}

func newSession(cmd *cobra.Command, opts *globalOptions) (*session, error) {
	level := log.InfoLevel
	if opts.verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		Prefix: "spendlog",
		Level:  level,
	})

	if err := config.LoadDotEnv(".env"); err != nil {
		return nil, err
	}

	path := config.ConfigPath(opts.config)
	cfg, err := config.LoadOrDefault(path)
	if err != nil {
		return nil, err
	}
	cfg.ApplyOverrides(opts.store)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.Debug("loaded config", "path", path, "store", cfg.Store.Path)

	p := prompt.NewConsole(cmd.InOrStdin(), cmd.OutOrStdout())
	t := tracker.New(tracker.Options{
		Config:   cfg,
		Prompter: p,
		Out:      cmd.OutOrStdout(),
		Logger:   logger,
	})

	return &session{
		cfg:        cfg,
		configPath: path,
		logger:     logger,
		prompter:   p,
		tracker:    t,
	}, nil
}
