// ABOUTME: Root command and shared state for the quicknotes CLI.
// ABOUTME: Loads config, builds the logger, and opens the backend and store.

package main

import (
	"fmt"

	"github.com/harper/quicknotes/internal/config"
	"github.com/harper/quicknotes/internal/kv"
	"github.com/harper/quicknotes/internal/logging"
	"github.com/harper/quicknotes/internal/store"
	"github.com/harper/quicknotes/internal/ui"
	"github.com/harper/quicknotes/internal/view"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// skipStore marks commands that run without opening the backend.
const skipStore = "skip-store"

var (
	cfg        *config.Config
	logger     *logrus.Logger
	backend    kv.Backend
	noteStore  *store.Store
	board      view.Board
	stopFollow func()
)

var rootCmd = &cobra.Command{
	Use:           "quicknotes",
	Short:         "Color-coded sticky notes for the terminal",
	Long:          `quicknotes keeps short titled notes with a color and a pin, and shows pinned notes first.`,
	Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = loadConfig(cmd)
		if err != nil {
			return err
		}

		logger, err = logging.New(cfg.LogLevel, cmd.ErrOrStderr())
		if err != nil {
			return err
		}

		if cmd.Annotations[skipStore] == "true" {
			return nil
		}
		return openStore(cmd)
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeStore()
	},
}

// loadConfig reads the config file and applies root flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	c, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if f := cmd.Flags().Lookup("backend"); f != nil && f.Changed {
		c.Backend = f.Value.String()
	}
	if f := cmd.Flags().Lookup("db"); f != nil && f.Changed {
		c.Path = f.Value.String()
	}
	if f := cmd.Flags().Lookup("log-level"); f != nil && f.Changed {
		c.LogLevel = f.Value.String()
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func openStore(cmd *cobra.Command) error {
	ctx := cmd.Context()

	b, err := kv.Open(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to open %s backend: %w", cfg.Backend, err)
	}

	s, err := store.Open(ctx, b, store.WithKey(cfg.Key), store.WithLogger(logger))
	if err != nil {
		_ = b.Close()
		return fmt.Errorf("failed to load notes: %w", err)
	}

	backend = b
	noteStore = s
	stopFollow = view.Follow(noteStore, func(latest view.Board) { board = latest })

	logger.WithFields(logrus.Fields{
		"backend": cfg.Backend,
		"notes":   noteStore.Len(),
	}).Debug("store opened")
	return nil
}

func closeStore() error {
	if stopFollow != nil {
		stopFollow()
		stopFollow = nil
	}
	noteStore = nil
	if backend == nil {
		return nil
	}
	err := backend.Close()
	backend = nil
	return err
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		_ = closeStore()
		fmt.Fprintln(rootCmd.ErrOrStderr(), ui.Error(err.Error()))
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file (default $XDG_CONFIG_HOME/quicknotes/config.yaml)")
	rootCmd.PersistentFlags().String("backend", "", "storage backend: badger, sqlite, redis, or memory")
	rootCmd.PersistentFlags().String("db", "", "badger directory or sqlite file")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, or error")
}
