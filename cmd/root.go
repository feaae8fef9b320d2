package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathplay/internal/config"
	"github.com/abhisek/mathplay/internal/logging"
	"github.com/abhisek/mathplay/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "mathplay",
	Short: "Arithmetic mini-games for kids",
	Long:  "Mathplay is a terminal arcade of short arithmetic games. Earn stars to unlock harder levels.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		cfg = c
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, nil)
	},
	SilenceUsage: true,
}

// cfg is resolved once per invocation before any command runs.
var cfg config.Config

func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MATHPLAY_DB env var)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (overrides MATHPLAY_LOG_LEVEL)")
	rootCmd.PersistentFlags().String("log-file", "", "Write logs to this file (overrides MATHPLAY_LOG_FILE)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads .env and the environment, then applies flags on top.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	c, err := config.Load()
	if err != nil {
		return c, fmt.Errorf("load config: %w", err)
	}
	if v, _ := cmd.Flags().GetString("db"); v != "" {
		c.DBPath = v
	}
	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		c.LogLevel = v
	}
	if v, _ := cmd.Flags().GetString("log-file"); v != "" {
		c.LogFile = v
	}
	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

// newLogger builds the command's logger. Plain commands log to stderr;
// the TUI owns the terminal, so it logs only to a file when one is set.
func newLogger(tui bool) (*slog.Logger, io.Closer, error) {
	var fallback io.Writer = os.Stderr
	if tui {
		fallback = nil
	}
	return logging.New(cfg.LogLevel, cfg.LogFile, fallback)
}

// openStore resolves the database path and opens the store.
func openStore() (*store.Store, error) {
	dbPath, err := cfg.ResolveDBPath()
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}
