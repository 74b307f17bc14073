package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/lazypower/octavia/internal/config"
	"github.com/lazypower/octavia/internal/logging"
	"github.com/lazypower/octavia/internal/store"
	"github.com/lazypower/octavia/internal/trigger"
)

var (
	configPath string

	cfg       config.Config
	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "octavia",
	Short: "Issue-driven virtual pet",
	Long:  "Octavia is a virtual Octocat raised through GitHub Issues. Each workflow run decays her stats, applies the command from the issue title, and rewrites the status pages.",

	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the root command. The log file is closed afterwards whether
// or not the command failed.
func Execute() error {
	defer closeLog()
	return rootCmd.Execute()
}

func closeLog() {
	if logCloser != nil {
		logCloser.Close()
		logCloser = nil
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultFile, "Path to the YAML config file")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(interactCmd)
	rootCmd.AddCommand(decayCmd)
	rootCmd.AddCommand(readmeCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(historyCmd)
}

// setup loads the config and installs the default logger for every command.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		return err
	}

	logger, closer, err := logging.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return err
	}
	logCloser = closer
	slog.SetDefault(logger)
	return nil
}

// openState returns the state file store for the loaded config.
func openState() (*store.StateFile, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	return store.NewStateFile(cfg.State.Path, loc), nil
}

// openHistory opens the journal, or returns nil when it is disabled. A
// journal that cannot be opened is logged and skipped.
func openHistory() *store.DB {
	if !cfg.History.Enabled {
		return nil
	}
	db, err := store.OpenHistory(cfg.History.Path)
	if err != nil {
		slog.Warn("interaction journal unavailable", "path", cfg.History.Path, "error", err)
		return nil
	}
	return db
}

// newHandler wires a trigger handler from the loaded config. The returned
// func closes the journal.
func newHandler() (*trigger.Handler, func(), error) {
	state, err := openState()
	if err != nil {
		return nil, nil, err
	}
	h := &trigger.Handler{State: state, History: openHistory(), Logger: slog.Default()}
	return h, func() {
		if h.History != nil {
			h.History.Close()
		}
	}, nil
}

func writeOut(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}

// Main runs the CLI and exits non-zero on any error.
func Main() {
	if err := Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "octavia: %v\n", err)
		os.Exit(1)
	}
}
