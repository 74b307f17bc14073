package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/lazypower/octavia/internal/render"
	"github.com/lazypower/octavia/internal/store"
)

// readmeVisitors is how many journal entries the README lists.
const readmeVisitors = 5

var readmeCmd = &cobra.Command{
	Use:   "readme",
	Short: "Regenerate the README status page",
	RunE:  runReadme,
}

func runReadme(cmd *cobra.Command, args []string) error {
	state, err := openState()
	if err != nil {
		return err
	}
	s, err := state.Load()
	if err != nil {
		return err
	}

	var recent []store.Interaction
	if db := openHistory(); db != nil {
		defer db.Close()
		recent, err = db.Recent(readmeVisitors)
		if err != nil {
			slog.Warn("load recent interactions", "error", err)
		}
	}

	content := render.Readme(s, cfg.Readme.IssueBase, recent)
	if err := os.WriteFile(cfg.Readme.Path, []byte(content), 0644); err != nil {
		return fmt.Errorf("write readme: %w", err)
	}
	slog.Info("readme updated", "path", cfg.Readme.Path)
	return nil
}
