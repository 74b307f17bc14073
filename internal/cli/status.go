package cli

import (
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/lazypower/octavia/internal/render"
	"github.com/lazypower/octavia/internal/store"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the pet's current stats",
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	state, err := openState()
	if err != nil {
		return err
	}
	s, err := state.Load()
	if err != nil {
		return err
	}

	updated := s.LastUpdated
	if t, err := time.Parse(store.TimestampLayout, s.LastUpdated); err == nil {
		updated = humanize.Time(t)
	}

	writeOut(cmd, "%s %s (level %d, %s)\n", s.Name, s.StatusEmoji, s.Level, s.Tier())
	writeOut(cmd, "  health: %3d/100 %s\n", s.Health, render.HealthBar(s.Health))
	writeOut(cmd, "  hunger: %3d/100 %s\n", s.Hunger, render.HungerBar(s.Hunger))
	writeOut(cmd, "  mood:   %3d/100 %s\n", s.Mood, render.MoodBar(s.Mood))
	writeOut(cmd, "  updated %s\n", updated)
	return nil
}
