package cli

import (
	"github.com/spf13/cobra"
)

var decayCmd = &cobra.Command{
	Use:   "decay",
	Short: "Apply one scheduled decay step",
	RunE:  runDecay,
}

func runDecay(cmd *cobra.Command, args []string) error {
	h, closeHandler, err := newHandler()
	if err != nil {
		return err
	}
	defer closeHandler()

	before, after, err := h.Decay()
	if err != nil {
		return err
	}

	writeOut(cmd, "before: health=%d hunger=%d mood=%d\n", before.Health, before.Hunger, before.Mood)
	writeOut(cmd, "after:  health=%d hunger=%d mood=%d %s\n", after.Health, after.Hunger, after.Mood, after.StatusEmoji)
	return nil
}
