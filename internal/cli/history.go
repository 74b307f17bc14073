package cli

import (
	"errors"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var (
	historyLimit   int
	historyAuthors bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent interactions",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "Maximum number of entries")
	historyCmd.Flags().BoolVar(&historyAuthors, "authors", false, "Show interaction counts per author instead")
}

func runHistory(cmd *cobra.Command, args []string) error {
	db := openHistory()
	if db == nil {
		return errors.New("interaction journal is disabled or unavailable")
	}
	defer db.Close()

	if historyAuthors {
		counts, err := db.CountByAuthor()
		if err != nil {
			return err
		}
		authors := make([]string, 0, len(counts))
		for a := range counts {
			authors = append(authors, a)
		}
		sort.Slice(authors, func(i, j int) bool {
			if counts[authors[i]] != counts[authors[j]] {
				return counts[authors[i]] > counts[authors[j]]
			}
			return authors[i] < authors[j]
		})
		for _, a := range authors {
			writeOut(cmd, "%-20s %d\n", a, counts[a])
		}
		return nil
	}

	rows, err := db.Recent(historyLimit)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		writeOut(cmd, "No interactions recorded yet.\n")
		return nil
	}
	for _, r := range rows {
		who := r.Author
		if who == "" {
			who = "-"
		}
		writeOut(cmd, "%-14s %-5s %-16s health %3d→%3d  hunger %3d→%3d  mood %3d→%3d  [%s]\n",
			humanize.Time(r.Created()), r.Instruction, who,
			r.HealthBefore, r.HealthAfter,
			r.HungerBefore, r.HungerAfter,
			r.MoodBefore, r.MoodAfter,
			r.Tier)
	}

	total, err := db.Count()
	if err != nil {
		return err
	}
	version, err := db.SchemaVersion()
	if err != nil {
		return err
	}
	writeOut(cmd, "%d interactions recorded (journal schema v%d)\n", total, version)
	return nil
}
