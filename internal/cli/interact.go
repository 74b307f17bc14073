package cli

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/lazypower/octavia/internal/pet"
	"github.com/lazypower/octavia/internal/trigger"
)

var (
	interactTitle  string
	interactBody   string
	interactAuthor string
	interactIssue  string
)

var interactCmd = &cobra.Command{
	Use:   "interact",
	Short: "Apply the command from an issue",
	Long: "Parse the issue title (INSTRUCTION|Octavia), decay the pet, apply the instruction and write the reply.\n" +
		"Issue fields default to ISSUE_TITLE, ISSUE_BODY, ISSUE_AUTHOR and ISSUE_NUMBER. The reply goes to\n" +
		"GITHUB_STEP_SUMMARY when set. A rejected title writes the usage help and exits non-zero.",
	RunE: runInteract,
}

func init() {
	interactCmd.Flags().StringVar(&interactTitle, "title", "", "Issue title (overrides ISSUE_TITLE)")
	interactCmd.Flags().StringVar(&interactBody, "body", "", "Issue body (overrides ISSUE_BODY)")
	interactCmd.Flags().StringVar(&interactAuthor, "author", "", "Issue author (overrides ISSUE_AUTHOR)")
	interactCmd.Flags().StringVar(&interactIssue, "issue", "", "Issue number (overrides ISSUE_NUMBER)")
}

func runInteract(cmd *cobra.Command, args []string) error {
	in := trigger.FromEnv()
	if cmd.Flags().Changed("title") {
		in.Title = interactTitle
	}
	if cmd.Flags().Changed("body") {
		in.Body = interactBody
	}
	if cmd.Flags().Changed("author") {
		in.Author = interactAuthor
	}
	if cmd.Flags().Changed("issue") {
		in.Issue = interactIssue
	}

	h, closeHandler, err := newHandler()
	if err != nil {
		return err
	}
	defer closeHandler()

	res, err := h.Interact(in)
	if err != nil && !errors.Is(err, pet.ErrRejected) {
		return err
	}

	// The help text is written for rejections too so the workflow can post it.
	if werr := trigger.WriteResponse(cfg.Response.Path, res.Response); werr != nil {
		return werr
	}
	slog.Info("response written", "path", cfg.Response.Path)
	writeOut(cmd, "%s", res.Response)
	return err
}
