package render

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/lazypower/octavia/internal/pet"
	"github.com/lazypower/octavia/internal/store"
)

// linkLabels are the README link captions per instruction.
var linkLabels = map[pet.Instruction]string{
	pet.Feed: "Feed | lowers hunger",
	pet.Play: "Play | raises mood",
	pet.Pet:  "Pet | small mood boost",
	pet.Care: "Care | all-round boost",
	pet.Heal: "Heal | restores health",
}

// IssueLink returns the new-issue URL for an instruction. base must contain
// a {title} placeholder.
func IssueLink(base string, in pet.Instruction) string {
	return strings.ReplaceAll(base, "{title}", url.QueryEscape(in.Title()))
}

// atLeastOne repeats icon n times, never fewer than once.
func atLeastOne(icon string, n int) string {
	if n < 1 {
		n = 1
	}
	return strings.Repeat(icon, n)
}

// Readme renders the repository README status page. recent may be empty.
func Readme(s pet.State, issueBase string, recent []store.Interaction) string {
	var b strings.Builder

	b.WriteString("# Octocat-Simulator\n\n")
	b.WriteString("A community-driven virtual Octocat pet, raised through GitHub Issues.\n\n")

	b.WriteString("## Status Overview\n\n")
	b.WriteString(fmt.Sprintf("<img src=\"%s\" width=\"40%%\" alt=\"%s current status\">\n\n", s.StatusPic, s.Name))
	b.WriteString(fmt.Sprintf("- **Health**: %d / 100 %s\n", s.Health, atLeastOne("❤️", s.Health/20)))
	b.WriteString(fmt.Sprintf("- **Hunger**: %d / 100 %s\n", s.Hunger, atLeastOne("🍽️", (100-s.Hunger)/20)))
	b.WriteString(fmt.Sprintf("- **Mood**: %d / 100 %s\n", s.Mood, atLeastOne("😊", s.Mood/20)))

	b.WriteString("\n## Available Commands\n\n")
	for _, in := range pet.Instructions {
		b.WriteString(fmt.Sprintf("- [%s](%s)\n", linkLabels[in], IssueLink(issueBase, in)))
	}

	var visits []string
	for _, r := range recent {
		if r.Instruction == store.DecayAction {
			continue
		}
		ts := r.Created().UTC().Format("2006-01-02 15:04")
		visits = append(visits, fmt.Sprintf("- [%s] @%s: %s\n", ts, r.Author, r.Instruction))
	}
	if len(visits) > 0 {
		b.WriteString("\n## Recent Visitors\n\n")
		b.WriteString(strings.Join(visits, ""))
	}

	b.WriteString(fmt.Sprintf("\n**Auto-updated at %s**\n", s.LastUpdated))
	return b.String()
}
