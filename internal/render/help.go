package render

import (
	"fmt"
	"strings"

	"github.com/lazypower/octavia/internal/pet"
)

var descriptions = map[pet.Instruction]string{
	pet.Feed: "feed %s (lowers hunger)",
	pet.Play: "play with %s (raises mood)",
	pet.Pet:  "pet %s (raises mood a little)",
	pet.Care: "take care of %s (all-round boost)",
	pet.Heal: "heal %s (restores health)",
}

// Help renders the usage message posted when an issue title is rejected.
func Help() string {
	var b strings.Builder

	b.WriteString("## ❌ Invalid command format\n\n")
	b.WriteString("The issue title is not in the expected format.\n\n")
	b.WriteString("### Correct format\n\n")
	b.WriteString(fmt.Sprintf("The title must be `INSTRUCTION|%s`.\n", pet.DefaultName))

	b.WriteString("\n### Supported instructions\n\n")
	for _, in := range pet.Instructions {
		b.WriteString(fmt.Sprintf("- **%s** - %s\n", in, fmt.Sprintf(descriptions[in], pet.DefaultName)))
	}

	b.WriteString("\n### Examples\n\n")
	for _, in := range pet.Instructions[:3] {
		b.WriteString(fmt.Sprintf("- `%s`\n", in.Title()))
	}
	return b.String()
}
