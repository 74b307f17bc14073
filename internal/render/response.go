// Package render produces the Markdown documents shown to players: the
// per-issue response, the usage help, and the README status page.
package render

import (
	"fmt"
	"strings"

	"github.com/lazypower/octavia/internal/pet"
)

// thanks holds the response headline per instruction. %[1]s is the author,
// %[2]s the pet's name.
var thanks = map[pet.Instruction]string{
	pet.Feed: "Thanks @%[1]s for feeding %[2]s!",
	pet.Play: "Thanks @%[1]s for playing with %[2]s!",
	pet.Pet:  "Thanks @%[1]s for petting %[2]s!",
	pet.Care: "Thanks @%[1]s for taking care of %[2]s!",
	pet.Heal: "Thanks @%[1]s for healing %[2]s!",
}

// HealthBar renders one heart per 20 health.
func HealthBar(health int) string {
	return strings.Repeat("❤️", health/20)
}

// HungerBar renders one plate per 10 points of remaining appetite, or a
// distressed face once hunger is maxed.
func HungerBar(hunger int) string {
	if hunger >= pet.MaxStat {
		return pet.Poor.Glyph()
	}
	return strings.Repeat("🍽️", 10-hunger/10)
}

// MoodBar renders one smile per 20 mood.
func MoodBar(mood int) string {
	return strings.Repeat("😊", mood/20)
}

// Response renders the reply posted after an instruction was applied.
func Response(s pet.State, in pet.Instruction, author string) string {
	var b strings.Builder

	headline, ok := thanks[in]
	if !ok {
		headline = "Thanks @%[1]s for the command!"
	}
	b.WriteString("## ")
	b.WriteString(fmt.Sprintf(headline, author, s.Name))
	b.WriteString(" " + s.StatusEmoji + "\n")

	b.WriteString("\n### 📊 Current Status\n\n")
	b.WriteString(fmt.Sprintf("- **Health**: %d/100 %s\n", s.Health, HealthBar(s.Health)))
	b.WriteString(fmt.Sprintf("- **Hunger**: %d/100 %s\n", s.Hunger, HungerBar(s.Hunger)))
	b.WriteString(fmt.Sprintf("- **Mood**: %d/100 %s\n", s.Mood, MoodBar(s.Mood)))
	b.WriteString(fmt.Sprintf("- **Status**: <img src=\"%s\" width=\"40%%\" alt=\"%s current status\">\n", s.StatusPic, s.Name))

	b.WriteString("\n---\n")
	b.WriteString(fmt.Sprintf("*Status updated automatically | Last updated: %s*\n", s.LastUpdated))
	return b.String()
}
