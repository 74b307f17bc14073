package pet

// Instruction is a user command accepted from an issue title.
type Instruction int

const (
	Feed Instruction = iota + 1
	Play
	Pet
	Care
	Heal
)

// Instructions lists every instruction in display order.
var Instructions = []Instruction{Feed, Play, Pet, Care, Heal}

var instructionNames = map[Instruction]string{
	Feed: "FEED",
	Play: "PLAY",
	Pet:  "PET",
	Care: "CARE",
	Heal: "HEAL",
}

func (i Instruction) String() string {
	if name, ok := instructionNames[i]; ok {
		return name
	}
	return "UNKNOWN"
}

// lookupInstruction matches an upper-case instruction name.
func lookupInstruction(name string) (Instruction, bool) {
	for i, n := range instructionNames {
		if n == name {
			return i, true
		}
	}
	return 0, false
}

// effect is the stat delta an instruction applies.
type effect struct {
	hunger, mood, health int
}

var effects = map[Instruction]effect{
	Feed: {hunger: -30, mood: +10, health: +5},
	Play: {hunger: +5, mood: +30},
	Pet:  {mood: +20},
	Care: {hunger: -20, mood: +15, health: +3},
	Heal: {mood: +10, health: +20},
}

// ApplyInstruction returns s with the instruction's deltas applied and
// clamped. An instruction outside the enum only refreshes the derived
// fields; callers get instructions from ParseTitle.
func ApplyInstruction(s State, in Instruction) State {
	e := effects[in]
	s.Hunger = clamp(s.Hunger + e.hunger)
	s.Mood = clamp(s.Mood + e.mood)
	s.Health = clamp(s.Health + e.health)
	return s.refresh()
}

// Title returns the issue title that triggers in, e.g. "FEED|Octavia".
func (i Instruction) Title() string {
	return i.String() + titleSep + DefaultName
}

