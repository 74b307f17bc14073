// Package pet holds the pet record and the pure rules that move it:
// decay, instructions, tier classification and issue-title parsing.
package pet

// Stat bounds shared by health, hunger and mood.
const (
	MinStat = 0
	MaxStat = 100
)

// DefaultName is the pet's fixed identifier.
const DefaultName = "Octavia"

// State is the persisted pet record.
type State struct {
	Name        string `json:"name"`
	Health      int    `json:"health"`
	Hunger      int    `json:"hunger"`
	Mood        int    `json:"mood"`
	Level       int    `json:"level"`
	OwnerCount  int    `json:"owner_count"`
	StatusPic   string `json:"status_pic"`
	StatusEmoji string `json:"status_emoji"`
	LastUpdated string `json:"last_updated"`
}

// Default returns the record a fresh pet starts with. LastUpdated is left
// empty; the store stamps it on save.
func Default() State {
	s := State{
		Name:       DefaultName,
		Health:     100,
		Hunger:     50,
		Mood:       80,
		Level:      1,
		OwnerCount: 0,
	}
	return s.refresh()
}

// Tier returns the display tier for the current stats.
func (s State) Tier() Tier {
	return Classify(s.Health, s.Hunger, s.Mood)
}

// refresh recomputes the derived display fields from the stats.
func (s State) refresh() State {
	t := s.Tier()
	s.StatusPic = t.Image()
	s.StatusEmoji = t.Glyph()
	return s
}

// InRange reports whether every stat lies within [MinStat, MaxStat].
func (s State) InRange() bool {
	for _, v := range []int{s.Health, s.Hunger, s.Mood} {
		if v < MinStat || v > MaxStat {
			return false
		}
	}
	return true
}

// clamp bounds v to [MinStat, MaxStat].
func clamp(v int) int {
	if v < MinStat {
		return MinStat
	}
	if v > MaxStat {
		return MaxStat
	}
	return v
}
