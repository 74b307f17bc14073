package pet

// Decay rates applied once per scheduled run.
const (
	decayHunger = 20
	decayMood   = 10
	decayHealth = 5

	// Health only drops while the pet is starving or miserable.
	starvingHunger = 80
	miserableMood  = 20
)

// ApplyDecay returns s after one step of time passing. Hunger rises, mood
// falls, and health falls too when hunger > 80 or mood < 20. Repeated calls
// keep degrading until the stats hit their bounds.
func ApplyDecay(s State) State {
	s.Hunger = clamp(s.Hunger + decayHunger)
	s.Mood = clamp(s.Mood - decayMood)
	if s.Hunger > starvingHunger || s.Mood < miserableMood {
		s.Health = clamp(s.Health - decayHealth)
	}
	return s.refresh()
}
