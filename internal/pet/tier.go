package pet

// Tier is the three-level display classification of a pet's condition.
type Tier int

const (
	Poor Tier = iota
	Fair
	Good
)

// Classify maps stats to a tier. Rules are checked in order and the first
// match wins:
//   - Poor: health < 30, hunger > 80 or mood < 20
//   - Fair: health < 60, hunger > 60 or mood < 40
//   - Good: everything else
func Classify(health, hunger, mood int) Tier {
	switch {
	case health < 30 || hunger > 80 || mood < 20:
		return Poor
	case health < 60 || hunger > 60 || mood < 40:
		return Fair
	default:
		return Good
	}
}

func (t Tier) String() string {
	switch t {
	case Poor:
		return "poor"
	case Fair:
		return "fair"
	default:
		return "good"
	}
}

// Image returns the status picture path rendered in the README.
func (t Tier) Image() string {
	switch t {
	case Poor:
		return "images/bad.png"
	case Fair:
		return "images/general.png"
	default:
		return "images/good.png"
	}
}

// Glyph returns the status emoji.
func (t Tier) Glyph() string {
	switch t {
	case Poor:
		return "😰"
	case Fair:
		return "😐"
	default:
		return "🐙"
	}
}
