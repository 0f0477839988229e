package domain

import (
	"encoding/json"
	"strings"
)

// Dosha is one of the three Ayurvedic constitution categories.
type Dosha string

const (
	Vata  Dosha = "vata"
	Pitta Dosha = "pitta"
	Kapha Dosha = "kapha"
)

// Doshas lists every dosha in canonical order. Ties in scoring resolve to the
// earliest entry.
var Doshas = []Dosha{Vata, Pitta, Kapha}

// ParseDosha converts a label into a Dosha, rejecting anything outside the closed set.
func ParseDosha(label string) (Dosha, error) {
	d := Dosha(strings.ToLower(strings.TrimSpace(label)))
	if !d.Valid() {
		return "", NewInvalidDoshaError(label)
	}
	return d, nil
}

// Valid reports whether d is one of the known doshas.
func (d Dosha) Valid() bool {
	switch d {
	case Vata, Pitta, Kapha:
		return true
	default:
		return false
	}
}

func (d Dosha) String() string {
	return string(d)
}

// UnmarshalJSON rejects unknown labels so bad content fails at load time.
func (d *Dosha) UnmarshalJSON(data []byte) error {
	var label string
	if err := json.Unmarshal(data, &label); err != nil {
		return err
	}
	parsed, err := ParseDosha(label)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ScoreTally counts answers per dosha.
type ScoreTally map[Dosha]int

// NewScoreTally returns a tally with every dosha present at zero.
func NewScoreTally() ScoreTally {
	t := make(ScoreTally, len(Doshas))
	for _, d := range Doshas {
		t[d] = 0
	}
	return t
}

// Total is the number of answers that contributed to the tally.
func (t ScoreTally) Total() int {
	total := 0
	for _, d := range Doshas {
		total += t[d]
	}
	return total
}

// Dominant returns the dosha with the strictly greatest count, walking the
// canonical order so that equal counts keep the earlier dosha.
func (t ScoreTally) Dominant() Dosha {
	best := Doshas[0]
	for _, d := range Doshas[1:] {
		if t[d] > t[best] {
			best = d
		}
	}
	return best
}

// Clone copies the tally.
func (t ScoreTally) Clone() ScoreTally {
	c := NewScoreTally()
	for _, d := range Doshas {
		c[d] = t[d]
	}
	return c
}

// DoshaProfile is the description shown for a quiz result.
type DoshaProfile struct {
	Dosha       Dosha  `json:"dosha"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Advice      string `json:"advice"`
}

var doshaProfiles = map[Dosha]DoshaProfile{
	Vata: {
		Dosha:       Vata,
		Title:       "Vata (Air & Ether)",
		Description: "You are creative and energetic but prone to anxiety and dry skin. Grounding routines help you most.",
		Advice:      "Favour warm, oily foods and keep a strict sleep schedule.",
	},
	Pitta: {
		Dosha:       Pitta,
		Title:       "Pitta (Fire & Water)",
		Description: "You are sharp and ambitious but prone to inflammation and high internal heat.",
		Advice:      "Focus on cooling foods like cucumber and avoid spicy curries.",
	},
	Kapha: {
		Dosha:       Kapha,
		Title:       "Kapha (Earth & Water)",
		Description: "You are calm and loyal but prone to lethargy and a slow metabolism.",
		Advice:      "Counter heaviness with vigorous exercise and pungent spices like ginger.",
	},
}

// ProfileFor returns the result description for a dosha.
func ProfileFor(d Dosha) DoshaProfile {
	return doshaProfiles[d]
}
