package content

import (
	"slices"
	"time"

	"ashi-remedies/internal/domain"
)

// Snapshot is an immutable view of the editable catalog. Queries always run
// against one snapshot so that a concurrent admin write never shows half
// applied. Callers must not modify the slices or maps it exposes.
type Snapshot struct {
	Version     uint64
	LoadedAt    time.Time
	Remedies    []domain.Remedy
	Questions   []domain.QuizQuestion
	Ingredients []domain.Ingredient
	BodyZones   map[string]domain.BodyZone
	SEO         domain.SiteSEO
	Founder     domain.FounderProfile
}

// Remedy looks up a remedy by id.
func (s *Snapshot) Remedy(id string) (domain.Remedy, bool) {
	for _, r := range s.Remedies {
		if r.ID == id {
			return r, true
		}
	}
	return domain.Remedy{}, false
}

// HasIngredient reports whether id is in the pantry.
func (s *Snapshot) HasIngredient(id string) bool {
	return slices.ContainsFunc(s.Ingredients, func(ing domain.Ingredient) bool {
		return ing.ID == id
	})
}

// Zone looks up a body zone by id.
func (s *Snapshot) Zone(id string) (domain.BodyZone, bool) {
	z, ok := s.BodyZones[id]
	return z, ok
}

// ZoneIDs returns the body zone ids in lexical order.
func (s *Snapshot) ZoneIDs() []string {
	ids := make([]string, 0, len(s.BodyZones))
	for id := range s.BodyZones {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
