package matching

import (
	"slices"

	"ashi-remedies/internal/domain"
)

// MatchIngredients returns the first remedy, in catalog order, whose
// ingredients include every selected ingredient. Extra ingredients in the
// remedy do not disqualify it. ok is false when no remedy qualifies.
//
// An empty selection is satisfied by every remedy, so the first remedy is
// returned when the catalog is not empty.
func MatchIngredients(selection []string, recipes []domain.Remedy) (remedy domain.Remedy, ok bool) {
	for _, r := range recipes {
		if containsAll(r.Ingredients, selection) {
			return r, true
		}
	}
	return domain.Remedy{}, false
}

func containsAll(set, items []string) bool {
	for _, item := range items {
		if !slices.Contains(set, item) {
			return false
		}
	}
	return true
}
