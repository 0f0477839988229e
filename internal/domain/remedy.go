package domain

import (
	"fmt"
	"strings"
)

// Remedy is a single catalog entry.
type Remedy struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Symptoms    []string `json:"symptoms"`
	Ingredients []string `json:"ingredients"`
	Tradition   string   `json:"tradition,omitempty"`
	Science     string   `json:"science,omitempty"`
	Preparation []string `json:"preparation,omitempty"`
	Image       string   `json:"image,omitempty"`
	TimeToMake  string   `json:"time,omitempty"`
}

// DefaultRemedyImage is used when a manually added remedy has no image.
const DefaultRemedyImage = "https://images.unsplash.com/photo-1515543904379-3d757afe72e3?auto=format&fit=crop&q=80&w=600"

// Validate validates the remedy
func (r *Remedy) Validate() error {
	var errs ValidationErrors
	if strings.TrimSpace(r.ID) == "" {
		errs = append(errs, NewMissingFieldError("id"))
	}
	if strings.TrimSpace(r.Title) == "" {
		errs = append(errs, NewMissingFieldError("title"))
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ValidateCatalog validates every remedy and rejects duplicate ids.
func ValidateCatalog(remedies []Remedy) error {
	var errs ValidationErrors
	seen := make(map[string]bool, len(remedies))
	for i := range remedies {
		r := &remedies[i]
		if err := r.Validate(); err != nil {
			if ve, ok := err.(ValidationErrors); ok {
				for _, e := range ve {
					e.Field = "remedies[" + r.ID + "]." + e.Field
					errs = append(errs, e)
				}
			}
			continue
		}
		if seen[r.ID] {
			errs = append(errs, NewFieldError("remedies["+r.ID+"].id", "duplicate remedy id"))
		}
		seen[r.ID] = true
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Ingredient is a pantry item of the Veda Lab.
type Ingredient struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	HindiName   string `json:"hindiName,omitempty"`
	Property    string `json:"property,omitempty"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
}

// ValidatePantry rejects ingredients without an id or name and duplicate ids.
func ValidatePantry(ingredients []Ingredient) error {
	var errs ValidationErrors
	seen := make(map[string]bool, len(ingredients))
	for i, ing := range ingredients {
		if strings.TrimSpace(ing.ID) == "" {
			errs = append(errs, NewMissingFieldError(fmt.Sprintf("ingredients[%d].id", i)))
			continue
		}
		if strings.TrimSpace(ing.Name) == "" {
			errs = append(errs, NewMissingFieldError("ingredients["+ing.ID+"].name"))
		}
		if seen[ing.ID] {
			errs = append(errs, NewFieldError("ingredients["+ing.ID+"].id", "duplicate ingredient id"))
		}
		seen[ing.ID] = true
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
