package domain

import "strings"

// Gender selects the body map silhouette and its gender specific symptoms.
type Gender string

const (
	GenderFemale Gender = "female"
	GenderMale   Gender = "male"
)

// SymptomCommon marks a zone symptom that applies to every gender.
const SymptomCommon = "common"

// ParseGender accepts "female" or "male"; an empty label defaults to female.
func ParseGender(label string) (Gender, error) {
	switch Gender(strings.ToLower(strings.TrimSpace(label))) {
	case "", GenderFemale:
		return GenderFemale, nil
	case GenderMale:
		return GenderMale, nil
	default:
		return "", NewInvalidInputError("gender must be female or male")
	}
}

// ZoneSymptom is a symptom listed under a body zone.
type ZoneSymptom struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// BodyZone groups symptoms for a region of the body map.
type BodyZone struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Symptoms    []ZoneSymptom `json:"symptoms"`
}

// SymptomsFor returns the names of symptoms that are common or specific to g.
func (z BodyZone) SymptomsFor(g Gender) []string {
	names := make([]string, 0, len(z.Symptoms))
	for _, s := range z.Symptoms {
		if s.Type == SymptomCommon || s.Type == string(g) {
			names = append(names, s.Name)
		}
	}
	return names
}

// ValidateBodyZones checks zone names and symptom types.
func ValidateBodyZones(zones map[string]BodyZone) error {
	var errs ValidationErrors
	for id, z := range zones {
		if strings.TrimSpace(id) == "" {
			errs = append(errs, NewMissingFieldError("zones.id"))
		}
		if strings.TrimSpace(z.Name) == "" {
			errs = append(errs, NewMissingFieldError("zones["+id+"].name"))
		}
		for _, s := range z.Symptoms {
			switch s.Type {
			case SymptomCommon, string(GenderFemale), string(GenderMale):
			default:
				errs = append(errs, NewInvalidFormatError("zones["+id+"].symptoms.type", s.Type))
			}
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
