package domain

import (
	"fmt"
	"strings"
)

// FounderProfile is the content of the founder page.
type FounderProfile struct {
	Profile  FounderBio      `json:"profile"`
	Halves   FounderHalves   `json:"halves"`
	Timeline []TimelineEvent `json:"timeline"`
}

type FounderBio struct {
	Name     string `json:"name"`
	Headline string `json:"headline"`
	Location string `json:"location,omitempty"`
	Bio      string `json:"bio,omitempty"`
	Image    string `json:"image,omitempty"`
}

// FounderHalves are the two sides of the founder story.
type FounderHalves struct {
	Tech FounderHalf `json:"tech"`
	Soil FounderHalf `json:"soil"`
}

type FounderHalf struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Points      []string `json:"points"`
}

// TimelineEvent is one entry of the founder's career, newest first.
type TimelineEvent struct {
	Year    string `json:"year"`
	Role    string `json:"role"`
	Company string `json:"company,omitempty"`
	Desc    string `json:"desc,omitempty"`
}

// Validate checks the fields the founder page cannot render without.
func (f *FounderProfile) Validate() error {
	var errs ValidationErrors
	if strings.TrimSpace(f.Profile.Name) == "" {
		errs = append(errs, NewMissingFieldError("profile.name"))
	}
	for i, ev := range f.Timeline {
		if strings.TrimSpace(ev.Year) == "" {
			errs = append(errs, NewMissingFieldError(fmt.Sprintf("timeline[%d].year", i)))
		}
		if strings.TrimSpace(ev.Role) == "" {
			errs = append(errs, NewMissingFieldError(fmt.Sprintf("timeline[%d].role", i)))
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
