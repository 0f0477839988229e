package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"ashi-remedies/internal/domain"
	"ashi-remedies/internal/util"
)

const (
	MaxQueryLength = 100
	MaxTagLength   = 50
)

var (
	zoneIDPattern   = regexp.MustCompile(`^[a-z0-9_-]{1,50}$`)
	resourceIDRegex = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateSearchParams validates the catalog search query and tag filter.
func (v *Validator) ValidateSearchParams(query, tag string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if n := utf8.RuneCountInString(query); n > MaxQueryLength {
		errors = append(errors, domain.NewOutOfRangeError("q", n, 0, MaxQueryLength))
	}
	if n := utf8.RuneCountInString(tag); n > MaxTagLength {
		errors = append(errors, domain.NewOutOfRangeError("tag", n, 0, MaxTagLength))
	}

	return errors
}

// ValidateSessionID validates a quiz session id path parameter
func (v *Validator) ValidateSessionID(sessionID string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(sessionID) == "" {
		errors = append(errors, domain.NewMissingFieldError("id"))
	} else if !util.IsULID(sessionID) {
		errors = append(errors, domain.NewInvalidFormatError("id", sessionID))
	}

	return errors
}

// ValidateZoneParams validates the body map zone and gender parameters
func (v *Validator) ValidateZoneParams(zoneID, gender string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(zoneID) == "" {
		errors = append(errors, domain.NewMissingFieldError("zone"))
	} else if !zoneIDPattern.MatchString(zoneID) {
		errors = append(errors, domain.NewInvalidFormatError("zone", zoneID))
	}

	if _, err := domain.ParseGender(gender); err != nil {
		errors = append(errors, domain.NewInvalidFormatError("gender", gender))
	}

	return errors
}

// ValidateResourceID validates remedy, story and article id path parameters
func (v *Validator) ValidateResourceID(field, id string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(id) == "" {
		errors = append(errors, domain.NewMissingFieldError(field))
	} else if !resourceIDRegex.MatchString(id) {
		errors = append(errors, domain.NewInvalidFormatError(field, id))
	}

	return errors
}
