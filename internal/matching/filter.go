package matching

import (
	"iter"
	"slices"
	"strings"

	"ashi-remedies/internal/domain"
)

// AllTags is the tag filter sentinel that disables symptom filtering.
const AllTags = "All"

// IsAllTag reports whether tag is exactly the sentinel.
func IsAllTag(tag string) bool {
	return tag == AllTags
}

// ParseTag turns a user supplied tag into a filter for FilterRemedies. An
// absent tag and any casing of the sentinel select every remedy.
func ParseTag(tag string) string {
	tag = strings.TrimSpace(tag)
	if tag == "" || strings.EqualFold(tag, AllTags) {
		return AllTags
	}
	return tag
}

// FilterRemedies lazily yields the remedies that carry tag among their
// symptoms (exact, case-sensitive) and whose title or description contains
// query case-insensitively. Input order is preserved.
func FilterRemedies(remedies []domain.Remedy, query, tag string) iter.Seq[domain.Remedy] {
	needle := strings.ToLower(query)
	anyTag := IsAllTag(tag)
	return func(yield func(domain.Remedy) bool) {
		for _, r := range remedies {
			if !anyTag && !slices.Contains(r.Symptoms, tag) {
				continue
			}
			if needle != "" && !containsFold(r.Title, needle) && !containsFold(r.Description, needle) {
				continue
			}
			if !yield(r) {
				return
			}
		}
	}
}

// SearchRemedies collects FilterRemedies into a slice. The result is never nil.
func SearchRemedies(remedies []domain.Remedy, query, tag string) []domain.Remedy {
	out := make([]domain.Remedy, 0)
	for r := range FilterRemedies(remedies, query, tag) {
		out = append(out, r)
	}
	return out
}

// SymptomTags returns the sentinel followed by every distinct symptom tag in
// first-seen order.
func SymptomTags(remedies []domain.Remedy) []string {
	tags := []string{AllTags}
	seen := make(map[string]bool)
	for _, r := range remedies {
		for _, s := range r.Symptoms {
			if seen[s] {
				continue
			}
			seen[s] = true
			tags = append(tags, s)
		}
	}
	return tags
}

// RemediesForSymptoms yields remedies tagged with any of the given symptoms.
func RemediesForSymptoms(remedies []domain.Remedy, symptoms []string) iter.Seq[domain.Remedy] {
	return func(yield func(domain.Remedy) bool) {
		for _, r := range remedies {
			if !slices.ContainsFunc(r.Symptoms, func(s string) bool { return slices.Contains(symptoms, s) }) {
				continue
			}
			if !yield(r) {
				return
			}
		}
	}
}

func containsFold(haystack, lowerNeedle string) bool {
	return strings.Contains(strings.ToLower(haystack), lowerNeedle)
}
