package dto

import "ashi-remedies/internal/domain"

// RemedyListResponse represents a filtered view of the remedy catalog
// @Description Remedy search result
type RemedyListResponse struct {
	Query    string          `json:"query"`
	Tag      string          `json:"tag"`
	Count    int             `json:"count"`
	Remedies []domain.Remedy `json:"remedies"`
}

// LabMatchRequest lists the pantry ingredients placed in the mortar
// @Description Request body for the Veda Lab
type LabMatchRequest struct {
	Ingredients []string `json:"ingredients"`
}

// LabMatchResponse reports whether a known remedy uses every selected ingredient
type LabMatchResponse struct {
	Matched  bool           `json:"matched"`
	Selected []string       `json:"selected"`
	Remedy   *domain.Remedy `json:"remedy,omitempty"`
}

// BodyZoneSummary represents one entry of the body map index
type BodyZoneSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// BodyZoneResponse represents a body zone for one silhouette with its remedies
type BodyZoneResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Gender      domain.Gender   `json:"gender"`
	Symptoms    []string        `json:"symptoms"`
	Remedies    []domain.Remedy `json:"remedies"`
}
