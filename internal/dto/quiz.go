package dto

import (
	"time"

	"ashi-remedies/internal/domain"
)

// QuizAnswerRequest answers the current question. Exactly one field must be set.
// @Description Request body for answering a quiz question
type QuizAnswerRequest struct {
	Dosha  string `json:"dosha,omitempty"`
	Option *int   `json:"option,omitempty"`
	Other  string `json:"other,omitempty"`
}

// QuizSessionResponse represents the progress of a dosha quiz run
// @Description Dosha quiz session state
type QuizSessionResponse struct {
	SessionID    string               `json:"session_id"`
	Status       string               `json:"status"`
	Index        int                  `json:"index"`
	Total        int                  `json:"total"`
	Current      *domain.QuizQuestion `json:"current,omitempty"`
	Tally        domain.ScoreTally    `json:"tally"`
	OtherAnswers map[int64]string     `json:"other_answers,omitempty"`
	Dominant     domain.Dosha         `json:"dominant,omitempty"`
	Profile      *domain.DoshaProfile `json:"profile,omitempty"`
	ExpiresAt    time.Time            `json:"expires_at"`
}
