package domain

import (
	"fmt"
	"strings"
)

// QuizOption is one selectable answer of a quiz question.
type QuizOption struct {
	Text string `json:"text"`
	Type Dosha  `json:"type"`
}

// QuizQuestion is a single question of the dosha quiz.
type QuizQuestion struct {
	ID         int64        `json:"id"`
	Question   string       `json:"question"`
	Category   string       `json:"category"`
	Options    []QuizOption `json:"options"`
	AllowOther bool         `json:"allowOther"`
}

// Validate validates the question
func (q *QuizQuestion) Validate() error {
	var errs ValidationErrors
	field := fmt.Sprintf("questions[%d]", q.ID)
	if strings.TrimSpace(q.Question) == "" {
		errs = append(errs, NewMissingFieldError(field+".question"))
	}
	if len(q.Options) == 0 {
		errs = append(errs, NewFieldError(field+".options", "at least one option is required"))
	}
	for i, opt := range q.Options {
		if strings.TrimSpace(opt.Text) == "" {
			errs = append(errs, NewMissingFieldError(fmt.Sprintf("%s.options[%d].text", field, i)))
		}
		if !opt.Type.Valid() {
			errs = append(errs, NewInvalidFormatError(fmt.Sprintf("%s.options[%d].type", field, i), string(opt.Type)))
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ValidateQuestionBank checks every question and that ids are unique.
func ValidateQuestionBank(questions []QuizQuestion) error {
	if len(questions) == 0 {
		return ValidationErrors{NewFieldError("questions", "at least one question is required")}
	}
	var errs ValidationErrors
	seen := make(map[int64]bool, len(questions))
	for i := range questions {
		q := &questions[i]
		if seen[q.ID] {
			errs = append(errs, NewFieldError(fmt.Sprintf("questions[%d].id", q.ID), "duplicate question id"))
		}
		seen[q.ID] = true
		if err := q.Validate(); err != nil {
			if ve, ok := err.(ValidationErrors); ok {
				errs = append(errs, ve...)
			}
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
