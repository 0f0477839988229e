package matching

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"ashi-remedies/internal/domain"
)

// Status is the phase of a quiz run.
type Status string

const (
	StatusAwaitingAnswer Status = "awaiting_answer"
	StatusComplete       Status = "complete"
)

// ScorerState is the serialisable progress of a Scorer.
type ScorerState struct {
	Index int               `json:"index"`
	Tally domain.ScoreTally `json:"tally"`
	Other map[int64]string  `json:"other,omitempty"`
}

// Scorer walks a fixed, ordered question bank and tallies dosha answers.
// A Scorer is not safe for concurrent use.
type Scorer struct {
	questions []domain.QuizQuestion
	state     ScorerState
}

// NewScorer validates the question bank and starts at the first question.
func NewScorer(questions []domain.QuizQuestion) (*Scorer, error) {
	if err := domain.ValidateQuestionBank(questions); err != nil {
		return nil, err
	}
	s := &Scorer{questions: questions}
	s.Reset()
	return s, nil
}

// RestoreScorer rebuilds a scorer from a saved state.
func RestoreScorer(questions []domain.QuizQuestion, state ScorerState) (*Scorer, error) {
	s, err := NewScorer(questions)
	if err != nil {
		return nil, err
	}
	if state.Index < 0 || state.Index > len(questions) {
		return nil, domain.NewOutOfRangeError("index", state.Index, 0, len(questions))
	}
	tally := domain.NewScoreTally()
	for d, n := range state.Tally {
		if !d.Valid() {
			return nil, domain.NewInvalidDoshaError(string(d))
		}
		if n < 0 {
			return nil, domain.NewOutOfRangeError("tally."+string(d), n, 0, state.Index)
		}
		tally[d] = n
	}
	if tally.Total() > state.Index {
		return nil, domain.NewFieldError("tally", "more answers tallied than questions answered")
	}
	s.state = ScorerState{Index: state.Index, Tally: tally, Other: make(map[int64]string, len(state.Other))}
	maps.Copy(s.state.Other, state.Other)
	return s, nil
}

// Status reports whether the quiz still expects an answer.
func (s *Scorer) Status() Status {
	if s.state.Index >= len(s.questions) {
		return StatusComplete
	}
	return StatusAwaitingAnswer
}

// Index is the position of the question awaiting an answer.
func (s *Scorer) Index() int {
	return s.state.Index
}

// Total is the number of questions in the bank.
func (s *Scorer) Total() int {
	return len(s.questions)
}

// Current returns the question awaiting an answer.
func (s *Scorer) Current() (domain.QuizQuestion, bool) {
	if s.Status() == StatusComplete {
		return domain.QuizQuestion{}, false
	}
	return s.questions[s.state.Index], true
}

// Answer counts one answer for d and advances to the next question. The
// current question must offer an option of type d.
func (s *Scorer) Answer(d domain.Dosha) error {
	q, ok := s.Current()
	if !ok {
		return domain.NewQuizCompleteError()
	}
	if !d.Valid() {
		return domain.NewInvalidDoshaError(string(d))
	}
	offered := slices.ContainsFunc(q.Options, func(o domain.QuizOption) bool { return o.Type == d })
	if !offered {
		return domain.NewInvalidInputError(fmt.Sprintf("question %d has no %s option", q.ID, d))
	}
	s.state.Tally[d]++
	s.state.Index++
	return nil
}

// SelectOption answers the current question with the option at position i.
func (s *Scorer) SelectOption(i int) error {
	q, ok := s.Current()
	if !ok {
		return domain.NewQuizCompleteError()
	}
	if i < 0 || i >= len(q.Options) {
		return domain.NewOutOfRangeError("option", i, 0, len(q.Options)-1)
	}
	return s.Answer(q.Options[i].Type)
}

// AnswerOther records a free-text answer for the current question without
// scoring it, then advances. The text is kept verbatim.
func (s *Scorer) AnswerOther(text string) error {
	q, ok := s.Current()
	if !ok {
		return domain.NewQuizCompleteError()
	}
	if !q.AllowOther {
		return domain.NewInvalidInputError(fmt.Sprintf("question %d does not accept a free-text answer", q.ID))
	}
	if strings.TrimSpace(text) == "" {
		return domain.NewMissingFieldError("other")
	}
	s.state.Other[q.ID] = text
	s.state.Index++
	return nil
}

// Tally returns a copy of the current counts.
func (s *Scorer) Tally() domain.ScoreTally {
	return s.state.Tally.Clone()
}

// OtherAnswers returns a copy of the free-text answers keyed by question id.
func (s *Scorer) OtherAnswers() map[int64]string {
	return maps.Clone(s.state.Other)
}

// Dominant is the winning dosha once the quiz is complete. Equal counts
// resolve to the earliest dosha in canonical order (vata, pitta, kapha).
func (s *Scorer) Dominant() (domain.Dosha, bool) {
	if s.Status() != StatusComplete {
		return "", false
	}
	return s.state.Tally.Dominant(), true
}

// Reset returns to the first question with empty tallies and no free text.
func (s *Scorer) Reset() {
	s.state = ScorerState{
		Index: 0,
		Tally: domain.NewScoreTally(),
		Other: make(map[int64]string),
	}
}

// State returns a copy of the progress suitable for persisting.
func (s *Scorer) State() ScorerState {
	return ScorerState{
		Index: s.state.Index,
		Tally: s.state.Tally.Clone(),
		Other: maps.Clone(s.state.Other),
	}
}
