package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"ashi-remedies/internal/domain"
	"ashi-remedies/internal/dto"
	"ashi-remedies/internal/logger"
	"ashi-remedies/internal/matching"
	"ashi-remedies/internal/metrics"
	"ashi-remedies/internal/util"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"
)

// sessionLockStripes bounds the number of mutexes guarding session updates.
const sessionLockStripes = 64

// QuizService defines the interface for dosha quiz operations
type QuizService interface {
	Questions(ctx context.Context) ([]domain.QuizQuestion, error)
	StartSession(ctx context.Context) (*dto.QuizSessionResponse, error)
	GetSession(ctx context.Context, sessionID string) (*dto.QuizSessionResponse, error)
	Answer(ctx context.Context, sessionID string, req *dto.QuizAnswerRequest) (*dto.QuizSessionResponse, error)
	ResetSession(ctx context.Context, sessionID string) (*dto.QuizSessionResponse, error)
}

// quizService implements QuizService. Updates to one session are serialised
// within the process so concurrent answers cannot overwrite each other.
type quizService struct {
	src      SnapshotSource
	sessions QuizSessionStore
	ttl      time.Duration
	metrics  metrics.Recorder
	locks    [sessionLockStripes]sync.Mutex
	now      func() time.Time
}

// NewQuizService creates a new instance of quizService
func NewQuizService(src SnapshotSource, sessions QuizSessionStore, ttl time.Duration, recorder metrics.Recorder) QuizService {
	if recorder == nil {
		recorder = metrics.Nop{}
	}
	return &quizService{
		src:      src,
		sessions: sessions,
		ttl:      ttl,
		metrics:  recorder,
		now:      time.Now,
	}
}

// Questions implements QuizService
func (s *quizService) Questions(ctx context.Context) ([]domain.QuizQuestion, error) {
	snap, err := currentSnapshot(ctx, s.src)
	if err != nil {
		return nil, err
	}
	return snap.Questions, nil
}

// StartSession implements QuizService
func (s *quizService) StartSession(ctx context.Context) (*dto.QuizSessionResponse, error) {
	snap, err := currentSnapshot(ctx, s.src)
	if err != nil {
		return nil, err
	}
	scorer, err := matching.NewScorer(snap.Questions)
	if err != nil {
		return nil, domain.NewInternalError("Quiz question bank is invalid", err)
	}

	now := s.now()
	session := &QuizSession{
		ID:        util.NewULID(),
		Questions: snap.Questions,
		State:     scorer.State(),
		CreatedAt: now,
	}
	if err := s.save(ctx, session); err != nil {
		return nil, err
	}
	logger.Get().Info("Quiz session started",
		zap.String("sessionID", session.ID),
		zap.Int("questions", len(session.Questions)))
	return toSessionResponse(session, scorer), nil
}

// GetSession implements QuizService
func (s *quizService) GetSession(ctx context.Context, sessionID string) (*dto.QuizSessionResponse, error) {
	session, scorer, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return toSessionResponse(session, scorer), nil
}

// Answer implements QuizService
func (s *quizService) Answer(ctx context.Context, sessionID string, req *dto.QuizAnswerRequest) (*dto.QuizSessionResponse, error) {
	if err := validateAnswerRequest(req); err != nil {
		return nil, err
	}
	unlock := s.lockSession(sessionID)
	defer unlock()

	session, scorer, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	switch {
	case strings.TrimSpace(req.Dosha) != "":
		d, parseErr := domain.ParseDosha(req.Dosha)
		if parseErr != nil {
			return nil, parseErr
		}
		err = scorer.Answer(d)
	case req.Option != nil:
		err = scorer.SelectOption(*req.Option)
	default:
		err = scorer.AnswerOther(req.Other)
	}
	if err != nil {
		return nil, err
	}

	session.State = scorer.State()
	if err := s.save(ctx, session); err != nil {
		return nil, err
	}

	if dominant, done := scorer.Dominant(); done {
		s.metrics.RecordQuizCompleted(dominant.String())
		logger.Get().Info("Quiz session completed",
			zap.String("sessionID", sessionID),
			zap.String("dominant", dominant.String()),
			zap.Int("other_answers", len(session.State.Other)))
	}
	return toSessionResponse(session, scorer), nil
}

// ResetSession implements QuizService
func (s *quizService) ResetSession(ctx context.Context, sessionID string) (*dto.QuizSessionResponse, error) {
	unlock := s.lockSession(sessionID)
	defer unlock()

	session, scorer, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	scorer.Reset()
	session.State = scorer.State()
	if err := s.save(ctx, session); err != nil {
		return nil, err
	}
	return toSessionResponse(session, scorer), nil
}

func (s *quizService) lockSession(sessionID string) func() {
	mu := &s.locks[xxhash.Sum64String(sessionID)%sessionLockStripes]
	mu.Lock()
	return mu.Unlock
}

func (s *quizService) load(ctx context.Context, sessionID string) (*QuizSession, *matching.Scorer, error) {
	if !util.IsULID(sessionID) {
		return nil, nil, domain.NewSessionNotFoundError(sessionID)
	}
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	scorer, err := matching.RestoreScorer(session.Questions, session.State)
	if err != nil {
		logger.Get().Error("Stored quiz session is corrupt", zap.String("sessionID", sessionID), zap.Error(err))
		return nil, nil, domain.NewInternalError("Stored quiz session is corrupt", err)
	}
	return session, scorer, nil
}

func (s *quizService) save(ctx context.Context, session *QuizSession) error {
	session.ExpiresAt = s.now().Add(s.ttl)
	return s.sessions.Put(ctx, session)
}

func validateAnswerRequest(req *dto.QuizAnswerRequest) error {
	if req == nil {
		return domain.NewInvalidInputError("answer is required")
	}
	set := 0
	if strings.TrimSpace(req.Dosha) != "" {
		set++
	}
	if req.Option != nil {
		set++
	}
	if req.Other != "" {
		set++
	}
	if set != 1 {
		return domain.NewInvalidInputError("exactly one of dosha, option or other must be provided")
	}
	return nil
}

func toSessionResponse(session *QuizSession, scorer *matching.Scorer) *dto.QuizSessionResponse {
	resp := &dto.QuizSessionResponse{
		SessionID:    session.ID,
		Status:       string(scorer.Status()),
		Index:        scorer.Index(),
		Total:        scorer.Total(),
		Tally:        scorer.Tally(),
		OtherAnswers: scorer.OtherAnswers(),
		ExpiresAt:    session.ExpiresAt,
	}
	if q, ok := scorer.Current(); ok {
		resp.Current = &q
	}
	if dominant, ok := scorer.Dominant(); ok {
		profile := domain.ProfileFor(dominant)
		resp.Dominant = dominant
		resp.Profile = &profile
	}
	return resp
}
