package service

import (
	"context"
	"fmt"
	"strings"

	"ashi-remedies/internal/domain"
	"ashi-remedies/internal/dto"
	"ashi-remedies/internal/logger"
	"ashi-remedies/internal/matching"
	"ashi-remedies/internal/metrics"

	"go.uber.org/zap"
)

// DefaultMaxSelection is the number of pantry items the mortar holds.
const DefaultMaxSelection = 3

// LabService defines the interface for the Veda Lab
type LabService interface {
	Ingredients(ctx context.Context) ([]domain.Ingredient, error)
	Match(ctx context.Context, req *dto.LabMatchRequest) (*dto.LabMatchResponse, error)
}

// labService implements LabService
type labService struct {
	src          SnapshotSource
	maxSelection int
	metrics      metrics.Recorder
}

// NewLabService creates a new instance of labService
func NewLabService(src SnapshotSource, maxSelection int, recorder metrics.Recorder) LabService {
	if maxSelection <= 0 {
		maxSelection = DefaultMaxSelection
	}
	if recorder == nil {
		recorder = metrics.Nop{}
	}
	return &labService{src: src, maxSelection: maxSelection, metrics: recorder}
}

// Ingredients implements LabService
func (s *labService) Ingredients(ctx context.Context) ([]domain.Ingredient, error) {
	snap, err := currentSnapshot(ctx, s.src)
	if err != nil {
		return nil, err
	}
	return snap.Ingredients, nil
}

// Match implements LabService
func (s *labService) Match(ctx context.Context, req *dto.LabMatchRequest) (*dto.LabMatchResponse, error) {
	snap, err := currentSnapshot(ctx, s.src)
	if err != nil {
		return nil, err
	}

	selection, err := s.validateSelection(req, snap.HasIngredient)
	if err != nil {
		s.metrics.RecordLabMatch(metrics.OutcomeRejected)
		return nil, err
	}

	resp := &dto.LabMatchResponse{Selected: selection}
	remedy, ok := matching.MatchIngredients(selection, snap.Remedies)
	if ok {
		resp.Matched = true
		resp.Remedy = &remedy
		s.metrics.RecordLabMatch(metrics.OutcomeMatched)
	} else {
		s.metrics.RecordLabMatch(metrics.OutcomeNoMatch)
	}
	logger.Get().Debug("Lab mixture analysed",
		zap.Strings("selection", selection),
		zap.Bool("matched", ok))
	return resp, nil
}

func (s *labService) validateSelection(req *dto.LabMatchRequest, known func(string) bool) ([]string, error) {
	if req == nil || len(req.Ingredients) == 0 {
		return nil, domain.ValidationErrors{domain.NewMissingFieldError("ingredients")}
	}
	if len(req.Ingredients) > s.maxSelection {
		return nil, domain.ValidationErrors{domain.NewOutOfRangeError("ingredients", len(req.Ingredients), 1, s.maxSelection)}
	}

	var errs domain.ValidationErrors
	selection := make([]string, 0, len(req.Ingredients))
	seen := make(map[string]bool, len(req.Ingredients))
	for i, raw := range req.Ingredients {
		id := strings.TrimSpace(raw)
		field := fmt.Sprintf("ingredients[%d]", i)
		switch {
		case id == "":
			errs = append(errs, domain.NewMissingFieldError(field))
		case seen[id]:
			errs = append(errs, domain.NewFieldError(field, "ingredient selected twice"))
		case !known(id):
			errs = append(errs, domain.NewInvalidFormatError(field, id))
		}
		seen[id] = true
		selection = append(selection, id)
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return selection, nil
}
