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

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
)

// CatalogService defines the interface for remedy catalog queries
type CatalogService interface {
	Search(ctx context.Context, query, tag string) (*dto.RemedyListResponse, error)
	Tags(ctx context.Context) ([]string, error)
	GetRemedy(ctx context.Context, id string) (*domain.Remedy, error)
}

// catalogService implements CatalogService
type catalogService struct {
	src     SnapshotSource
	memo    *lru.Cache[string, []domain.Remedy]
	metrics metrics.Recorder
}

// NewCatalogService creates a new instance of catalogService. Search results
// are memoised per snapshot version; a cacheSize of zero disables the memo.
func NewCatalogService(src SnapshotSource, cacheSize int, recorder metrics.Recorder) (CatalogService, error) {
	if recorder == nil {
		recorder = metrics.Nop{}
	}
	s := &catalogService{src: src, metrics: recorder}
	if cacheSize > 0 {
		memo, err := lru.New[string, []domain.Remedy](cacheSize)
		if err != nil {
			return nil, fmt.Errorf("failed to create search cache: %w", err)
		}
		s.memo = memo
	}
	return s, nil
}

// Search implements CatalogService
func (s *catalogService) Search(ctx context.Context, query, tag string) (*dto.RemedyListResponse, error) {
	snap, err := currentSnapshot(ctx, s.src)
	if err != nil {
		return nil, err
	}
	tag = matching.ParseTag(tag)

	key := fmt.Sprintf("%d|%s|%s", snap.Version, tag, strings.ToLower(query))
	remedies, hit := s.lookup(key)
	if !hit {
		remedies = matching.SearchRemedies(snap.Remedies, query, tag)
		if s.memo != nil {
			s.memo.Add(key, remedies)
		}
	}

	logger.Get().Debug("Remedy search",
		zap.String("query", query),
		zap.String("tag", tag),
		zap.Int("results", len(remedies)),
		zap.Bool("memo_hit", hit))
	s.metrics.RecordSearch(tag != matching.AllTags, query != "", len(remedies))

	return &dto.RemedyListResponse{
		Query:    query,
		Tag:      tag,
		Count:    len(remedies),
		Remedies: remedies,
	}, nil
}

func (s *catalogService) lookup(key string) ([]domain.Remedy, bool) {
	if s.memo == nil {
		return nil, false
	}
	return s.memo.Get(key)
}

// Tags implements CatalogService
func (s *catalogService) Tags(ctx context.Context) ([]string, error) {
	snap, err := currentSnapshot(ctx, s.src)
	if err != nil {
		return nil, err
	}
	return matching.SymptomTags(snap.Remedies), nil
}

// GetRemedy implements CatalogService
func (s *catalogService) GetRemedy(ctx context.Context, id string) (*domain.Remedy, error) {
	snap, err := currentSnapshot(ctx, s.src)
	if err != nil {
		return nil, err
	}
	remedy, ok := snap.Remedy(id)
	if !ok {
		return nil, domain.NewRemedyNotFoundError(id)
	}
	return &remedy, nil
}
