package content

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"ashi-remedies/internal/domain"
	"ashi-remedies/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const reloadKey = "reload"

// Loader builds catalog snapshots from the bundled seed overlaid with
// whatever the admin console has written to the content store.
type Loader struct {
	store    domain.ContentStore
	group    singleflight.Group
	current  atomic.Pointer[Snapshot]
	version  atomic.Uint64
	requests atomic.Uint64
	now      func() time.Time
}

// loadResult is a load outcome together with the request sequence observed
// when its store reads began.
type loadResult struct {
	snap *Snapshot
	seq  uint64
}

// NewLoader creates a loader. No snapshot exists until Reload or Current is called.
func NewLoader(store domain.ContentStore) *Loader {
	return &Loader{store: store, now: time.Now}
}

// Current returns the latest snapshot, loading the first one on demand.
func (l *Loader) Current(ctx context.Context) (*Snapshot, error) {
	if snap := l.current.Load(); snap != nil {
		return snap, nil
	}
	return l.Reload(ctx)
}

// Reload reads every catalog document, validates it and publishes a new
// snapshot. The returned snapshot always reflects store writes made before
// the call: a caller that arrives while an older load is running waits for
// it and then joins or starts the next one. Concurrent callers share loads.
// A document that fails validation leaves the previous snapshot in place.
func (l *Loader) Reload(ctx context.Context) (*Snapshot, error) {
	seq := l.requests.Add(1)
	for {
		v, err, shared := l.group.Do(reloadKey, func() (interface{}, error) {
			return l.load(ctx)
		})
		res := v.(loadResult)
		if res.seq >= seq {
			if err != nil {
				logger.Get().Error("Failed to load content snapshot", zap.Error(err), zap.Bool("shared", shared))
				return nil, err
			}
			return res.snap, nil
		}
		logger.Get().Debug("Joined a snapshot load older than the request, loading again",
			zap.Uint64("request", seq), zap.Uint64("load", res.seq))
	}
}

// load runs inside the singleflight group, so at most one runs at a time.
func (l *Loader) load(ctx context.Context) (loadResult, error) {
	seq := l.requests.Load()
	snap, err := l.build(ctx)
	if err != nil {
		return loadResult{seq: seq}, err
	}
	snap.Version = l.version.Add(1)
	l.current.Store(snap)
	logger.Get().Info("Content snapshot loaded",
		zap.Uint64("version", snap.Version),
		zap.Int("remedies", len(snap.Remedies)),
		zap.Int("questions", len(snap.Questions)),
		zap.Int("ingredients", len(snap.Ingredients)),
		zap.Int("zones", len(snap.BodyZones)))
	return loadResult{snap: snap, seq: seq}, nil
}

func (l *Loader) build(ctx context.Context) (*Snapshot, error) {
	remedies, err := ReadDocument[[]domain.Remedy](ctx, l.store, domain.KeyRemedies)
	if err != nil {
		return nil, err
	}
	if err := domain.ValidateCatalog(remedies); err != nil {
		return nil, fmt.Errorf("%s: %w", domain.KeyRemedies, err)
	}

	questions, err := ReadDocument[[]domain.QuizQuestion](ctx, l.store, domain.KeyQuiz)
	if err != nil {
		return nil, err
	}
	if err := domain.ValidateQuestionBank(questions); err != nil {
		return nil, fmt.Errorf("%s: %w", domain.KeyQuiz, err)
	}

	ingredients, err := ReadDocument[[]domain.Ingredient](ctx, l.store, domain.KeyIngredients)
	if err != nil {
		return nil, err
	}
	if err := domain.ValidatePantry(ingredients); err != nil {
		return nil, fmt.Errorf("%s: %w", domain.KeyIngredients, err)
	}

	zones, err := ReadDocument[map[string]domain.BodyZone](ctx, l.store, domain.KeyBodyZones)
	if err != nil {
		return nil, err
	}
	if err := domain.ValidateBodyZones(zones); err != nil {
		return nil, fmt.Errorf("%s: %w", domain.KeyBodyZones, err)
	}

	seo, err := ReadDocument[domain.SiteSEO](ctx, l.store, domain.KeySEO)
	if err != nil {
		return nil, err
	}

	founder, err := ReadDocument[domain.FounderProfile](ctx, l.store, domain.KeyFounder)
	if err != nil {
		return nil, err
	}
	if err := founder.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", domain.KeyFounder, err)
	}

	return &Snapshot{
		LoadedAt:    l.now(),
		Remedies:    remedies,
		Questions:   questions,
		Ingredients: ingredients,
		BodyZones:   zones,
		SEO:         seo,
		Founder:     founder,
	}, nil
}
