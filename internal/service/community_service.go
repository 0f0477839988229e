package service

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"ashi-remedies/internal/content"
	"ashi-remedies/internal/domain"
	"ashi-remedies/internal/dto"
	"ashi-remedies/internal/logger"
	"ashi-remedies/internal/util"

	"go.uber.org/zap"
)

// CommunityService defines the interface for the Healing Circle
type CommunityService interface {
	Stories(ctx context.Context) ([]domain.Story, error)
	Articles(ctx context.Context) ([]domain.ExpertArticle, error)
	SubmitStory(ctx context.Context, req *dto.StorySubmissionRequest) (*domain.Story, error)

	PendingStories(ctx context.Context) ([]domain.Story, error)
	ApproveStory(ctx context.Context, storyID string) (*domain.Story, error)
	RejectStory(ctx context.Context, storyID string) error
	DeleteLiveStory(ctx context.Context, storyID string) error
	DeleteArticle(ctx context.Context, articleID string) error

	GuestLinks(ctx context.Context) ([]domain.GuestLink, error)
	CreateGuestLink(ctx context.Context) (*domain.GuestLink, error)
	ToggleGuestLink(ctx context.Context, linkID string) (*domain.GuestLink, error)
	DeleteGuestLink(ctx context.Context, linkID string) error
	CheckGuestLink(ctx context.Context, token string) (*domain.GuestLink, error)
	SubmitGuestPost(ctx context.Context, token string, req *dto.GuestPostRequest) (*domain.GuestPost, error)
	PendingGuestPosts(ctx context.Context) ([]domain.GuestPost, error)
	ApproveGuestPost(ctx context.Context, postID string) (*domain.ExpertArticle, error)
	RejectGuestPost(ctx context.Context, postID string) error
}

// communityService implements CommunityService. Story lists are whole JSON
// documents in the content store, so writes are serialised in process.
type communityService struct {
	store domain.ContentStore
	tx    domain.TransactionManager
	mu    sync.Mutex
	now   func() time.Time
}

// NewCommunityService creates a new instance of communityService
func NewCommunityService(store domain.ContentStore, tx domain.TransactionManager) CommunityService {
	return &communityService{store: store, tx: tx, now: time.Now}
}

// Stories implements CommunityService. The bundled stories are shown until
// the first story is approved.
func (s *communityService) Stories(ctx context.Context) ([]domain.Story, error) {
	stories, err := content.ReadDocument[[]domain.Story](ctx, s.store, domain.KeyApprovedStories)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load stories", err)
	}
	return nonNil(stories), nil
}

// Articles implements CommunityService
func (s *communityService) Articles(ctx context.Context) ([]domain.ExpertArticle, error) {
	articles, err := content.ReadDocument[[]domain.ExpertArticle](ctx, s.store, domain.KeyExpertArticles)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load articles", err)
	}
	return nonNil(articles), nil
}

// SubmitStory implements CommunityService. New stories wait in the pending
// queue, newest first, until an admin approves them.
func (s *communityService) SubmitStory(ctx context.Context, req *dto.StorySubmissionRequest) (*domain.Story, error) {
	if req == nil {
		return nil, domain.NewInvalidInputError("story is required")
	}
	story := domain.Story{
		ID:          util.NewULID(),
		User:        strings.TrimSpace(req.User),
		Location:    strings.TrimSpace(req.Location),
		Remedy:      strings.TrimSpace(req.Remedy),
		Story:       strings.TrimSpace(req.Story),
		Tags:        util.SplitList(req.Tags, ","),
		SubmittedAt: s.now().UTC(),
	}
	if err := story.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	pending, err := s.readStories(ctx, domain.KeyPendingStories)
	if err != nil {
		return nil, err
	}
	pending = append([]domain.Story{story}, pending...)
	if err := content.WriteDocument(ctx, s.store, domain.KeyPendingStories, pending); err != nil {
		return nil, domain.NewInternalError("Failed to save story", err)
	}
	logger.Get().Info("Story submitted for review", zap.String("storyID", story.ID), zap.Int("pending", len(pending)))
	return &story, nil
}

// PendingStories implements CommunityService
func (s *communityService) PendingStories(ctx context.Context) ([]domain.Story, error) {
	pending, err := s.readStories(ctx, domain.KeyPendingStories)
	if err != nil {
		return nil, err
	}
	return nonNil(pending), nil
}

// ApproveStory implements CommunityService. The story moves to the top of
// the live list, verified and with its likes reset.
func (s *communityService) ApproveStory(ctx context.Context, storyID string) (*domain.Story, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var approved domain.Story
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		pending, err := s.readStories(ctx, domain.KeyPendingStories)
		if err != nil {
			return err
		}
		idx := slices.IndexFunc(pending, func(st domain.Story) bool { return st.ID == storyID })
		if idx < 0 {
			return domain.NewStoryNotFoundError(storyID)
		}
		approved = pending[idx]
		approved.Verified = true
		approved.Likes = 0

		live, err := s.readStories(ctx, domain.KeyApprovedStories)
		if err != nil {
			return err
		}
		live = append([]domain.Story{approved}, live...)
		pending = slices.Delete(pending, idx, idx+1)

		if err := content.WriteDocument(ctx, s.store, domain.KeyApprovedStories, live); err != nil {
			return domain.NewInternalError("Failed to publish story", err)
		}
		if err := content.WriteDocument(ctx, s.store, domain.KeyPendingStories, pending); err != nil {
			return domain.NewInternalError("Failed to update pending stories", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	logger.Get().Info("Story approved", zap.String("storyID", storyID))
	return &approved, nil
}

// RejectStory implements CommunityService
func (s *communityService) RejectStory(ctx context.Context, storyID string) error {
	return s.removeStory(ctx, domain.KeyPendingStories, storyID)
}

// DeleteLiveStory implements CommunityService
func (s *communityService) DeleteLiveStory(ctx context.Context, storyID string) error {
	return s.removeStory(ctx, domain.KeyApprovedStories, storyID)
}

// DeleteArticle implements CommunityService
func (s *communityService) DeleteArticle(ctx context.Context, articleID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	articles, err := content.ReadDocument[[]domain.ExpertArticle](ctx, s.store, domain.KeyExpertArticles)
	if err != nil {
		return domain.NewInternalError("Failed to load articles", err)
	}
	idx := slices.IndexFunc(articles, func(a domain.ExpertArticle) bool { return a.ID == articleID })
	if idx < 0 {
		return domain.NewNotFoundError("Article not found with ID: " + articleID)
	}
	articles = slices.Delete(articles, idx, idx+1)
	if err := content.WriteDocument(ctx, s.store, domain.KeyExpertArticles, nonNil(articles)); err != nil {
		return domain.NewInternalError("Failed to delete article", err)
	}
	logger.Get().Info("Article deleted", zap.String("articleID", articleID))
	return nil
}

func (s *communityService) removeStory(ctx context.Context, key, storyID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stories, err := s.readStories(ctx, key)
	if err != nil {
		return err
	}
	idx := slices.IndexFunc(stories, func(st domain.Story) bool { return st.ID == storyID })
	if idx < 0 {
		return domain.NewStoryNotFoundError(storyID)
	}
	stories = slices.Delete(stories, idx, idx+1)
	if err := content.WriteDocument(ctx, s.store, key, nonNil(stories)); err != nil {
		return domain.NewInternalError("Failed to update stories", err)
	}
	logger.Get().Info("Story removed", zap.String("storyID", storyID), zap.String("list", key))
	return nil
}

// readStories reads a story list as the admin console sees it, without the
// bundled fallback.
func (s *communityService) readStories(ctx context.Context, key string) ([]domain.Story, error) {
	stories, err := content.ReadStoredDocument[[]domain.Story](ctx, s.store, key)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load stories", err)
	}
	return stories, nil
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
