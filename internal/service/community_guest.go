package service

import (
	"context"
	"slices"
	"strings"

	"ashi-remedies/internal/content"
	"ashi-remedies/internal/domain"
	"ashi-remedies/internal/dto"
	"ashi-remedies/internal/logger"
	"ashi-remedies/internal/util"

	"go.uber.org/zap"
)

// GuestLinks implements CommunityService
func (s *communityService) GuestLinks(ctx context.Context) ([]domain.GuestLink, error) {
	links, err := readStoredList[domain.GuestLink](ctx, s.store, domain.KeyGuestLinks)
	if err != nil {
		return nil, err
	}
	return nonNil(links), nil
}

// CreateGuestLink implements CommunityService. New links start active and
// are listed first.
func (s *communityService) CreateGuestLink(ctx context.Context) (*domain.GuestLink, error) {
	token, err := util.NewToken()
	if err != nil {
		return nil, domain.NewInternalError("Failed to generate guest token", err)
	}
	link := domain.GuestLink{
		ID:        util.NewULID(),
		Token:     token,
		Status:    domain.GuestLinkActive,
		CreatedAt: s.now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	links, err := readStoredList[domain.GuestLink](ctx, s.store, domain.KeyGuestLinks)
	if err != nil {
		return nil, err
	}
	links = append([]domain.GuestLink{link}, links...)
	if err := content.WriteDocument(ctx, s.store, domain.KeyGuestLinks, links); err != nil {
		return nil, domain.NewInternalError("Failed to save guest link", err)
	}
	logger.Get().Info("Guest link generated", zap.String("linkID", link.ID))
	return &link, nil
}

// ToggleGuestLink implements CommunityService. An active link is paused and
// a paused one reactivated.
func (s *communityService) ToggleGuestLink(ctx context.Context, linkID string) (*domain.GuestLink, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	links, err := readStoredList[domain.GuestLink](ctx, s.store, domain.KeyGuestLinks)
	if err != nil {
		return nil, err
	}
	idx := slices.IndexFunc(links, func(l domain.GuestLink) bool { return l.ID == linkID })
	if idx < 0 {
		return nil, domain.NewNotFoundError("Guest link not found with ID: " + linkID)
	}
	if links[idx].Active() {
		links[idx].Status = domain.GuestLinkPaused
	} else {
		links[idx].Status = domain.GuestLinkActive
	}
	if err := content.WriteDocument(ctx, s.store, domain.KeyGuestLinks, links); err != nil {
		return nil, domain.NewInternalError("Failed to update guest link", err)
	}
	link := links[idx]
	logger.Get().Info("Guest link toggled", zap.String("linkID", linkID), zap.String("status", link.Status))
	return &link, nil
}

// DeleteGuestLink implements CommunityService. Posts already submitted
// through the link stay in the review queue.
func (s *communityService) DeleteGuestLink(ctx context.Context, linkID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	links, err := readStoredList[domain.GuestLink](ctx, s.store, domain.KeyGuestLinks)
	if err != nil {
		return err
	}
	idx := slices.IndexFunc(links, func(l domain.GuestLink) bool { return l.ID == linkID })
	if idx < 0 {
		return domain.NewNotFoundError("Guest link not found with ID: " + linkID)
	}
	links = slices.Delete(links, idx, idx+1)
	if err := content.WriteDocument(ctx, s.store, domain.KeyGuestLinks, nonNil(links)); err != nil {
		return domain.NewInternalError("Failed to delete guest link", err)
	}
	logger.Get().Info("Guest link deleted", zap.String("linkID", linkID))
	return nil
}

// CheckGuestLink implements CommunityService. Unknown and paused tokens are
// both reported as invalid.
func (s *communityService) CheckGuestLink(ctx context.Context, token string) (*domain.GuestLink, error) {
	links, err := readStoredList[domain.GuestLink](ctx, s.store, domain.KeyGuestLinks)
	if err != nil {
		return nil, err
	}
	return activeLink(links, token)
}

// SubmitGuestPost implements CommunityService
func (s *communityService) SubmitGuestPost(ctx context.Context, token string, req *dto.GuestPostRequest) (*domain.GuestPost, error) {
	if req == nil {
		return nil, domain.NewInvalidInputError("post is required")
	}
	post := domain.GuestPost{
		ID:          util.NewULID(),
		Title:       strings.TrimSpace(req.Title),
		Author:      strings.TrimSpace(req.Author),
		Content:     strings.TrimSpace(req.Content),
		SubmittedAt: s.now().UTC(),
	}
	if err := post.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	links, err := readStoredList[domain.GuestLink](ctx, s.store, domain.KeyGuestLinks)
	if err != nil {
		return nil, err
	}
	link, err := activeLink(links, token)
	if err != nil {
		return nil, err
	}
	post.LinkID = link.ID

	pending, err := readStoredList[domain.GuestPost](ctx, s.store, domain.KeyGuestPosts)
	if err != nil {
		return nil, err
	}
	pending = append([]domain.GuestPost{post}, pending...)
	if err := content.WriteDocument(ctx, s.store, domain.KeyGuestPosts, pending); err != nil {
		return nil, domain.NewInternalError("Failed to save guest post", err)
	}
	logger.Get().Info("Guest post submitted", zap.String("postID", post.ID), zap.String("linkID", link.ID))
	return &post, nil
}

// PendingGuestPosts implements CommunityService
func (s *communityService) PendingGuestPosts(ctx context.Context) ([]domain.GuestPost, error) {
	pending, err := readStoredList[domain.GuestPost](ctx, s.store, domain.KeyGuestPosts)
	if err != nil {
		return nil, err
	}
	return nonNil(pending), nil
}

// ApproveGuestPost implements CommunityService. The post is published at the
// top of the expert articles, which start from the bundled list.
func (s *communityService) ApproveGuestPost(ctx context.Context, postID string) (*domain.ExpertArticle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var article domain.ExpertArticle
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		pending, err := readStoredList[domain.GuestPost](ctx, s.store, domain.KeyGuestPosts)
		if err != nil {
			return err
		}
		idx := slices.IndexFunc(pending, func(p domain.GuestPost) bool { return p.ID == postID })
		if idx < 0 {
			return domain.NewNotFoundError("Guest post not found with ID: " + postID)
		}
		article = pending[idx].Article()

		articles, err := content.ReadDocument[[]domain.ExpertArticle](ctx, s.store, domain.KeyExpertArticles)
		if err != nil {
			return domain.NewInternalError("Failed to load articles", err)
		}
		articles = append([]domain.ExpertArticle{article}, articles...)
		pending = slices.Delete(pending, idx, idx+1)

		if err := content.WriteDocument(ctx, s.store, domain.KeyExpertArticles, articles); err != nil {
			return domain.NewInternalError("Failed to publish article", err)
		}
		if err := content.WriteDocument(ctx, s.store, domain.KeyGuestPosts, nonNil(pending)); err != nil {
			return domain.NewInternalError("Failed to update guest posts", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	logger.Get().Info("Guest post published", zap.String("postID", postID))
	return &article, nil
}

// RejectGuestPost implements CommunityService
func (s *communityService) RejectGuestPost(ctx context.Context, postID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	pending, err := readStoredList[domain.GuestPost](ctx, s.store, domain.KeyGuestPosts)
	if err != nil {
		return err
	}
	idx := slices.IndexFunc(pending, func(p domain.GuestPost) bool { return p.ID == postID })
	if idx < 0 {
		return domain.NewNotFoundError("Guest post not found with ID: " + postID)
	}
	pending = slices.Delete(pending, idx, idx+1)
	if err := content.WriteDocument(ctx, s.store, domain.KeyGuestPosts, nonNil(pending)); err != nil {
		return domain.NewInternalError("Failed to update guest posts", err)
	}
	logger.Get().Info("Guest post rejected", zap.String("postID", postID))
	return nil
}

func activeLink(links []domain.GuestLink, token string) (*domain.GuestLink, error) {
	idx := slices.IndexFunc(links, func(l domain.GuestLink) bool { return l.Token == token })
	if idx < 0 || !links[idx].Active() {
		return nil, domain.NewGuestLinkInvalidError()
	}
	link := links[idx]
	return &link, nil
}

func readStoredList[T any](ctx context.Context, store domain.ContentStore, key string) ([]T, error) {
	items, err := content.ReadStoredDocument[[]T](ctx, store, key)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load "+key, err)
	}
	return items, nil
}
