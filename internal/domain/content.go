package domain

import (
	"context"
	"errors"
)

// ErrContentNotFound is returned when a key has never been written to the store.
var ErrContentNotFound = errors.New("content: key not found")

// Keys of the persistent content store.
const (
	KeyRemedies        = "admin_remedies"
	KeyQuiz            = "admin_quiz"
	KeyBodyZones       = "admin_body_zones"
	KeyIngredients     = "admin_ingredients"
	KeyPendingStories  = "pending_stories"
	KeyApprovedStories = "approved_stories"
	KeyExpertArticles  = "approved_expert_articles"
	KeySEO             = "site_seo_config"
	KeyFounder         = "admin_founder"
	KeyGuestLinks      = "guest_links"
	KeyGuestPosts      = "pending_guest_posts"
)

// ContentKeys lists every key the service reads or writes.
var ContentKeys = []string{
	KeyRemedies, KeyQuiz, KeyBodyZones, KeyIngredients,
	KeyPendingStories, KeyApprovedStories, KeyExpertArticles, KeySEO,
	KeyFounder, KeyGuestLinks, KeyGuestPosts,
}

// ContentStore is durable key-value persistence for editable site content.
// Values are JSON documents.
type ContentStore interface {
	// Get returns ErrContentNotFound when the key is absent.
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	// Delete does not fail for missing keys.
	Delete(ctx context.Context, key string) error
}

// ChatResponder answers a free-text message from the site assistant.
type ChatResponder interface {
	Reply(ctx context.Context, message string) (string, error)
}

// TransactionManager groups several content writes into one atomic unit when
// the store supports it.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
