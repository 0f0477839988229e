package main

import (
	"context"
	"testing"

	"ashi-remedies/internal/adapter"
	"ashi-remedies/internal/content"
	"ashi-remedies/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed_WritesEveryBundledDocument(t *testing.T) {
	ctx := context.Background()
	store := adapter.NewMemoryStore()

	written, err := seed(ctx, store, false)
	require.NoError(t, err)

	docs, err := content.SeedDocuments()
	require.NoError(t, err)
	assert.Len(t, written, len(docs))
	assert.IsIncreasing(t, written)

	got, err := store.Get(ctx, domain.KeyRemedies)
	require.NoError(t, err)
	assert.JSONEq(t, string(docs[domain.KeyRemedies]), got)

	_, err = store.Get(ctx, domain.KeyPendingStories)
	assert.ErrorIs(t, err, domain.ErrContentNotFound)
}

func TestSeed_KeepsExistingContent(t *testing.T) {
	ctx := context.Background()
	store := adapter.NewMemoryStore()
	require.NoError(t, store.Set(ctx, domain.KeySEO, `{"siteTitle":"Edited"}`))

	written, err := seed(ctx, store, false)
	require.NoError(t, err)
	assert.NotContains(t, written, domain.KeySEO)

	got, err := store.Get(ctx, domain.KeySEO)
	require.NoError(t, err)
	assert.Equal(t, `{"siteTitle":"Edited"}`, got)

	written, err = seed(ctx, store, true)
	require.NoError(t, err)
	assert.Contains(t, written, domain.KeySEO)
	got, err = store.Get(ctx, domain.KeySEO)
	require.NoError(t, err)
	assert.NotEqual(t, `{"siteTitle":"Edited"}`, got)
}
