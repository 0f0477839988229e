package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"ashi-remedies/internal/domain"
)

// ReadDocument decodes the JSON stored under key. When the store has never
// seen the key the bundled seed is decoded instead, and when there is no seed
// either the zero value of T is returned.
func ReadDocument[T any](ctx context.Context, store domain.ContentStore, key string) (T, error) {
	var out T
	raw, err := store.Get(ctx, key)
	switch {
	case errors.Is(err, domain.ErrContentNotFound):
		data, seedErr := SeedDocument(key)
		if seedErr != nil {
			return out, seedErr
		}
		if data == nil {
			return out, nil
		}
		if err := json.Unmarshal(data, &out); err != nil {
			return out, fmt.Errorf("decode seed %s: %w", key, err)
		}
		return out, nil
	case err != nil:
		return out, fmt.Errorf("read %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return out, domain.NewError(domain.CodeInvalidFormat, fmt.Sprintf("stored %s is not valid", key), err)
	}
	return out, nil
}

// ReadStoredDocument decodes the JSON stored under key without falling back
// to the bundled seed. A missing key yields the zero value of T.
func ReadStoredDocument[T any](ctx context.Context, store domain.ContentStore, key string) (T, error) {
	var out T
	raw, err := store.Get(ctx, key)
	if errors.Is(err, domain.ErrContentNotFound) {
		return out, nil
	}
	if err != nil {
		return out, fmt.Errorf("read %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return out, domain.NewError(domain.CodeInvalidFormat, fmt.Sprintf("stored %s is not valid", key), err)
	}
	return out, nil
}

// WriteDocument encodes v as JSON and stores it under key.
func WriteDocument(ctx context.Context, store domain.ContentStore, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := store.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
