package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"ashi-remedies/internal/domain"
	"ashi-remedies/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

// SQLContentStore implements domain.ContentStore on the content_entries table.
type SQLContentStore struct {
	db  *sqlx.DB
	now func() time.Time
}

// NewSQLContentStore creates a new instance of SQLContentStore
func NewSQLContentStore(db *sqlx.DB) *SQLContentStore {
	return &SQLContentStore{db: db, now: time.Now}
}

const (
	selectContentQuery = `SELECT content_key "content_key", content_value "content_value", updated_at "updated_at" FROM content_entries WHERE content_key = :1`

	upsertContentQuery = `MERGE INTO content_entries t
	USING (SELECT :1 AS content_key, :2 AS content_value, :3 AS updated_at FROM dual) s
	ON (t.content_key = s.content_key)
	WHEN MATCHED THEN UPDATE SET t.content_value = s.content_value, t.updated_at = s.updated_at
	WHEN NOT MATCHED THEN INSERT (content_key, content_value, updated_at) VALUES (s.content_key, s.content_value, s.updated_at)`

	deleteContentQuery = `DELETE FROM content_entries WHERE content_key = :1`
)

// Get implements domain.ContentStore.
func (s *SQLContentStore) Get(ctx context.Context, key string) (string, error) {
	var entry models.ContentEntry
	err := GetExecutor(ctx, s.db).GetContext(ctx, &entry, selectContentQuery, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", domain.ErrContentNotFound
		}
		return "", fmt.Errorf("failed to get content %s: %w", key, err)
	}
	return entry.Value, nil
}

// Set implements domain.ContentStore.
func (s *SQLContentStore) Set(ctx context.Context, key string, value string) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, upsertContentQuery, key, value, s.now())
	if err != nil {
		return fmt.Errorf("failed to save content %s: %w", key, err)
	}
	return nil
}

// Delete implements domain.ContentStore.
func (s *SQLContentStore) Delete(ctx context.Context, key string) error {
	if _, err := GetExecutor(ctx, s.db).ExecContext(ctx, deleteContentQuery, key); err != nil {
		return fmt.Errorf("failed to delete content %s: %w", key, err)
	}
	return nil
}
