package service

import (
	"context"

	"ashi-remedies/internal/content"
	"ashi-remedies/internal/domain"
)

// SnapshotSource supplies immutable content snapshots. *content.Loader implements it.
type SnapshotSource interface {
	Current(ctx context.Context) (*content.Snapshot, error)
	Reload(ctx context.Context) (*content.Snapshot, error)
}

var _ SnapshotSource = (*content.Loader)(nil)

func currentSnapshot(ctx context.Context, src SnapshotSource) (*content.Snapshot, error) {
	snap, err := src.Current(ctx)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load content", err)
	}
	return snap, nil
}
