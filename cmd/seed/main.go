// Command seed writes the bundled default content into the configured store
// so the admin console starts from the same catalog the site ships with.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
	"time"

	"ashi-remedies/internal/adapter"
	"ashi-remedies/internal/cache"
	"ashi-remedies/internal/config"
	"ashi-remedies/internal/content"
	"ashi-remedies/internal/database"
	"ashi-remedies/internal/domain"
	"ashi-remedies/internal/logger"
	"ashi-remedies/internal/repository"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	var force bool
	cmd := &cobra.Command{
		Use:          "seed",
		Short:        "Write the bundled default content into the configured store",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), force)
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite keys that already hold content")
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, force bool) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	l := logger.Get()
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	var store domain.ContentStore
	switch cfg.Store.Driver {
	case "oracle":
		db, err := database.NewSQLXOracleDB(ctx, cfg.GetDSN())
		if err != nil {
			return err
		}
		defer db.Close()
		store = repository.NewSQLContentStore(db)
	case "redis":
		client, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer client.Close()
		store = adapter.NewRedisContentStore(client)
	default:
		return fmt.Errorf("seeding needs a persistent store, got driver %q", cfg.Store.Driver)
	}

	written, err := seed(ctx, store, force)
	if err != nil {
		l.Error("Failed to seed content", zap.Strings("written", written), zap.Error(err))
		return err
	}
	l.Info("Seed complete", zap.Strings("keys", written))
	return nil
}

// seed writes every bundled document and returns the keys it wrote. Existing
// keys are left alone unless force is set.
func seed(ctx context.Context, store domain.ContentStore, force bool) ([]string, error) {
	docs, err := content.SeedDocuments()
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(docs))
	for key := range docs {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	var written []string
	for _, key := range keys {
		if !force {
			_, err := store.Get(ctx, key)
			if err == nil {
				logger.Get().Info("Skipping existing key", zap.String("key", key))
				continue
			}
			if !errors.Is(err, domain.ErrContentNotFound) {
				return written, err
			}
		}
		if err := store.Set(ctx, key, string(docs[key])); err != nil {
			return written, err
		}
		written = append(written, key)
	}
	return written, nil
}
