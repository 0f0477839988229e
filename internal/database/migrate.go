package database

import (
	"context"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"ashi-remedies/internal/logger"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// RunMigrations executes every *.up.sql file in fsys in lexical order.
// Each file holds a single statement; go-ora rejects trailing semicolons so
// they are trimmed.
func RunMigrations(ctx context.Context, db sqlx.ExecerContext, fsys fs.FS) error {
	files, err := fs.Glob(fsys, "migrations/*.up.sql")
	if err != nil {
		return fmt.Errorf("could not list migrations: %w", err)
	}
	sort.Strings(files)

	for _, name := range files {
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("could not read migration file %s: %w", name, err)
		}

		stmt := strings.TrimSuffix(strings.TrimSpace(string(content)), ";")
		if stmt == "" {
			continue
		}
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("could not execute migration %s: %w", name, err)
		}

		logger.Get().Info("Executed migration", zap.String("file", name))
	}

	logger.Get().Info("Migrations completed successfully", zap.Int("count", len(files)))
	return nil
}
