package reports

import (
	"context"
	"fmt"
	"log/slog"

	"whattohack-api/internal/config"
	"whattohack-api/internal/database"
)

// Open returns the store selected by cfg.ReportStore, seeded with the
// built-in featured hackathons.
func Open(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.ReportStore {
	case config.StoreMemory:
		slog.Info("Using in-memory report catalog")
		return NewBuiltinStore(), nil

	case config.StorePostgres:
		db, err := database.Init(cfg)
		if err != nil {
			return nil, err
		}
		store := NewPostgresStore(db)
		if err := store.Seed(ctx, Builtin()); err != nil {
			return nil, fmt.Errorf("failed to seed report catalog: %w", err)
		}
		return store, nil

	default:
		return nil, fmt.Errorf("unknown report store: %s", cfg.ReportStore)
	}
}
