package repositories

import (
	"context"
	"fmt"
	"log/slog"

	portsrepo "github.com/SscSPs/offering_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/offering_tracker/internal/platform/config"
	"github.com/SscSPs/offering_tracker/internal/repositories/database/pgsql"
	"github.com/SscSPs/offering_tracker/internal/repositories/database/sqlite"
	"github.com/SscSPs/offering_tracker/internal/repositories/drive"
	"github.com/SscSPs/offering_tracker/internal/repositories/memory"
	"github.com/SscSPs/offering_tracker/pkg/database"
)

// OpenStore opens the collection store selected by cfg.StorageBackend.
func OpenStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.ClosableStore, error) {
	logger = logger.With(slog.String("storage_backend", cfg.StorageBackend))

	switch cfg.StorageBackend {
	case config.StorageMemory:
		logger.Warn("Using in-memory storage; data is lost on restart")
		return memory.NewStore(), nil

	case config.StoragePostgres:
		pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, logger)
		if err != nil {
			return nil, err
		}
		logger.Info("Running database migrations...")
		if err := pgsql.RunMigrations(cfg.DatabaseURL, logger); err != nil {
			pool.Close()
			return nil, err
		}
		return pgsql.NewCollectionStore(pool), nil

	case config.StorageSQLite:
		store, err := sqlite.NewStore(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		logger.Info("SQLite storage ready", slog.String("path", cfg.SQLitePath))
		return store, nil

	case config.StorageDrive:
		store, err := drive.NewStore(ctx, cfg.DriveFolderID, drive.Credentials{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RefreshToken: cfg.GoogleRefreshToken,
		})
		if err != nil {
			return nil, err
		}
		logger.Info("Google Drive storage ready", slog.String("folder_id", cfg.DriveFolderID))
		return store, nil
	}
	return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
}
