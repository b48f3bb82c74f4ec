package repositories_test

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/SscSPs/offering_tracker/internal/platform/config"
	"github.com/SscSPs/offering_tracker/internal/repositories"
	"github.com/SscSPs/offering_tracker/internal/repositories/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestOpenStore(t *testing.T) {
	ctx := context.Background()

	store, err := repositories.OpenStore(ctx, &config.Config{StorageBackend: config.StorageMemory}, discardLogger())
	require.NoError(t, err)
	assert.IsType(t, &memory.Store{}, store)

	store, err = repositories.OpenStore(ctx, &config.Config{
		StorageBackend: config.StorageSQLite,
		SQLitePath:     filepath.Join(t.TempDir(), "offerings.db"),
	}, discardLogger())
	require.NoError(t, err)
	require.NoError(t, store.Close())

	_, err = repositories.OpenStore(ctx, &config.Config{StorageBackend: "redis"}, discardLogger())
	assert.Error(t, err)
}
