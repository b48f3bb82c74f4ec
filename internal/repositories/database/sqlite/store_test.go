package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/SscSPs/offering_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/offering_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/offering_tracker/internal/repositories/collections"
	"github.com/SscSPs/offering_tracker/internal/repositories/database/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) (*sqlite.Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "offerings.db")
	store, err := sqlite.NewStore(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store, path
}

func TestStore_LoadMissingKey(t *testing.T) {
	store, _ := newStore(t)

	var members []domain.Member
	found, err := store.LoadCollection(context.Background(), portsrepo.KeyMembers, &members)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, members)
}

func TestStore_SaveOverwritesAndSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	store, path := newStore(t)

	require.NoError(t, store.SaveCollection(ctx, portsrepo.KeyCategories, []string{"Diezmo"}))
	require.NoError(t, store.SaveCollection(ctx, portsrepo.KeyCategories, []string{"Diezmo", "Luz"}))
	require.NoError(t, store.Close())

	reopened, err := sqlite.NewStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	var categories []string
	found, err := reopened.LoadCollection(ctx, portsrepo.KeyCategories, &categories)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []string{"Diezmo", "Luz"}, categories)
}

func TestStore_WeeklyRecordsAreIndexed(t *testing.T) {
	ctx := context.Background()
	store, _ := newStore(t)
	repo := collections.NewWeeklyRecordRepository(store)

	ana := &domain.Member{ID: "m-1", Name: "Ana"}
	first, err := domain.NewWeeklyRecord("wr-1", 7, 1, 2024, "Pastor", domain.DefaultFormulas())
	require.NoError(t, err)
	first, err = first.AddDonation("d-1", ana, domain.CategoryDiezmo, decimal.RequireFromString("100.50"))
	require.NoError(t, err)
	first, err = first.AddDonation("d-2", ana, "Luz", decimal.NewFromInt(20))
	require.NoError(t, err)
	second, err := domain.NewWeeklyRecord("wr-2", 31, 12, 2023, "Pastor", domain.DefaultFormulas())
	require.NoError(t, err)

	_, err = repo.UpdateWeeklyRecords(ctx, func(r []domain.WeeklyRecord) ([]domain.WeeklyRecord, error) {
		return append(r, first, second), nil
	})
	require.NoError(t, err)

	entries, err := store.WeekIndex(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "wr-2", entries[0].RecordID)
	assert.Equal(t, "2024-01-06", entries[0].EndDate)
	assert.Equal(t, "wr-1", entries[1].RecordID)
	assert.Equal(t, 2, entries[1].WeekNumber)
	assert.Equal(t, 2, entries[1].DonationCount)
	assert.True(t, decimal.RequireFromString("100.5").Equal(entries[1].Total))

	viaRepo, err := repo.WeekIndex(ctx)
	require.NoError(t, err)
	assert.Equal(t, entries, viaRepo)

	_, err = repo.UpdateWeeklyRecords(ctx, func(r []domain.WeeklyRecord) ([]domain.WeeklyRecord, error) {
		return domain.DeleteWeeklyRecord(r, "wr-2")
	})
	require.NoError(t, err)
	entries, err = store.WeekIndex(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
