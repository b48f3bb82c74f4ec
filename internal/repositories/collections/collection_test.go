package collections_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/SscSPs/offering_tracker/internal/apperrors"
	"github.com/SscSPs/offering_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/offering_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/offering_tracker/internal/repositories/collections"
	"github.com/SscSPs/offering_tracker/internal/repositories/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockStore is a CollectionStore driven by testify expectations.
type MockStore struct {
	mock.Mock
}

func (m *MockStore) LoadCollection(ctx context.Context, key string, dest any) (bool, error) {
	args := m.Called(ctx, key, dest)
	return args.Bool(0), args.Error(1)
}

func (m *MockStore) SaveCollection(ctx context.Context, key string, value any) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

var _ portsrepo.CollectionStore = (*MockStore)(nil)

func TestProvider_Defaults(t *testing.T) {
	ctx := context.Background()
	repos := collections.NewProvider(memory.NewStore()).Repositories()

	categories, err := repos.CategoryRepo.ListCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultCategories, categories)

	formulas, err := repos.FormulaRepo.GetFormulas(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultFormulas(), formulas)

	members, err := repos.MemberRepo.ListMembers(ctx)
	require.NoError(t, err)
	assert.NotNil(t, members)
	assert.Empty(t, members)

	records, err := repos.WeeklyRecordRepo.ListWeeklyRecords(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestStandaloneRepositories(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	formulas := collections.NewFormulaRepository(store)
	custom := domain.Formulas{DiezmoPercentage: decimal.NewFromInt(12), RemanenteThreshold: decimal.NewFromInt(3000)}
	require.NoError(t, formulas.SaveFormulas(ctx, custom))

	got, err := collections.NewFormulaRepository(store).GetFormulas(ctx)
	require.NoError(t, err)
	assert.True(t, custom.DiezmoPercentage.Equal(got.DiezmoPercentage))
	assert.True(t, custom.RemanenteThreshold.Equal(got.RemanenteThreshold))

	reports := collections.NewMonthlyReportRepository(store)
	_, err = reports.UpdateMonthlyReports(ctx, func(rs []domain.MonthlyReport) ([]domain.MonthlyReport, error) {
		return append(rs, domain.MonthlyReport{ID: domain.MonthlyReportID(2024, 6), Month: 6, Year: 2024, FormData: domain.NewReportForm()}), nil
	})
	require.NoError(t, err)

	stored, err := collections.NewMonthlyReportRepository(store).ListMonthlyReports(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "report-2024-6", stored[0].ID)
	assert.Len(t, stored[0].FormData, len(domain.ReportFields()))
}

// indexedStore is a MockStore that also keeps a week index.
type indexedStore struct {
	MockStore
}

func (m *indexedStore) WeekIndex(ctx context.Context) ([]domain.WeekIndexEntry, error) {
	args := m.Called(ctx)
	entries, _ := args.Get(0).([]domain.WeekIndexEntry)
	return entries, args.Error(1)
}

func TestWeeklyRecordRepository_WeekIndex(t *testing.T) {
	ctx := context.Background()

	t.Run("derived from records", func(t *testing.T) {
		repo := collections.NewWeeklyRecordRepository(memory.NewStore())
		late, err := domain.NewWeeklyRecord("wr-1", 16, 6, 2024, "Pastor", domain.DefaultFormulas())
		require.NoError(t, err)
		early, err := domain.NewWeeklyRecord("wr-2", 2, 6, 2024, "Pastor", domain.DefaultFormulas())
		require.NoError(t, err)
		_, err = repo.UpdateWeeklyRecords(ctx, func(r []domain.WeeklyRecord) ([]domain.WeeklyRecord, error) {
			return append(r, late, early), nil
		})
		require.NoError(t, err)

		entries, err := repo.WeekIndex(ctx)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "wr-2", entries[0].RecordID)
		assert.Equal(t, "2024-06-02", entries[0].StartDate)
		assert.Equal(t, "wr-1", entries[1].RecordID)
	})

	t.Run("read from the store", func(t *testing.T) {
		store := new(indexedStore)
		want := []domain.WeekIndexEntry{{RecordID: "wr-9", StartDate: "2024-01-07"}}
		store.On("WeekIndex", ctx).Return(want, nil).Once()

		entries, err := collections.NewWeeklyRecordRepository(store).WeekIndex(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, entries)
		store.AssertExpectations(t)
	})

	t.Run("store failure", func(t *testing.T) {
		store := new(indexedStore)
		store.On("WeekIndex", ctx).Return(nil, errors.New("connection reset")).Once()

		_, err := collections.NewWeeklyRecordRepository(store).WeekIndex(ctx)
		assert.ErrorIs(t, err, apperrors.ErrPersistence)
	})
}

func TestProvider_PersistsAcrossInstances(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	first := collections.NewProvider(store).Repositories()
	_, err := first.MemberRepo.UpdateMembers(ctx, func(m []domain.Member) ([]domain.Member, error) {
		return append(m, domain.Member{ID: "m-1", Name: "Ana"}), nil
	})
	require.NoError(t, err)
	require.NoError(t, first.FormulaRepo.SaveFormulas(ctx, domain.Formulas{
		DiezmoPercentage:   decimal.NewFromInt(15),
		RemanenteThreshold: decimal.NewFromInt(3000),
	}))

	second := collections.NewProvider(store)
	require.NoError(t, second.LoadAll(ctx))
	members, err := second.Repositories().MemberRepo.ListMembers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Member{{ID: "m-1", Name: "Ana"}}, members)

	formulas, err := second.Repositories().FormulaRepo.GetFormulas(ctx)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(15).Equal(formulas.DiezmoPercentage))
}

func TestCollection_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := collections.NewWeeklyRecordRepository(memory.NewStore())

	_, err := repo.UpdateWeeklyRecords(ctx, func(r []domain.WeeklyRecord) ([]domain.WeeklyRecord, error) {
		return append(r, domain.WeeklyRecord{ID: "wr-1", Minister: "Pastor", Donations: []domain.Donation{{ID: "d-1"}}}), nil
	})
	require.NoError(t, err)

	records, err := repo.ListWeeklyRecords(ctx)
	require.NoError(t, err)
	records[0].Minister = "changed"
	records[0].Donations[0].ID = "changed"

	again, err := repo.ListWeeklyRecords(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Pastor", again[0].Minister)
	assert.Equal(t, "d-1", again[0].Donations[0].ID)
}

func TestCollection_FailedSaveKeepsPreviousState(t *testing.T) {
	ctx := context.Background()
	store := new(MockStore)
	boom := errors.New("disk full")

	store.On("LoadCollection", ctx, portsrepo.KeyMembers, mock.Anything).Return(false, nil).Once()
	store.On("SaveCollection", ctx, portsrepo.KeyMembers, mock.Anything).Return(nil).Once()
	store.On("SaveCollection", ctx, portsrepo.KeyMembers, mock.Anything).Return(boom).Once()

	repo := collections.NewMemberRepository(store)
	_, err := repo.UpdateMembers(ctx, func(m []domain.Member) ([]domain.Member, error) {
		return append(m, domain.Member{ID: "m-1", Name: "Ana"}), nil
	})
	require.NoError(t, err)

	_, err = repo.UpdateMembers(ctx, func(m []domain.Member) ([]domain.Member, error) {
		return append(m, domain.Member{ID: "m-2", Name: "Luis"}), nil
	})
	assert.ErrorIs(t, err, apperrors.ErrPersistence)
	assert.ErrorIs(t, err, boom)

	members, err := repo.ListMembers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Member{{ID: "m-1", Name: "Ana"}}, members)
	store.AssertExpectations(t)
}

func TestCollection_RejectedUpdateIsNotSaved(t *testing.T) {
	ctx := context.Background()
	store := new(MockStore)
	store.On("LoadCollection", ctx, portsrepo.KeyCategories, mock.Anything).Return(false, nil).Once()

	repo := collections.NewCategoryRepository(store)
	_, err := repo.UpdateCategories(ctx, func([]string) ([]string, error) {
		return nil, apperrors.NewDuplicateNameError("category", "Luz")
	})
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
	store.AssertNotCalled(t, "SaveCollection", mock.Anything, mock.Anything, mock.Anything)
}

func TestCollection_LoadFailure(t *testing.T) {
	ctx := context.Background()
	store := new(MockStore)
	store.On("LoadCollection", mock.Anything, mock.Anything, mock.Anything).Return(false, errors.New("unreachable"))

	err := collections.NewProvider(store).LoadAll(ctx)
	assert.ErrorIs(t, err, apperrors.ErrPersistence)
}

func TestCollection_ConcurrentUpdatesAreSerialized(t *testing.T) {
	ctx := context.Background()
	repo := collections.NewMemberRepository(memory.NewStore())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.UpdateMembers(ctx, func(m []domain.Member) ([]domain.Member, error) {
				return append(m, domain.Member{ID: "m", Name: "x"}), nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	members, err := repo.ListMembers(ctx)
	require.NoError(t, err)
	assert.Len(t, members, 50)
}
