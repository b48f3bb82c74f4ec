package services_test

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/SscSPs/offering_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/offering_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/offering_tracker/internal/core/services"
	"github.com/SscSPs/offering_tracker/internal/repositories/collections"
	"github.com/SscSPs/offering_tracker/internal/repositories/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

var errStoreDown = errors.New("store unavailable")

var fixedNow = time.Date(2024, 7, 1, 9, 30, 0, 0, time.UTC)

// sequentialIDs makes generated ids predictable: prefix + counter.
func sequentialIDs() services.Option {
	var n atomic.Int64
	return services.WithIDGenerator(func(prefix string) string {
		return fmt.Sprintf("%s%d", prefix, n.Add(1))
	})
}

func testOptions() []services.Option {
	return []services.Option{sequentialIDs(), services.WithClock(func() time.Time { return fixedNow })}
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// flakyStore is an in-memory store whose saves can be switched off.
type flakyStore struct {
	*memory.Store
	failSaves atomic.Bool
}

func newFlakyStore() *flakyStore {
	return &flakyStore{Store: memory.NewStore()}
}

func (s *flakyStore) SaveCollection(ctx context.Context, key string, value any) error {
	if s.failSaves.Load() {
		return errStoreDown
	}
	return s.Store.SaveCollection(ctx, key, value)
}

func newRepositories(store portsrepo.CollectionStore) portsrepo.RepositoryProvider {
	return collections.NewProvider(store).Repositories()
}

// --- Mock FormulaRepository ---
type MockFormulaRepository struct {
	mock.Mock
}

func (m *MockFormulaRepository) GetFormulas(ctx context.Context) (domain.Formulas, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Formulas), args.Error(1)
}

func (m *MockFormulaRepository) SaveFormulas(ctx context.Context, formulas domain.Formulas) error {
	args := m.Called(ctx, formulas)
	return args.Error(0)
}

var _ portsrepo.FormulaRepositoryFacade = (*MockFormulaRepository)(nil)
