package collections

import (
	"context"
	"slices"

	"github.com/SscSPs/offering_tracker/internal/apperrors"
	"github.com/SscSPs/offering_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/offering_tracker/internal/core/ports/repositories"
	"golang.org/x/sync/errgroup"
)

type memberRepository struct {
	members *Collection[[]domain.Member]
}

// NewMemberRepository creates a member repository over store.
func NewMemberRepository(store portsrepo.CollectionStore) portsrepo.MemberRepositoryFacade {
	return newMemberRepository(store)
}

func newMemberRepository(store portsrepo.CollectionStore) *memberRepository {
	return &memberRepository{members: NewCollection(store, portsrepo.KeyMembers,
		func() []domain.Member { return []domain.Member{} },
		cloneSlice[domain.Member],
	)}
}

func (r *memberRepository) ListMembers(ctx context.Context) ([]domain.Member, error) {
	return r.members.Get(ctx)
}

func (r *memberRepository) UpdateMembers(ctx context.Context, fn func([]domain.Member) ([]domain.Member, error)) ([]domain.Member, error) {
	return r.members.Update(ctx, fn)
}

type categoryRepository struct {
	categories *Collection[[]string]
}

// NewCategoryRepository creates a category repository over store. An empty store starts with
// the default categories.
func NewCategoryRepository(store portsrepo.CollectionStore) portsrepo.CategoryRepositoryFacade {
	return newCategoryRepository(store)
}

func newCategoryRepository(store portsrepo.CollectionStore) *categoryRepository {
	return &categoryRepository{categories: NewCollection(store, portsrepo.KeyCategories,
		func() []string { return slices.Clone(domain.DefaultCategories) },
		cloneSlice[string],
	)}
}

func (r *categoryRepository) ListCategories(ctx context.Context) ([]string, error) {
	return r.categories.Get(ctx)
}

func (r *categoryRepository) UpdateCategories(ctx context.Context, fn func([]string) ([]string, error)) ([]string, error) {
	return r.categories.Update(ctx, fn)
}

type formulaRepository struct {
	formulas *Collection[domain.Formulas]
}

// NewFormulaRepository creates a formula repository over store.
func NewFormulaRepository(store portsrepo.CollectionStore) portsrepo.FormulaRepositoryFacade {
	return newFormulaRepository(store)
}

func newFormulaRepository(store portsrepo.CollectionStore) *formulaRepository {
	return &formulaRepository{formulas: NewCollection(store, portsrepo.KeyFormulas,
		domain.DefaultFormulas,
		func(f domain.Formulas) domain.Formulas { return f },
	)}
}

func (r *formulaRepository) GetFormulas(ctx context.Context) (domain.Formulas, error) {
	return r.formulas.Get(ctx)
}

func (r *formulaRepository) SaveFormulas(ctx context.Context, formulas domain.Formulas) error {
	_, err := r.formulas.Update(ctx, func(domain.Formulas) (domain.Formulas, error) {
		return formulas, nil
	})
	return err
}

type weeklyRecordRepository struct {
	records *Collection[[]domain.WeeklyRecord]
	index   portsrepo.WeekIndexReader // nil unless the store keeps its own index
}

// NewWeeklyRecordRepository creates a weekly record repository over store. The week index is
// read from the store when it implements WeekIndexReader and derived from the records otherwise.
func NewWeeklyRecordRepository(store portsrepo.CollectionStore) portsrepo.WeeklyRecordRepositoryFacade {
	return newWeeklyRecordRepository(store)
}

func newWeeklyRecordRepository(store portsrepo.CollectionStore) *weeklyRecordRepository {
	repo := &weeklyRecordRepository{records: NewCollection(store, portsrepo.KeyWeeklyRecords,
		func() []domain.WeeklyRecord { return []domain.WeeklyRecord{} },
		cloneWeeklyRecords,
	)}
	repo.index, _ = store.(portsrepo.WeekIndexReader)
	return repo
}

func (r *weeklyRecordRepository) ListWeeklyRecords(ctx context.Context) ([]domain.WeeklyRecord, error) {
	return r.records.Get(ctx)
}

func (r *weeklyRecordRepository) WeekIndex(ctx context.Context) ([]domain.WeekIndexEntry, error) {
	if r.index == nil {
		records, err := r.records.Get(ctx)
		if err != nil {
			return nil, err
		}
		return domain.BuildWeekIndex(records), nil
	}
	entries, err := r.index.WeekIndex(ctx)
	if err != nil {
		return nil, apperrors.NewPersistenceError("load", "weekIndex", err)
	}
	if entries == nil {
		entries = []domain.WeekIndexEntry{}
	}
	return entries, nil
}

func (r *weeklyRecordRepository) UpdateWeeklyRecords(ctx context.Context, fn func([]domain.WeeklyRecord) ([]domain.WeeklyRecord, error)) ([]domain.WeeklyRecord, error) {
	return r.records.Update(ctx, fn)
}

type monthlyReportRepository struct {
	reports *Collection[[]domain.MonthlyReport]
}

// NewMonthlyReportRepository creates a monthly report repository over store.
func NewMonthlyReportRepository(store portsrepo.CollectionStore) portsrepo.MonthlyReportRepositoryFacade {
	return newMonthlyReportRepository(store)
}

func newMonthlyReportRepository(store portsrepo.CollectionStore) *monthlyReportRepository {
	return &monthlyReportRepository{reports: NewCollection(store, portsrepo.KeyMonthlyReports,
		func() []domain.MonthlyReport { return []domain.MonthlyReport{} },
		cloneMonthlyReports,
	)}
}

func (r *monthlyReportRepository) ListMonthlyReports(ctx context.Context) ([]domain.MonthlyReport, error) {
	return r.reports.Get(ctx)
}

func (r *monthlyReportRepository) UpdateMonthlyReports(ctx context.Context, fn func([]domain.MonthlyReport) ([]domain.MonthlyReport, error)) ([]domain.MonthlyReport, error) {
	return r.reports.Update(ctx, fn)
}

// Provider builds the repositories over a single store and can load all of them up front.
type Provider struct {
	members    *memberRepository
	categories *categoryRepository
	formulas   *formulaRepository
	records    *weeklyRecordRepository
	reports    *monthlyReportRepository
}

// NewProvider creates every collection-backed repository over store.
func NewProvider(store portsrepo.CollectionStore) *Provider {
	return &Provider{
		members:    newMemberRepository(store),
		categories: newCategoryRepository(store),
		formulas:   newFormulaRepository(store),
		records:    newWeeklyRecordRepository(store),
		reports:    newMonthlyReportRepository(store),
	}
}

// Repositories returns the repositories for the service container.
func (p *Provider) Repositories() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		MemberRepo:        p.members,
		CategoryRepo:      p.categories,
		FormulaRepo:       p.formulas,
		WeeklyRecordRepo:  p.records,
		MonthlyReportRepo: p.reports,
	}
}

// LoadAll reads every collection concurrently. The first failure cancels the rest.
func (p *Provider) LoadAll(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return p.members.members.Load(ctx) })
	g.Go(func() error { return p.categories.categories.Load(ctx) })
	g.Go(func() error { return p.formulas.formulas.Load(ctx) })
	g.Go(func() error { return p.records.records.Load(ctx) })
	g.Go(func() error { return p.reports.reports.Load(ctx) })
	return g.Wait()
}

var (
	_ portsrepo.MemberRepositoryFacade        = (*memberRepository)(nil)
	_ portsrepo.CategoryRepositoryFacade      = (*categoryRepository)(nil)
	_ portsrepo.FormulaRepositoryFacade       = (*formulaRepository)(nil)
	_ portsrepo.WeeklyRecordRepositoryFacade  = (*weeklyRecordRepository)(nil)
	_ portsrepo.MonthlyReportRepositoryFacade = (*monthlyReportRepository)(nil)
)

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return slices.Clone(s)
}

func cloneWeeklyRecords(records []domain.WeeklyRecord) []domain.WeeklyRecord {
	out := make([]domain.WeeklyRecord, len(records))
	for i := range records {
		out[i] = records[i].Clone()
	}
	return out
}

func cloneMonthlyReports(reports []domain.MonthlyReport) []domain.MonthlyReport {
	out := make([]domain.MonthlyReport, len(reports))
	for i, r := range reports {
		r.FormData = r.FormData.Clone()
		out[i] = r
	}
	return out
}
