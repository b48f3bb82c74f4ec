package handlers_test

import (
	"context"

	"github.com/SscSPs/offering_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/offering_tracker/internal/core/ports/services"
	"github.com/SscSPs/offering_tracker/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock FormulaService ---
type MockFormulaService struct {
	mock.Mock
}

func (m *MockFormulaService) GetFormulas(ctx context.Context) (domain.Formulas, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Formulas), args.Error(1)
}

func (m *MockFormulaService) SetFormulas(ctx context.Context, req dto.UpdateFormulasRequest) (domain.Formulas, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(domain.Formulas), args.Error(1)
}

var _ portssvc.FormulaSvcFacade = (*MockFormulaService)(nil)

// --- Mock DirectoryService ---
type MockDirectoryService struct {
	mock.Mock
}

func (m *MockDirectoryService) ListMembers(ctx context.Context) ([]domain.Member, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Member), args.Error(1)
}

func (m *MockDirectoryService) GetMember(ctx context.Context, memberID string) (*domain.Member, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

func (m *MockDirectoryService) ListCategories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockDirectoryService) AddMember(ctx context.Context, req dto.MemberRequest) (*domain.Member, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

func (m *MockDirectoryService) RenameMember(ctx context.Context, memberID string, req dto.MemberRequest) (*domain.Member, error) {
	args := m.Called(ctx, memberID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

func (m *MockDirectoryService) RemoveMember(ctx context.Context, memberID string) error {
	args := m.Called(ctx, memberID)
	return args.Error(0)
}

func (m *MockDirectoryService) AddCategory(ctx context.Context, req dto.CategoryRequest) ([]string, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockDirectoryService) RenameCategory(ctx context.Context, oldName string, req dto.CategoryRequest) ([]string, error) {
	args := m.Called(ctx, oldName, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockDirectoryService) RemoveCategory(ctx context.Context, name string) ([]string, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

var _ portssvc.DirectorySvcFacade = (*MockDirectoryService)(nil)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) GetRecord(ctx context.Context, recordID string) (*domain.WeeklyRecord, error) {
	args := m.Called(ctx, recordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WeeklyRecord), args.Error(1)
}

func (m *MockLedgerService) WeekIndex(ctx context.Context) ([]domain.WeekIndexEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WeekIndexEntry), args.Error(1)
}

func (m *MockLedgerService) ListRecords(ctx context.Context) ([]domain.WeeklyRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WeeklyRecord), args.Error(1)
}

func (m *MockLedgerService) ListRecordsForMonth(ctx context.Context, year, month int) ([]domain.WeeklyRecord, error) {
	args := m.Called(ctx, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WeeklyRecord), args.Error(1)
}

func (m *MockLedgerService) WeeklySummary(ctx context.Context, recordID string) (*domain.WeeklySummary, error) {
	args := m.Called(ctx, recordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WeeklySummary), args.Error(1)
}

func (m *MockLedgerService) MonthlySummary(ctx context.Context, year, month int) (*domain.MonthlySummary, error) {
	args := m.Called(ctx, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthlySummary), args.Error(1)
}

func (m *MockLedgerService) CreateRecord(ctx context.Context, req dto.CreateWeeklyRecordRequest) (*domain.WeeklyRecord, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WeeklyRecord), args.Error(1)
}

func (m *MockLedgerService) SaveRecord(ctx context.Context, recordID string, req dto.SaveWeeklyRecordRequest) (*domain.WeeklyRecord, error) {
	args := m.Called(ctx, recordID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WeeklyRecord), args.Error(1)
}

func (m *MockLedgerService) DeleteRecord(ctx context.Context, recordID string) error {
	args := m.Called(ctx, recordID)
	return args.Error(0)
}

func (m *MockLedgerService) AddDonation(ctx context.Context, recordID string, req dto.AddDonationRequest) (*domain.WeeklyRecord, error) {
	args := m.Called(ctx, recordID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WeeklyRecord), args.Error(1)
}

func (m *MockLedgerService) RemoveDonation(ctx context.Context, recordID, donationID string) (*domain.WeeklyRecord, error) {
	args := m.Called(ctx, recordID, donationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WeeklyRecord), args.Error(1)
}

var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

// --- Mock ReportService ---
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) BlankReport(ctx context.Context, year, month int) (*dto.ReportResponse, error) {
	args := m.Called(ctx, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ReportResponse), args.Error(1)
}

func (m *MockReportService) PrefillReport(ctx context.Context, year, month int, base domain.ReportForm) (*dto.ReportResponse, error) {
	args := m.Called(ctx, year, month, base)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ReportResponse), args.Error(1)
}

func (m *MockReportService) SaveReport(ctx context.Context, year, month int, req dto.SaveMonthlyReportRequest) (*dto.ReportResponse, error) {
	args := m.Called(ctx, year, month, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ReportResponse), args.Error(1)
}

func (m *MockReportService) GetReport(ctx context.Context, year, month int) (*dto.ReportResponse, error) {
	args := m.Called(ctx, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ReportResponse), args.Error(1)
}

func (m *MockReportService) ListReports(ctx context.Context) ([]domain.MonthlyReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthlyReport), args.Error(1)
}

func (m *MockReportService) DeleteReport(ctx context.Context, year, month int) error {
	args := m.Called(ctx, year, month)
	return args.Error(0)
}

func (m *MockReportService) SummarizeReport(form domain.ReportForm) domain.FormSummary {
	args := m.Called(form)
	return args.Get(0).(domain.FormSummary)
}

var _ portssvc.ReportSvcFacade = (*MockReportService)(nil)

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.LoginResponse), args.Error(1)
}

var _ portssvc.AuthSvcFacade = (*MockAuthService)(nil)
