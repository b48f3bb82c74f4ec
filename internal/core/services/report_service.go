package services

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"slices"

	"github.com/SscSPs/offering_tracker/internal/apperrors"
	"github.com/SscSPs/offering_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/offering_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/offering_tracker/internal/core/ports/services"
	"github.com/SscSPs/offering_tracker/internal/dto"
	"github.com/SscSPs/offering_tracker/internal/utils/accounting"
)

// reportService implements the ReportSvcFacade interface
type reportService struct {
	BaseService
	reportRepo portsrepo.MonthlyReportRepositoryFacade
	ledger     portssvc.LedgerReaderSvc
	formulas   portssvc.FormulaReaderSvc
	org        domain.OrgInfo
}

// NewReportService creates the monthly report service. org fills the church identification fields
// of prefilled forms.
func NewReportService(
	reportRepo portsrepo.MonthlyReportRepositoryFacade,
	ledger portssvc.LedgerReaderSvc,
	formulas portssvc.FormulaReaderSvc,
	org domain.OrgInfo,
	opts ...Option,
) portssvc.ReportSvcFacade {
	return &reportService{
		BaseService: newBaseService(opts...),
		reportRepo:  reportRepo,
		ledger:      ledger,
		formulas:    formulas,
		org:         org,
	}
}

var _ portssvc.ReportSvcFacade = (*reportService)(nil)

func (s *reportService) BlankReport(_ context.Context, year, month int) (*dto.ReportResponse, error) {
	if err := validatePeriod(year, month); err != nil {
		return nil, err
	}
	form := domain.NewReportForm()
	return &dto.ReportResponse{
		Month:    month,
		Year:     year,
		State:    domain.ReportUnsaved,
		FormData: form,
		Summary:  accounting.SummarizeReportForm(form),
	}, nil
}

func (s *reportService) PrefillReport(ctx context.Context, year, month int, base domain.ReportForm) (*dto.ReportResponse, error) {
	if err := validatePeriod(year, month); err != nil {
		return nil, err
	}
	if err := validateForm(base); err != nil {
		return nil, err
	}

	monthly, err := s.ledger.MonthlySummary(ctx, year, month)
	if err != nil {
		return nil, err
	}
	current, err := s.formulas.GetFormulas(ctx)
	if err != nil {
		return nil, err
	}
	if base == nil {
		base, err = s.storedForm(ctx, domain.MonthlyReportID(year, month))
		if err != nil {
			return nil, err
		}
	}

	form := accounting.PrefillReportForm(base, monthly, current, s.org)
	s.LogInfo(ctx, "Report prefilled",
		slog.Int("year", year),
		slog.Int("month", month),
		slog.Int("weeks", monthly.WeekCount))
	return &dto.ReportResponse{
		ID:       domain.MonthlyReportID(year, month),
		Month:    month,
		Year:     year,
		State:    domain.ReportPrefilled,
		FormData: form,
		Summary:  accounting.SummarizeReportForm(form),
		Monthly:  monthly,
	}, nil
}

func (s *reportService) SaveReport(ctx context.Context, year, month int, req dto.SaveMonthlyReportRequest) (*dto.ReportResponse, error) {
	if err := validatePeriod(year, month); err != nil {
		return nil, err
	}
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	if err := validateForm(req.FormData); err != nil {
		return nil, err
	}

	report := domain.MonthlyReport{
		ID:       domain.MonthlyReportID(year, month),
		Month:    month,
		Year:     year,
		FormData: req.FormData.Clone(),
		SavedAt:  s.Now().UTC(),
		SavedBy:  req.SavedBy,
	}

	_, err := s.reportRepo.UpdateMonthlyReports(ctx, func(reports []domain.MonthlyReport) ([]domain.MonthlyReport, error) {
		idx := slices.IndexFunc(reports, func(r domain.MonthlyReport) bool { return r.ID == report.ID })
		if idx < 0 {
			return append(reports, report), nil
		}
		if !req.Overwrite {
			return nil, apperrors.NewAppError(http.StatusConflict,
				fmt.Sprintf("a report for %s %d already exists", domain.MonthName(month), year),
				apperrors.ErrOverwriteRequired)
		}
		reports[idx] = report
		return reports, nil
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to save report", slog.String("report_id", report.ID))
		return nil, err
	}

	s.LogInfo(ctx, "Report saved",
		slog.String("report_id", report.ID),
		slog.String("saved_by", report.SavedBy),
		slog.Bool("overwrite", req.Overwrite))
	return toReportResponse(report, domain.ReportSaved), nil
}

func (s *reportService) GetReport(ctx context.Context, year, month int) (*dto.ReportResponse, error) {
	if err := validatePeriod(year, month); err != nil {
		return nil, err
	}
	reports, err := s.reportRepo.ListMonthlyReports(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load reports")
		return nil, err
	}

	id := domain.MonthlyReportID(year, month)
	idx := slices.IndexFunc(reports, func(r domain.MonthlyReport) bool { return r.ID == id })
	if idx < 0 {
		return nil, apperrors.NewNotFoundError("report", id)
	}
	return toReportResponse(reports[idx], domain.ReportLoaded), nil
}

// storedForm returns the saved form for id, or nil when the period has no saved report.
func (s *reportService) storedForm(ctx context.Context, id string) (domain.ReportForm, error) {
	reports, err := s.reportRepo.ListMonthlyReports(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load reports")
		return nil, err
	}
	idx := slices.IndexFunc(reports, func(r domain.MonthlyReport) bool { return r.ID == id })
	if idx < 0 {
		return nil, nil
	}
	return reports[idx].FormData, nil
}

func (s *reportService) ListReports(ctx context.Context) ([]domain.MonthlyReport, error) {
	reports, err := s.reportRepo.ListMonthlyReports(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load reports")
		return nil, err
	}
	slices.SortStableFunc(reports, func(a, b domain.MonthlyReport) int {
		switch {
		case b.Before(a):
			return -1
		case a.Before(b):
			return 1
		}
		return 0
	})
	return reports, nil
}

func (s *reportService) DeleteReport(ctx context.Context, year, month int) error {
	if err := validatePeriod(year, month); err != nil {
		return err
	}
	id := domain.MonthlyReportID(year, month)
	_, err := s.reportRepo.UpdateMonthlyReports(ctx, func(reports []domain.MonthlyReport) ([]domain.MonthlyReport, error) {
		idx := slices.IndexFunc(reports, func(r domain.MonthlyReport) bool { return r.ID == id })
		if idx < 0 {
			return nil, apperrors.NewNotFoundError("report", id)
		}
		return slices.Delete(reports, idx, idx+1), nil
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to delete report", slog.String("report_id", id))
		return err
	}

	s.LogInfo(ctx, "Report deleted", slog.String("report_id", id))
	return nil
}

func (s *reportService) SummarizeReport(form domain.ReportForm) domain.FormSummary {
	return accounting.SummarizeReportForm(form)
}

func toReportResponse(r domain.MonthlyReport, state domain.ReportState) *dto.ReportResponse {
	savedAt := r.SavedAt
	form := r.FormData.Clone()
	return &dto.ReportResponse{
		ID:       r.ID,
		Month:    r.Month,
		Year:     r.Year,
		State:    state,
		FormData: form,
		Summary:  accounting.SummarizeReportForm(form),
		SavedAt:  &savedAt,
		SavedBy:  r.SavedBy,
	}
}

// validateForm rejects keys outside the report schema.
func validateForm(form domain.ReportForm) error {
	for key := range form {
		if !domain.IsReportField(key) {
			return apperrors.NewValidationError("unknown report field '%s'", key)
		}
	}
	return nil
}
