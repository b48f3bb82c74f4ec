package services

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"

	"github.com/SscSPs/offering_tracker/internal/apperrors"
	"github.com/SscSPs/offering_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/offering_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/offering_tracker/internal/core/ports/services"
	"github.com/SscSPs/offering_tracker/internal/dto"
	"github.com/SscSPs/offering_tracker/internal/utils/accounting"
)

// ledgerService implements the LedgerSvcFacade interface
type ledgerService struct {
	BaseService
	recordRepo portsrepo.WeeklyRecordRepositoryFacade
	formulas   portssvc.FormulaReaderSvc
	directory  portssvc.DirectoryReaderSvc
	accounting accounting.Options
}

// NewLedgerService creates the weekly ledger service. Current formulas are read from formulas
// when a record is created; members and categories are resolved through directory.
func NewLedgerService(
	recordRepo portsrepo.WeeklyRecordRepositoryFacade,
	formulas portssvc.FormulaReaderSvc,
	directory portssvc.DirectoryReaderSvc,
	accountingOpts accounting.Options,
	opts ...Option,
) portssvc.LedgerSvcFacade {
	return &ledgerService{
		BaseService: newBaseService(opts...),
		recordRepo:  recordRepo,
		formulas:    formulas,
		directory:   directory,
		accounting:  accountingOpts,
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

func (s *ledgerService) CreateRecord(ctx context.Context, req dto.CreateWeeklyRecordRequest) (*domain.WeeklyRecord, error) {
	if err := dto.Validate(req); err != nil {
		s.LogWarn(ctx, err, "Invalid weekly record request")
		return nil, err
	}

	formulas, err := s.formulas.GetFormulas(ctx)
	if err != nil {
		return nil, err
	}

	record, err := domain.NewWeeklyRecord(s.NewID("wr-"), req.Day, req.Month, req.Year, req.Minister, formulas)
	if err != nil {
		s.LogWarn(ctx, err, "Rejected weekly record")
		return nil, err
	}

	_, err = s.recordRepo.UpdateWeeklyRecords(ctx, func(records []domain.WeeklyRecord) ([]domain.WeeklyRecord, error) {
		sameDate := sameDateRecordIDs(records, record)
		if len(sameDate) > 0 && !req.AllowDuplicateDate {
			return nil, &apperrors.DuplicateDateError{
				Date:      record.Date().Format("2006-01-02"),
				RecordIDs: sameDate,
			}
		}
		return append(records, record), nil
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to create weekly record")
		return nil, err
	}

	s.LogInfo(ctx, "Weekly record created",
		slog.String("record_id", record.ID),
		slog.String("date", record.Date().Format("2006-01-02")),
		slog.String("diezmo_percentage", formulas.DiezmoPercentage.String()))
	return &record, nil
}

func (s *ledgerService) SaveRecord(ctx context.Context, recordID string, req dto.SaveWeeklyRecordRequest) (*domain.WeeklyRecord, error) {
	if err := dto.Validate(req); err != nil {
		s.LogWarn(ctx, err, "Invalid weekly record request", slog.String("record_id", recordID))
		return nil, err
	}

	if strings.TrimSpace(recordID) == "" {
		return nil, apperrors.NewValidationError("record id is required")
	}
	current, err := s.formulas.GetFormulas(ctx)
	if err != nil {
		return nil, err
	}

	var (
		saved   domain.WeeklyRecord
		created bool
	)
	_, err = s.recordRepo.UpdateWeeklyRecords(ctx, func(records []domain.WeeklyRecord) ([]domain.WeeklyRecord, error) {
		record := domain.WeeklyRecord{ID: recordID, Formulas: current}
		idx := slices.IndexFunc(records, func(r domain.WeeklyRecord) bool { return r.ID == recordID })
		created = idx < 0
		if !created {
			record = records[idx]
		}
		record.Day, record.Month, record.Year = req.Day, req.Month, req.Year
		record.Minister = strings.TrimSpace(req.Minister)
		record.Donations = slices.Clone(req.Donations)
		if record.Donations == nil {
			record.Donations = []domain.Donation{}
		}
		if err := validateRecord(record); err != nil {
			return nil, err
		}

		if !req.AllowDuplicateDate {
			if clash := sameDateRecordIDs(records, record); len(clash) > 0 {
				return nil, &apperrors.DuplicateDateError{
					Date:      record.Date().Format("2006-01-02"),
					RecordIDs: clash,
				}
			}
		}

		saved = record.Clone()
		return domain.UpsertWeeklyRecord(records, record), nil
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to save weekly record", slog.String("record_id", recordID))
		return nil, err
	}

	s.LogInfo(ctx, "Weekly record saved", slog.String("record_id", recordID), slog.Bool("created", created))
	return &saved, nil
}

// sameDateRecordIDs lists the other records dated on record's date.
func sameDateRecordIDs(records []domain.WeeklyRecord, record domain.WeeklyRecord) []string {
	var ids []string
	for _, r := range records {
		if r.ID != record.ID && r.SameDate(record.Day, record.Month, record.Year) {
			ids = append(ids, r.ID)
		}
	}
	return ids
}

func validateRecord(r domain.WeeklyRecord) error {
	if err := domain.ValidateDate(r.Day, r.Month, r.Year); err != nil {
		return err
	}
	if strings.TrimSpace(r.Minister) == "" {
		return apperrors.NewValidationError("minister is required")
	}
	if err := r.Formulas.Validate(); err != nil {
		return err
	}
	seen := make(map[string]struct{}, len(r.Donations))
	for _, d := range r.Donations {
		if d.ID == "" {
			return apperrors.NewValidationError("donation id is required")
		}
		if _, dup := seen[d.ID]; dup {
			return apperrors.NewValidationError("donation '%s' appears twice", d.ID)
		}
		seen[d.ID] = struct{}{}
		if !d.Amount.IsPositive() {
			return apperrors.NewValidationError("donation '%s' amount must be greater than zero", d.ID)
		}
		if strings.TrimSpace(d.Category) == "" || strings.TrimSpace(d.MemberName) == "" {
			return apperrors.NewValidationError("donation '%s' needs a member and a category", d.ID)
		}
	}
	return nil
}

func (s *ledgerService) DeleteRecord(ctx context.Context, recordID string) error {
	_, err := s.recordRepo.UpdateWeeklyRecords(ctx, func(records []domain.WeeklyRecord) ([]domain.WeeklyRecord, error) {
		return domain.DeleteWeeklyRecord(records, recordID)
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to delete weekly record", slog.String("record_id", recordID))
		return err
	}

	s.LogInfo(ctx, "Weekly record deleted", slog.String("record_id", recordID))
	return nil
}

func (s *ledgerService) AddDonation(ctx context.Context, recordID string, req dto.AddDonationRequest) (*domain.WeeklyRecord, error) {
	if strings.TrimSpace(recordID) == "" {
		return nil, apperrors.NewValidationError("no active week")
	}
	if err := dto.Validate(req); err != nil {
		s.LogWarn(ctx, err, "Invalid donation request", slog.String("record_id", recordID))
		return nil, err
	}

	member, err := s.directory.GetMember(ctx, req.MemberID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewValidationError("member '%s' does not exist", req.MemberID)
		}
		return nil, err
	}

	categories, err := s.directory.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	idx := indexOfCategory(categories, strings.TrimSpace(req.Category))
	if idx < 0 {
		return nil, apperrors.NewValidationError("category '%s' does not exist", req.Category)
	}
	category := categories[idx]

	var updated domain.WeeklyRecord
	_, err = s.recordRepo.UpdateWeeklyRecords(ctx, func(records []domain.WeeklyRecord) ([]domain.WeeklyRecord, error) {
		pos := slices.IndexFunc(records, func(r domain.WeeklyRecord) bool { return r.ID == recordID })
		if pos < 0 {
			return nil, apperrors.NewNotFoundError("weekly record", recordID)
		}
		rec, err := records[pos].AddDonation(s.NewID("d-"), member, category, *req.Amount)
		if err != nil {
			return nil, err
		}
		records[pos] = rec
		updated = rec
		return records, nil
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to add donation", slog.String("record_id", recordID))
		return nil, err
	}

	s.LogInfo(ctx, "Donation added",
		slog.String("record_id", recordID),
		slog.String("member_id", member.ID),
		slog.String("category", category),
		slog.String("amount", req.Amount.String()))
	return &updated, nil
}

func (s *ledgerService) RemoveDonation(ctx context.Context, recordID, donationID string) (*domain.WeeklyRecord, error) {
	var updated domain.WeeklyRecord
	_, err := s.recordRepo.UpdateWeeklyRecords(ctx, func(records []domain.WeeklyRecord) ([]domain.WeeklyRecord, error) {
		pos := slices.IndexFunc(records, func(r domain.WeeklyRecord) bool { return r.ID == recordID })
		if pos < 0 {
			return nil, apperrors.NewNotFoundError("weekly record", recordID)
		}
		rec, err := records[pos].RemoveDonation(donationID)
		if err != nil {
			return nil, err
		}
		records[pos] = rec
		updated = rec
		return records, nil
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to remove donation",
			slog.String("record_id", recordID),
			slog.String("donation_id", donationID))
		return nil, err
	}

	s.LogInfo(ctx, "Donation removed", slog.String("record_id", recordID), slog.String("donation_id", donationID))
	return &updated, nil
}

func (s *ledgerService) GetRecord(ctx context.Context, recordID string) (*domain.WeeklyRecord, error) {
	records, err := s.recordRepo.ListWeeklyRecords(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load weekly records")
		return nil, err
	}
	return domain.FindWeeklyRecord(records, recordID)
}

func (s *ledgerService) ListRecords(ctx context.Context) ([]domain.WeeklyRecord, error) {
	records, err := s.recordRepo.ListWeeklyRecords(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load weekly records")
		return nil, err
	}
	slices.SortStableFunc(records, func(a, b domain.WeeklyRecord) int {
		return b.Date().Compare(a.Date())
	})
	return records, nil
}

func (s *ledgerService) WeekIndex(ctx context.Context) ([]domain.WeekIndexEntry, error) {
	entries, err := s.recordRepo.WeekIndex(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load week index")
		return nil, err
	}
	return entries, nil
}

func (s *ledgerService) ListRecordsForMonth(ctx context.Context, year, month int) ([]domain.WeeklyRecord, error) {
	if err := validatePeriod(year, month); err != nil {
		return nil, err
	}
	records, err := s.recordRepo.ListWeeklyRecords(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load weekly records")
		return nil, err
	}
	matching := accounting.FilterByPeriod(records, month, year)
	if matching == nil {
		matching = []domain.WeeklyRecord{}
	}
	return matching, nil
}

func (s *ledgerService) WeeklySummary(ctx context.Context, recordID string) (*domain.WeeklySummary, error) {
	record, err := s.GetRecord(ctx, recordID)
	if err != nil {
		return nil, err
	}
	categories, err := s.directory.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	summary := accounting.ComputeWeeklySummary(record, categories, s.accounting)
	return &summary, nil
}

func (s *ledgerService) MonthlySummary(ctx context.Context, year, month int) (*domain.MonthlySummary, error) {
	if err := validatePeriod(year, month); err != nil {
		return nil, err
	}
	records, err := s.recordRepo.ListWeeklyRecords(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load weekly records")
		return nil, err
	}
	categories, err := s.directory.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	summary, err := accounting.ComputeMonthlySummary(records, month, year, categories, s.accounting)
	if err != nil {
		s.LogDebug(ctx, "No weekly records for period", slog.Int("year", year), slog.Int("month", month))
		return nil, err
	}
	return summary, nil
}

func validatePeriod(year, month int) error {
	if month < 1 || month > 12 {
		return apperrors.NewValidationError("month must be between 1 and 12, got %d", month)
	}
	if year < 1900 || year > 9999 {
		return apperrors.NewValidationError("year %d is out of range", year)
	}
	return nil
}
