package services

import (
	"context"

	"github.com/SscSPs/offering_tracker/internal/core/domain"
	"github.com/SscSPs/offering_tracker/internal/dto"
)

// LedgerReaderSvc defines read and aggregation operations over weekly records
type LedgerReaderSvc interface {
	GetRecord(ctx context.Context, recordID string) (*domain.WeeklyRecord, error)
	// ListRecords returns all records, newest date first.
	ListRecords(ctx context.Context) ([]domain.WeeklyRecord, error)
	ListRecordsForMonth(ctx context.Context, year, month int) ([]domain.WeeklyRecord, error)
	// WeekIndex lists one entry per record, oldest start date first.
	WeekIndex(ctx context.Context) ([]domain.WeekIndexEntry, error)
	WeeklySummary(ctx context.Context, recordID string) (*domain.WeeklySummary, error)
	// MonthlySummary returns apperrors.ErrEmptyPeriod when the month has no records.
	MonthlySummary(ctx context.Context, year, month int) (*domain.MonthlySummary, error)
}

// LedgerWriterSvc defines mutations of weekly records. Every mutation persists the collection.
type LedgerWriterSvc interface {
	// CreateRecord snapshots the current formulas. When another record shares the date and
	// AllowDuplicateDate is false it returns a *DuplicateDateError.
	CreateRecord(ctx context.Context, req dto.CreateWeeklyRecordRequest) (*domain.WeeklyRecord, error)
	// SaveRecord upserts by id. An existing record keeps its formula snapshot and a new id gets
	// the current formulas. A date used by another record returns a *DuplicateDateError unless
	// AllowDuplicateDate is set.
	SaveRecord(ctx context.Context, recordID string, req dto.SaveWeeklyRecordRequest) (*domain.WeeklyRecord, error)
	DeleteRecord(ctx context.Context, recordID string) error
	AddDonation(ctx context.Context, recordID string, req dto.AddDonationRequest) (*domain.WeeklyRecord, error)
	RemoveDonation(ctx context.Context, recordID, donationID string) (*domain.WeeklyRecord, error)
}

// LedgerSvcFacade combines all ledger service interfaces
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerWriterSvc
}
