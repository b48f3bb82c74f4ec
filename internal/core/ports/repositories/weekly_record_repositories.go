package repositories

import (
	"context"

	"github.com/SscSPs/offering_tracker/internal/core/domain"
)

// WeeklyRecordReader defines read operations for weekly records
type WeeklyRecordReader interface {
	// ListWeeklyRecords returns every stored record in insertion order.
	ListWeeklyRecords(ctx context.Context) ([]domain.WeeklyRecord, error)
	WeekIndexReader
}

// WeeklyRecordWriter defines write operations for weekly records
type WeeklyRecordWriter interface {
	// UpdateWeeklyRecords applies fn to a copy of the collection and persists the result.
	UpdateWeeklyRecords(ctx context.Context, fn func([]domain.WeeklyRecord) ([]domain.WeeklyRecord, error)) ([]domain.WeeklyRecord, error)
}

// WeeklyRecordRepositoryFacade combines all weekly record repository interfaces
type WeeklyRecordRepositoryFacade interface {
	WeeklyRecordReader
	WeeklyRecordWriter
}
