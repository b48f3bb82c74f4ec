package repositories

import (
	"context"

	"github.com/SscSPs/offering_tracker/internal/core/domain"
)

// MonthlyReportReader defines read operations for saved monthly reports
type MonthlyReportReader interface {
	ListMonthlyReports(ctx context.Context) ([]domain.MonthlyReport, error)
}

// MonthlyReportWriter defines write operations for saved monthly reports
type MonthlyReportWriter interface {
	UpdateMonthlyReports(ctx context.Context, fn func([]domain.MonthlyReport) ([]domain.MonthlyReport, error)) ([]domain.MonthlyReport, error)
}

// MonthlyReportRepositoryFacade combines all monthly report repository interfaces
type MonthlyReportRepositoryFacade interface {
	MonthlyReportReader
	MonthlyReportWriter
}
