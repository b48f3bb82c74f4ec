package services

import (
	"context"

	"github.com/SscSPs/offering_tracker/internal/core/domain"
	"github.com/SscSPs/offering_tracker/internal/dto"
)

// ReportSvcFacade manages monthly report forms through their lifecycle.
type ReportSvcFacade interface {
	// BlankReport returns an unsaved form with every field empty.
	BlankReport(ctx context.Context, year, month int) (*dto.ReportResponse, error)
	// PrefillReport merges the month's derived figures into base. A nil base falls back to the
	// period's saved form, then to a blank one.
	// It returns apperrors.ErrEmptyPeriod when the month has no weekly records.
	PrefillReport(ctx context.Context, year, month int, base domain.ReportForm) (*dto.ReportResponse, error)
	// SaveReport stores the form; an existing report needs req.Overwrite.
	SaveReport(ctx context.Context, year, month int, req dto.SaveMonthlyReportRequest) (*dto.ReportResponse, error)
	GetReport(ctx context.Context, year, month int) (*dto.ReportResponse, error)
	// ListReports returns saved reports, newest period first.
	ListReports(ctx context.Context) ([]domain.MonthlyReport, error)
	DeleteReport(ctx context.Context, year, month int) error
	SummarizeReport(form domain.ReportForm) domain.FormSummary
}
