package dto

import (
	"time"

	"github.com/SscSPs/offering_tracker/internal/core/domain"
)

// PrefillReportRequest optionally carries the form being edited; derived fields are merged into it.
type PrefillReportRequest struct {
	FormData domain.ReportForm `json:"formData"`
}

// SaveMonthlyReportRequest stores a report form for a period.
type SaveMonthlyReportRequest struct {
	FormData  domain.ReportForm `json:"formData" binding:"required"`
	Overwrite bool              `json:"overwrite"`
	// SavedBy is the authenticated user, filled in by the handler.
	SavedBy string `json:"-"`
}

// SummarizeReportRequest asks for the live summary of an arbitrary form.
type SummarizeReportRequest struct {
	FormData domain.ReportForm `json:"formData" binding:"required"`
}

// ReportResponse is a report form in a given lifecycle state together with its live summary.
type ReportResponse struct {
	ID       string                 `json:"id,omitempty"`
	Month    int                    `json:"month"`
	Year     int                    `json:"year"`
	State    domain.ReportState     `json:"state"`
	FormData domain.ReportForm      `json:"formData"`
	Summary  domain.FormSummary     `json:"summary"`
	Monthly  *domain.MonthlySummary `json:"monthly,omitempty"`
	SavedAt  *time.Time             `json:"savedAt,omitempty"`
	SavedBy  string                 `json:"savedBy,omitempty"`
}

// ReportListItem is one saved report in the history list.
type ReportListItem struct {
	ID        string    `json:"id"`
	Month     int       `json:"month"`
	Year      int       `json:"year"`
	MonthName string    `json:"monthName"`
	SavedAt   time.Time `json:"savedAt"`
	SavedBy   string    `json:"savedBy,omitempty"`
}

// ToReportListItems converts saved reports to list items, preserving order.
func ToReportListItems(reports []domain.MonthlyReport) []ReportListItem {
	out := make([]ReportListItem, len(reports))
	for i, r := range reports {
		out[i] = ReportListItem{
			ID:        r.ID,
			Month:     r.Month,
			Year:      r.Year,
			MonthName: domain.MonthName(r.Month),
			SavedAt:   r.SavedAt,
			SavedBy:   r.SavedBy,
		}
	}
	return out
}
