package domain

import (
	"fmt"
	"time"
)

// ReportState tracks where a monthly report is in its lifecycle.
type ReportState string

const (
	ReportUnsaved   ReportState = "UNSAVED"
	ReportPrefilled ReportState = "PREFILLED"
	ReportSaved     ReportState = "SAVED"
	ReportLoaded    ReportState = "LOADED"
)

// MonthlyReport is the persisted, manually adjustable report form for one calendar month.
// There is at most one per (year, month).
type MonthlyReport struct {
	ID       string     `json:"id"`
	Month    int        `json:"month"`
	Year     int        `json:"year"`
	FormData ReportForm `json:"formData"`
	SavedAt  time.Time  `json:"savedAt"`
	SavedBy  string     `json:"savedBy,omitempty"`
}

// MonthlyReportID derives the report id for a period.
func MonthlyReportID(year, month int) string {
	return fmt.Sprintf("report-%d-%d", year, month)
}

// Before orders reports by period.
func (r MonthlyReport) Before(other MonthlyReport) bool {
	if r.Year != other.Year {
		return r.Year < other.Year
	}
	return r.Month < other.Month
}
