package dto

import (
	"github.com/SscSPs/offering_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateWeeklyRecordRequest opens a new week. Formulas are taken from the current configuration.
type CreateWeeklyRecordRequest struct {
	Day                int    `json:"day" binding:"required,min=1,max=31"`
	Month              int    `json:"month" binding:"required,min=1,max=12"`
	Year               int    `json:"year" binding:"required,min=1900,max=9999"`
	Minister           string `json:"minister" binding:"required,max=120"`
	AllowDuplicateDate bool   `json:"allowDuplicateDate"`
}

// SaveWeeklyRecordRequest replaces the editable parts of a week. The formula snapshot is not part
// of the request: it is taken from the current configuration when the week is first stored.
type SaveWeeklyRecordRequest struct {
	Day                int               `json:"day" binding:"required,min=1,max=31"`
	Month              int               `json:"month" binding:"required,min=1,max=12"`
	Year               int               `json:"year" binding:"required,min=1900,max=9999"`
	Minister           string            `json:"minister" binding:"required,max=120"`
	Donations          []domain.Donation `json:"donations"`
	AllowDuplicateDate bool              `json:"allowDuplicateDate"`
}

// AddDonationRequest records one contribution in a week.
type AddDonationRequest struct {
	MemberID string           `json:"memberId" binding:"required"`
	Category string           `json:"category" binding:"required"`
	Amount   *decimal.Decimal `json:"amount" binding:"required"`
}

// DuplicateDateResponse is returned when another week already uses the requested date.
type DuplicateDateResponse struct {
	Error             string   `json:"error"`
	SameDateRecordIDs []string `json:"sameDateRecordIds"`
}

// WeeklyRecordResponse wraps a record with its derived dates.
type WeeklyRecordResponse struct {
	domain.WeeklyRecord
	WeekNumber int    `json:"weekNumber"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
}

const dateLayout = "2006-01-02"

// ToWeeklyRecordResponse converts a domain.WeeklyRecord to its response DTO.
func ToWeeklyRecordResponse(r domain.WeeklyRecord) WeeklyRecordResponse {
	if r.Donations == nil {
		r.Donations = []domain.Donation{}
	}
	return WeeklyRecordResponse{
		WeeklyRecord: r,
		WeekNumber:   r.WeekNumber(),
		StartDate:    r.Date().Format(dateLayout),
		EndDate:      r.EndDate().Format(dateLayout),
	}
}

// ToWeeklyRecordResponses converts a slice of records.
func ToWeeklyRecordResponses(records []domain.WeeklyRecord) []WeeklyRecordResponse {
	out := make([]WeeklyRecordResponse, len(records))
	for i, r := range records {
		out[i] = ToWeeklyRecordResponse(r)
	}
	return out
}

// MonthlySummaryResponse reports a month's aggregates, or Empty when it has no weeks.
type MonthlySummaryResponse struct {
	Empty   bool                   `json:"empty"`
	Summary *domain.MonthlySummary `json:"summary,omitempty"`
}
