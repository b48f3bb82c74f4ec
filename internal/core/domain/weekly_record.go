package domain

import (
	"slices"
	"strings"
	"time"

	"github.com/SscSPs/offering_tracker/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Donation is a single member contribution inside a WeeklyRecord.
// MemberName is a snapshot taken when the donation was recorded and is kept even if the
// member is later renamed or removed from the directory.
type Donation struct {
	ID         string          `json:"id"`
	MemberID   string          `json:"memberId"`
	MemberName string          `json:"memberName"`
	Category   string          `json:"category"`
	Amount     decimal.Decimal `json:"amount"` // Strictly positive
}

// WeeklyRecord owns the donations collected on one service date.
// Formulas is the snapshot in effect at creation and never changes afterwards.
type WeeklyRecord struct {
	ID        string     `json:"id"`
	Day       int        `json:"day"`
	Month     int        `json:"month"` // 1-12
	Year      int        `json:"year"`
	Minister  string     `json:"minister"`
	Donations []Donation `json:"donations"`
	Formulas  Formulas   `json:"formulas"`
}

// NewWeeklyRecord creates an empty record for a date, snapshotting formulas.
func NewWeeklyRecord(id string, day, month, year int, minister string, formulas Formulas) (WeeklyRecord, error) {
	if err := ValidateDate(day, month, year); err != nil {
		return WeeklyRecord{}, err
	}
	minister = strings.TrimSpace(minister)
	if minister == "" {
		return WeeklyRecord{}, apperrors.NewValidationError("minister is required")
	}
	if err := formulas.Validate(); err != nil {
		return WeeklyRecord{}, err
	}
	return WeeklyRecord{
		ID:        id,
		Day:       day,
		Month:     month,
		Year:      year,
		Minister:  minister,
		Donations: []Donation{},
		Formulas:  formulas,
	}, nil
}

// ValidateDate checks that day/month/year form a real calendar date.
func ValidateDate(day, month, year int) error {
	if month < 1 || month > 12 {
		return apperrors.NewValidationError("month must be between 1 and 12, got %d", month)
	}
	if year < 1 {
		return apperrors.NewValidationError("year must be positive, got %d", year)
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if day < 1 || t.Day() != day {
		return apperrors.NewValidationError("day %d is not valid for %d/%d", day, month, year)
	}
	return nil
}

// SameDate reports whether two records fall on the same calendar date.
func (r WeeklyRecord) SameDate(day, month, year int) bool {
	return r.Day == day && r.Month == month && r.Year == year
}

// AddDonation returns a copy of r with a new donation appended.
// The receiver is left untouched.
func (r WeeklyRecord) AddDonation(id string, member *Member, category string, amount decimal.Decimal) (WeeklyRecord, error) {
	if member == nil || member.ID == "" {
		return r, apperrors.NewValidationError("member is required")
	}
	category = strings.TrimSpace(category)
	if category == "" {
		return r, apperrors.NewValidationError("category is required")
	}
	if !amount.IsPositive() {
		return r, apperrors.NewValidationError("amount must be greater than zero, got %s", amount.String())
	}

	donations := make([]Donation, 0, len(r.Donations)+1)
	donations = append(donations, r.Donations...)
	donations = append(donations, Donation{
		ID:         id,
		MemberID:   member.ID,
		MemberName: member.Name,
		Category:   category,
		Amount:     amount,
	})
	r.Donations = donations
	return r, nil
}

// RemoveDonation returns a copy of r without the donation with the given id.
func (r WeeklyRecord) RemoveDonation(donationID string) (WeeklyRecord, error) {
	idx := slices.IndexFunc(r.Donations, func(d Donation) bool { return d.ID == donationID })
	if idx < 0 {
		return r, apperrors.NewNotFoundError("donation", donationID)
	}
	r.Donations = slices.Delete(slices.Clone(r.Donations), idx, idx+1)
	return r, nil
}

// Clone returns a deep copy of the record.
func (r WeeklyRecord) Clone() WeeklyRecord {
	r.Donations = slices.Clone(r.Donations)
	if r.Donations == nil {
		r.Donations = []Donation{}
	}
	return r
}

// Date returns the service date of the record.
func (r WeeklyRecord) Date() time.Time {
	return time.Date(r.Year, time.Month(r.Month), r.Day, 0, 0, 0, 0, time.UTC)
}

// EndDate is the last day of the week that starts on the record date.
func (r WeeklyRecord) EndDate() time.Time {
	return r.Date().AddDate(0, 0, 6)
}

// WeekNumber counts weeks from January 1st, with weeks starting on Sunday.
func (r WeeklyRecord) WeekNumber() int {
	date := r.Date()
	firstDay := time.Date(r.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
	pastDays := date.YearDay() - 1
	return (pastDays + int(firstDay.Weekday()) + 1 + 6) / 7
}

// TitheBearingTotal is the raw sum of Diezmo and Ordinaria donations.
func (r WeeklyRecord) TitheBearingTotal() decimal.Decimal {
	total := decimal.Zero
	for _, d := range r.Donations {
		if d.Category == CategoryDiezmo || d.Category == CategoryOrdinaria {
			total = total.Add(d.Amount)
		}
	}
	return total
}

// UpsertWeeklyRecord replaces the record with the same id in place, or appends it.
// A new slice is always returned.
func UpsertWeeklyRecord(records []WeeklyRecord, record WeeklyRecord) []WeeklyRecord {
	out := slices.Clone(records)
	if idx := slices.IndexFunc(out, func(r WeeklyRecord) bool { return r.ID == record.ID }); idx >= 0 {
		out[idx] = record
		return out
	}
	return append(out, record)
}

// DeleteWeeklyRecord removes the record with the given id.
func DeleteWeeklyRecord(records []WeeklyRecord, id string) ([]WeeklyRecord, error) {
	idx := slices.IndexFunc(records, func(r WeeklyRecord) bool { return r.ID == id })
	if idx < 0 {
		return records, apperrors.NewNotFoundError("weekly record", id)
	}
	return slices.Delete(slices.Clone(records), idx, idx+1), nil
}

// FindWeeklyRecord returns the record with the given id.
func FindWeeklyRecord(records []WeeklyRecord, id string) (*WeeklyRecord, error) {
	for i := range records {
		if records[i].ID == id {
			r := records[i].Clone()
			return &r, nil
		}
	}
	return nil, apperrors.NewNotFoundError("weekly record", id)
}
