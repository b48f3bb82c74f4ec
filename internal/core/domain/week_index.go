package domain

import (
	"cmp"
	"slices"

	"github.com/shopspring/decimal"
)

// IndexDateLayout formats the dates of a WeekIndexEntry.
const IndexDateLayout = "2006-01-02"

// WeekIndexEntry is the listing view of one weekly record.
// Total is the tithe-bearing total (Diezmo plus Ordinaria).
type WeekIndexEntry struct {
	RecordID      string          `json:"recordId"`
	WeekNumber    int             `json:"weekNumber"`
	StartDate     string          `json:"startDate"`
	EndDate       string          `json:"endDate"`
	Minister      string          `json:"minister"`
	DonationCount int             `json:"donationCount"`
	Total         decimal.Decimal `json:"total"`
}

// NewWeekIndexEntry derives the index entry of r.
func NewWeekIndexEntry(r WeeklyRecord) WeekIndexEntry {
	return WeekIndexEntry{
		RecordID:      r.ID,
		WeekNumber:    r.WeekNumber(),
		StartDate:     r.Date().Format(IndexDateLayout),
		EndDate:       r.EndDate().Format(IndexDateLayout),
		Minister:      r.Minister,
		DonationCount: len(r.Donations),
		Total:         r.TitheBearingTotal(),
	}
}

// BuildWeekIndex indexes records ordered by start date, then record id.
func BuildWeekIndex(records []WeeklyRecord) []WeekIndexEntry {
	out := make([]WeekIndexEntry, 0, len(records))
	for _, r := range records {
		out = append(out, NewWeekIndexEntry(r))
	}
	SortWeekIndex(out)
	return out
}

// SortWeekIndex orders entries by start date, then record id.
func SortWeekIndex(entries []WeekIndexEntry) {
	slices.SortFunc(entries, func(a, b WeekIndexEntry) int {
		return cmp.Or(cmp.Compare(a.StartDate, b.StartDate), cmp.Compare(a.RecordID, b.RecordID))
	})
}
