package accounting

import (
	"slices"

	"github.com/SscSPs/offering_tracker/internal/apperrors"
	"github.com/SscSPs/offering_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FilterByPeriod returns the records dated in the given month and year, in their original order.
func FilterByPeriod(records []domain.WeeklyRecord, month, year int) []domain.WeeklyRecord {
	var out []domain.WeeklyRecord
	for _, r := range records {
		if r.Month == month && r.Year == year {
			out = append(out, r)
		}
	}
	return out
}

// ComputeMonthlySummary folds the weekly summaries of every record in (month, year).
//
// Each week is computed with its own formula snapshot and the monthly tithe-of-tithe and stipend
// figures are sums of the already rounded weekly values. They are never recomputed from the
// monthly total. Returns apperrors.ErrEmptyPeriod when no record matches.
func ComputeMonthlySummary(records []domain.WeeklyRecord, month, year int, categories []string, opts Options) (*domain.MonthlySummary, error) {
	matching := FilterByPeriod(records, month, year)
	if len(matching) == 0 {
		return nil, apperrors.ErrEmptyPeriod
	}

	publicServices := opts.PublicServiceCategories
	if publicServices == nil {
		publicServices = domain.DefaultPublicServiceCategories
	}

	summary := &domain.MonthlySummary{
		Month:               month,
		Year:                year,
		WeekCount:           len(matching),
		Minister:            matching[0].Minister,
		CategoryTotals:      make(map[string]decimal.Decimal, len(categories)),
		DiezmoTotal:         decimal.Zero,
		OrdinariaTotal:      decimal.Zero,
		PublicServicesTotal: decimal.Zero,
		Total:               decimal.Zero,
		DiezmoDeDiezmo:      decimal.Zero,
		GomerMinistro:       decimal.Zero,
		Remanente:           decimal.Zero,
		Weeks:               make([]domain.WeeklySummary, 0, len(matching)),
	}
	for _, c := range categories {
		summary.CategoryTotals[c] = decimal.Zero
	}

	for i := range matching {
		week := ComputeWeeklySummary(&matching[i], categories, opts)
		summary.Weeks = append(summary.Weeks, week)

		for cat, amount := range week.Subtotals {
			summary.CategoryTotals[cat] = summary.CategoryTotals[cat].Add(amount)
			if slices.Contains(publicServices, cat) {
				summary.PublicServicesTotal = summary.PublicServicesTotal.Add(amount)
			}
		}
		summary.DiezmoTotal = summary.DiezmoTotal.Add(week.Subtotals[domain.CategoryDiezmo])
		summary.OrdinariaTotal = summary.OrdinariaTotal.Add(week.Subtotals[domain.CategoryOrdinaria])
		summary.Total = summary.Total.Add(week.Total)
		summary.DiezmoDeDiezmo = summary.DiezmoDeDiezmo.Add(week.DiezmoDeDiezmo)
		summary.GomerMinistro = summary.GomerMinistro.Add(week.GomerMinistro)
		summary.Remanente = summary.Remanente.Add(week.Remanente)
	}

	return summary, nil
}
