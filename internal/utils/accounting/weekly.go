package accounting

import (
	"slices"
	"sort"

	"github.com/SscSPs/offering_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ComputeWeeklySummary derives subtotals and weekly figures from a single record using the
// record's own formula snapshot. A nil record yields a zeroed summary with Empty set.
//
// Every category in categories gets a subtotal entry. Donations whose category has since been
// removed from the directory still keep their own entry.
func ComputeWeeklySummary(record *domain.WeeklyRecord, categories []string, opts Options) domain.WeeklySummary {
	summary := domain.WeeklySummary{
		Categories:     slices.Clone(categories),
		Subtotals:      make(map[string]decimal.Decimal, len(categories)),
		Total:          decimal.Zero,
		DiezmoDeDiezmo: decimal.Zero,
		Remanente:      decimal.Zero,
		GomerMinistro:  decimal.Zero,
		RoundingDrift:  decimal.Zero,
		MemberNames:    []string{},
		ByMember:       map[string]map[string]decimal.Decimal{},
	}
	if summary.Categories == nil {
		summary.Categories = []string{}
	}
	for _, c := range categories {
		summary.Subtotals[c] = decimal.Zero
	}
	if record == nil {
		summary.Empty = true
		return summary
	}

	summary.RecordID = record.ID
	summary.Formulas = record.Formulas

	for _, d := range record.Donations {
		sub, ok := summary.Subtotals[d.Category]
		if !ok {
			summary.Categories = append(summary.Categories, d.Category)
			sub = decimal.Zero
		}
		summary.Subtotals[d.Category] = sub.Add(d.Amount)

		row, ok := summary.ByMember[d.MemberName]
		if !ok {
			row = map[string]decimal.Decimal{}
			summary.ByMember[d.MemberName] = row
			summary.MemberNames = append(summary.MemberNames, d.MemberName)
		}
		row[d.Category] = row[d.Category].Add(d.Amount)
	}
	sort.Strings(summary.MemberNames)

	total := summary.Subtotals[domain.CategoryDiezmo].Add(summary.Subtotals[domain.CategoryOrdinaria])
	summary.Total = total
	summary.DiezmoDeDiezmo = TitheOfTithe(total, record.Formulas.DiezmoPercentage)
	summary.Remanente = Remainder(total, record.Formulas.RemanenteThreshold)
	summary.GomerMinistro = StipendNet(total, summary.DiezmoDeDiezmo, opts.Reconciliation)
	summary.RoundingDrift = summary.DiezmoDeDiezmo.Add(summary.GomerMinistro).Sub(RoundUnits(total))
	return summary
}
