package accounting

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ReconciliationMode selects how the stipend net is derived from the weekly total.
type ReconciliationMode string

const (
	// ReconcileIndependent rounds diezmoDeDiezmo and gomer separately from the same total.
	// WeeklySummary.RoundingDrift reports any difference against round(total).
	ReconcileIndependent ReconciliationMode = "independent"
	// ReconcileStrict derives gomer as round(total) - diezmoDeDiezmo so the two always add up.
	ReconcileStrict ReconciliationMode = "strict"
)

var (
	hundred = decimal.NewFromInt(100)
	half    = decimal.New(5, -1)
)

// Options tunes the aggregation engine. The zero value uses independent reconciliation
// and domain.DefaultPublicServiceCategories.
type Options struct {
	Reconciliation          ReconciliationMode
	PublicServiceCategories []string
}

// ParseReconciliationMode accepts "independent" or "strict" (case-insensitive). Empty means independent.
func ParseReconciliationMode(s string) (ReconciliationMode, error) {
	switch ReconciliationMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ReconcileIndependent:
		return ReconcileIndependent, nil
	case ReconcileStrict:
		return ReconcileStrict, nil
	default:
		return "", fmt.Errorf("unknown reconciliation mode '%s'", s)
	}
}

// RoundUnits rounds to whole currency units, half up (towards positive infinity).
func RoundUnits(d decimal.Decimal) decimal.Decimal {
	return d.Add(half).Floor()
}

// TitheOfTithe computes round(total * percentage / 100), rounded once on the combined total.
func TitheOfTithe(total, percentage decimal.Decimal) decimal.Decimal {
	return RoundUnits(total.Mul(percentage).Div(hundred))
}

// Remainder returns round(total - threshold) when total exceeds threshold, else zero.
func Remainder(total, threshold decimal.Decimal) decimal.Decimal {
	if !total.GreaterThan(threshold) {
		return decimal.Zero
	}
	return RoundUnits(total.Sub(threshold))
}

// StipendNet returns the minister's net (gomer) for a weekly total.
func StipendNet(total, titheOfTithe decimal.Decimal, mode ReconciliationMode) decimal.Decimal {
	if mode == ReconcileStrict {
		return RoundUnits(total).Sub(titheOfTithe)
	}
	return RoundUnits(total.Sub(titheOfTithe))
}
