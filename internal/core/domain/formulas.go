package domain

import (
	"github.com/SscSPs/offering_tracker/internal/apperrors"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Formulas holds the percentage and threshold used to derive weekly figures.
// Every WeeklyRecord keeps its own copy taken at creation time.
type Formulas struct {
	DiezmoPercentage   decimal.Decimal `json:"diezmoPercentage"`   // 0-100
	RemanenteThreshold decimal.Decimal `json:"remanenteThreshold"` // >= 0
}

// DefaultFormulas returns the configuration in effect before an administrator changes it.
func DefaultFormulas() Formulas {
	return Formulas{
		DiezmoPercentage:   decimal.NewFromInt(10),
		RemanenteThreshold: decimal.NewFromInt(4500),
	}
}

// Validate rejects out-of-range values. Nothing is clamped.
func (f Formulas) Validate() error {
	if f.DiezmoPercentage.IsNegative() || f.DiezmoPercentage.GreaterThan(hundred) {
		return apperrors.NewValidationError("diezmo percentage must be between 0 and 100, got %s", f.DiezmoPercentage.String())
	}
	if f.RemanenteThreshold.IsNegative() {
		return apperrors.NewValidationError("remanente threshold must not be negative, got %s", f.RemanenteThreshold.String())
	}
	return nil
}
