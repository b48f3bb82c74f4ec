package dto

import (
	"github.com/SscSPs/offering_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpdateFormulasRequest replaces the current formula configuration.
type UpdateFormulasRequest struct {
	DiezmoPercentage   *decimal.Decimal `json:"diezmoPercentage" binding:"required"`
	RemanenteThreshold *decimal.Decimal `json:"remanenteThreshold" binding:"required"`
}

// ToDomain converts the request; call Validate first.
func (r UpdateFormulasRequest) ToDomain() domain.Formulas {
	return domain.Formulas{
		DiezmoPercentage:   *r.DiezmoPercentage,
		RemanenteThreshold: *r.RemanenteThreshold,
	}
}
