package repositories

import (
	"context"

	"github.com/SscSPs/offering_tracker/internal/core/domain"
)

// FormulaRepositoryFacade stores the current formula configuration.
type FormulaRepositoryFacade interface {
	// GetFormulas returns the current formulas, or the defaults when none were saved.
	GetFormulas(ctx context.Context) (domain.Formulas, error)

	// SaveFormulas replaces the current formulas.
	SaveFormulas(ctx context.Context, formulas domain.Formulas) error
}
