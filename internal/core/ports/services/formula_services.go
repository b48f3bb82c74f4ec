package services

import (
	"context"

	"github.com/SscSPs/offering_tracker/internal/core/domain"
	"github.com/SscSPs/offering_tracker/internal/dto"
)

// FormulaReaderSvc exposes the current formula configuration.
type FormulaReaderSvc interface {
	GetFormulas(ctx context.Context) (domain.Formulas, error)
}

// FormulaWriterSvc changes the formula configuration.
type FormulaWriterSvc interface {
	// SetFormulas validates and stores new formulas. Existing weekly records keep their snapshot.
	SetFormulas(ctx context.Context, req dto.UpdateFormulasRequest) (domain.Formulas, error)
}

// FormulaSvcFacade combines all formula service interfaces
type FormulaSvcFacade interface {
	FormulaReaderSvc
	FormulaWriterSvc
}
