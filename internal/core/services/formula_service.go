package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/offering_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/offering_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/offering_tracker/internal/core/ports/services"
	"github.com/SscSPs/offering_tracker/internal/dto"
)

// formulaService implements the FormulaSvcFacade interface
type formulaService struct {
	BaseService
	formulaRepo portsrepo.FormulaRepositoryFacade
}

// NewFormulaService creates a formula service over repo.
func NewFormulaService(repo portsrepo.FormulaRepositoryFacade, opts ...Option) portssvc.FormulaSvcFacade {
	return &formulaService{BaseService: newBaseService(opts...), formulaRepo: repo}
}

var _ portssvc.FormulaSvcFacade = (*formulaService)(nil)

func (s *formulaService) GetFormulas(ctx context.Context) (domain.Formulas, error) {
	formulas, err := s.formulaRepo.GetFormulas(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load formulas")
		return domain.Formulas{}, err
	}
	return formulas, nil
}

func (s *formulaService) SetFormulas(ctx context.Context, req dto.UpdateFormulasRequest) (domain.Formulas, error) {
	if err := dto.Validate(req); err != nil {
		s.LogWarn(ctx, err, "Invalid formulas request")
		return domain.Formulas{}, err
	}
	formulas := req.ToDomain()
	if err := formulas.Validate(); err != nil {
		s.LogWarn(ctx, err, "Rejected formulas",
			slog.String("diezmo_percentage", formulas.DiezmoPercentage.String()),
			slog.String("remanente_threshold", formulas.RemanenteThreshold.String()))
		return domain.Formulas{}, err
	}

	if err := s.formulaRepo.SaveFormulas(ctx, formulas); err != nil {
		s.LogError(ctx, err, "Failed to save formulas")
		return domain.Formulas{}, err
	}

	s.LogInfo(ctx, "Formulas updated",
		slog.String("diezmo_percentage", formulas.DiezmoPercentage.String()),
		slog.String("remanente_threshold", formulas.RemanenteThreshold.String()))
	return formulas, nil
}
