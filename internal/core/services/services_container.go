package services

import (
	"fmt"

	"github.com/SscSPs/offering_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/offering_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/offering_tracker/internal/core/ports/services"
	"github.com/SscSPs/offering_tracker/internal/platform/config"
	"github.com/SscSPs/offering_tracker/internal/utils/accounting"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, opts ...Option) (*portssvc.ServiceContainer, error) {
	mode, err := accounting.ParseReconciliationMode(cfg.ReconciliationMode)
	if err != nil {
		return nil, fmt.Errorf("invalid RECONCILIATION_MODE: %w", err)
	}
	accountingOpts := accounting.Options{
		Reconciliation:          mode,
		PublicServiceCategories: cfg.PublicServiceCategories,
	}

	container := &portssvc.ServiceContainer{}
	container.Formula = NewFormulaService(repos.FormulaRepo, opts...)
	container.Directory = NewDirectoryService(repos.MemberRepo, repos.CategoryRepo, opts...)
	container.Ledger = NewLedgerService(repos.WeeklyRecordRepo, container.Formula, container.Directory, accountingOpts, opts...)
	container.Report = NewReportService(repos.MonthlyReportRepo, container.Ledger, container.Formula,
		domain.OrgInfo{ChurchCode: cfg.ChurchCode, ChurchName: cfg.ChurchName}, opts...)

	container.Auth, err = NewAuthService(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return container, nil
}
