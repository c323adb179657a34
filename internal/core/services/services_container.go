package services

import (
	portsrepo "github.com/SscSPs/org_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/org_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/org_ledger_app/internal/platform/config"
	"github.com/SscSPs/org_ledger_app/internal/utils/accounting"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// locker may be nil, in which case posting relies on database row locks alone.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, locker portsrepo.Locker) (*portssvc.ServiceContainer, error) {
	tolerance, err := accounting.NewBalanceTolerance(cfg.BalanceToleranceMode, cfg.BalanceTolerance)
	if err != nil {
		return nil, err
	}

	container := &portssvc.ServiceContainer{}

	container.JournalEntry = NewJournalEntryService(
		repos.JournalEntryRepo,
		repos.AccountRepo,
		repos.FiscalPeriodRepo,
		repos.CurrencyRepo,
		repos.OrganizationRepo,
		WithEntryTolerance(tolerance),
	)

	postingOpts := []PostingServiceOption{
		WithPostingTolerance(tolerance),
		WithPostingTxTimeout(cfg.PostingTxTimeout),
		WithPostingRetry(cfg.PostingMaxAttempts, cfg.PostingRetryBackoff),
	}
	if locker != nil {
		postingOpts = append(postingOpts, WithPostingLocker(locker))
	}
	container.Posting = NewPostingService(repos.PostingUoW, postingOpts...)

	container.Ledger = NewLedgerService(repos.LedgerRepo, repos.AccountRepo)
	container.Reporting = NewReportingService(
		repos.LedgerRepo,
		repos.FiscalPeriodRepo,
		repos.OrganizationRepo,
		WithReportingTolerance(tolerance),
	)

	return container, nil
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.JournalEntrySvcFacade = (*journalEntryService)(nil)
	_ portssvc.LedgerSvcFacade       = (*ledgerService)(nil)
)
