package pgsql

import (
	"time"

	portsrepo "github.com/SscSPs/org_ledger_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the PostgreSQL repositories. postingTxTimeout bounds
// lock waits and statements inside posting transactions.
func NewRepositoryProvider(dbPool *pgxpool.Pool, postingTxTimeout time.Duration) portsrepo.RepositoryProvider {
	referenceRepo := newPgxReferenceRepository(dbPool)

	return portsrepo.RepositoryProvider{
		JournalEntryRepo: newPgxJournalEntryRepository(dbPool),
		PostingUoW:       newPgxPostingUnitOfWork(dbPool, postingTxTimeout),
		LedgerRepo:       newPgxLedgerRepository(dbPool),
		AccountRepo:      referenceRepo,
		FiscalPeriodRepo: referenceRepo,
		CurrencyRepo:     referenceRepo,
		OrganizationRepo: referenceRepo,
	}
}
