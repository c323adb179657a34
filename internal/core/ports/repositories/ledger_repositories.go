package repositories

import (
	"context"

	"github.com/SscSPs/org_ledger_app/internal/core/domain"
)

// LedgerReader defines read operations for general ledger rows
type LedgerReader interface {
	// ListLedgerRows returns up to filter.Limit rows ordered by transaction date then id,
	// starting after the cursor in the filter.
	ListLedgerRows(ctx context.Context, organizationID int64, filter domain.LedgerFilter) ([]domain.GeneralLedgerRow, error)

	// ListAccountLedgerRows returns up to limit rows of one account ordered by id, after afterID.
	ListAccountLedgerRows(ctx context.Context, organizationID, accountID, afterID int64, limit int) ([]domain.GeneralLedgerRow, error)

	// FindLedgerRowsByJournalEntry returns the rows derived from one entry in item order.
	FindLedgerRowsByJournalEntry(ctx context.Context, organizationID, entryID int64) ([]domain.GeneralLedgerRow, error)

	// StreamLedgerRows calls fn for every row of the organization in id order.
	StreamLedgerRows(ctx context.Context, organizationID int64, fn func(domain.GeneralLedgerRow) error) error
}

// AccountBalanceReader defines read operations for account balance aggregates
type AccountBalanceReader interface {
	// ListAccountBalances returns the balances of one fiscal period ordered by account type and code.
	ListAccountBalances(ctx context.Context, organizationID, fiscalPeriodID int64) ([]domain.AccountBalanceView, error)

	// ListAllAccountBalances returns every balance row of the organization.
	ListAllAccountBalances(ctx context.Context, organizationID int64) ([]domain.AccountBalanceView, error)
}

// LedgerRepositoryFacade combines all ledger repository interfaces
type LedgerRepositoryFacade interface {
	LedgerReader
	AccountBalanceReader
}
