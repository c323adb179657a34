package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/org_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PostingTx is the set of store operations available inside one posting transaction.
// Every method participates in the same transaction; nothing is visible to other
// callers until RunInTx commits.
type PostingTx interface {
	// LockJournalEntry reads the entry and its items and holds a row lock on the entry.
	LockJournalEntry(ctx context.Context, organizationID, entryID int64) (*domain.JournalEntry, error)

	// FindFiscalPeriodForShare reads the fiscal period and blocks concurrent closing.
	FindFiscalPeriodForShare(ctx context.Context, organizationID, fiscalPeriodID int64) (*domain.FiscalPeriod, error)

	// LockAccounts locks the accounts in ascending id order and returns them keyed by id.
	LockAccounts(ctx context.Context, organizationID int64, accountIDs []int64) (map[int64]domain.Account, error)

	// InsertLedgerRows appends the rows in order and returns their assigned ids.
	InsertLedgerRows(ctx context.Context, rows []domain.GeneralLedgerRow) ([]int64, error)

	// UpsertAccountBalance creates or increments the balance row for the delta's
	// organization, fiscal period and account.
	UpsertAccountBalance(ctx context.Context, delta domain.AccountBalanceDelta, now time.Time) (*domain.AccountBalance, error)

	// UpdateAccountRunningBalances stores the new running balance of each account.
	UpdateAccountRunningBalances(ctx context.Context, organizationID int64, balances map[int64]decimal.Decimal, now time.Time) error

	// MarkJournalEntryPosted sets status posted, the posting time and the approver.
	MarkJournalEntryPosted(ctx context.Context, organizationID, entryID int64, approvedBy string, postedAt time.Time) error
}

// PostingUnitOfWork runs fn inside one store transaction. The transaction commits
// when fn returns nil and rolls back otherwise.
type PostingUnitOfWork interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context, tx PostingTx) error) error
}
