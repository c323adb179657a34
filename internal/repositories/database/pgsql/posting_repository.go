package pgsql

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/SscSPs/org_ledger_app/internal/apperrors"
	"github.com/SscSPs/org_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/org_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/org_ledger_app/internal/models"
	"github.com/SscSPs/org_ledger_app/internal/utils/accounting"
	"github.com/SscSPs/org_ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// PgxPostingUnitOfWork runs posting transactions against PostgreSQL.
type PgxPostingUnitOfWork struct {
	BaseRepository
	txTimeout time.Duration
}

func newPgxPostingUnitOfWork(pool *pgxpool.Pool, txTimeout time.Duration) portsrepo.PostingUnitOfWork {
	return &PgxPostingUnitOfWork{
		BaseRepository: BaseRepository{Pool: pool},
		txTimeout:      txTimeout,
	}
}

var _ portsrepo.PostingUnitOfWork = (*PgxPostingUnitOfWork)(nil)

// RunInTx implements portsrepo.PostingUnitOfWork. Lock and statement timeouts are
// scoped to the transaction so a blocked posting fails instead of queueing forever.
func (u *PgxPostingUnitOfWork) RunInTx(ctx context.Context, fn func(ctx context.Context, tx portsrepo.PostingTx) error) error {
	tx, err := u.Begin(ctx)
	if err != nil {
		return err
	}
	defer u.Rollback(context.WithoutCancel(ctx), tx)

	if u.txTimeout > 0 {
		ms := u.txTimeout.Milliseconds()
		if _, err := tx.Exec(ctx, fmt.Sprintf("SET LOCAL lock_timeout = %d", ms)); err != nil {
			return storageError("failed to set lock timeout", err)
		}
		if _, err := tx.Exec(ctx, fmt.Sprintf("SET LOCAL statement_timeout = %d", ms)); err != nil {
			return storageError("failed to set statement timeout", err)
		}
	}

	if err := fn(ctx, &pgxPostingTx{tx: tx}); err != nil {
		return err
	}
	return u.Commit(ctx, tx)
}

type pgxPostingTx struct {
	tx pgx.Tx
}

var _ portsrepo.PostingTx = (*pgxPostingTx)(nil)

// LockJournalEntry implements portsrepo.PostingTx
func (p *pgxPostingTx) LockJournalEntry(ctx context.Context, organizationID, entryID int64) (*domain.JournalEntry, error) {
	query := `SELECT ` + journalEntryColumns + `
		FROM journal_entries je
		WHERE je.organization_id = $1 AND je.id = $2
		FOR UPDATE;`
	m, err := scanJournalEntry(p.tx.QueryRow(ctx, query, organizationID, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("Journal entry %d not found", entryID))
		}
		return nil, storageError("failed to lock journal entry", err)
	}

	items, err := findJournalEntryItems(ctx, p.tx, entryID)
	if err != nil {
		return nil, storageError("failed to read journal entry items", err)
	}

	entry := mapping.ToDomainJournalEntry(m)
	entry.Items = mapping.ToDomainJournalEntryItemSlice(items)
	return &entry, nil
}

// FindFiscalPeriodForShare implements portsrepo.PostingTx
func (p *pgxPostingTx) FindFiscalPeriodForShare(ctx context.Context, organizationID, fiscalPeriodID int64) (*domain.FiscalPeriod, error) {
	query := `SELECT ` + fiscalPeriodColumns + `
		FROM fiscal_periods fp
		JOIN fiscal_years fy ON fy.id = fp.fiscal_year_id
		WHERE fp.organization_id = $1 AND fp.id = $2
		FOR SHARE OF fp;`
	m, err := scanFiscalPeriod(p.tx.QueryRow(ctx, query, organizationID, fiscalPeriodID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("Fiscal period %d not found", fiscalPeriodID))
		}
		return nil, storageError("failed to read fiscal period", err)
	}
	period := mapping.ToDomainFiscalPeriod(m)
	return &period, nil
}

// LockAccounts implements portsrepo.PostingTx. Rows are locked in id order so two
// postings touching the same accounts cannot deadlock.
func (p *pgxPostingTx) LockAccounts(ctx context.Context, organizationID int64, accountIDs []int64) (map[int64]domain.Account, error) {
	ids := slices.Clone(accountIDs)
	slices.Sort(ids)
	ids = slices.Compact(ids)

	query := `SELECT ` + accountColumns + `
		FROM accounts
		WHERE organization_id = $1 AND id = ANY($2)
		ORDER BY id
		FOR UPDATE;`
	rows, err := p.tx.Query(ctx, query, organizationID, ids)
	if err != nil {
		return nil, storageError("failed to lock accounts", err)
	}
	defer rows.Close()

	accounts := make(map[int64]domain.Account, len(ids))
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, storageError("failed to scan account", err)
		}
		accounts[m.AccountID] = mapping.ToDomainAccount(m)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError("failed to lock accounts", err)
	}

	for _, id := range ids {
		if _, ok := accounts[id]; !ok {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("Account %d not found in organization", id))
		}
	}
	return accounts, nil
}

// InsertLedgerRows implements portsrepo.PostingTx
func (p *pgxPostingTx) InsertLedgerRows(ctx context.Context, rows []domain.GeneralLedgerRow) ([]int64, error) {
	if len(rows) == 0 {
		return []int64{}, nil
	}
	query := `
		INSERT INTO general_ledger (
			organization_id, fiscal_period_id, account_id, journal_entry_id, journal_entry_item_id,
			transaction_date, description, debit_amount, credit_amount, balance, currency_code,
			base_debit_amount, base_credit_amount, base_balance, dimensions, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING id;`

	batch := &pgx.Batch{}
	for _, row := range rows {
		m := mapping.ToModelGeneralLedgerRow(row)
		batch.Queue(query,
			m.OrganizationID,
			m.FiscalPeriodID,
			m.AccountID,
			m.JournalEntryID,
			m.JournalEntryItemID,
			m.TransactionDate,
			m.Description,
			m.DebitAmount,
			m.CreditAmount,
			m.Balance,
			m.CurrencyCode,
			m.BaseDebitAmount,
			m.BaseCreditAmount,
			m.BaseBalance,
			m.Dimensions,
			m.CreatedAt,
		)
	}

	br := p.tx.SendBatch(ctx, batch)
	ids := make([]int64, len(rows))
	for i := range rows {
		if err := br.QueryRow().Scan(&ids[i]); err != nil {
			br.Close()
			return nil, storageError("failed to insert ledger row", err)
		}
	}
	if err := br.Close(); err != nil {
		return nil, storageError("failed to insert ledger rows", err)
	}
	return ids, nil
}

// UpsertAccountBalance implements portsrepo.PostingTx. The caller holds the
// account row lock, so the read-modify-write on the balance row is serialized.
func (p *pgxPostingTx) UpsertAccountBalance(ctx context.Context, delta domain.AccountBalanceDelta, now time.Time) (*domain.AccountBalance, error) {
	selectQuery := `SELECT ` + accountBalanceColumns + `
		FROM account_balances ab
		WHERE ab.organization_id = $1 AND ab.fiscal_period_id = $2 AND ab.account_id = $3
		FOR UPDATE;`

	var existing *domain.AccountBalance
	var m models.AccountBalance
	err := p.tx.QueryRow(ctx, selectQuery, delta.OrganizationID, delta.FiscalPeriodID, delta.AccountID).Scan(accountBalanceDest(&m)...)
	switch {
	case err == nil:
		current := mapping.ToDomainAccountBalance(m)
		existing = &current
	case errors.Is(err, pgx.ErrNoRows):
	default:
		return nil, storageError("failed to read account balance", err)
	}

	next, err := accounting.ApplyBalanceDelta(existing, delta, now)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to apply balance delta", err)
	}

	upsertQuery := `
		INSERT INTO account_balances (
			organization_id, fiscal_period_id, account_id,
			opening_balance, debit_amount, credit_amount, closing_balance,
			base_opening_balance, base_debit_amount, base_credit_amount, base_closing_balance,
			currency_code, version, last_updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (organization_id, fiscal_period_id, account_id) DO UPDATE SET
			debit_amount = EXCLUDED.debit_amount,
			credit_amount = EXCLUDED.credit_amount,
			closing_balance = EXCLUDED.closing_balance,
			base_debit_amount = EXCLUDED.base_debit_amount,
			base_credit_amount = EXCLUDED.base_credit_amount,
			base_closing_balance = EXCLUDED.base_closing_balance,
			version = EXCLUDED.version,
			last_updated_at = EXCLUDED.last_updated_at;`
	_, err = p.tx.Exec(ctx, upsertQuery,
		next.OrganizationID,
		next.FiscalPeriodID,
		next.AccountID,
		next.OpeningBalance,
		next.DebitAmount,
		next.CreditAmount,
		next.ClosingBalance,
		next.BaseOpeningBalance,
		next.BaseDebitAmount,
		next.BaseCreditAmount,
		next.BaseClosingBalance,
		next.CurrencyCode,
		next.Version,
		next.LastUpdatedAt,
	)
	if err != nil {
		return nil, storageError("failed to upsert account balance", err)
	}
	return &next, nil
}

// UpdateAccountRunningBalances implements portsrepo.PostingTx
func (p *pgxPostingTx) UpdateAccountRunningBalances(ctx context.Context, organizationID int64, balances map[int64]decimal.Decimal, now time.Time) error {
	if len(balances) == 0 {
		return nil
	}
	ids := make([]int64, 0, len(balances))
	for id := range balances {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	query := `UPDATE accounts SET running_balance = $1, updated_at = $2 WHERE organization_id = $3 AND id = $4;`
	batch := &pgx.Batch{}
	for _, id := range ids {
		batch.Queue(query, balances[id], now, organizationID, id)
	}
	br := p.tx.SendBatch(ctx, batch)
	for _, id := range ids {
		tag, err := br.Exec()
		if err != nil {
			br.Close()
			return storageError("failed to update account running balance", err)
		}
		if tag.RowsAffected() == 0 {
			br.Close()
			return apperrors.NewNotFoundError(fmt.Sprintf("Account %d not found in organization", id))
		}
	}
	if err := br.Close(); err != nil {
		return storageError("failed to update account running balances", err)
	}
	return nil
}

// MarkJournalEntryPosted implements portsrepo.PostingTx
func (p *pgxPostingTx) MarkJournalEntryPosted(ctx context.Context, organizationID, entryID int64, approvedBy string, postedAt time.Time) error {
	query := `
		UPDATE journal_entries
		SET status = $1, posted_at = $2, approved_by = $3, updated_at = $2
		WHERE organization_id = $4 AND id = $5 AND status = $6;`
	tag, err := p.tx.Exec(ctx, query, string(models.Posted), postedAt, approvedBy, organizationID, entryID, string(models.Draft))
	if err != nil {
		return storageError("failed to mark journal entry posted", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewAlreadyPostedError(entryID)
	}
	return nil
}
