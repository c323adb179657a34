package pgsql

import (
	"context"
	"fmt"
	"strings"

	"github.com/SscSPs/org_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/org_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/org_ledger_app/internal/models"
	"github.com/SscSPs/org_ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxLedgerRepository struct {
	BaseRepository
}

// newPgxLedgerRepository creates a new repository reading the general ledger and balance aggregates.
func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

// ListLedgerRows implements portsrepo.LedgerReader
func (r *PgxLedgerRepository) ListLedgerRows(ctx context.Context, organizationID int64, filter domain.LedgerFilter) ([]domain.GeneralLedgerRow, error) {
	conditions := []string{"organization_id = $1"}
	args := []any{organizationID}
	addArg := func(condition string, value any) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(condition, len(args)))
	}

	if filter.AccountID != nil {
		addArg("account_id = $%d", *filter.AccountID)
	}
	if filter.FiscalPeriodID != nil {
		addArg("fiscal_period_id = $%d", *filter.FiscalPeriodID)
	}
	if filter.StartDate != nil {
		addArg("transaction_date >= $%d", *filter.StartDate)
	}
	if filter.EndDate != nil {
		addArg("transaction_date <= $%d", *filter.EndDate)
	}
	switch {
	case filter.AfterDate != nil:
		args = append(args, *filter.AfterDate, filter.AfterID)
		conditions = append(conditions, fmt.Sprintf("(transaction_date, id) > ($%d, $%d)", len(args)-1, len(args)))
	case filter.AfterID > 0:
		addArg("id > $%d", filter.AfterID)
	}

	args = append(args, filter.Limit)
	query := fmt.Sprintf(`SELECT %s
		FROM general_ledger
		WHERE %s
		ORDER BY transaction_date, id
		LIMIT $%d;`, ledgerColumns, strings.Join(conditions, " AND "), len(args))

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, storageError("failed to list general ledger", err)
	}
	ms, err := collectLedgerRows(rows)
	if err != nil {
		return nil, storageError("failed to scan general ledger", err)
	}
	return mapping.ToDomainGeneralLedgerRowSlice(ms), nil
}

// ListAccountLedgerRows implements portsrepo.LedgerReader
func (r *PgxLedgerRepository) ListAccountLedgerRows(ctx context.Context, organizationID, accountID, afterID int64, limit int) ([]domain.GeneralLedgerRow, error) {
	query := `SELECT ` + ledgerColumns + `
		FROM general_ledger
		WHERE organization_id = $1 AND account_id = $2 AND id > $3
		ORDER BY id
		LIMIT $4;`
	rows, err := r.Pool.Query(ctx, query, organizationID, accountID, afterID, limit)
	if err != nil {
		return nil, storageError("failed to list account ledger", err)
	}
	ms, err := collectLedgerRows(rows)
	if err != nil {
		return nil, storageError("failed to scan account ledger", err)
	}
	return mapping.ToDomainGeneralLedgerRowSlice(ms), nil
}

// FindLedgerRowsByJournalEntry implements portsrepo.LedgerReader
func (r *PgxLedgerRepository) FindLedgerRowsByJournalEntry(ctx context.Context, organizationID, entryID int64) ([]domain.GeneralLedgerRow, error) {
	query := `SELECT ` + ledgerColumns + `
		FROM general_ledger
		WHERE organization_id = $1 AND journal_entry_id = $2
		ORDER BY journal_entry_item_id, id;`
	rows, err := r.Pool.Query(ctx, query, organizationID, entryID)
	if err != nil {
		return nil, storageError("failed to find ledger rows for journal entry", err)
	}
	ms, err := collectLedgerRows(rows)
	if err != nil {
		return nil, storageError("failed to scan ledger rows", err)
	}
	return mapping.ToDomainGeneralLedgerRowSlice(ms), nil
}

// StreamLedgerRows implements portsrepo.LedgerReader
func (r *PgxLedgerRepository) StreamLedgerRows(ctx context.Context, organizationID int64, fn func(domain.GeneralLedgerRow) error) error {
	query := `SELECT ` + ledgerColumns + `
		FROM general_ledger
		WHERE organization_id = $1
		ORDER BY id;`
	rows, err := r.Pool.Query(ctx, query, organizationID)
	if err != nil {
		return storageError("failed to read general ledger", err)
	}
	defer rows.Close()

	for rows.Next() {
		m, err := scanLedgerRow(rows)
		if err != nil {
			return storageError("failed to scan general ledger", err)
		}
		if err := fn(mapping.ToDomainGeneralLedgerRow(m)); err != nil {
			return err
		}
	}
	if err := rows.Err(); err != nil {
		return storageError("failed to read general ledger", err)
	}
	return nil
}

const accountTypeOrder = `
	CASE a.account_type
		WHEN 'ASSET' THEN 1
		WHEN 'LIABILITY' THEN 2
		WHEN 'EQUITY' THEN 3
		WHEN 'REVENUE' THEN 4
		WHEN 'EXPENSE' THEN 5
		ELSE 6
	END`

// ListAccountBalances implements portsrepo.AccountBalanceReader
func (r *PgxLedgerRepository) ListAccountBalances(ctx context.Context, organizationID, fiscalPeriodID int64) ([]domain.AccountBalanceView, error) {
	query := `SELECT ` + accountBalanceColumns + `, a.code, a.name, a.account_type, a.normal_balance
		FROM account_balances ab
		JOIN accounts a ON a.id = ab.account_id AND a.organization_id = ab.organization_id
		WHERE ab.organization_id = $1 AND ab.fiscal_period_id = $2
		ORDER BY ` + accountTypeOrder + `, a.code;`
	return r.queryBalances(ctx, query, organizationID, fiscalPeriodID)
}

// ListAllAccountBalances implements portsrepo.AccountBalanceReader
func (r *PgxLedgerRepository) ListAllAccountBalances(ctx context.Context, organizationID int64) ([]domain.AccountBalanceView, error) {
	query := `SELECT ` + accountBalanceColumns + `, a.code, a.name, a.account_type, a.normal_balance
		FROM account_balances ab
		JOIN accounts a ON a.id = ab.account_id AND a.organization_id = ab.organization_id
		WHERE ab.organization_id = $1
		ORDER BY ab.fiscal_period_id, ab.account_id;`
	return r.queryBalances(ctx, query, organizationID)
}

func (r *PgxLedgerRepository) queryBalances(ctx context.Context, query string, args ...any) ([]domain.AccountBalanceView, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, storageError("failed to list account balances", err)
	}
	defer rows.Close()

	balances := []domain.AccountBalanceView{}
	for rows.Next() {
		var m models.AccountBalanceWithAccount
		dest := append(accountBalanceDest(&m.AccountBalance), &m.AccountCode, &m.AccountName, &m.AccountType, &m.NormalBalance)
		if err := rows.Scan(dest...); err != nil {
			return nil, storageError("failed to scan account balance", err)
		}
		balances = append(balances, mapping.ToDomainAccountBalanceView(m))
	}
	if err := rows.Err(); err != nil {
		return nil, storageError("failed to list account balances", err)
	}
	return balances, nil
}
