package pgsql

import (
	"context"

	"github.com/SscSPs/org_ledger_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const journalEntryColumns = `
	je.id, je.organization_id, je.entry_no, je.entry_date, je.fiscal_period_id,
	je.description, je.reference, je.source, je.currency_code, je.exchange_rate,
	je.status, je.approved_by, je.posted_at, je.created_at, je.created_by, je.updated_at`

func scanJournalEntry(row pgx.Row) (models.JournalEntry, error) {
	var m models.JournalEntry
	err := row.Scan(
		&m.JournalEntryID,
		&m.OrganizationID,
		&m.EntryNo,
		&m.EntryDate,
		&m.FiscalPeriodID,
		&m.Description,
		&m.Reference,
		&m.Source,
		&m.CurrencyCode,
		&m.ExchangeRate,
		&m.Status,
		&m.ApprovedBy,
		&m.PostedAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.UpdatedAt,
	)
	return m, err
}

const journalEntryItemColumns = `
	id, journal_entry_id, account_id, description, memo,
	debit_amount, credit_amount, base_debit_amount, base_credit_amount, dimensions`

// findJournalEntryItems returns the items of an entry in insertion order.
func findJournalEntryItems(ctx context.Context, q querier, entryID int64) ([]models.JournalEntryItem, error) {
	query := `SELECT ` + journalEntryItemColumns + `
		FROM journal_entry_items
		WHERE journal_entry_id = $1
		ORDER BY id;`
	rows, err := q.Query(ctx, query, entryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.JournalEntryItem{}
	for rows.Next() {
		var item models.JournalEntryItem
		if err := rows.Scan(
			&item.JournalEntryItemID,
			&item.JournalEntryID,
			&item.AccountID,
			&item.Description,
			&item.Memo,
			&item.DebitAmount,
			&item.CreditAmount,
			&item.BaseDebitAmount,
			&item.BaseCreditAmount,
			&item.Dimensions,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

const ledgerColumns = `
	id, organization_id, fiscal_period_id, account_id, journal_entry_id, journal_entry_item_id,
	transaction_date, description, debit_amount, credit_amount, balance, currency_code,
	base_debit_amount, base_credit_amount, base_balance, dimensions, created_at`

func scanLedgerRow(row pgx.Row) (models.GeneralLedgerRow, error) {
	var m models.GeneralLedgerRow
	err := row.Scan(
		&m.GeneralLedgerID,
		&m.OrganizationID,
		&m.FiscalPeriodID,
		&m.AccountID,
		&m.JournalEntryID,
		&m.JournalEntryItemID,
		&m.TransactionDate,
		&m.Description,
		&m.DebitAmount,
		&m.CreditAmount,
		&m.Balance,
		&m.CurrencyCode,
		&m.BaseDebitAmount,
		&m.BaseCreditAmount,
		&m.BaseBalance,
		&m.Dimensions,
		&m.CreatedAt,
	)
	return m, err
}

func collectLedgerRows(rows pgx.Rows) ([]models.GeneralLedgerRow, error) {
	defer rows.Close()
	out := []models.GeneralLedgerRow{}
	for rows.Next() {
		m, err := scanLedgerRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

const accountBalanceColumns = `
	ab.organization_id, ab.fiscal_period_id, ab.account_id,
	ab.opening_balance, ab.debit_amount, ab.credit_amount, ab.closing_balance,
	ab.base_opening_balance, ab.base_debit_amount, ab.base_credit_amount, ab.base_closing_balance,
	ab.currency_code, ab.version, ab.last_updated_at`

func accountBalanceDest(m *models.AccountBalance) []any {
	return []any{
		&m.OrganizationID,
		&m.FiscalPeriodID,
		&m.AccountID,
		&m.OpeningBalance,
		&m.DebitAmount,
		&m.CreditAmount,
		&m.ClosingBalance,
		&m.BaseOpeningBalance,
		&m.BaseDebitAmount,
		&m.BaseCreditAmount,
		&m.BaseClosingBalance,
		&m.CurrencyCode,
		&m.Version,
		&m.LastUpdatedAt,
	}
}

const accountColumns = `
	id, organization_id, code, name, account_type, normal_balance, currency_code, is_active, running_balance`

func scanAccount(row pgx.Row) (models.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.AccountID,
		&m.OrganizationID,
		&m.Code,
		&m.Name,
		&m.AccountType,
		&m.NormalBalance,
		&m.CurrencyCode,
		&m.IsActive,
		&m.RunningBalance,
	)
	return m, err
}

const fiscalPeriodColumns = `
	fp.id, fp.organization_id, fy.name, fp.name, fp.start_date, fp.end_date, fp.is_closed`

func scanFiscalPeriod(row pgx.Row) (models.FiscalPeriod, error) {
	var m models.FiscalPeriod
	err := row.Scan(
		&m.FiscalPeriodID,
		&m.OrganizationID,
		&m.FiscalYearName,
		&m.Name,
		&m.StartDate,
		&m.EndDate,
		&m.IsClosed,
	)
	return m, err
}
