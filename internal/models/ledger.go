package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// GeneralLedgerRow represents a row of the append-only general_ledger table.
type GeneralLedgerRow struct {
	GeneralLedgerID    int64           `db:"id"`
	OrganizationID     int64           `db:"organization_id"`
	FiscalPeriodID     int64           `db:"fiscal_period_id"`
	AccountID          int64           `db:"account_id"`
	JournalEntryID     int64           `db:"journal_entry_id"`
	JournalEntryItemID int64           `db:"journal_entry_item_id"`
	TransactionDate    time.Time       `db:"transaction_date"`
	Description        string          `db:"description"`
	DebitAmount        decimal.Decimal `db:"debit_amount"`
	CreditAmount       decimal.Decimal `db:"credit_amount"`
	Balance            decimal.Decimal `db:"balance"`
	CurrencyCode       string          `db:"currency_code"`
	BaseDebitAmount    decimal.Decimal `db:"base_debit_amount"`
	BaseCreditAmount   decimal.Decimal `db:"base_credit_amount"`
	BaseBalance        decimal.Decimal `db:"base_balance"`
	Dimensions         map[string]any  `db:"dimensions"`
	CreatedAt          time.Time       `db:"created_at"`
}

// AccountBalance represents a row of the account_balances table.
type AccountBalance struct {
	OrganizationID     int64           `db:"organization_id"`
	FiscalPeriodID     int64           `db:"fiscal_period_id"`
	AccountID          int64           `db:"account_id"`
	OpeningBalance     decimal.Decimal `db:"opening_balance"`
	DebitAmount        decimal.Decimal `db:"debit_amount"`
	CreditAmount       decimal.Decimal `db:"credit_amount"`
	ClosingBalance     decimal.Decimal `db:"closing_balance"`
	BaseOpeningBalance decimal.Decimal `db:"base_opening_balance"`
	BaseDebitAmount    decimal.Decimal `db:"base_debit_amount"`
	BaseCreditAmount   decimal.Decimal `db:"base_credit_amount"`
	BaseClosingBalance decimal.Decimal `db:"base_closing_balance"`
	CurrencyCode       string          `db:"currency_code"`
	Version            int64           `db:"version"`
	LastUpdatedAt      time.Time       `db:"last_updated_at"`
}

// AccountBalanceWithAccount is an account_balances row joined with its account.
type AccountBalanceWithAccount struct {
	AccountBalance
	AccountCode   string      `db:"code"`
	AccountName   string      `db:"name"`
	AccountType   AccountType `db:"account_type"`
	NormalBalance string      `db:"normal_balance"`
}
