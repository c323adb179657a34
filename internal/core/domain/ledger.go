package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// GeneralLedgerRow is an append-only fact derived from one posted journal entry item.
// Balance and BaseBalance hold the account's running balance as of this row.
type GeneralLedgerRow struct {
	ID                 int64           `json:"id"`
	OrganizationID     int64           `json:"organizationId"`
	FiscalPeriodID     int64           `json:"fiscalPeriodId"`
	AccountID          int64           `json:"accountId"`
	JournalEntryID     int64           `json:"journalEntryId"`
	JournalEntryItemID int64           `json:"journalEntryItemId"`
	TransactionDate    time.Time       `json:"transactionDate"`
	Description        string          `json:"description"`
	DebitAmount        decimal.Decimal `json:"debitAmount"`
	CreditAmount       decimal.Decimal `json:"creditAmount"`
	Balance            decimal.Decimal `json:"balance"`
	CurrencyCode       string          `json:"currencyCode"`
	BaseDebitAmount    decimal.Decimal `json:"baseDebitAmount"`
	BaseCreditAmount   decimal.Decimal `json:"baseCreditAmount"`
	BaseBalance        decimal.Decimal `json:"baseBalance"`
	Dimensions         map[string]any  `json:"dimensions,omitempty"`
	CreatedAt          time.Time       `json:"createdAt"`
}

// AccountBalance aggregates the ledger per organization, fiscal period and account.
type AccountBalance struct {
	OrganizationID     int64           `json:"organizationId"`
	FiscalPeriodID     int64           `json:"fiscalPeriodId"`
	AccountID          int64           `json:"accountId"`
	OpeningBalance     decimal.Decimal `json:"openingBalance"`
	DebitAmount        decimal.Decimal `json:"debitAmount"`
	CreditAmount       decimal.Decimal `json:"creditAmount"`
	ClosingBalance     decimal.Decimal `json:"closingBalance"`
	BaseOpeningBalance decimal.Decimal `json:"baseOpeningBalance"`
	BaseDebitAmount    decimal.Decimal `json:"baseDebitAmount"`
	BaseCreditAmount   decimal.Decimal `json:"baseCreditAmount"`
	BaseClosingBalance decimal.Decimal `json:"baseClosingBalance"`
	CurrencyCode       string          `json:"currencyCode"`
	Version            int64           `json:"version"`
	LastUpdatedAt      time.Time       `json:"lastUpdatedAt"`
}

// AccountBalanceDelta is the increment one posted item applies to an AccountBalance.
type AccountBalanceDelta struct {
	OrganizationID   int64
	FiscalPeriodID   int64
	AccountID        int64
	NormalBalance    NormalBalance
	CurrencyCode     string
	DebitAmount      decimal.Decimal
	CreditAmount     decimal.Decimal
	BaseDebitAmount  decimal.Decimal
	BaseCreditAmount decimal.Decimal
}

// AccountBalanceView is an AccountBalance joined with its account's descriptive fields.
type AccountBalanceView struct {
	AccountBalance
	AccountCode   string        `json:"accountCode"`
	AccountName   string        `json:"accountName"`
	AccountType   AccountType   `json:"accountType"`
	NormalBalance NormalBalance `json:"normalBalance"`
}

// LedgerFilter narrows general ledger listings. AfterDate and AfterID form the
// keyset cursor; AfterDate is ignored when rows are ordered by id only.
type LedgerFilter struct {
	AccountID      *int64
	FiscalPeriodID *int64
	StartDate      *time.Time
	EndDate        *time.Time
	AfterDate      *time.Time
	AfterID        int64
	Limit          int
}

// LedgerDiscrepancy describes one inconsistency found while replaying the ledger.
type LedgerDiscrepancy struct {
	Kind           string          `json:"kind"`
	AccountID      int64           `json:"accountId"`
	FiscalPeriodID int64           `json:"fiscalPeriodId,omitempty"`
	LedgerRowID    int64           `json:"ledgerRowId,omitempty"`
	Expected       decimal.Decimal `json:"expected"`
	Actual         decimal.Decimal `json:"actual"`
}

const (
	DiscrepancyRunningBalance = "running_balance"
	DiscrepancyAccountBalance = "account_running_balance"
	DiscrepancyClosingBalance = "closing_balance"
)

// LedgerVerification is the outcome of replaying an organization's ledger.
type LedgerVerification struct {
	OrganizationID int64               `json:"organizationId"`
	RowsChecked    int                 `json:"rowsChecked"`
	Accounts       int                 `json:"accounts"`
	Discrepancies  []LedgerDiscrepancy `json:"discrepancies"`
}

// OK reports whether the replay found no discrepancies.
func (v LedgerVerification) OK() bool {
	return len(v.Discrepancies) == 0
}
