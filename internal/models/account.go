package models

import (
	"github.com/shopspring/decimal"
)

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// Account represents a row of the accounts table.
type Account struct {
	AccountID      int64           `db:"id"`
	OrganizationID int64           `db:"organization_id"`
	Code           string          `db:"code"`
	Name           string          `db:"name"`
	AccountType    AccountType     `db:"account_type"`
	NormalBalance  string          `db:"normal_balance"`
	CurrencyCode   string          `db:"currency_code"`
	IsActive       bool            `db:"is_active"`
	RunningBalance decimal.Decimal `db:"running_balance"` // base currency, maintained by posting
}
