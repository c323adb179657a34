package domain

import (
	"github.com/shopspring/decimal"
)

// TrialBalanceRow represents a single account line of a trial balance.
type TrialBalanceRow struct {
	AccountBalanceView
}

// AccountTypeSummary totals the trial balance rows of one account type.
type AccountTypeSummary struct {
	AccountType     AccountType     `json:"accountType"`
	NormalBalance   NormalBalance   `json:"normalBalance"`
	TotalDebit      decimal.Decimal `json:"totalDebit"`
	TotalCredit     decimal.Decimal `json:"totalCredit"`
	TotalBaseDebit  decimal.Decimal `json:"totalBaseDebit"`
	TotalBaseCredit decimal.Decimal `json:"totalBaseCredit"`
}

// TrialBalanceReport is the trial balance of one fiscal period.
type TrialBalanceReport struct {
	FiscalPeriod        FiscalPeriod         `json:"fiscalPeriod"`
	BaseCurrency        string               `json:"baseCurrency"`
	Rows                []TrialBalanceRow    `json:"accountBalances"`
	TotalDebit          decimal.Decimal      `json:"totalDebit"`
	TotalCredit         decimal.Decimal      `json:"totalCredit"`
	TotalBaseDebit      decimal.Decimal      `json:"totalBaseDebit"`
	TotalBaseCredit     decimal.Decimal      `json:"totalBaseCredit"`
	AccountTypesSummary []AccountTypeSummary `json:"accountTypesSummary"`
	IsBalanced          bool                 `json:"isBalanced"`
}
