package dto

import (
	"github.com/SscSPs/org_ledger_app/internal/core/domain"
)

// ListLedgerParams are the query parameters of the general ledger listing.
type ListLedgerParams struct {
	AccountID      int64  `form:"accountId" binding:"omitempty,gt=0"`
	FiscalPeriodID int64  `form:"fiscalPeriodId" binding:"omitempty,gt=0"`
	StartDate      string `form:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate        string `form:"endDate" binding:"omitempty,datetime=2006-01-02"`
	Limit          int    `form:"limit,default=50" binding:"min=1,max=500"`
	NextToken      string `form:"nextToken"`
}

// ListAccountLedgerParams are the query parameters of the per-account ledger.
type ListAccountLedgerParams struct {
	Limit     int    `form:"limit,default=50" binding:"min=1,max=500"`
	NextToken string `form:"nextToken"`
}

// ListLedgerResponse wraps a page of ledger rows.
type ListLedgerResponse struct {
	Rows      []domain.GeneralLedgerRow `json:"rows"`
	NextToken *string                   `json:"nextToken,omitempty"`
}

// ListAccountBalancesResponse wraps the balances of one fiscal period.
type ListAccountBalancesResponse struct {
	FiscalPeriodID  int64                       `json:"fiscalPeriodId"`
	AccountBalances []domain.AccountBalanceView `json:"accountBalances"`
}
