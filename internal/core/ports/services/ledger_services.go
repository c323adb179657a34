package services

import (
	"context"

	"github.com/SscSPs/org_ledger_app/internal/core/domain"
)

// LedgerReaderSvc defines read operations for the general ledger and balances
type LedgerReaderSvc interface {
	// ListGeneralLedger returns a page of ledger rows and the token of the next page, if any.
	ListGeneralLedger(ctx context.Context, organizationID int64, filter domain.LedgerFilter) ([]domain.GeneralLedgerRow, *string, error)

	// ListAccountLedger returns a page of one account's ledger rows in posting order.
	ListAccountLedger(ctx context.Context, organizationID, accountID, afterID int64, limit int) ([]domain.GeneralLedgerRow, *string, error)

	// ListAccountBalances returns the balances of one fiscal period.
	ListAccountBalances(ctx context.Context, organizationID, fiscalPeriodID int64) ([]domain.AccountBalanceView, error)
}

// LedgerVerifierSvc checks the ledger's running balances and aggregates.
type LedgerVerifierSvc interface {
	VerifyLedger(ctx context.Context, organizationID int64) (*domain.LedgerVerification, error)
}

// LedgerSvcFacade combines all ledger service interfaces
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerVerifierSvc
}
