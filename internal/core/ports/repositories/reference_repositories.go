package repositories

import (
	"context"

	"github.com/SscSPs/org_ledger_app/internal/core/domain"
)

// AccountReader reads chart-of-accounts reference data.
type AccountReader interface {
	// FindAccountsByIDs returns the requested accounts of the organization keyed by id.
	// Ids that do not exist in the organization are absent from the map.
	FindAccountsByIDs(ctx context.Context, organizationID int64, accountIDs []int64) (map[int64]domain.Account, error)

	// ListAccounts returns every account of the organization ordered by code.
	ListAccounts(ctx context.Context, organizationID int64) ([]domain.Account, error)
}

// FiscalPeriodReader reads fiscal periods.
type FiscalPeriodReader interface {
	FindFiscalPeriodByID(ctx context.Context, organizationID, fiscalPeriodID int64) (*domain.FiscalPeriod, error)
}

// CurrencyReader reads currencies.
type CurrencyReader interface {
	FindCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error)
}

// OrganizationReader reads organizations.
type OrganizationReader interface {
	FindOrganizationByID(ctx context.Context, organizationID int64) (*domain.Organization, error)
}
