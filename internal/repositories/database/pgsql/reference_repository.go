package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/org_ledger_app/internal/apperrors"
	"github.com/SscSPs/org_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/org_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/org_ledger_app/internal/models"
	"github.com/SscSPs/org_ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxReferenceRepository reads the reference data the ledger depends on:
// accounts, fiscal periods, currencies and organizations.
type PgxReferenceRepository struct {
	BaseRepository
}

func newPgxReferenceRepository(pool *pgxpool.Pool) *PgxReferenceRepository {
	return &PgxReferenceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var (
	_ portsrepo.AccountReader      = (*PgxReferenceRepository)(nil)
	_ portsrepo.FiscalPeriodReader = (*PgxReferenceRepository)(nil)
	_ portsrepo.CurrencyReader     = (*PgxReferenceRepository)(nil)
	_ portsrepo.OrganizationReader = (*PgxReferenceRepository)(nil)
)

// FindAccountsByIDs implements portsrepo.AccountReader
func (r *PgxReferenceRepository) FindAccountsByIDs(ctx context.Context, organizationID int64, accountIDs []int64) (map[int64]domain.Account, error) {
	accounts := make(map[int64]domain.Account, len(accountIDs))
	if len(accountIDs) == 0 {
		return accounts, nil
	}

	query := `SELECT ` + accountColumns + `
		FROM accounts
		WHERE organization_id = $1 AND id = ANY($2);`
	rows, err := r.Pool.Query(ctx, query, organizationID, accountIDs)
	if err != nil {
		return nil, storageError("failed to find accounts", err)
	}
	defer rows.Close()

	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, storageError("failed to scan account", err)
		}
		accounts[m.AccountID] = mapping.ToDomainAccount(m)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError("failed to find accounts", err)
	}
	return accounts, nil
}

// ListAccounts implements portsrepo.AccountReader
func (r *PgxReferenceRepository) ListAccounts(ctx context.Context, organizationID int64) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + `
		FROM accounts
		WHERE organization_id = $1
		ORDER BY code;`
	rows, err := r.Pool.Query(ctx, query, organizationID)
	if err != nil {
		return nil, storageError("failed to list accounts", err)
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, storageError("failed to scan account", err)
		}
		accounts = append(accounts, mapping.ToDomainAccount(m))
	}
	if err := rows.Err(); err != nil {
		return nil, storageError("failed to list accounts", err)
	}
	return accounts, nil
}

// FindFiscalPeriodByID implements portsrepo.FiscalPeriodReader
func (r *PgxReferenceRepository) FindFiscalPeriodByID(ctx context.Context, organizationID, fiscalPeriodID int64) (*domain.FiscalPeriod, error) {
	query := `SELECT ` + fiscalPeriodColumns + `
		FROM fiscal_periods fp
		JOIN fiscal_years fy ON fy.id = fp.fiscal_year_id
		WHERE fp.organization_id = $1 AND fp.id = $2;`
	m, err := scanFiscalPeriod(r.Pool.QueryRow(ctx, query, organizationID, fiscalPeriodID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("Fiscal period %d not found", fiscalPeriodID))
		}
		return nil, storageError("failed to find fiscal period", err)
	}
	period := mapping.ToDomainFiscalPeriod(m)
	return &period, nil
}

// FindCurrencyByCode implements portsrepo.CurrencyReader
func (r *PgxReferenceRepository) FindCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	query := `SELECT code, symbol, name FROM currencies WHERE code = $1;`
	var m models.Currency
	err := r.Pool.QueryRow(ctx, query, code).Scan(&m.CurrencyCode, &m.Symbol, &m.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("Currency %s not found", code))
		}
		return nil, storageError("failed to find currency", err)
	}
	currency := mapping.ToDomainCurrency(m)
	return &currency, nil
}

// FindOrganizationByID implements portsrepo.OrganizationReader
func (r *PgxReferenceRepository) FindOrganizationByID(ctx context.Context, organizationID int64) (*domain.Organization, error) {
	query := `SELECT id, name, base_currency FROM organizations WHERE id = $1;`
	var m models.Organization
	err := r.Pool.QueryRow(ctx, query, organizationID).Scan(&m.OrganizationID, &m.Name, &m.BaseCurrency)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("Organization %d not found", organizationID))
		}
		return nil, storageError("failed to find organization", err)
	}
	org := mapping.ToDomainOrganization(m)
	return &org, nil
}
