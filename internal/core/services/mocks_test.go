package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/org_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/org_ledger_app/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock JournalEntryRepository ---
type MockJournalEntryRepository struct {
	mock.Mock
}

var _ portsrepo.JournalEntryRepositoryFacade = (*MockJournalEntryRepository)(nil)

func (m *MockJournalEntryRepository) FindJournalEntryByID(ctx context.Context, organizationID, entryID int64) (*domain.JournalEntry, error) {
	args := m.Called(ctx, organizationID, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalEntryRepository) ListJournalEntries(ctx context.Context, organizationID int64, filter domain.JournalEntryFilter) ([]domain.JournalEntry, int64, error) {
	args := m.Called(ctx, organizationID, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.JournalEntry), args.Get(1).(int64), args.Error(2)
}

func (m *MockJournalEntryRepository) CreateJournalEntry(ctx context.Context, entry domain.JournalEntry) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalEntryRepository) VoidJournalEntry(ctx context.Context, organizationID, entryID int64, userID string, now time.Time) error {
	args := m.Called(ctx, organizationID, entryID, userID, now)
	return args.Error(0)
}

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

var _ portsrepo.AccountReader = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) FindAccountsByIDs(ctx context.Context, organizationID int64, accountIDs []int64) (map[int64]domain.Account, error) {
	args := m.Called(ctx, organizationID, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, organizationID int64) ([]domain.Account, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

// --- Mock FiscalPeriodRepository ---
type MockFiscalPeriodRepository struct {
	mock.Mock
}

var _ portsrepo.FiscalPeriodReader = (*MockFiscalPeriodRepository)(nil)

func (m *MockFiscalPeriodRepository) FindFiscalPeriodByID(ctx context.Context, organizationID, fiscalPeriodID int64) (*domain.FiscalPeriod, error) {
	args := m.Called(ctx, organizationID, fiscalPeriodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FiscalPeriod), args.Error(1)
}

// --- Mock CurrencyRepository ---
type MockCurrencyRepository struct {
	mock.Mock
}

var _ portsrepo.CurrencyReader = (*MockCurrencyRepository)(nil)

func (m *MockCurrencyRepository) FindCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

// --- Mock OrganizationRepository ---
type MockOrganizationRepository struct {
	mock.Mock
}

var _ portsrepo.OrganizationReader = (*MockOrganizationRepository)(nil)

func (m *MockOrganizationRepository) FindOrganizationByID(ctx context.Context, organizationID int64) (*domain.Organization, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Organization), args.Error(1)
}

// --- Mock LedgerRepository ---
type MockLedgerRepository struct {
	mock.Mock
}

var _ portsrepo.LedgerRepositoryFacade = (*MockLedgerRepository)(nil)

func (m *MockLedgerRepository) ListLedgerRows(ctx context.Context, organizationID int64, filter domain.LedgerFilter) ([]domain.GeneralLedgerRow, error) {
	args := m.Called(ctx, organizationID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GeneralLedgerRow), args.Error(1)
}

func (m *MockLedgerRepository) ListAccountLedgerRows(ctx context.Context, organizationID, accountID, afterID int64, limit int) ([]domain.GeneralLedgerRow, error) {
	args := m.Called(ctx, organizationID, accountID, afterID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GeneralLedgerRow), args.Error(1)
}

func (m *MockLedgerRepository) FindLedgerRowsByJournalEntry(ctx context.Context, organizationID, entryID int64) ([]domain.GeneralLedgerRow, error) {
	args := m.Called(ctx, organizationID, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GeneralLedgerRow), args.Error(1)
}

func (m *MockLedgerRepository) StreamLedgerRows(ctx context.Context, organizationID int64, fn func(domain.GeneralLedgerRow) error) error {
	args := m.Called(ctx, organizationID, fn)
	if rows, ok := args.Get(0).([]domain.GeneralLedgerRow); ok {
		for _, row := range rows {
			if err := fn(row); err != nil {
				return err
			}
		}
	}
	return args.Error(1)
}

func (m *MockLedgerRepository) ListAccountBalances(ctx context.Context, organizationID, fiscalPeriodID int64) ([]domain.AccountBalanceView, error) {
	args := m.Called(ctx, organizationID, fiscalPeriodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountBalanceView), args.Error(1)
}

func (m *MockLedgerRepository) ListAllAccountBalances(ctx context.Context, organizationID int64) ([]domain.AccountBalanceView, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountBalanceView), args.Error(1)
}
