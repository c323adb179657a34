package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/org_ledger_app/internal/apperrors"
	"github.com/SscSPs/org_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/org_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/org_ledger_app/internal/core/services"
	"github.com/SscSPs/org_ledger_app/internal/utils/pagination"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type LedgerServiceTestSuite struct {
	suite.Suite
	ledgerRepo  *MockLedgerRepository
	accountRepo *MockAccountRepository
	service     portssvc.LedgerSvcFacade
	ctx         context.Context
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.ledgerRepo = new(MockLedgerRepository)
	suite.accountRepo = new(MockAccountRepository)
	suite.service = services.NewLedgerService(suite.ledgerRepo, suite.accountRepo)
	suite.ctx = context.Background()
}

func TestLedgerServiceSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}

func ledgerRow(id, accountID int64, debit, credit, balance string) domain.GeneralLedgerRow {
	return domain.GeneralLedgerRow{
		ID:               id,
		AccountID:        accountID,
		TransactionDate:  time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		DebitAmount:      dec(debit),
		CreditAmount:     dec(credit),
		BaseDebitAmount:  dec(debit),
		BaseCreditAmount: dec(credit),
		Balance:          dec(balance),
		BaseBalance:      dec(balance),
	}
}

func (suite *LedgerServiceTestSuite) TestListGeneralLedger_NextToken() {
	rows := []domain.GeneralLedgerRow{
		ledgerRow(1, cashAccountID, "10", "0", "10"),
		ledgerRow(2, revenueAccountID, "0", "10", "10"),
		ledgerRow(3, cashAccountID, "5", "0", "15"),
	}
	suite.ledgerRepo.On("ListLedgerRows", suite.ctx, testOrgID, mock.MatchedBy(func(f domain.LedgerFilter) bool {
		return f.Limit == 3
	})).Return(rows, nil).Once()

	got, next, err := suite.service.ListGeneralLedger(suite.ctx, testOrgID, domain.LedgerFilter{Limit: 2})
	suite.Require().NoError(err)
	suite.Len(got, 2)
	suite.Require().NotNil(next)

	date, id, err := pagination.DecodeLedgerToken(*next)
	suite.Require().NoError(err)
	suite.Equal(int64(2), id)
	suite.Equal("2025-03-10", date.Format("2006-01-02"))
}

func (suite *LedgerServiceTestSuite) TestListGeneralLedger_LastPage() {
	suite.ledgerRepo.On("ListLedgerRows", suite.ctx, testOrgID, mock.MatchedBy(func(f domain.LedgerFilter) bool {
		return f.Limit == 51
	})).Return([]domain.GeneralLedgerRow{ledgerRow(1, cashAccountID, "10", "0", "10")}, nil).Once()

	got, next, err := suite.service.ListGeneralLedger(suite.ctx, testOrgID, domain.LedgerFilter{})
	suite.Require().NoError(err)
	suite.Len(got, 1)
	suite.Nil(next)
}

func (suite *LedgerServiceTestSuite) TestListAccountLedger() {
	suite.accountRepo.On("FindAccountsByIDs", suite.ctx, testOrgID, []int64{cashAccountID}).
		Return(map[int64]domain.Account{cashAccountID: {ID: cashAccountID}}, nil)
	suite.ledgerRepo.On("ListAccountLedgerRows", suite.ctx, testOrgID, cashAccountID, int64(4), 2).
		Return([]domain.GeneralLedgerRow{
			ledgerRow(5, cashAccountID, "1", "0", "1"),
			ledgerRow(9, cashAccountID, "1", "0", "2"),
		}, nil)

	got, next, err := suite.service.ListAccountLedger(suite.ctx, testOrgID, cashAccountID, 4, 1)
	suite.Require().NoError(err)
	suite.Len(got, 1)
	suite.Require().NotNil(next)
	id, err := pagination.DecodeIDToken(*next)
	suite.Require().NoError(err)
	suite.Equal(int64(5), id)
}

func (suite *LedgerServiceTestSuite) TestListAccountLedger_UnknownAccount() {
	suite.accountRepo.On("FindAccountsByIDs", suite.ctx, testOrgID, []int64{int64(77)}).Return(map[int64]domain.Account{}, nil)

	_, _, err := suite.service.ListAccountLedger(suite.ctx, testOrgID, 77, 0, 10)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *LedgerServiceTestSuite) verifyFixtures(cashRunning string, closing string) {
	suite.accountRepo.On("ListAccounts", suite.ctx, testOrgID).Return([]domain.Account{
		{ID: cashAccountID, NormalBalance: domain.NormalDebit, RunningBalance: dec(cashRunning)},
		{ID: revenueAccountID, NormalBalance: domain.NormalCredit, RunningBalance: dec("100")},
		{ID: expenseAccountID, NormalBalance: domain.NormalDebit, RunningBalance: decimal.Zero},
	}, nil)
	suite.ledgerRepo.On("StreamLedgerRows", suite.ctx, testOrgID, mock.Anything).Return([]domain.GeneralLedgerRow{
		ledgerRow(1, cashAccountID, "100", "0", "100"),
		ledgerRow(2, revenueAccountID, "0", "100", "100"),
		ledgerRow(3, cashAccountID, "0", "40", "60"),
		ledgerRow(4, cashAccountID, "40", "0", "100"),
	}, nil)
	suite.ledgerRepo.On("ListAllAccountBalances", suite.ctx, testOrgID).Return([]domain.AccountBalanceView{
		{
			AccountBalance: domain.AccountBalance{
				FiscalPeriodID: openPeriodID, AccountID: cashAccountID,
				OpeningBalance: decimal.Zero, DebitAmount: dec("140"), CreditAmount: dec("40"), ClosingBalance: dec(closing),
				BaseOpeningBalance: decimal.Zero, BaseDebitAmount: dec("140"), BaseCreditAmount: dec("40"), BaseClosingBalance: dec(closing),
			},
			NormalBalance: domain.NormalDebit,
		},
	}, nil)
}

func (suite *LedgerServiceTestSuite) TestVerifyLedger_Consistent() {
	suite.verifyFixtures("100", "100")

	result, err := suite.service.VerifyLedger(suite.ctx, testOrgID)
	suite.Require().NoError(err)
	suite.True(result.OK())
	suite.Equal(4, result.RowsChecked)
	suite.Equal(3, result.Accounts)
	suite.NotNil(result.Discrepancies)
}

func (suite *LedgerServiceTestSuite) TestVerifyLedger_ReportsDiscrepancies() {
	suite.verifyFixtures("90", "110")

	result, err := suite.service.VerifyLedger(suite.ctx, testOrgID)
	suite.Require().NoError(err)
	suite.False(result.OK())
	suite.Require().Len(result.Discrepancies, 2)

	suite.Equal(domain.DiscrepancyAccountBalance, result.Discrepancies[0].Kind)
	suite.Equal(cashAccountID, result.Discrepancies[0].AccountID)
	suite.True(dec("100").Equal(result.Discrepancies[0].Expected))
	suite.True(dec("90").Equal(result.Discrepancies[0].Actual))

	suite.Equal(domain.DiscrepancyClosingBalance, result.Discrepancies[1].Kind)
	suite.True(dec("100").Equal(result.Discrepancies[1].Expected))
}

func (suite *LedgerServiceTestSuite) TestVerifyLedger_ReportsBadRowOnce() {
	suite.accountRepo.On("ListAccounts", suite.ctx, testOrgID).Return([]domain.Account{
		{ID: cashAccountID, NormalBalance: domain.NormalDebit, RunningBalance: dec("90")},
	}, nil)
	suite.ledgerRepo.On("StreamLedgerRows", suite.ctx, testOrgID, mock.Anything).Return([]domain.GeneralLedgerRow{
		ledgerRow(1, cashAccountID, "100", "0", "100"),
		ledgerRow(2, cashAccountID, "0", "10", "95"),
		ledgerRow(3, cashAccountID, "0", "5", "90"),
	}, nil)
	suite.ledgerRepo.On("ListAllAccountBalances", suite.ctx, testOrgID).Return([]domain.AccountBalanceView{}, nil)

	result, err := suite.service.VerifyLedger(suite.ctx, testOrgID)
	suite.Require().NoError(err)
	suite.Equal(3, result.RowsChecked)
	suite.Require().Len(result.Discrepancies, 1)
	suite.Equal(domain.DiscrepancyRunningBalance, result.Discrepancies[0].Kind)
	suite.Equal(int64(2), result.Discrepancies[0].LedgerRowID)
	suite.True(dec("90").Equal(result.Discrepancies[0].Expected))
	suite.True(dec("95").Equal(result.Discrepancies[0].Actual))
}

func (suite *LedgerServiceTestSuite) TestVerifyLedger_StopsOnUnknownAccount() {
	suite.accountRepo.On("ListAccounts", suite.ctx, testOrgID).Return([]domain.Account{
		{ID: cashAccountID, NormalBalance: domain.NormalDebit, RunningBalance: dec("100")},
	}, nil)
	suite.ledgerRepo.On("StreamLedgerRows", suite.ctx, testOrgID, mock.Anything).Return([]domain.GeneralLedgerRow{
		ledgerRow(1, cashAccountID, "100", "0", "100"),
		ledgerRow(2, int64(999), "0", "100", "100"),
	}, nil)

	_, err := suite.service.VerifyLedger(suite.ctx, testOrgID)
	suite.ErrorIs(err, apperrors.ErrInternal)
	suite.ledgerRepo.AssertNotCalled(suite.T(), "ListAllAccountBalances", suite.ctx, testOrgID)
}

func (suite *LedgerServiceTestSuite) TestListAccountBalances() {
	views := []domain.AccountBalanceView{{
		AccountBalance: domain.AccountBalance{
			OrganizationID: testOrgID,
			FiscalPeriodID: 10,
			AccountID:      cashAccountID,
			ClosingBalance: dec("100"),
		},
		AccountCode: "1000",
	}}
	suite.ledgerRepo.On("ListAccountBalances", suite.ctx, testOrgID, int64(10)).Return(views, nil).Once()

	got, err := suite.service.ListAccountBalances(suite.ctx, testOrgID, 10)
	suite.Require().NoError(err)
	suite.Len(got, 1)
	suite.True(dec("100").Equal(got[0].ClosingBalance))
	suite.ledgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestListAccountBalances_StorageError() {
	storeErr := apperrors.NewStorageError("failed to list account balances", nil, false)
	suite.ledgerRepo.On("ListAccountBalances", suite.ctx, testOrgID, int64(10)).Return(nil, storeErr).Once()

	_, err := suite.service.ListAccountBalances(suite.ctx, testOrgID, 10)
	suite.ErrorIs(err, apperrors.ErrStorage)
}
