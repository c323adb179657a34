package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/org_ledger_app/internal/apperrors"
	"github.com/SscSPs/org_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/org_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/org_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/org_ledger_app/internal/utils/accounting"
	"github.com/SscSPs/org_ledger_app/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

const (
	defaultLedgerLimit = 50
	maxLedgerLimit     = 500
)

type ledgerService struct {
	BaseService
	ledgerRepo  portsrepo.LedgerRepositoryFacade
	accountRepo portsrepo.AccountReader
}

// NewLedgerService creates a service reading the general ledger and account balances.
func NewLedgerService(ledgerRepo portsrepo.LedgerRepositoryFacade, accountRepo portsrepo.AccountReader) portssvc.LedgerSvcFacade {
	return &ledgerService{
		ledgerRepo:  ledgerRepo,
		accountRepo: accountRepo,
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultLedgerLimit
	}
	if limit > maxLedgerLimit {
		return maxLedgerLimit
	}
	return limit
}

// ListGeneralLedger implements portssvc.LedgerReaderSvc
func (s *ledgerService) ListGeneralLedger(ctx context.Context, organizationID int64, filter domain.LedgerFilter) ([]domain.GeneralLedgerRow, *string, error) {
	limit := clampLimit(filter.Limit)
	filter.Limit = limit + 1

	rows, err := s.ledgerRepo.ListLedgerRows(ctx, organizationID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list general ledger", slog.Int64("organization_id", organizationID))
		return nil, nil, err
	}

	var nextToken *string
	if len(rows) > limit {
		rows = rows[:limit]
		last := rows[limit-1]
		token := pagination.EncodeLedgerToken(last.TransactionDate, last.ID)
		nextToken = &token
	}
	return rows, nextToken, nil
}

// ListAccountLedger implements portssvc.LedgerReaderSvc
func (s *ledgerService) ListAccountLedger(ctx context.Context, organizationID, accountID, afterID int64, limit int) ([]domain.GeneralLedgerRow, *string, error) {
	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, organizationID, []int64{accountID})
	if err != nil {
		return nil, nil, err
	}
	if _, ok := accounts[accountID]; !ok {
		return nil, nil, apperrors.NewNotFoundError("Account not found in organization")
	}

	limit = clampLimit(limit)
	rows, err := s.ledgerRepo.ListAccountLedgerRows(ctx, organizationID, accountID, afterID, limit+1)
	if err != nil {
		s.LogError(ctx, err, "Failed to list account ledger",
			slog.Int64("organization_id", organizationID),
			slog.Int64("account_id", accountID))
		return nil, nil, err
	}

	var nextToken *string
	if len(rows) > limit {
		rows = rows[:limit]
		token := pagination.EncodeIDToken(rows[limit-1].ID)
		nextToken = &token
	}
	return rows, nextToken, nil
}

// ListAccountBalances implements portssvc.LedgerReaderSvc
func (s *ledgerService) ListAccountBalances(ctx context.Context, organizationID, fiscalPeriodID int64) ([]domain.AccountBalanceView, error) {
	balances, err := s.ledgerRepo.ListAccountBalances(ctx, organizationID, fiscalPeriodID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list account balances",
			slog.Int64("organization_id", organizationID),
			slog.Int64("fiscal_period_id", fiscalPeriodID))
		return nil, err
	}
	return balances, nil
}

// VerifyLedger replays every ledger row of the organization and compares the
// result with the stored running balances and balance aggregates.
func (s *ledgerService) VerifyLedger(ctx context.Context, organizationID int64) (*domain.LedgerVerification, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx, organizationID)
	if err != nil {
		return nil, err
	}
	normals := make(map[int64]domain.NormalBalance, len(accounts))
	for _, account := range accounts {
		normals[account.ID] = account.NormalBalance
	}

	replayer := accounting.NewLedgerReplayer(normals)
	var discrepancies []domain.LedgerDiscrepancy
	var replayErr error
	err = s.ledgerRepo.StreamLedgerRows(ctx, organizationID, func(row domain.GeneralLedgerRow) error {
		discrepancy, err := replayer.Apply(row)
		if err != nil {
			replayErr = err
			return err
		}
		if discrepancy != nil {
			discrepancies = append(discrepancies, *discrepancy)
		}
		return nil
	})
	if replayErr != nil {
		return nil, apperrors.NewInternalError("failed to replay ledger", replayErr)
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to read ledger for verification", slog.Int64("organization_id", organizationID))
		return nil, err
	}

	finals := replayer.Balances()
	for _, account := range accounts {
		expected, ok := finals[account.ID]
		if !ok {
			expected = decimal.Zero
		}
		if !expected.Equal(account.RunningBalance) {
			discrepancies = append(discrepancies, domain.LedgerDiscrepancy{
				Kind:      domain.DiscrepancyAccountBalance,
				AccountID: account.ID,
				Expected:  expected,
				Actual:    account.RunningBalance,
			})
		}
	}

	balances, err := s.ledgerRepo.ListAllAccountBalances(ctx, organizationID)
	if err != nil {
		return nil, err
	}
	for _, balance := range balances {
		discrepancy, err := accounting.CheckClosingBalance(balance)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to check closing balance", err)
		}
		if discrepancy != nil {
			discrepancies = append(discrepancies, *discrepancy)
		}
	}

	result := &domain.LedgerVerification{
		OrganizationID: organizationID,
		RowsChecked:    replayer.Rows(),
		Accounts:       len(accounts),
		Discrepancies:  discrepancies,
	}
	if result.Discrepancies == nil {
		result.Discrepancies = []domain.LedgerDiscrepancy{}
	}

	if result.OK() {
		s.LogInfo(ctx, "Ledger verified", slog.Int64("organization_id", organizationID), slog.Int("rows", result.RowsChecked))
	} else {
		s.LogWarn(ctx, "Ledger verification found discrepancies",
			slog.Int64("organization_id", organizationID),
			slog.Int("discrepancies", len(result.Discrepancies)))
	}
	return result, nil
}
