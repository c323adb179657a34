package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/SscSPs/org_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/org_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/org_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/org_ledger_app/internal/utils/accounting"
	"github.com/SscSPs/org_ledger_app/internal/utils/export"
	"github.com/shopspring/decimal"
)

var accountTypeOrder = []domain.AccountType{domain.Asset, domain.Liability, domain.Equity, domain.Revenue, domain.Expense}

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	ledgerRepo portsrepo.AccountBalanceReader
	periodRepo portsrepo.FiscalPeriodReader
	orgRepo    portsrepo.OrganizationReader
	tolerance  accounting.BalanceTolerance
}

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// WithReportingTolerance sets the tolerance used to decide whether a trial balance balances.
func WithReportingTolerance(tolerance accounting.BalanceTolerance) ReportingServiceOption {
	return func(s *reportingService) {
		s.tolerance = tolerance
	}
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(ledgerRepo portsrepo.AccountBalanceReader, periodRepo portsrepo.FiscalPeriodReader, orgRepo portsrepo.OrganizationReader, options ...ReportingServiceOption) portssvc.ReportingSvc {
	svc := &reportingService{
		ledgerRepo: ledgerRepo,
		periodRepo: periodRepo,
		orgRepo:    orgRepo,
		tolerance:  accounting.DefaultTolerance(),
	}

	// Apply all options
	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingSvc = (*reportingService)(nil)

// TrialBalance builds the trial balance of a fiscal period from its account balances.
func (s *reportingService) TrialBalance(ctx context.Context, organizationID, fiscalPeriodID int64) (*domain.TrialBalanceReport, error) {
	org, err := s.orgRepo.FindOrganizationByID(ctx, organizationID)
	if err != nil {
		return nil, err
	}
	period, err := s.periodRepo.FindFiscalPeriodByID(ctx, organizationID, fiscalPeriodID)
	if err != nil {
		return nil, err
	}

	balances, err := s.ledgerRepo.ListAccountBalances(ctx, organizationID, fiscalPeriodID)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve trial balance data",
			slog.Int64("organization_id", organizationID),
			slog.Int64("fiscal_period_id", fiscalPeriodID))
		return nil, fmt.Errorf("failed to retrieve trial balance data: %w", err)
	}

	report := &domain.TrialBalanceReport{
		FiscalPeriod:    *period,
		BaseCurrency:    org.BaseCurrency,
		Rows:            make([]domain.TrialBalanceRow, 0, len(balances)),
		TotalDebit:      decimal.Zero,
		TotalCredit:     decimal.Zero,
		TotalBaseDebit:  decimal.Zero,
		TotalBaseCredit: decimal.Zero,
	}

	summaries := make(map[domain.AccountType]*domain.AccountTypeSummary)
	for _, balance := range balances {
		report.Rows = append(report.Rows, domain.TrialBalanceRow{AccountBalanceView: balance})
		report.TotalDebit = report.TotalDebit.Add(balance.DebitAmount)
		report.TotalCredit = report.TotalCredit.Add(balance.CreditAmount)
		report.TotalBaseDebit = report.TotalBaseDebit.Add(balance.BaseDebitAmount)
		report.TotalBaseCredit = report.TotalBaseCredit.Add(balance.BaseCreditAmount)

		summary, ok := summaries[balance.AccountType]
		if !ok {
			summary = &domain.AccountTypeSummary{
				AccountType:     balance.AccountType,
				NormalBalance:   balance.AccountType.DefaultNormalBalance(),
				TotalDebit:      decimal.Zero,
				TotalCredit:     decimal.Zero,
				TotalBaseDebit:  decimal.Zero,
				TotalBaseCredit: decimal.Zero,
			}
			summaries[balance.AccountType] = summary
		}
		summary.TotalDebit = summary.TotalDebit.Add(balance.DebitAmount)
		summary.TotalCredit = summary.TotalCredit.Add(balance.CreditAmount)
		summary.TotalBaseDebit = summary.TotalBaseDebit.Add(balance.BaseDebitAmount)
		summary.TotalBaseCredit = summary.TotalBaseCredit.Add(balance.BaseCreditAmount)
	}

	report.AccountTypesSummary = make([]domain.AccountTypeSummary, 0, len(summaries))
	for _, accountType := range accountTypeOrder {
		if summary, ok := summaries[accountType]; ok {
			report.AccountTypesSummary = append(report.AccountTypesSummary, *summary)
		}
	}
	report.IsBalanced = s.tolerance.Allows(report.TotalBaseDebit, report.TotalBaseCredit)

	s.LogInfo(ctx, "Trial balance report generated successfully",
		slog.Int64("organization_id", organizationID),
		slog.Int64("fiscal_period_id", fiscalPeriodID),
		slog.Int("row_count", len(report.Rows)),
		slog.Bool("is_balanced", report.IsBalanced))
	return report, nil
}

// ExportTrialBalance writes the trial balance as an XLSX workbook.
func (s *reportingService) ExportTrialBalance(ctx context.Context, organizationID, fiscalPeriodID int64, w io.Writer) error {
	report, err := s.TrialBalance(ctx, organizationID, fiscalPeriodID)
	if err != nil {
		return err
	}
	if err := export.WriteTrialBalanceXLSX(report, w); err != nil {
		s.LogError(ctx, err, "Failed to write trial balance workbook",
			slog.Int64("organization_id", organizationID),
			slog.Int64("fiscal_period_id", fiscalPeriodID))
		return fmt.Errorf("failed to write trial balance workbook: %w", err)
	}
	return nil
}
