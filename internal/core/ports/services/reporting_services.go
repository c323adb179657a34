package services

import (
	"context"
	"io"

	"github.com/SscSPs/org_ledger_app/internal/core/domain"
)

// ReportingSvc defines operations for generating financial reports
type ReportingSvc interface {
	// TrialBalance builds the trial balance of a fiscal period.
	TrialBalance(ctx context.Context, organizationID, fiscalPeriodID int64) (*domain.TrialBalanceReport, error)

	// ExportTrialBalance writes the trial balance of a fiscal period as an XLSX workbook.
	ExportTrialBalance(ctx context.Context, organizationID, fiscalPeriodID int64, w io.Writer) error
}
