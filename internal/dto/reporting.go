package dto

import (
	"time"

	"github.com/SscSPs/org_ledger_app/internal/core/domain"
)

// FiscalPeriodParams selects a fiscal period in report and balance queries.
type FiscalPeriodParams struct {
	FiscalPeriodID int64 `form:"fiscalPeriodId" binding:"required,gt=0"`
}

// TrialBalanceResponse is the trial balance of one fiscal period.
type TrialBalanceResponse struct {
	domain.TrialBalanceReport
	GeneratedAt time.Time `json:"generatedAt"`
}

// ToTrialBalanceResponse wraps a report with its generation time.
func ToTrialBalanceResponse(report *domain.TrialBalanceReport, generatedAt time.Time) TrialBalanceResponse {
	return TrialBalanceResponse{TrialBalanceReport: *report, GeneratedAt: generatedAt}
}
