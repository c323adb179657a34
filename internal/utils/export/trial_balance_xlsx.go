package export

import (
	"fmt"
	"io"

	"github.com/SscSPs/org_ledger_app/internal/core/domain"
	"github.com/xuri/excelize/v2"
)

const (
	trialBalanceSheet = "Trial Balance"
	summarySheet      = "Summary"
)

var trialBalanceHeadings = []string{
	"Account Code", "Account Name", "Account Type", "Normal Balance", "Currency",
	"Opening", "Debit", "Credit", "Closing",
	"Base Opening", "Base Debit", "Base Credit", "Base Closing",
}

// WriteTrialBalanceXLSX renders the report as a workbook with one row per account,
// a totals row and a per-account-type summary sheet.
func WriteTrialBalanceXLSX(report *domain.TrialBalanceReport, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", trialBalanceSheet); err != nil {
		return err
	}

	title := fmt.Sprintf("Trial balance %s %s (%s to %s), base currency %s",
		report.FiscalPeriod.FiscalYearName, report.FiscalPeriod.Name,
		report.FiscalPeriod.StartDate.Format("2006-01-02"), report.FiscalPeriod.EndDate.Format("2006-01-02"),
		report.BaseCurrency)
	if err := f.SetCellValue(trialBalanceSheet, "A1", title); err != nil {
		return err
	}

	if err := setRow(f, trialBalanceSheet, 3, toAny(trialBalanceHeadings)); err != nil {
		return err
	}

	rowNo := 4
	for _, row := range report.Rows {
		values := []any{
			row.AccountCode, row.AccountName, string(row.AccountType), string(row.NormalBalance), row.CurrencyCode,
			row.OpeningBalance.InexactFloat64(), row.DebitAmount.InexactFloat64(),
			row.CreditAmount.InexactFloat64(), row.ClosingBalance.InexactFloat64(),
			row.BaseOpeningBalance.InexactFloat64(), row.BaseDebitAmount.InexactFloat64(),
			row.BaseCreditAmount.InexactFloat64(), row.BaseClosingBalance.InexactFloat64(),
		}
		if err := setRow(f, trialBalanceSheet, rowNo, values); err != nil {
			return err
		}
		rowNo++
	}

	totals := []any{
		"Total", "", "", "", "",
		"", report.TotalDebit.InexactFloat64(), report.TotalCredit.InexactFloat64(), "",
		"", report.TotalBaseDebit.InexactFloat64(), report.TotalBaseCredit.InexactFloat64(), "",
	}
	if err := setRow(f, trialBalanceSheet, rowNo+1, totals); err != nil {
		return err
	}
	balanced := "No"
	if report.IsBalanced {
		balanced = "Yes"
	}
	if err := setRow(f, trialBalanceSheet, rowNo+2, []any{"Balanced", balanced}); err != nil {
		return err
	}

	if _, err := f.NewSheet(summarySheet); err != nil {
		return err
	}
	summaryHeadings := []any{"Account Type", "Normal Balance", "Debit", "Credit", "Base Debit", "Base Credit"}
	if err := setRow(f, summarySheet, 1, summaryHeadings); err != nil {
		return err
	}
	for i, summary := range report.AccountTypesSummary {
		values := []any{
			string(summary.AccountType), string(summary.NormalBalance),
			summary.TotalDebit.InexactFloat64(), summary.TotalCredit.InexactFloat64(),
			summary.TotalBaseDebit.InexactFloat64(), summary.TotalBaseCredit.InexactFloat64(),
		}
		if err := setRow(f, summarySheet, i+2, values); err != nil {
			return err
		}
	}

	return f.Write(w)
}

func setRow(f *excelize.File, sheet string, rowNo int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNo)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func toAny(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
