package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	tbPeriodID int64
	tbOut      string
)

var trialBalanceCmd = &cobra.Command{
	Use:   "trial-balance <org-id>",
	Short: "Print or export the trial balance of a fiscal period",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		orgID, err := parseIDArg("organization id", args[0])
		if err != nil {
			return err
		}
		if tbPeriodID <= 0 {
			return fmt.Errorf("--period must be a positive fiscal period id")
		}

		ctx := cmd.Context()
		container, closeFn, err := buildServices(ctx)
		if err != nil {
			return err
		}
		defer closeFn()

		if tbOut != "" {
			f, err := os.Create(tbOut)
			if err != nil {
				return err
			}
			if err := container.Reporting.ExportTrialBalance(ctx, orgID, tbPeriodID, f); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "trial balance written to %s\n", tbOut)
			return nil
		}

		report, err := container.Reporting.TrialBalance(ctx, orgID, tbPeriodID)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s (%s)\n", report.FiscalPeriod.Name, report.BaseCurrency)
		for _, row := range report.Rows {
			fmt.Fprintf(out, "%-10s %-30s %18s %18s %18s\n", row.AccountCode, row.AccountName,
				row.BaseDebitAmount.StringFixed(4), row.BaseCreditAmount.StringFixed(4), row.BaseClosingBalance.StringFixed(4))
		}
		fmt.Fprintf(out, "%-41s %18s %18s\n", "TOTAL", report.TotalBaseDebit.StringFixed(4), report.TotalBaseCredit.StringFixed(4))
		fmt.Fprintf(out, "balanced: %t\n", report.IsBalanced)
		return nil
	},
}

func init() {
	trialBalanceCmd.Flags().Int64Var(&tbPeriodID, "period", 0, "fiscal period id")
	trialBalanceCmd.Flags().StringVar(&tbOut, "out", "", "write an .xlsx workbook instead of printing")
	_ = trialBalanceCmd.MarkFlagRequired("period")
}
