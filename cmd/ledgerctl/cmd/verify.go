package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var errLedgerDiscrepancies = errors.New("ledger verification found discrepancies")

var verifyCmd = &cobra.Command{
	Use:   "verify <org-id>",
	Short: "Replay the general ledger and compare it with stored balances",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		orgID, err := parseIDArg("organization id", args[0])
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		container, closeFn, err := buildServices(ctx)
		if err != nil {
			return err
		}
		defer closeFn()

		result, err := container.Ledger.VerifyLedger(ctx, orgID)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "rows checked: %d\naccounts:     %d\n", result.RowsChecked, result.Accounts)
		if result.OK() {
			fmt.Fprintln(out, "ledger is consistent")
			return nil
		}
		for _, d := range result.Discrepancies {
			fmt.Fprintf(out, "%-20s account=%d period=%d ledger_row=%d expected=%s actual=%s\n",
				d.Kind, d.AccountID, d.FiscalPeriodID, d.LedgerRowID, d.Expected.StringFixed(4), d.Actual.StringFixed(4))
		}
		return errLedgerDiscrepancies
	},
}
