package cmd

import (
	"fmt"
	"time"

	"github.com/SscSPs/org_ledger_app/internal/middleware"
	"github.com/SscSPs/org_ledger_app/internal/platform/config"
	"github.com/spf13/cobra"
)

var (
	tokenOrgs   []int64
	tokenExpiry time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token <user-id>",
	Short: "Mint a development API token scoped to organizations",
	Long: `Mint an HS256 API token signed with JWT_SECRET for local development
and testing. This is not an authentication service: it checks no credentials
and production tokens must come from your identity provider.

Example:
  ledgerctl token ops@example.com --org 7 --org 9 --expiry 1h`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		signed, err := middleware.GenerateLedgerToken(args[0], tokenOrgs, cfg.JWTSecret, cfg.JWTIssuer, tokenExpiry)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), signed)
		return nil
	},
}

func init() {
	tokenCmd.Flags().Int64SliceVar(&tokenOrgs, "org", nil, "organization id the token may act on (repeatable)")
	tokenCmd.Flags().DurationVar(&tokenExpiry, "expiry", time.Hour, "token lifetime")
	_ = tokenCmd.MarkFlagRequired("org")
}
