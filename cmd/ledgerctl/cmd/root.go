// Package cmd provides the ledgerctl commands.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	portssvc "github.com/SscSPs/org_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/org_ledger_app/internal/core/services"
	"github.com/SscSPs/org_ledger_app/internal/platform/config"
	"github.com/SscSPs/org_ledger_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/org_ledger_app/pkg/database"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	envFile string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "ledgerctl",
	Short: "Operate the organization ledger from the command line",
	Long: `ledgerctl runs maintenance and posting operations directly against
the ledger database, bypassing the HTTP API.

Example:
  ledgerctl migrate up
  ledgerctl post 7 42 --actor ops@example.com
  ledgerctl verify 7
  ledgerctl trial-balance 7 --period 12 --out tb.xlsx
  ledgerctl token ops@example.com --org 7`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logLevel := slog.LevelInfo
		if debug {
			logLevel = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))

		if envFile != "" {
			if err := godotenv.Load(envFile); err != nil {
				return fmt.Errorf("failed to load %s: %w", envFile, err)
			}
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "env file to load before reading configuration (default is .env)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(postCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(trialBalanceCmd)
	rootCmd.AddCommand(tokenCmd)
}

// buildServices wires the same service graph as the HTTP server, without the
// distributed posting gate. The returned func closes the pool.
func buildServices(ctx context.Context) (*portssvc.ServiceContainer, func(), error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	container, err := services.NewServiceContainer(cfg, pgsql.NewRepositoryProvider(pool, cfg.PostingTxTimeout), nil)
	if err != nil {
		pool.Close()
		return nil, nil, err
	}
	return container, pool.Close, nil
}

func parseIDArg(name, raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s %q", name, raw)
	}
	return id, nil
}
