package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/SscSPs/org_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/org_ledger_app/internal/core/services"
	"github.com/SscSPs/org_ledger_app/internal/handlers"
	"github.com/SscSPs/org_ledger_app/internal/middleware"
	"github.com/SscSPs/org_ledger_app/internal/platform/config"
	"github.com/SscSPs/org_ledger_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/org_ledger_app/internal/repositories/lock"
	"github.com/SscSPs/org_ledger_app/pkg/database"
	"github.com/gin-gonic/gin"
)

// @title Organization Ledger API
// @version 1.0
// @description Double-entry posting engine: draft journal entries, posting into the general ledger, balances and trial balance.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	ctx := context.Background()

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Info("Database connection pool established.")

	if cfg.RunMigrations {
		logger.Info("Running database migrations...")
		if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
			logger.Error("Failed to run migrations", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	var locker repositories.Locker
	if cfg.RedisURL != "" {
		rdb, err := lock.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			logger.Error("Failed to connect to redis", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer rdb.Close()
		locker = lock.NewRedisLocker(rdb, cfg.PostingLockTTL)
		logger.Info("Posting gate enabled", slog.Duration("ttl", cfg.PostingLockTTL))
	}

	repos := pgsql.NewRepositoryProvider(dbPool, cfg.PostingTxTimeout)
	serviceContainer, err := services.NewServiceContainer(cfg, repos, locker)
	if err != nil {
		logger.Error("Failed to build services", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		middleware.CORS(cfg.IsProduction, cfg.CORSAllowedOrigins),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := handlers.RegisterRoutes(r, cfg, serviceContainer); err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
