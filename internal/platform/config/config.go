package config

import (
	"fmt"
	"log"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	LogLevel       slog.Level
	JWTSecret      string
	JWTIssuer      string
	MigrationsPath string
	RunMigrations  bool

	// Posting
	PostingTxTimeout     time.Duration
	PostingMaxAttempts   int
	PostingRetryBackoff  time.Duration
	BalanceTolerance     decimal.Decimal
	BalanceToleranceMode string

	// Optional distributed posting gate
	RedisURL       string
	PostingLockTTL time.Duration

	// HTTP
	RateLimit          string
	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_ISSUER", "org-ledger-app")
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("RUN_MIGRATIONS", true)
	viper.SetDefault("POSTING_TX_TIMEOUT", "10s")
	viper.SetDefault("POSTING_MAX_ATTEMPTS", 3)
	viper.SetDefault("POSTING_RETRY_BACKOFF", "50ms")
	viper.SetDefault("BALANCE_TOLERANCE", "0.01")
	viper.SetDefault("BALANCE_TOLERANCE_MODE", "absolute")
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("POSTING_LOCK_TTL", "30s")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.LogLevel = parseLogLevel(viper.GetString("LOG_LEVEL"))

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	if cfg.IsProduction && cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		return nil, fmt.Errorf("JWT_SECRET must be set in production")
	}
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")
	cfg.RunMigrations = viper.GetBool("RUN_MIGRATIONS")

	cfg.PostingTxTimeout = durationOrDefault("POSTING_TX_TIMEOUT", 10*time.Second)
	cfg.PostingRetryBackoff = durationOrDefault("POSTING_RETRY_BACKOFF", 50*time.Millisecond)
	cfg.PostingLockTTL = durationOrDefault("POSTING_LOCK_TTL", 30*time.Second)

	cfg.PostingMaxAttempts = viper.GetInt("POSTING_MAX_ATTEMPTS")
	if cfg.PostingMaxAttempts < 1 {
		log.Printf("Warning: Invalid value for POSTING_MAX_ATTEMPTS ('%d'). Defaulting to 1.\n", cfg.PostingMaxAttempts)
		cfg.PostingMaxAttempts = 1
	}

	toleranceStr := viper.GetString("BALANCE_TOLERANCE")
	tolerance, err := decimal.NewFromString(toleranceStr)
	if err != nil || tolerance.IsNegative() {
		return nil, fmt.Errorf("invalid BALANCE_TOLERANCE '%s'", toleranceStr)
	}
	cfg.BalanceTolerance = tolerance
	cfg.BalanceToleranceMode = strings.ToLower(viper.GetString("BALANCE_TOLERANCE_MODE"))

	cfg.RedisURL = viper.GetString("REDIS_URL")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	for _, origin := range strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	return cfg, nil
}

func durationOrDefault(key string, fallback time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback.String())
		}
		return fallback
	}
	return d
}

func parseLogLevel(raw string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(raw)); err != nil {
		log.Printf("Warning: Invalid value for LOG_LEVEL ('%s'). Defaulting to info.\n", raw)
		return slog.LevelInfo
	}
	return level
}
