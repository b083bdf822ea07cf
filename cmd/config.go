package cmd

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"parcelhub/internal/pkg/errs"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	JWTSecret string

	PaymentGatewayURL          string
	PaymentGatewaySecretKey    string
	PaymentCurrency            string
	PaymentTimeout             time.Duration
	PaymentVerifyConfirmations bool

	RateLimitRPS float64
	LogLevel     slog.Level

	OverdueDeliveriesCron string
	StalePendingCron      string
}

const (
	defaultHTTPPort              = "8080"
	defaultPaymentCurrency       = "eur"
	defaultPaymentTimeout        = 10 * time.Second
	defaultRateLimitRPS          = 20
	defaultOverdueDeliveriesCron = "0 */15 * * * *"
	defaultStalePendingCron      = "0 0 * * * *"
)

// LoadConfig reads the configuration through getenv, usually os.Getenv.
// Malformed numbers, durations, booleans and log levels are errors.
func LoadConfig(getenv func(string) string) (Config, error) {
	env := func(key, fallback string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return fallback
	}

	cfg := Config{
		HTTPPort:                env("HTTP_PORT", defaultHTTPPort),
		DBHost:                  env("DB_HOST", "localhost"),
		DBPort:                  env("DB_PORT", "5432"),
		DBUser:                  env("DB_USER", ""),
		DBPassword:              env("DB_PASSWORD", ""),
		DBName:                  env("DB_NAME", ""),
		DBSslMode:               env("DB_SSLMODE", "disable"),
		JWTSecret:               env("JWT_SECRET", ""),
		PaymentGatewayURL:       env("PAYMENT_GATEWAY_URL", ""),
		PaymentGatewaySecretKey: env("PAYMENT_GATEWAY_SECRET_KEY", ""),
		PaymentCurrency:         strings.ToLower(env("PAYMENT_CURRENCY", defaultPaymentCurrency)),
		OverdueDeliveriesCron:   env("OVERDUE_DELIVERIES_CRON", defaultOverdueDeliveriesCron),
		StalePendingCron:        env("STALE_PENDING_CRON", defaultStalePendingCron),
	}

	if _, err := strconv.Atoi(cfg.HTTPPort); err != nil {
		return Config{}, errs.NewValueIsInvalidErrorWithCause("HTTP_PORT", err)
	}
	if _, err := strconv.Atoi(cfg.DBPort); err != nil {
		return Config{}, errs.NewValueIsInvalidErrorWithCause("DB_PORT", err)
	}

	timeout, err := time.ParseDuration(env("PAYMENT_TIMEOUT", defaultPaymentTimeout.String()))
	if err != nil {
		return Config{}, errs.NewValueIsInvalidErrorWithCause("PAYMENT_TIMEOUT", err)
	}
	if timeout <= 0 {
		return Config{}, errs.NewValueIsOutOfRangeError("PAYMENT_TIMEOUT", timeout, "1ns", "unbounded")
	}
	cfg.PaymentTimeout = timeout

	verify, err := strconv.ParseBool(env("PAYMENT_VERIFY_CONFIRMATIONS", "false"))
	if err != nil {
		return Config{}, errs.NewValueIsInvalidErrorWithCause("PAYMENT_VERIFY_CONFIRMATIONS", err)
	}
	cfg.PaymentVerifyConfirmations = verify

	rps, err := strconv.ParseFloat(env("RATE_LIMIT_RPS", strconv.Itoa(defaultRateLimitRPS)), 64)
	if err != nil {
		return Config{}, errs.NewValueIsInvalidErrorWithCause("RATE_LIMIT_RPS", err)
	}
	if rps <= 0 {
		return Config{}, errs.NewValueIsOutOfRangeError("RATE_LIMIT_RPS", rps, 0, "unbounded")
	}
	cfg.RateLimitRPS = rps

	if err := cfg.LogLevel.UnmarshalText([]byte(env("LOG_LEVEL", "INFO"))); err != nil {
		return Config{}, errs.NewValueIsInvalidErrorWithCause("LOG_LEVEL", err)
	}

	return cfg, nil
}

// DSN is the postgres connection string for gorm and lib/pq.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}
