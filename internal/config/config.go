package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// Transaction source
	SourceBackend string
	SourcePath    string
	SourceSheet   string

	// SQLite operations store
	SQLiteDBPath string

	// AMQP report publishing (optional; empty URL disables it)
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string

	// Quote providers
	ExchangeBaseURL string
	ExchangeAPIKey  string
	StocksBaseURL   string
	StocksAPIKey    string
	HomeCurrency    string
	QuoteWorkers    int
	QuoteTimeout    time.Duration
	QuoteCacheTTL   time.Duration

	// User settings file (tracked currencies/stocks, cashback policy)
	UserSettingsPath string
}

func Load() *Config {
	cfg := &Config{
		SourceBackend: getEnv("SOURCE_BACKEND", "xlsx"),
		SourcePath:    getEnv("SOURCE_PATH", "./data/operations.xlsx"),
		SourceSheet:   getEnv("SOURCE_SHEET", ""),

		SQLiteDBPath: getEnv("SQLITE_DB_PATH", "./data/operations.db"),

		AMQPURL:      getEnv("AMQP_URL", ""),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "spendlens"),
		AMQPQueue:    getEnv("AMQP_QUEUE", "reports"),

		ExchangeBaseURL: getEnv("EXCHANGE_API_BASE_URL", ""),
		ExchangeAPIKey:  getEnv("EXCHANGE_API_KEY", ""),
		StocksBaseURL:   getEnv("STOCKS_API_BASE_URL", ""),
		StocksAPIKey:    getEnv("ALPHAVANTAGE_API_KEY", ""),
		HomeCurrency:    getEnv("HOME_CURRENCY", "RUB"),
		QuoteWorkers:    getEnvInt("QUOTE_WORKERS", 4),
		QuoteTimeout:    getEnvDuration("QUOTE_TIMEOUT", 5*time.Second),
		QuoteCacheTTL:   getEnvDuration("QUOTE_CACHE_TTL", 15*time.Minute),

		UserSettingsPath: getEnv("USER_SETTINGS_PATH", "./user_settings.yaml"),
	}

	return cfg
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	// Validate source backend
	validBackends := []string{"xlsx", "csv", "sqlite", "sheets"}
	isValidBackend := false
	for _, backend := range validBackends {
		if c.SourceBackend == backend {
			isValidBackend = true
			break
		}
	}
	if !isValidBackend {
		errors = append(errors, fmt.Sprintf("invalid source backend '%s': must be one of %v", c.SourceBackend, validBackends))
	}

	// File backends need a source path
	if (c.SourceBackend == "xlsx" || c.SourceBackend == "csv") && c.SourcePath == "" {
		errors = append(errors, fmt.Sprintf("source path cannot be empty for the %s backend", c.SourceBackend))
	}

	// Validate SQLite configuration if backend is sqlite
	if c.SourceBackend == "sqlite" {
		if c.SQLiteDBPath == "" {
			errors = append(errors, "SQLite database path cannot be empty when using sqlite backend")
		} else {
			dir := filepath.Dir(c.SQLiteDBPath)
			if dir != "." && dir != "" {
				if _, err := os.Stat(dir); os.IsNotExist(err) {
					if err := os.MkdirAll(dir, 0755); err != nil {
						errors = append(errors, fmt.Sprintf("cannot create SQLite database directory '%s': %v", dir, err))
					}
				}
			}
		}
	}

	// Validate AMQP URL if provided
	if c.AMQPURL != "" {
		if parsedURL, err := url.Parse(c.AMQPURL); err != nil {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL '%s': %v", c.AMQPURL, err))
		} else if parsedURL.Scheme != "amqp" && parsedURL.Scheme != "amqps" {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsedURL.Scheme))
		}

		if c.AMQPExchange == "" {
			errors = append(errors, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
		if c.AMQPQueue == "" {
			errors = append(errors, "AMQP queue name cannot be empty when AMQP URL is provided")
		}
	}

	if c.QuoteWorkers < 1 {
		errors = append(errors, fmt.Sprintf("invalid quote worker count %d: must be at least 1", c.QuoteWorkers))
	}
	if c.QuoteTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("invalid quote timeout %v: must be positive", c.QuoteTimeout))
	}

	// Return combined errors
	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
