package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Config holds everything the server reads from its environment, including
// the estimation policy overrides. The policy values are business defaults,
// not incidental code, so they live here where they are auditable in one
// place.
type Config struct {
	HTTPAddr     string
	DBConnString string

	DBMaxOpenConns    int
	DBMaxIdleConns    int
	DBConnMaxLifetime time.Duration

	DefaultGuestCount    int
	DefaultTaxRate       decimal.Decimal
	DefaultServiceFeePct decimal.Decimal
	DefaultEventHours    int
}

// Load reads configuration from environment variables, falling back to
// development defaults
func Load() Config {
	return Config{
		HTTPAddr:             getString("HTTP_ADDR", ":8080"),
		DBConnString:         dbConnString(),
		DBMaxOpenConns:       getInt("DB_MAX_OPEN_CONNS", 20),
		DBMaxIdleConns:       getInt("DB_MAX_IDLE_CONNS", 2),
		DBConnMaxLifetime:    getDuration("DB_CONN_MAX_LIFETIME", 30*time.Minute),
		DefaultGuestCount:    getInt("DEFAULT_GUEST_COUNT", 100),
		DefaultTaxRate:       getDecimal("DEFAULT_TAX_RATE", decimal.NewFromFloat(0.08)),
		DefaultServiceFeePct: getDecimal("DEFAULT_SERVICE_FEE_PCT", decimal.NewFromFloat(0.20)),
		DefaultEventHours:    getInt("DEFAULT_EVENT_HOURS", 4),
	}
}

// dbConnString returns DB_CONN_STR if set, otherwise builds the connection
// string from individual vars (Docker friendly)
func dbConnString() string {
	if s := os.Getenv("DB_CONN_STR"); s != "" {
		return s
	}

	host := getString("DB_HOST", "localhost")
	port := getString("DB_PORT", "5432")
	user := getString("DB_USER", "postgres")
	password := getString("DB_PASSWORD", "postgres")
	dbname := getString("DB_NAME", "evervow")

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, password, dbname)
}

func getString(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func getInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}

func getDuration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}

func getDecimal(key string, fallback decimal.Decimal) decimal.Decimal {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	parsed, err := decimal.NewFromString(raw)
	if err != nil || parsed.IsNegative() {
		return fallback
	}
	return parsed
}
