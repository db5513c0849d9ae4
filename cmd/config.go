package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"bakery/internal/core/domain/model/inventory"
	"bakery/internal/jobs"
)

type Config struct {
	HTTPPort       string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSslMode      string
	DBMaxOpenConns int

	LowStockThreshold      int
	ExpiryWindowDays       int
	InventoryAlertSchedule string

	LogLevel slog.Level
}

// ConfigFromEnv reads the service configuration through getenv, falling back
// to defaults for unset variables.
func ConfigFromEnv(getenv func(string) string) (Config, error) {
	lookup := func(key, fallback string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return fallback
	}

	config := Config{
		HTTPPort:               lookup("HTTP_PORT", "8080"),
		DBHost:                 lookup("DB_HOST", "localhost"),
		DBPort:                 lookup("DB_PORT", "5432"),
		DBUser:                 lookup("DB_USER", "postgres"),
		DBPassword:             getenv("DB_PASSWORD"),
		DBName:                 lookup("DB_NAME", "bakery"),
		DBSslMode:              lookup("DB_SSLMODE", "disable"),
		InventoryAlertSchedule: lookup("INVENTORY_ALERT_SCHEDULE", jobs.DefaultInventoryAlertSchedule),
	}

	var err, problems error
	if config.DBMaxOpenConns, err = atoi("DB_MAX_OPEN_CONNS", lookup("DB_MAX_OPEN_CONNS", "10")); err != nil {
		problems = errors.Join(problems, err)
	}

	threshold := strconv.Itoa(inventory.DefaultLowStockThreshold)
	if config.LowStockThreshold, err = atoi("INVENTORY_LOW_STOCK_THRESHOLD",
		lookup("INVENTORY_LOW_STOCK_THRESHOLD", threshold)); err != nil {
		problems = errors.Join(problems, err)
	}

	window := strconv.Itoa(inventory.DefaultExpiryWindowDays)
	if config.ExpiryWindowDays, err = atoi("INVENTORY_EXPIRY_WINDOW_DAYS",
		lookup("INVENTORY_EXPIRY_WINDOW_DAYS", window)); err != nil {
		problems = errors.Join(problems, err)
	}

	if err = config.LogLevel.UnmarshalText([]byte(lookup("LOG_LEVEL", "info"))); err != nil {
		problems = errors.Join(problems, fmt.Errorf("LOG_LEVEL: %w", err))
	}

	return config, problems
}

// DSN renders the lib/pq connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func atoi(key, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, value)
	}
	return n, nil
}
