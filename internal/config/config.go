package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application settings, loaded from the environment.
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Aggregate cache
	CacheTTL time.Duration `env:"CACHE_TTL" envDefault:"5m"`

	// Dataset bounds and source
	DataYearFrom int    `env:"DATA_YEAR_FROM" envDefault:"2018"`
	DataYearTo   int    `env:"DATA_YEAR_TO" envDefault:"2025"`
	DatasetURL   string `env:"DATASET_URL"`

	// Forecast Config
	ForecastSteps  int `env:"FORECAST_STEPS" envDefault:"6"`
	ForecastPeriod int `env:"FORECAST_PERIOD" envDefault:"12"`

	// Rankings
	TopLimit int `env:"TOP_LIMIT" envDefault:"10"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// API keys guarding the export endpoint
	APIKeys []string `env:"API_KEYS"`
}

// DefaultDatasetURL is the DataSF Socrata endpoint for SFPD incident reports.
const DefaultDatasetURL = "https://data.sfgov.org/resource/wg3w-h783.json"

// LoadConfig loads configuration from environment variables and an optional
// .env file.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := &Config{
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		HTTPPort:          getEnv("HTTP_PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		RedisAddr:         getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:         os.Getenv("REDIS_PASSWORD"),
		RedisDB:           getEnvAsInt("REDIS_DB", 0),
		CacheTTL:          getEnvAsDuration("CACHE_TTL", 5*time.Minute),
		DataYearFrom:      getEnvAsInt("DATA_YEAR_FROM", 2018),
		DataYearTo:        getEnvAsInt("DATA_YEAR_TO", 2025),
		DatasetURL:        getEnv("DATASET_URL", DefaultDatasetURL),
		ForecastSteps:     getEnvAsInt("FORECAST_STEPS", 6),
		ForecastPeriod:    getEnvAsInt("FORECAST_PERIOD", 12),
		TopLimit:          getEnvAsInt("TOP_LIMIT", 10),
		WebhookURL:        os.Getenv("WEBHOOK_URL"),
		WebhookSecret:     os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:    getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries: getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:  getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
	}

	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	if cfg.DataYearFrom > cfg.DataYearTo {
		return nil, fmt.Errorf("DATA_YEAR_FROM (%d) must not exceed DATA_YEAR_TO (%d)", cfg.DataYearFrom, cfg.DataYearTo)
	}

	return cfg, nil
}

// getEnv returns the value of an environment variable or a default.
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt returns an environment variable as int or a default.
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDuration returns an environment variable as time.Duration or a default.
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
