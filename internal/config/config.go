package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for our application
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Logger    LoggerConfig
	JWT       JWTConfig
	CORS      CORSConfig
	Scheduler SchedulerConfig
	Scraper   ScraperConfig
	Payments  PaymentsConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port    string
	GinMode string
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level  string
	Format string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret string
}

// CORSConfig holds CORS configuration
type CORSConfig struct {
	AllowedOrigins string
}

// SchedulerConfig holds scheduler configuration
type SchedulerConfig struct {
	MetricsCronExpression string
	MetricsMaxAgeDays     int
	MetricsBatchLimit     int
}

// ScraperConfig holds the external metrics scraper configuration
type ScraperConfig struct {
	APIKey          string
	BaseURL         string
	PollInterval    int // seconds between snapshot polls
	PollMaxAttempts int
}

// PaymentsConfig holds payment engine configuration
type PaymentsConfig struct {
	// PreservePaidTierHistory keeps already-paid tier payment rows when the
	// applicable tier set for a creator changes. When false, stale rows are
	// removed regardless of paid state.
	PreservePaidTierHistory bool
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// It's okay if .env file doesn't exist
		fmt.Println("No .env file found, using environment variables")
	}

	config := &Config{
		Server: ServerConfig{
			Port:    getEnv("PORT", "8080"),
			GinMode: getEnv("GIN_MODE", "debug"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "creatorpay"),
			Password: getEnv("DB_PASSWORD", "secret"),
			DBName:   getEnv("DB_NAME", "creatorpay"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "debug"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", "your-secret-key"),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://127.0.0.1:3000"),
		},
		Scheduler: SchedulerConfig{
			MetricsCronExpression: getEnv("METRICS_CRON_EXPRESSION", "0 0 */6 * * *"),
			MetricsMaxAgeDays:     getEnvAsInt("METRICS_MAX_AGE_DAYS", 14),
			MetricsBatchLimit:     getEnvAsInt("METRICS_BATCH_LIMIT", 100),
		},
		Scraper: ScraperConfig{
			APIKey:          getEnv("SCRAPER_API_KEY", ""),
			BaseURL:         getEnv("SCRAPER_BASE_URL", "https://api.brightdata.com/datasets/v3"),
			PollInterval:    getEnvAsInt("SCRAPER_POLL_INTERVAL", 10),
			PollMaxAttempts: getEnvAsInt("SCRAPER_POLL_MAX_ATTEMPTS", 24),
		},
		Payments: PaymentsConfig{
			PreservePaidTierHistory: getEnvAsBool("PAYMENTS_PRESERVE_PAID_TIER_HISTORY", true),
		},
	}

	return config, nil
}

// GetDSN returns PostgreSQL connection string
func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// getEnv gets an environment variable with a fallback value
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getEnvAsInt gets an environment variable as integer with a fallback value
func getEnvAsInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvAsBool gets an environment variable as boolean with a fallback value
func getEnvAsBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
