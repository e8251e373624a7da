package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/richxcame/motorent/pkg/validation"
)

// Config holds all application configuration
type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	Log        LogConfig
	Settlement SettlementConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port           string
	Environment    string
	ServiceName    string
	ReadTimeout    int
	WriteTimeout   int
	RequestTimeout int
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
	MaxConns int
	MinConns int
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level string
}

// SettlementConfig holds royalty settlement options
type SettlementConfig struct {
	SettingsCacheTTLSeconds int
	MaxReportDays           int
	DefaultRoyalty          RoyaltyDefaults
}

// RoyaltyDefaults seeds the settings store when no row has been saved yet.
// Values are percentages (12 means 12%).
type RoyaltyDefaults struct {
	BikePercent               float64
	MopedPercent              float64
	ECPaymentFeePercent       float64
	SplitLinkusPercent        float64
	SplitSystemDevPercent     float64
	SplitAdditionalOnePercent float64
}

// Load loads configuration from environment variables
func Load(serviceName string) (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			Environment:    getEnv("ENVIRONMENT", "development"),
			ServiceName:    serviceName,
			ReadTimeout:    getEnvAsInt("READ_TIMEOUT", 10),
			WriteTimeout:   getEnvAsInt("WRITE_TIMEOUT", 30),
			RequestTimeout: getEnvAsInt("REQUEST_TIMEOUT", 25),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "motorent"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			MaxConns: getEnvAsInt("DB_MAX_CONNS", 10),
			MinConns: getEnvAsInt("DB_MIN_CONNS", 2),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Settlement: SettlementConfig{
			SettingsCacheTTLSeconds: getEnvAsInt("SETTINGS_CACHE_TTL_SECONDS", 300),
			MaxReportDays:           getEnvAsInt("SETTLEMENT_MAX_REPORT_DAYS", 93),
		},
	}

	royaltyVars := []struct {
		key          string
		defaultValue float64
		target       *float64
	}{
		{"ROYALTY_BIKE_PERCENT", 12, &cfg.Settlement.DefaultRoyalty.BikePercent},
		{"ROYALTY_MOPED_PERCENT", 10, &cfg.Settlement.DefaultRoyalty.MopedPercent},
		{"EC_PAYMENT_FEE_PERCENT", 3.6, &cfg.Settlement.DefaultRoyalty.ECPaymentFeePercent},
		{"SPLIT_LINKUS_PERCENT", 50, &cfg.Settlement.DefaultRoyalty.SplitLinkusPercent},
		{"SPLIT_SYSTEM_DEV_PERCENT", 35, &cfg.Settlement.DefaultRoyalty.SplitSystemDevPercent},
		{"SPLIT_ADDITIONAL_ONE_PERCENT", 15, &cfg.Settlement.DefaultRoyalty.SplitAdditionalOnePercent},
	}
	for _, v := range royaltyVars {
		value, err := getEnvAsPercent(v.key, v.defaultValue)
		if err != nil {
			return nil, err
		}
		*v.target = value
	}

	if cfg.Settlement.SettingsCacheTTLSeconds < 0 {
		return nil, fmt.Errorf("invalid SETTINGS_CACHE_TTL_SECONDS value: must not be negative")
	}

	if cfg.Settlement.MaxReportDays <= 0 {
		cfg.Settlement.MaxReportDays = 93
	}

	return cfg, nil
}

// SettingsCacheTTL returns the settings cache lifetime; zero disables caching
func (c SettlementConfig) SettingsCacheTTL() time.Duration {
	return time.Duration(c.SettingsCacheTTLSeconds) * time.Second
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

// RedisAddr returns the Redis address
func (c *RedisConfig) RedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsPercent(key string, defaultValue float64) (float64, error) {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue, nil
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	if err := validation.ValidatePercent(value); err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return value, nil
}
