package config

import (
	"errors"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration, read from the process environment.
type Config struct {
	AppPort           string
	DatabaseURL       string
	CORSOrigin        string
	RabbitMQURL       string
	JWTSecret         string
	LowStockThreshold int
}

// Load reads configuration from environment variables via viper. DATABASE_URL
// has no default: without a store there is nothing this service can do, so
// its absence is a fatal startup condition rather than a failure on first use.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("APP_PORT", ":3001")
	v.SetDefault("CORS_ORIGIN", "http://localhost:3000")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("JWT_SECRET", "emart_dev_secret")
	v.SetDefault("LOW_STOCK_THRESHOLD", 10)
	v.AutomaticEnv()

	cfg := &Config{
		AppPort:           v.GetString("APP_PORT"),
		DatabaseURL:       v.GetString("DATABASE_URL"),
		CORSOrigin:        v.GetString("CORS_ORIGIN"),
		RabbitMQURL:       v.GetString("RABBITMQ_URL"),
		JWTSecret:         v.GetString("JWT_SECRET"),
		LowStockThreshold: v.GetInt("LOW_STOCK_THRESHOLD"),
	}

	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is required")
	}
	if cfg.LowStockThreshold <= 0 {
		return nil, errors.New("LOW_STOCK_THRESHOLD must be positive")
	}
	return cfg, nil
}
