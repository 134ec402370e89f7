package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all configuration for the application
type Config struct {
	Env Environment `ignored:"true"`

	// Server configuration
	ServerHost            string        `envconfig:"SERVER_HOST"`
	ServerPort            string        `envconfig:"SERVER_PORT" default:"8080" validate:"required,numeric"`
	ServerShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"5s"`

	// Database configuration
	DBDriver   string `envconfig:"DB_DRIVER" default:"sqlite" validate:"oneof=sqlite postgres"`
	DBPath     string `envconfig:"DB_PATH" default:"recipes.db"`
	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" default:"postgres"`
	DBPassword string `envconfig:"DB_PASSWORD"`
	DBName     string `envconfig:"DB_NAME" default:"recipes"`
	DBSSLMode  string `envconfig:"DB_SSL_MODE" default:"disable" validate:"oneof=disable allow prefer require verify-ca verify-full"`

	// Connection pool
	DBMaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"25" validate:"min=1"`
	DBMaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"25" validate:"min=1"`
	DBConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"5m"`

	DBSlowQueryThreshold time.Duration `envconfig:"DB_SLOW_QUERY_THRESHOLD" default:"200ms"`

	LogLevel           string   `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:5173"`
}

// LoadConfig reads configuration from the environment, after loading a .env
// file when one is present in the working directory.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{Env: GetEnvironment()}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("failed to load %s configuration: %w", cfg.Env, err)
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return c.ServerHost + ":" + c.ServerPort
}

// PostgresDSN builds a lib/pq connection string.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}
