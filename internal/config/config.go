package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

// ErrMissingCredentials indicates the database credential set is incomplete.
var ErrMissingCredentials = errors.New("database credentials missing")

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config represents the full application configuration surface.
type Config struct {
	Database DatabaseConfig
	Log      LogConfig
}

// DatabaseConfig holds the credentials used for every store connection.
type DatabaseConfig struct {
	Driver   string
	User     string
	Password string
	DSN      string
}

// LogConfig holds zap logger options.
type LogConfig struct {
	Level  string
	Output string
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// A missing .env is fine, the credentials may come from the environment.
		_ = godotenv.Load()
	}

	cfg := &Config{
		Database: DatabaseConfig{
			Driver:   strings.ToLower(getenvWithDefault("DB_DRIVER", DriverPostgres)),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			DSN:      os.Getenv("DB_DSN"),
		},
		Log: LogConfig{
			Level:  getenvWithDefault("LOG_LEVEL", "warn"),
			Output: getenvWithDefault("LOG_OUTPUT", "stderr"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	switch {
	case c.Database.User == "":
		return fmt.Errorf("%w: DB_USER must be provided", ErrMissingCredentials)
	case c.Database.Password == "":
		return fmt.Errorf("%w: DB_PASSWORD must be provided", ErrMissingCredentials)
	case c.Database.DSN == "":
		return fmt.Errorf("%w: DB_DSN must be provided", ErrMissingCredentials)
	}

	switch c.Database.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver)
	}

	if c.Log.Level == "" {
		return errors.New("LOG_LEVEL must not be empty")
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid LOG_LEVEL %q: %w", c.Log.Level, err)
	}

	if c.Log.Output == "" {
		return errors.New("LOG_OUTPUT must not be empty")
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
