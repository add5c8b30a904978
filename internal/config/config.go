// Package config reads process settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
)

const (
	DriverDynamoDB = "dynamodb"
	DriverSQLite   = "sqlite"
)

// DynamoDB holds the table store settings. A non-empty Endpoint overrides
// the service URL, e.g. http://dynamodb:8000.
type DynamoDB struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string
	TablePrefix     string
}

type Config struct {
	Port               int
	StoreDriver        string
	SQLitePath         string
	DynamoDB           DynamoDB
	JWTSecret          string
	AuthRequired       bool
	DisplayTimezone    string
	LogLevel           string
	LogEncoding        string
	CascadeParallelism int
}

// Load reads .env when present and then the environment. Variables
// already set in the environment win over .env entries.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to read .env: %w", err)
	}

	cfg := Config{
		StoreDriver: strings.ToLower(getenvDefault("STORE_DRIVER", DriverDynamoDB)),
		SQLitePath:  getenvDefault("SQLITE_PATH", "assistencia.db"),
		DynamoDB: DynamoDB{
			Region:          getenvDefault("AWS_REGION", "us-east-1"),
			AccessKeyID:     getenvDefault("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey: getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
			Endpoint:        os.Getenv("DYNAMODB_ENDPOINT"),
			TablePrefix:     os.Getenv("DYNAMODB_TABLE_PREFIX"),
		},
		JWTSecret:       os.Getenv("JWT_SECRET"),
		DisplayTimezone: getenvDefault("DISPLAY_TIMEZONE", "America/Sao_Paulo"),
		LogLevel:        getenvDefault("LOG_LEVEL", "info"),
		LogEncoding:     getenvDefault("LOG_ENCODING", "json"),
	}

	var err error
	if cfg.Port, err = getenvInt("PORT", 8080); err != nil {
		return Config{}, err
	}
	if cfg.CascadeParallelism, err = getenvInt("CASCADE_PARALLELISM", 8); err != nil {
		return Config{}, err
	}
	if cfg.AuthRequired, err = getenvBool("AUTH_REQUIRED", true); err != nil {
		return Config{}, err
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.StoreDriver != DriverDynamoDB && c.StoreDriver != DriverSQLite {
		return fmt.Errorf("unsupported STORE_DRIVER %q", c.StoreDriver)
	}
	if c.AuthRequired && c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required when AUTH_REQUIRED is true")
	}
	if c.CascadeParallelism < 1 {
		return fmt.Errorf("CASCADE_PARALLELISM must be positive, got %d", c.CascadeParallelism)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves DisplayTimezone, the zone dates are rendered in.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.DisplayTimezone)
	if err != nil {
		return nil, fmt.Errorf("invalid DISPLAY_TIMEZONE %q: %w", c.DisplayTimezone, err)
	}
	return loc, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getenvBool(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}
