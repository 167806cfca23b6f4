// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Config is the full runtime configuration. Keys are read verbatim from the
// environment (no prefix) so existing BLUEPRINT_DB_* deployments keep working.
type Config struct {
	Port           int           `envconfig:"PORT" default:"8080"`
	RequestTimeout time.Duration `envconfig:"REQUEST_TIMEOUT" default:"30s"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	LogJSON  bool   `envconfig:"LOG_JSON" default:"false"`

	// DevMode enables verbose SQL logging and pretty console output.
	DevMode bool `envconfig:"DEV_MODE" default:"false"`

	DB Database
}

// Database describes how to reach the backing store.
type Database struct {
	// Driver is "postgres", "mysql" or "memory". The memory driver keeps
	// everything in process and ignores the remaining settings.
	Driver   string `envconfig:"BLUEPRINT_DB_DRIVER" default:"postgres"`
	Host     string `envconfig:"BLUEPRINT_DB_HOST" default:"localhost"`
	Port     string `envconfig:"BLUEPRINT_DB_PORT" default:"5432"`
	Database string `envconfig:"BLUEPRINT_DB_DATABASE"`
	Username string `envconfig:"BLUEPRINT_DB_USERNAME"`
	Password string `envconfig:"BLUEPRINT_DB_PASSWORD"`
	// Schema sets the postgres search_path. Ignored for mysql.
	Schema string `envconfig:"BLUEPRINT_DB_SCHEMA"`

	ConnectTimeout  time.Duration `envconfig:"BLUEPRINT_DB_CONNECT_TIMEOUT" default:"2s"`
	MaxOpenConns    int           `envconfig:"BLUEPRINT_DB_MAX_OPEN_CONNS" default:"100"`
	MaxIdleConns    int           `envconfig:"BLUEPRINT_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"BLUEPRINT_DB_CONN_MAX_LIFETIME" default:"1h"`
	AutoMigrate     bool          `envconfig:"BLUEPRINT_DB_AUTO_MIGRATE" default:"true"`
}

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverMemory   = "memory"
)

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse configuration")
	}

	switch cfg.DB.Driver {
	case DriverPostgres, DriverMySQL:
		if cfg.DB.Database == "" || cfg.DB.Username == "" {
			return nil, errors.Errorf("BLUEPRINT_DB_DATABASE and BLUEPRINT_DB_USERNAME are required for the %s driver", cfg.DB.Driver)
		}
	case DriverMemory:
	default:
		return nil, errors.Errorf("unsupported BLUEPRINT_DB_DRIVER %q", cfg.DB.Driver)
	}

	return &cfg, nil
}

// Addr is the listen address for the API server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
