// Package config loads the application configuration from environment
// variables and an optional YAML file, and resolves the data file paths the
// adapters and the history store read from.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server" envconfig:"SERVER"`
	Logging   LoggingConfig   `yaml:"logging" envconfig:"LOGGING"`
	Paths     PathsConfig     `yaml:"paths" envconfig:"PATHS"`
	History   HistoryConfig   `yaml:"history" envconfig:"HISTORY"`
	RateLimit RateLimitConfig `yaml:"rate_limit" envconfig:"RATE_LIMIT"`
}

// ServerConfig contains HTTP server configuration.
type ServerConfig struct {
	Port            int           `yaml:"port" envconfig:"PORT" validate:"gt=0,lte=65535"`
	ReadTimeout     time.Duration `yaml:"read_timeout" envconfig:"READ_TIMEOUT"`
	WriteTimeout    time.Duration `yaml:"write_timeout" envconfig:"WRITE_TIMEOUT"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" envconfig:"IDLE_TIMEOUT"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" envconfig:"SHUTDOWN_TIMEOUT"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" envconfig:"FORMAT" validate:"oneof=json text"`
}

// PathsConfig locates the source extracts and the history log.
type PathsConfig struct {
	DataDir        string `yaml:"data_dir" envconfig:"DATA_DIR" validate:"required"`
	SettlementFile string `yaml:"settlement_file" envconfig:"SETTLEMENT_FILE"`
	SalesFile      string `yaml:"sales_file" envconfig:"SALES_FILE"`
	AdSpendFile    string `yaml:"ad_spend_file" envconfig:"AD_SPEND_FILE"`
	TimeslotFile   string `yaml:"timeslot_file" envconfig:"TIMESLOT_FILE"`
	HistoryFile    string `yaml:"history_file" envconfig:"HISTORY_FILE"`
}

// HistoryConfig configures the analysis history store.
type HistoryConfig struct {
	// Backend selects the persistence engine: "json" keeps the single-file
	// document store, "sqlite" moves the log into a transactional table.
	Backend    string `yaml:"backend" envconfig:"BACKEND" validate:"oneof=json sqlite"`
	SQLiteFile string `yaml:"sqlite_file" envconfig:"SQLITE_FILE"`
	MaxRecords int    `yaml:"max_records" envconfig:"MAX_RECORDS" validate:"gt=0"`
}

// RateLimitConfig contains request rate limiting configuration.
type RateLimitConfig struct {
	Enabled bool    `yaml:"enabled" envconfig:"ENABLED"`
	RPS     float64 `yaml:"rps" envconfig:"RPS"`
	Burst   int     `yaml:"burst" envconfig:"BURST"`
}

// Default returns the built-in configuration. File and environment values
// layer on top of it.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Port:            5050,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 15 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Paths: PathsConfig{
			DataDir:        "data",
			SettlementFile: "SettleCaseByCase.csv",
			SalesFile:      "SalesPerformance.csv",
			AdSpendFile:    "AdMultipleReport.csv",
			TimeslotFile:   "timeslot.csv",
			HistoryFile:    "history.json",
		},
		History: HistoryConfig{
			Backend:    "json",
			SQLiteFile: "history.db",
			MaxRecords: 1000,
		},
		RateLimit: RateLimitConfig{
			Enabled: true,
			RPS:     50,
			Burst:   25,
		},
	}
}

// Load builds the configuration: defaults, overlaid by an optional
// config.yaml, overlaid by environment variables with the STORELENS prefix.
func Load() (*Config, error) {
	return LoadFrom("config.yaml")
}

// LoadFrom is Load with an explicit config file location, used by tests.
func LoadFrom(configFile string) (*Config, error) {
	cfg := Default()

	if data, err := os.ReadFile(configFile); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := envconfig.Process("STORELENS", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}
