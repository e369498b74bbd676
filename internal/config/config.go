// Package config carries the explicit pipeline configuration. Defaults can
// be overridden by environment variables, with a .env file loaded when
// present.
package config

import (
	"os"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/joho/godotenv"
)

const (
	defaultDataPath = "data.yaml"
	defaultOutPath  = "weightlog.xlsx"
)

// Config represents the application configuration.
type Config struct {
	DataPath string // YAML measurement file
	OutPath  string // chart workbook destination
}

// Load builds the configuration from defaults and environment.
func Load() Config {
	// Missing .env is the normal case, not an error.
	_ = godotenv.Load()

	cfg := Config{
		DataPath: defaultDataPath,
		OutPath:  defaultOutPath,
	}
	if v := os.Getenv("WEIGHTLOG_DATA"); v != "" {
		cfg.DataPath = v
	}
	if v := os.Getenv("WEIGHTLOG_OUT"); v != "" {
		cfg.OutPath = v
	}
	return cfg
}

// Validate validates the configuration.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.DataPath, validation.Required),
		validation.Field(&c.OutPath, validation.Required),
	)
}
