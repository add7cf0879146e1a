package goldfile

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// DefaultDir is where fixtures live when GOLDFILE_DIR is unset.
const DefaultDir = "testdata/golden"

// Config is the resolved per-session configuration. It is read from the
// environment once at session construction and passed by value; sessions
// never consult the process environment afterwards.
type Config struct {
	// Dir is the directory fixture files are stored in.
	Dir string `env:"GOLDFILE_DIR" envDefault:"testdata/golden"`
	// AllowExternal permits live external calls.
	AllowExternal bool `env:"GOLDFILE_ALLOW_EXTERNAL" envDefault:"true"`
	// Update requires the result of a live call to overwrite the fixture.
	Update bool `env:"GOLDFILE_UPDATE" envDefault:"true"`
}

// ConfigFromEnv resolves a Config from the GOLDFILE_* environment
// variables, applying the documented defaults for unset ones.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse goldfile environment: %w", err)
	}
	return cfg, nil
}
