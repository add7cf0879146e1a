package cliconfig

import (
	"fmt"
	"os"
	"path/filepath"
)

// Validate checks that a Config has usable values.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	if cfg.Fixtures.Dir == "" {
		return fmt.Errorf("fixtures dir is required")
	}

	if cfg.Verify.MaxConcurrency < 0 {
		return fmt.Errorf("verify max_concurrency must not be negative")
	}

	return nil
}

// ValidateWithRoot validates a Config and also checks that the schema
// path, when set, exists relative to rootDir on the filesystem. The
// fixture directory is deliberately not checked: it is created by the
// first recorded fixture.
func ValidateWithRoot(cfg *Config, rootDir string) error {
	if err := Validate(cfg); err != nil {
		return err
	}

	if cfg.Verify.Schema != "" {
		schemaPath := cfg.Verify.Schema
		if !filepath.IsAbs(schemaPath) {
			schemaPath = filepath.Join(rootDir, schemaPath)
		}
		if _, err := os.Stat(schemaPath); err != nil {
			return fmt.Errorf("verify schema %q does not exist: %w", cfg.Verify.Schema, err)
		}
	}

	return nil
}
