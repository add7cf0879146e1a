// Package cliconfig loads the goldfile.toml project configuration used by
// the goldfile CLI.
package cliconfig

import (
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileName is the project configuration file the CLI looks for.
const FileName = "goldfile.toml"

const (
	defaultFixtureDir     = "testdata/golden"
	defaultMaxConcurrency = 10
)

// Config represents a goldfile.toml project file.
type Config struct {
	Fixtures FixturesConfig `toml:"fixtures"`
	Verify   VerifyConfig   `toml:"verify"`
}

// FixturesConfig holds fixture storage settings.
type FixturesConfig struct {
	// Dir is the fixture directory, relative to the config file unless
	// absolute.
	Dir string `toml:"dir"`
}

// VerifyConfig holds settings for the verify command.
type VerifyConfig struct {
	// Schema is an optional JSON schema path fixtures are validated
	// against, relative to the config file unless absolute.
	Schema string `toml:"schema"`
	// MaxConcurrency bounds parallel fixture checks. Zero means the
	// default.
	MaxConcurrency int `toml:"max_concurrency"`
}

// Default returns the configuration used when no goldfile.toml exists.
func Default() *Config {
	return &Config{
		Fixtures: FixturesConfig{Dir: defaultFixtureDir},
		Verify:   VerifyConfig{MaxConcurrency: defaultMaxConcurrency},
	}
}

// Load parses a goldfile.toml file at the given path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return &cfg, nil
}

// Find walks up directories starting from startDir to locate a
// goldfile.toml file. Returns the absolute path to the first one found,
// or an error if none exists.
func Find(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolving absolute path for %s: %w", startDir, err)
	}

	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("%s not found in %s or any parent directory", FileName, startDir)
}
