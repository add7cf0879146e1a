// Package cli implements the goldfile command tree.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"go.dot.industries/goldfile/internal/cliconfig"
)

var (
	flagDir        string
	flagConfigPath string
	flagVerbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "goldfile",
	Short: "Manage golden test fixtures",
	Long: `goldfile manages the golden fixture files recorded by tests that replay
external API responses. It lists, verifies, and prunes fixtures under the
directory configured in goldfile.toml or the GOLDFILE_DIR environment
variable.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDir, "dir", "d", "", "fixture directory (overrides config and environment)")
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "path to goldfile.toml (auto-detected if omitted)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	cobra.OnInitialize(initLogger)
}

func initLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level := zerolog.InfoLevel
	if flagVerbose {
		level = zerolog.DebugLevel
	}

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger().Level(level)
}

// loadConfig finds and parses goldfile.toml, falling back to defaults when
// no project config exists. Returns the config and the directory it
// applies to.
func loadConfig() (*cliconfig.Config, string, error) {
	configPath := flagConfigPath

	if configPath == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, "", fmt.Errorf("getting working directory: %w", err)
		}

		found, err := cliconfig.Find(cwd)
		if err != nil {
			// No project config is fine; the CLI works from defaults.
			log.Debug().Msg("no goldfile.toml found, using defaults")
			return cliconfig.Default(), cwd, nil
		}
		configPath = found
	}

	cfg, err := cliconfig.Load(configPath)
	if err != nil {
		return nil, "", err
	}

	rootDir := filepath.Dir(configPath)
	if err := cliconfig.ValidateWithRoot(cfg, rootDir); err != nil {
		return nil, "", fmt.Errorf("invalid %s: %w", configPath, err)
	}

	return cfg, rootDir, nil
}

// fixtureDir resolves the effective fixture directory from the flag, the
// GOLDFILE_DIR environment variable, and the project config, in that
// order of precedence.
func fixtureDir(cfg *cliconfig.Config, rootDir string) string {
	if flagDir != "" {
		return flagDir
	}

	if env := os.Getenv("GOLDFILE_DIR"); env != "" {
		return env
	}

	dir := cfg.Fixtures.Dir
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(rootDir, dir)
	}

	return dir
}
