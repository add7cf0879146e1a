package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var flagSchema string

func init() {
	verifyCmd.Flags().StringVar(&flagSchema, "schema", "", "JSON schema to validate fixtures against (overrides config)")
	rootCmd.AddCommand(verifyCmd)
}

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check that every fixture is a well-formed document",
	Long: `Parses each fixture under the fixture directory as JSON and, when a
schema is configured, validates it against that schema. Fixtures are
checked concurrently.`,
	Args: cobra.NoArgs,
	RunE: runVerify,
}

func runVerify(cmd *cobra.Command, args []string) error {
	cfg, rootDir, err := loadConfig()
	if err != nil {
		return err
	}

	dir := fixtureDir(cfg, rootDir)

	fixtures, err := collectFixtures(dir)
	if err != nil {
		return err
	}

	if len(fixtures) == 0 {
		fmt.Printf("No fixtures under %s\n", dir)
		return nil
	}

	schemaPath := flagSchema
	if schemaPath == "" && cfg.Verify.Schema != "" {
		schemaPath = cfg.Verify.Schema
		if !filepath.IsAbs(schemaPath) {
			schemaPath = filepath.Join(rootDir, schemaPath)
		}
	}

	var schema *jsonschema.Schema
	if schemaPath != "" {
		schema, err = compileSchema(schemaPath)
		if err != nil {
			return err
		}
		log.Debug().Str("schema", schemaPath).Msg("validating against schema")
	}

	limit := cfg.Verify.MaxConcurrency
	if limit <= 0 {
		limit = 10
	}

	var mu sync.Mutex
	var failures []string

	g := new(errgroup.Group)
	g.SetLimit(limit)

	for _, fx := range fixtures {
		fx := fx
		g.Go(func() error {
			if err := verifyFixture(fx.path, schema); err != nil {
				mu.Lock()
				failures = append(failures, fmt.Sprintf("%s: %v", fx.name, err))
				mu.Unlock()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	sort.Strings(failures)
	for _, f := range failures {
		fmt.Printf("%s\n", f)
	}

	if len(failures) > 0 {
		return fmt.Errorf("%d of %d fixture(s) failed verification", len(failures), len(fixtures))
	}

	fmt.Printf("All %d fixture(s) are valid.\n", len(fixtures))

	return nil
}

// verifyFixture checks that a fixture parses as JSON and, when schema is
// non-nil, satisfies it.
func verifyFixture(path string, schema *jsonschema.Schema) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var payload any
	if err := json.Unmarshal(data, &payload); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	if schema != nil {
		if err := schema.Validate(payload); err != nil {
			return fmt.Errorf("schema violation: %w", err)
		}
	}

	return nil
}

func compileSchema(path string) (*jsonschema.Schema, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open schema %s: %w", path, err)
	}
	defer f.Close()

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(path, f); err != nil {
		return nil, fmt.Errorf("add schema resource %s: %w", path, err)
	}

	schema, err := compiler.Compile(path)
	if err != nil {
		return nil, fmt.Errorf("compile schema %s: %w", path, err)
	}

	return schema, nil
}
