package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded fixtures",
	Long: `Shows every fixture under the fixture directory with its size and the
time it was last recorded. Useful for spotting fixtures a renamed test
left behind.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, rootDir, err := loadConfig()
	if err != nil {
		return err
	}

	dir := fixtureDir(cfg, rootDir)

	fixtures, err := collectFixtures(dir)
	if err != nil {
		return err
	}

	log.Debug().Str("dir", dir).Int("fixtures", len(fixtures)).Msg("scanned fixture directory")

	if len(fixtures) == 0 {
		fmt.Printf("No fixtures under %s\n", dir)
		return nil
	}

	fmt.Printf("Fixtures in %s (%d):\n", dir, len(fixtures))
	for _, fx := range fixtures {
		fmt.Printf("  %-40s %8d bytes  %s\n", fx.name, fx.size, fx.modTime.Format("2006-01-02 15:04:05"))
	}

	return nil
}
