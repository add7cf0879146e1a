package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var flagOlderThan time.Duration

func init() {
	cleanCmd.Flags().DurationVar(&flagOlderThan, "older-than", 0, "only remove fixtures not recorded within this duration (e.g. 720h)")
	rootCmd.AddCommand(cleanCmd)
}

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove recorded fixtures",
	Long: `Deletes fixture files under the fixture directory so the next test run
re-records them. With --older-than, only fixtures last recorded before the
given duration are removed.`,
	Args: cobra.NoArgs,
	RunE: runClean,
}

func runClean(cmd *cobra.Command, args []string) error {
	cfg, rootDir, err := loadConfig()
	if err != nil {
		return err
	}

	dir := fixtureDir(cfg, rootDir)

	fixtures, err := collectFixtures(dir)
	if err != nil {
		return err
	}

	var cutoff time.Time
	if flagOlderThan > 0 {
		cutoff = time.Now().Add(-flagOlderThan)
	}

	removed := 0
	for _, fx := range fixtures {
		if !cutoff.IsZero() && fx.modTime.After(cutoff) {
			continue
		}

		if err := os.Remove(fx.path); err != nil {
			return fmt.Errorf("removing %s: %w", fx.path, err)
		}

		log.Debug().Str("fixture", fx.name).Msg("removed")
		removed++
	}

	fmt.Printf("Removed %d of %d fixture(s) from %s\n", removed, len(fixtures), dir)

	return nil
}
