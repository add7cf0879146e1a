package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// fixtureInfo describes one recorded fixture file.
type fixtureInfo struct {
	name    string
	path    string
	size    int64
	modTime time.Time
}

// collectFixtures lists regular files under dir, sorted by name. A missing
// directory yields an empty list rather than an error: no fixtures have
// been recorded yet.
func collectFixtures(dir string) ([]fixtureInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading fixture directory %s: %w", dir, err)
	}

	var fixtures []fixtureInfo
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("reading fixture %s: %w", entry.Name(), err)
		}

		fixtures = append(fixtures, fixtureInfo{
			name:    entry.Name(),
			path:    filepath.Join(dir, entry.Name()),
			size:    info.Size(),
			modTime: info.ModTime(),
		})
	}

	sort.Slice(fixtures, func(i, j int) bool {
		return fixtures[i].name < fixtures[j].name
	})

	return fixtures, nil
}
