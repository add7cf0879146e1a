package goldfile

import (
	"path/filepath"
	"strings"
)

// TB is the subset of testing.TB the package needs. *testing.T satisfies
// it; tests of the obligation machinery substitute a fake.
type TB interface {
	Helper()
	Name() string
	Cleanup(func())
	Errorf(format string, args ...any)
	Fatalf(format string, args ...any)
}

// TestID derives a fixture basename from the running test's name. Subtest
// separators are flattened, so "TestFetch/empty" becomes "TestFetch-empty".
func TestID(t TB) string {
	return strings.ReplaceAll(t.Name(), "/", "-")
}

// DefaultPath is the fixture path a Begin session uses: the configured
// directory joined with the test ID and a .json extension.
func DefaultPath(t TB, cfg Config) string {
	return filepath.Join(cfg.Dir, TestID(t)+".json")
}

// Begin creates the session for the calling test. Configuration comes
// from the GOLDFILE_* environment, the fixture path from the test's name,
// and the save-obligation check is registered with t.Cleanup so it runs
// on every exit path, early failures included. A contradictory
// configuration stops the test immediately; an unmet obligation fails it
// at teardown.
//
// One session per test. A test needing several fixtures should be split.
func Begin(t TB, opts ...Option) *Session {
	t.Helper()

	cfg, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("goldfile: %v", err)
		return nil
	}

	s, err := NewSession(DefaultPath(t, cfg), cfg, opts...)
	if err != nil {
		t.Fatalf("goldfile: %v", err)
		return nil
	}

	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("goldfile: %v", err)
		}
	})

	return s
}
