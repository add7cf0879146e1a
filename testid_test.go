package goldfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// fakeTB records test-framework interactions so the obligation machinery
// can be asserted against.
type fakeTB struct {
	name     string
	cleanups []func()
	errors   []string
	fatals   []string
}

func (f *fakeTB) Helper()           {}
func (f *fakeTB) Name() string      { return f.name }
func (f *fakeTB) Cleanup(fn func()) { f.cleanups = append(f.cleanups, fn) }

func (f *fakeTB) Errorf(format string, args ...any) {
	f.errors = append(f.errors, fmt.Sprintf(format, args...))
}

func (f *fakeTB) Fatalf(format string, args ...any) {
	f.fatals = append(f.fatals, fmt.Sprintf(format, args...))
}

// runCleanups executes registered cleanups in reverse order, matching the
// testing package.
func (f *fakeTB) runCleanups() {
	for i := len(f.cleanups) - 1; i >= 0; i-- {
		f.cleanups[i]()
	}
}

func TestTestID_FlattensSubtests(t *testing.T) {
	tb := &fakeTB{name: "TestFetch/empty_response"}

	if got := TestID(tb); got != "TestFetch-empty_response" {
		t.Errorf("TestID() = %q, want %q", got, "TestFetch-empty_response")
	}
}

func TestDefaultPath(t *testing.T) {
	tb := &fakeTB{name: "TestFetch"}
	cfg := Config{Dir: "testdata/golden"}

	want := filepath.Join("testdata", "golden", "TestFetch.json")
	if got := DefaultPath(tb, cfg); got != want {
		t.Errorf("DefaultPath() = %q, want %q", got, want)
	}
}

func TestBegin_ObligationFailsAtTeardown(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("GOLDFILE_DIR", dir)
	t.Setenv("GOLDFILE_ALLOW_EXTERNAL", "true")
	t.Setenv("GOLDFILE_UPDATE", "true")

	tb := &fakeTB{name: "TestNeverSaves"}

	s := Begin(tb)
	if s == nil {
		t.Fatalf("Begin() returned nil, fatals = %v", tb.fatals)
	}
	if s.Source() != SourceExternal {
		t.Fatalf("Source() = %q, want %q", s.Source(), SourceExternal)
	}

	tb.runCleanups()

	if len(tb.errors) != 1 {
		t.Fatalf("teardown errors = %v, want exactly one obligation failure", tb.errors)
	}
	if !strings.Contains(tb.errors[0], "TestNeverSaves.json") {
		t.Errorf("obligation failure %q missing fixture path", tb.errors[0])
	}
}

func TestBegin_SavedSessionPassesTeardown(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("GOLDFILE_DIR", dir)
	t.Setenv("GOLDFILE_ALLOW_EXTERNAL", "true")
	t.Setenv("GOLDFILE_UPDATE", "true")

	tb := &fakeTB{name: "TestSaves"}

	s := Begin(tb)
	if s == nil {
		t.Fatalf("Begin() returned nil, fatals = %v", tb.fatals)
	}

	if err := s.Save(map[string]string{"k": "v"}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	tb.runCleanups()

	if len(tb.errors) != 0 {
		t.Errorf("teardown errors = %v, want none", tb.errors)
	}

	if _, err := os.Stat(filepath.Join(dir, "TestSaves.json")); err != nil {
		t.Errorf("recorded fixture missing: %v", err)
	}
}

func TestBegin_ContradictoryConfigStopsTest(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("GOLDFILE_DIR", dir)
	t.Setenv("GOLDFILE_ALLOW_EXTERNAL", "false")
	t.Setenv("GOLDFILE_UPDATE", "true")

	tb := &fakeTB{name: "TestMisconfigured"}

	if s := Begin(tb); s != nil {
		t.Fatalf("Begin() = %v, want nil on misconfiguration", s)
	}
	if len(tb.fatals) != 1 {
		t.Fatalf("fatals = %v, want exactly one", tb.fatals)
	}
	if !strings.Contains(tb.fatals[0], "update=true") {
		t.Errorf("fatal %q missing flag combination", tb.fatals[0])
	}
}

// Begin accepts *testing.T directly.
func TestBegin_WithTestingT(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("GOLDFILE_DIR", dir)
	t.Setenv("GOLDFILE_ALLOW_EXTERNAL", "true")
	t.Setenv("GOLDFILE_UPDATE", "false")

	s := Begin(t)
	if s.Source() != SourceExternal {
		t.Fatalf("Source() = %q, want %q", s.Source(), SourceExternal)
	}

	// Not updating, so Save is a no-op and teardown has nothing to report.
	if err := s.Save(map[string]string{"ignored": "yes"}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
}
