package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture %s: %v", path, err)
	}
	return path
}

func TestCollectFixtures(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "TestB.json", `{"b":2}`)
	writeFixture(t, dir, "TestA.json", `{"a":1}`)

	// Subdirectories are not fixtures.
	if err := os.Mkdir(filepath.Join(dir, "archive"), 0o755); err != nil {
		t.Fatalf("creating subdirectory: %v", err)
	}

	fixtures, err := collectFixtures(dir)
	if err != nil {
		t.Fatalf("collectFixtures() error = %v", err)
	}

	if len(fixtures) != 2 {
		t.Fatalf("collectFixtures() returned %d fixtures, want 2", len(fixtures))
	}
	if fixtures[0].name != "TestA.json" || fixtures[1].name != "TestB.json" {
		t.Errorf("fixtures not sorted by name: %q, %q", fixtures[0].name, fixtures[1].name)
	}
	if fixtures[0].size != int64(len(`{"a":1}`)) {
		t.Errorf("fixture size = %d, want %d", fixtures[0].size, len(`{"a":1}`))
	}
}

func TestCollectFixtures_MissingDir(t *testing.T) {
	fixtures, err := collectFixtures(filepath.Join(t.TempDir(), "never-created"))
	if err != nil {
		t.Fatalf("collectFixtures() error = %v", err)
	}
	if len(fixtures) != 0 {
		t.Errorf("collectFixtures() = %d fixtures for missing dir, want 0", len(fixtures))
	}
}
