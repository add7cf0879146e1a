package cli

import (
	"path/filepath"
	"testing"
)

func TestVerifyFixture(t *testing.T) {
	dir := t.TempDir()

	good := writeFixture(t, dir, "good.json", `{"name":"June","age":1}`)
	bad := writeFixture(t, dir, "bad.json", `{"name": "June",`)

	if err := verifyFixture(good, nil); err != nil {
		t.Errorf("verifyFixture(good) error = %v", err)
	}
	if err := verifyFixture(bad, nil); err == nil {
		t.Error("verifyFixture(bad) expected error")
	}
}

func TestVerifyFixture_WithSchema(t *testing.T) {
	dir := t.TempDir()

	schemaPath := writeFixture(t, dir, "schema.json", `{
  "type": "object",
  "required": ["name"],
  "properties": {
    "name": {"type": "string"},
    "age": {"type": "integer"}
  }
}`)

	schema, err := compileSchema(schemaPath)
	if err != nil {
		t.Fatalf("compileSchema() error = %v", err)
	}

	valid := writeFixture(t, dir, "valid.json", `{"name":"June","age":1}`)
	invalid := writeFixture(t, dir, "invalid.json", `{"age":"one"}`)

	if err := verifyFixture(valid, schema); err != nil {
		t.Errorf("verifyFixture(valid) error = %v", err)
	}
	if err := verifyFixture(invalid, schema); err == nil {
		t.Error("verifyFixture(invalid) expected schema violation")
	}
}

func TestCompileSchema_Missing(t *testing.T) {
	if _, err := compileSchema(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("compileSchema() expected error for missing schema")
	}
}
