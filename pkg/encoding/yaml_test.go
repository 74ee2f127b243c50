package encoding

import (
	"os"
	"path/filepath"
	"testing"
)

// testMessageYAML is a test structure to use for encoding tests using YAML.
type testMessageYAML struct {
	Section struct {
		Name string `yaml:"name"`
		Age  uint   `yaml:"age"`
	} `yaml:"section"`
}

// writeTestFile writes data to a file in a temporary directory and returns its
// path.
func writeTestFile(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.yml")
	if err := os.WriteFile(path, []byte(data), 0600); err != nil {
		t.Fatal("unable to write test file:", err)
	}
	return path
}

// TestLoadAndUnmarshalYAML tests that loading and unmarshaling YAML data
// succeeds.
func TestLoadAndUnmarshalYAML(t *testing.T) {
	path := writeTestFile(t, "section:\n  name: \"Abraham\"\n  age: 56\n")

	// Attempt to load and unmarshal.
	value := &testMessageYAML{}
	if err := LoadAndUnmarshalYAML(path, value); err != nil {
		t.Fatal("LoadAndUnmarshalYAML failed:", err)
	}

	// Verify values.
	if value.Section.Name != "Abraham" {
		t.Error("test message name mismatch:", value.Section.Name, "!= Abraham")
	}
	if value.Section.Age != 56 {
		t.Error("test message age mismatch:", value.Section.Age, "!= 56")
	}
}

// TestLoadAndUnmarshalYAMLUnknownField tests that unknown fields are rejected.
func TestLoadAndUnmarshalYAMLUnknownField(t *testing.T) {
	path := writeTestFile(t, "section:\n  name: \"Abraham\"\n  height: 193\n")
	if err := LoadAndUnmarshalYAML(path, &testMessageYAML{}); err == nil {
		t.Error("unknown field accepted")
	}
}

// TestLoadAndUnmarshalYAMLEmpty tests that an empty document is accepted and
// leaves the value untouched.
func TestLoadAndUnmarshalYAMLEmpty(t *testing.T) {
	path := writeTestFile(t, "")
	value := &testMessageYAML{}
	value.Section.Name = "unchanged"
	if err := LoadAndUnmarshalYAML(path, value); err != nil {
		t.Fatal("LoadAndUnmarshalYAML failed on empty document:", err)
	} else if value.Section.Name != "unchanged" {
		t.Error("empty document modified value")
	}
}
