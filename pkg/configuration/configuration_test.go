package configuration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mutagen-io/treediff/pkg/logging"
	"github.com/mutagen-io/treediff/pkg/snapshot"
)

// writeConfiguration writes configuration data to a temporary file and
// returns its path.
func writeConfiguration(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "treediff.yml")
	if err := os.WriteFile(path, []byte(data), 0600); err != nil {
		t.Fatal("unable to write configuration:", err)
	}
	return path
}

// TestLoadNonExistent tests that loading a non-existent file yields the
// defaults.
func TestLoadNonExistent(t *testing.T) {
	configuration, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	if err != nil {
		t.Fatal("unable to load configuration:", err)
	}
	if configuration.Logging.Level != logging.LevelWarn {
		t.Error("unexpected default log level:", configuration.Logging.Level)
	}
	if configuration.Diff.Mode != snapshot.DiffModeShortCircuit {
		t.Error("unexpected default diff mode:", configuration.Diff.Mode)
	}
	if !configuration.Diff.Sort {
		t.Error("sorting not enabled by default")
	}
}

// TestLoad tests that values are loaded and unspecified values retain their
// defaults.
func TestLoad(t *testing.T) {
	path := writeConfiguration(t, `
logging:
  level: debug
diff:
  mode: exhaustive
report:
  ignore:
    - "**/*.tmp"
    - "!keep.tmp"
`)

	// Load the configuration.
	configuration, err := Load(path)
	if err != nil {
		t.Fatal("unable to load configuration:", err)
	}

	// Verify values.
	if configuration.Logging.Level != logging.LevelDebug {
		t.Error("log level mismatch:", configuration.Logging.Level)
	}
	if configuration.Diff.Mode != snapshot.DiffModeExhaustive {
		t.Error("diff mode mismatch:", configuration.Diff.Mode)
	}
	if !configuration.Diff.Sort {
		t.Error("unspecified sort setting did not retain default")
	}
	if len(configuration.Report.Ignore) != 2 {
		t.Error("unexpected number of ignore patterns:", len(configuration.Report.Ignore))
	}
}

// TestLoadInvalid tests that invalid configurations are rejected.
func TestLoadInvalid(t *testing.T) {
	testCases := []string{
		"logging:\n  level: verbose\n",
		"diff:\n  mode: lazy\n",
		"diff:\n  recursive: true\n",
		"report:\n  ignore:\n    - \"[\"\n",
		"diff: [",
	}
	for _, data := range testCases {
		if _, err := Load(writeConfiguration(t, data)); err == nil {
			t.Errorf("invalid configuration accepted:\n%s", data)
		}
	}
}

// TestPathOverride tests that the configuration path can be overridden by an
// environment variable.
func TestPathOverride(t *testing.T) {
	t.Setenv(PathEnvironmentVariable, "/custom/treediff.yml")
	if path, err := Path(); err != nil {
		t.Fatal("unable to compute configuration path:", err)
	} else if path != "/custom/treediff.yml" {
		t.Error("configuration path override ignored:", path)
	}
}

// TestPathDefault tests that the default configuration path is non-empty.
func TestPathDefault(t *testing.T) {
	t.Setenv(PathEnvironmentVariable, "")
	if path, err := Path(); err != nil {
		t.Fatal("unable to compute configuration path:", err)
	} else if filepath.Base(path) != ".treediff.yml" {
		t.Error("unexpected configuration file name:", path)
	}
}
