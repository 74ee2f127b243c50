package configuration

import (
	"fmt"
	"os"

	"github.com/mutagen-io/treediff/pkg/encoding"
	"github.com/mutagen-io/treediff/pkg/ignore"
	"github.com/mutagen-io/treediff/pkg/logging"
	"github.com/mutagen-io/treediff/pkg/snapshot"
)

// Configuration is the YAML configuration object type.
type Configuration struct {
	// Logging is the logging configuration.
	Logging struct {
		// Level is the log level.
		Level logging.Level `yaml:"level"`
	} `yaml:"logging"`
	// Diff is the diff configuration.
	Diff struct {
		// Mode is the diff mode.
		Mode snapshot.DiffMode `yaml:"mode"`
		// Sort indicates whether or not changes should be sorted by path
		// before being reported.
		Sort bool `yaml:"sort"`
	} `yaml:"diff"`
	// Report is the change reporting configuration.
	Report struct {
		// Ignore is the list of patterns for changes to exclude from reports.
		Ignore []string `yaml:"ignore"`
	} `yaml:"report"`
}

// Default returns the default configuration.
func Default() *Configuration {
	result := &Configuration{}
	result.Logging.Level = logging.LevelWarn
	result.Diff.Mode = snapshot.DiffModeShortCircuit
	result.Diff.Sort = true
	return result
}

// EnsureValid ensures that the configuration's invariants are respected.
func (c *Configuration) EnsureValid() error {
	// A nil configuration is not valid.
	if c == nil {
		return fmt.Errorf("nil configuration")
	}

	// Validate the log level.
	if c.Logging.Level > logging.LevelTrace {
		return fmt.Errorf("invalid log level: %d", c.Logging.Level)
	}

	// Validate the diff mode.
	if _, err := c.Diff.Mode.MarshalText(); err != nil {
		return fmt.Errorf("invalid diff mode: %w", err)
	}

	// Validate ignore patterns.
	if _, err := ignore.NewIgnorer(c.Report.Ignore); err != nil {
		return fmt.Errorf("invalid ignore patterns: %w", err)
	}

	// Success.
	return nil
}

// Load attempts to load a YAML-based configuration file from the specified
// path. Values not specified in the file retain their defaults. If the file
// doesn't exist, then the default configuration is returned.
func Load(path string) (*Configuration, error) {
	// Start from the defaults.
	result := Default()

	// Attempt to load.
	if err := encoding.LoadAndUnmarshalYAML(path, result); err != nil {
		if os.IsNotExist(err) {
			return result, nil
		}
		return nil, err
	}

	// Validate the result.
	if err := result.EnsureValid(); err != nil {
		return nil, err
	}

	// Success.
	return result, nil
}
