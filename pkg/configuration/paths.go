package configuration

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

const (
	// PathEnvironmentVariable is the environment variable that overrides the
	// configuration file path.
	PathEnvironmentVariable = "TREEDIFF_CONFIGURATION_PATH"
	// fileName is the name of the configuration file within the user's home
	// directory.
	fileName = ".treediff.yml"
)

// Path returns the path of the YAML-based configuration file. It does not
// verify that the file exists.
func Path() (string, error) {
	// Check for an override.
	if path := os.Getenv(PathEnvironmentVariable); path != "" {
		return path, nil
	}

	// Compute the path to the user's home directory.
	homeDirectoryPath, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "unable to compute path to home directory")
	}

	// Success.
	return filepath.Join(homeDirectoryPath, fileName), nil
}
