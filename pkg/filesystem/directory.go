package filesystem

import (
	"os"

	"github.com/pkg/errors"
)

// DirectoryContentNames returns the names of the contents of the directory at
// the specified path. No filtering is performed, so hidden entries are
// included. The ordering of the names is non-deterministic.
func DirectoryContentNames(path string) ([]string, error) {
	// Open the directory and ensure its closure.
	directory, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "unable to open directory")
	}
	defer directory.Close()

	// Grab the directory content names.
	names, err := directory.Readdirnames(0)
	if err != nil {
		return nil, errors.Wrap(err, "unable to read directory contents")
	}

	// Success.
	return names, nil
}
