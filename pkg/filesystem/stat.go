package filesystem

import (
	"path/filepath"

	"github.com/pkg/errors"
)

// Stat reads metadata for the filesystem entry at the specified path. Symbolic
// links are followed, so the metadata describes the link target and a broken
// link results in an error.
func Stat(path string) (*Metadata, error) {
	// Query metadata.
	metadata, err := stat(path)
	if err != nil {
		return nil, errors.Wrap(err, "unable to query metadata")
	}

	// Set the name.
	metadata.Name = filepath.Base(path)

	// Success.
	return metadata, nil
}
