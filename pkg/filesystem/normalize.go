package filesystem

import (
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// expandTilde performs home directory expansion on paths of the form ~,
// ~/subpath, ~user, and ~user/subpath. On Windows, backslashes are also
// accepted as separators. Other paths are returned unmodified.
func expandTilde(path string) (string, error) {
	// Only process relevant paths.
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}

	// Split off the user portion at the first platform path separator. Path
	// separators are always single-byte, so we can scan bytes directly.
	username, subpath := path[1:], ""
	for i := 1; i < len(path); i++ {
		if os.IsPathSeparator(path[i]) {
			username, subpath = path[1:i], path[i+1:]
			break
		}
	}

	// Resolve the home directory, using the current user if no user is named.
	var home string
	if username == "" {
		h, err := os.UserHomeDir()
		if err != nil {
			return "", errors.Wrap(err, "unable to compute path to home directory")
		}
		home = h
	} else {
		u, err := user.Lookup(username)
		if err != nil {
			return "", errors.Wrap(err, "unable to lookup user")
		}
		home = u.HomeDir
	}

	// Compute the full path.
	return filepath.Join(home, subpath), nil
}

// Normalize normalizes a path, expanding home directory tildes, converting it
// to an absolute path, and cleaning the result.
func Normalize(path string) (string, error) {
	// Expand any leading tilde.
	path, err := expandTilde(path)
	if err != nil {
		return "", errors.Wrap(err, "unable to perform tilde expansion")
	}

	// Convert to an absolute path. This will also invoke filepath.Clean.
	if path, err = filepath.Abs(path); err != nil {
		return "", errors.Wrap(err, "unable to compute absolute path")
	}

	// Success.
	return path, nil
}

// Parent returns the parent of a cleaned absolute path. If the path is a
// filesystem root (and thus has no parent), then an empty string is returned.
func Parent(path string) string {
	if parent := filepath.Dir(path); parent != path {
		return parent
	}
	return ""
}
