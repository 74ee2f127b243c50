package snapshot

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/mutagen-io/treediff/pkg/filesystem"
	"github.com/mutagen-io/treediff/pkg/identifier"
	"github.com/mutagen-io/treediff/pkg/logging"
)

// ErrRootNotDirectory indicates that a scan was requested for a path that
// doesn't refer to a directory.
var ErrRootNotDirectory = errors.New("root is not a directory")

// ScanError is the error type returned by Scan. It records the path at which
// the scan failed.
type ScanError struct {
	// Path is the path that couldn't be processed.
	Path string
	// Err is the underlying error.
	Err error
}

// Error implements error.Error.
func (e *ScanError) Error() string {
	return fmt.Sprintf("unable to scan %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *ScanError) Unwrap() error {
	return e.Err
}

// scanner provides recursive scanning infrastructure.
type scanner struct {
	// logger is the scan logger.
	logger *logging.Logger
	// directories is the number of directories scanned so far.
	directories uint64
	// files is the number of non-directory entries scanned so far.
	files uint64
}

// explore builds the node for the entry at the specified path, recursing into
// directory contents. Symbolic links are followed. Any failure aborts the scan.
func (s *scanner) explore(path string, metadata *filesystem.Metadata) (*Node, error) {
	// Create the node.
	node := &Node{
		Name:        filepath.Base(path),
		Directory:   metadata.IsDirectory(),
		Fingerprint: NewFingerprint(metadata),
	}

	// Non-directory entries have no contents.
	if !node.Directory {
		s.files++
		return node, nil
	}
	s.directories++

	// Read content names.
	s.logger.Tracef("Exploring %s", path)
	names, err := filesystem.DirectoryContentNames(path)
	if err != nil {
		return nil, &ScanError{Path: path, Err: err}
	}

	// Explore contents. An entry that disappears between listing and querying
	// metadata is reported as a failure.
	if len(names) > 0 {
		node.Contents = make(map[string]*Node, len(names))
	}
	for _, name := range names {
		contentPath := filepath.Join(path, name)
		contentMetadata, err := filesystem.Stat(contentPath)
		if err != nil {
			return nil, &ScanError{Path: contentPath, Err: err}
		}
		content, err := s.explore(contentPath, contentMetadata)
		if err != nil {
			return nil, err
		}
		node.Contents[name] = content
	}

	// Success.
	return node, nil
}

// Scan creates a snapshot of the directory at the specified path. Relative
// paths are resolved against the working directory. Every entry beneath the
// root is included and symbolic links are followed, so broken links cause the
// scan to fail. The scan performs no retries and returns no partial results.
// Failures are reported as *ScanError values.
func Scan(path string, logger *logging.Logger) (*Tree, error) {
	// Convert the path to a clean absolute path.
	absolute, err := filepath.Abs(path)
	if err != nil {
		return nil, &ScanError{Path: path, Err: err}
	}
	path = absolute

	// Verify that the root is a directory.
	metadata, err := filesystem.Stat(path)
	if err != nil {
		return nil, &ScanError{Path: path, Err: err}
	} else if !metadata.IsDirectory() {
		return nil, &ScanError{Path: path, Err: ErrRootNotDirectory}
	}

	// Generate a snapshot identifier.
	snapshotIdentifier, err := identifier.New(identifier.PrefixSnapshot)
	if err != nil {
		return nil, fmt.Errorf("unable to generate snapshot identifier: %w", err)
	}

	// Perform the scan.
	s := &scanner{logger: logger}
	start := time.Now()
	root, err := s.explore(path, metadata)
	if err != nil {
		return nil, err
	}
	logger.Debugf("Scanned %s in %s (%d directories, %d files)",
		path, time.Since(start), s.directories, s.files,
	)

	// Success.
	return &Tree{
		Identifier: snapshotIdentifier,
		RootParent: filesystem.Parent(path),
		Root:       root,
	}, nil
}
