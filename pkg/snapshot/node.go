package snapshot

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// Node represents a single filesystem entry within a snapshot.
type Node struct {
	// Name is the entry's own name component.
	Name string
	// Directory indicates whether or not the entry is a directory.
	Directory bool
	// Fingerprint is the entry's metadata fingerprint, computed when the node
	// was scanned.
	Fingerprint Fingerprint
	// Contents maps content names to content nodes. It is only non-empty for
	// directories.
	Contents map[string]*Node
}

// sortedContentNames returns the names of a node's contents in sorted order.
func (n *Node) sortedContentNames() []string {
	names := make([]string, 0, len(n.Contents))
	for name := range n.Contents {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ensureValidName verifies that a content name is non-empty and doesn't
// contain path separators or refer to the current or parent directory.
func ensureValidName(name string) error {
	if name == "" {
		return errors.New("empty name")
	} else if name == "." || name == ".." {
		return errors.New("directory reference name")
	} else if strings.ContainsRune(name, '/') || strings.ContainsRune(name, filepath.Separator) {
		return errors.New("name contains path separator")
	}
	return nil
}

// EnsureValid ensures that the node's invariants are respected: non-directory
// nodes have no contents, content names are valid, and content map keys match
// the names of the nodes they reference. The node's own name isn't validated
// since root names may contain separators (e.g. "/").
func (n *Node) EnsureValid() error {
	// A nil node is not valid.
	if n == nil {
		return errors.New("nil node")
	}

	// Files can't have contents.
	if !n.Directory {
		if len(n.Contents) > 0 {
			return errors.New("non-directory node has contents")
		}
		return nil
	}

	// Validate contents.
	for name, content := range n.Contents {
		if err := ensureValidName(name); err != nil {
			return fmt.Errorf("invalid content name %q: %w", name, err)
		} else if content == nil {
			return fmt.Errorf("nil content node for %q", name)
		} else if content.Name != name {
			return fmt.Errorf("content name mismatch: %q != %q", content.Name, name)
		} else if err = content.EnsureValid(); err != nil {
			return fmt.Errorf("invalid content %q: %w", name, err)
		}
	}

	// Success.
	return nil
}

// files appends the paths of all non-directory nodes at or beneath this node,
// treating the node as located at the specified path.
func (n *Node) files(path string, result []string) []string {
	if !n.Directory {
		return append(result, path)
	}
	for name, content := range n.Contents {
		result = content.files(filepath.Join(path, name), result)
	}
	return result
}

// Statistics contains counts for a snapshot.
type Statistics struct {
	// Directories is the number of directories, including the root.
	Directories uint64
	// Files is the number of non-directory entries.
	Files uint64
	// TotalFileSize is the total size of all non-directory entries.
	TotalFileSize uint64
}

// accumulate adds the node and its contents to the statistics.
func (n *Node) accumulate(statistics *Statistics) {
	if !n.Directory {
		statistics.Files++
		statistics.TotalFileSize += n.Fingerprint.Size
		return
	}
	statistics.Directories++
	for _, content := range n.Contents {
		content.accumulate(statistics)
	}
}
