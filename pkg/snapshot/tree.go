package snapshot

import (
	"path/filepath"
	"sort"
)

// Tree is an immutable snapshot of a directory hierarchy at one point in time.
type Tree struct {
	// Identifier is a unique identifier assigned to the snapshot when it was
	// scanned.
	Identifier string
	// RootParent is the absolute path of the root's parent directory. It is
	// empty if the root has no parent.
	RootParent string
	// Root is the snapshot root. It is always a directory for scanned trees.
	Root *Node
}

// RootPath returns the absolute path of the snapshot root.
func (t *Tree) RootPath() string {
	return filepath.Join(t.RootParent, t.Root.Name)
}

// Files returns the absolute paths of all non-directory entries in the
// snapshot in sorted order.
func (t *Tree) Files() []string {
	files := t.Root.files(t.RootPath(), nil)
	sort.Strings(files)
	return files
}

// Statistics computes counts for the snapshot.
func (t *Tree) Statistics() Statistics {
	var statistics Statistics
	t.Root.accumulate(&statistics)
	return statistics
}
