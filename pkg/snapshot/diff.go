package snapshot

import (
	"fmt"
	"path/filepath"
)

// DiffMode controls how the differ treats directories whose own fingerprints
// are unchanged.
type DiffMode uint8

const (
	// DiffModeShortCircuit treats a directory whose fingerprint is unchanged
	// as entirely unchanged and doesn't examine its contents. This is fast,
	// but many filesystems only update a directory's times when its immediate
	// contents are added, removed, or renamed, so modifications deeper in the
	// hierarchy can go undetected.
	DiffModeShortCircuit DiffMode = iota
	// DiffModeExhaustive always examines the contents of directories present
	// in both snapshots.
	DiffModeExhaustive
)

// String returns a human-readable representation of the diff mode.
func (m DiffMode) String() string {
	switch m {
	case DiffModeShortCircuit:
		return "short-circuit"
	case DiffModeExhaustive:
		return "exhaustive"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.MarshalText.
func (m DiffMode) MarshalText() ([]byte, error) {
	switch m {
	case DiffModeShortCircuit, DiffModeExhaustive:
		return []byte(m.String()), nil
	default:
		return nil, fmt.Errorf("unknown diff mode: %d", m)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.UnmarshalText.
func (m *DiffMode) UnmarshalText(textBytes []byte) error {
	switch text := string(textBytes); text {
	case "short-circuit":
		*m = DiffModeShortCircuit
	case "exhaustive":
		*m = DiffModeExhaustive
	default:
		return fmt.Errorf("unknown diff mode specification: %s", text)
	}
	return nil
}

// differ provides recursive diffing infrastructure.
type differ struct {
	// mode is the diff mode.
	mode DiffMode
	// changes is the list of changes being tracked by the diff.
	changes []Change
}

// diff compares two directory nodes with the same name located at the
// specified path and records the changes that transform older into newer.
func (d *differ) diff(path string, older, newer *Node) {
	// Both nodes must be same-named directories.
	if older.Name != newer.Name {
		panic(fmt.Sprintf("diff of differently named nodes: %q != %q", older.Name, newer.Name))
	} else if !older.Directory || !newer.Directory {
		panic("diff of non-directory node")
	}

	// If the directory itself is unchanged, assume that its contents are too.
	if d.mode == DiffModeShortCircuit && older.Fingerprint == newer.Fingerprint {
		return
	}

	// Track which of the newer contents have been visited. The map is local
	// to this level of the recursion.
	visited := make(map[string]bool, len(newer.Contents))
	for name := range newer.Contents {
		visited[name] = false
	}

	// Process the older contents. Names are visited in sorted order so that
	// results are reproducible.
	for _, name := range older.sortedContentNames() {
		olderContent := older.Contents[name]
		contentPath := filepath.Join(path, name)
		newerContent, ok := newer.Contents[name]
		if !ok {
			d.changes = append(d.changes, Change{contentPath, ChangeKindDelete, olderContent.Directory})
			continue
		}
		visited[name] = true
		if olderContent.Directory && newerContent.Directory {
			d.diff(contentPath, olderContent, newerContent)
		} else if olderContent.Directory != newerContent.Directory {
			d.changes = append(d.changes,
				Change{contentPath, ChangeKindDelete, olderContent.Directory},
				Change{contentPath, ChangeKindAdd, newerContent.Directory},
			)
		} else if olderContent.Fingerprint != newerContent.Fingerprint {
			d.changes = append(d.changes, Change{contentPath, ChangeKindModify, false})
		}
	}

	// Any newer contents that weren't visited are new. Their subtrees are new
	// as a whole, so there's no need to recurse.
	for _, name := range newer.sortedContentNames() {
		if !visited[name] {
			d.changes = append(d.changes, Change{
				filepath.Join(path, name),
				ChangeKindAdd,
				newer.Contents[name].Directory,
			})
		}
	}
}

// DiffWithMode computes the list of changes that transform older into newer
// using the specified mode. Changes from deletions, modifications, and
// recursion at each directory level precede that level's additions; callers
// needing a total order should use SortChanges. It panics if the snapshots
// don't share the same root parent and root name, if either root isn't a
// directory, or if the mode is unknown, since those indicate a misuse rather
// than a runtime failure.
func DiffWithMode(older, newer *Tree, mode DiffMode) []Change {
	// Verify that the mode is known.
	if mode != DiffModeShortCircuit && mode != DiffModeExhaustive {
		panic(fmt.Sprintf("unknown diff mode: %d", mode))
	}

	// Verify that the snapshots share the same root.
	if older.RootParent != newer.RootParent {
		panic(fmt.Sprintf("diff of snapshots with different root parents: %q != %q",
			older.RootParent, newer.RootParent,
		))
	}

	// Perform the diff.
	d := &differ{mode: mode}
	d.diff(older.RootPath(), older.Root, newer.Root)

	// Done.
	return d.changes
}

// Diff computes the list of changes that transform older into newer, treating
// directories with unchanged fingerprints as unchanged. See DiffWithMode.
func Diff(older, newer *Tree) []Change {
	return DiffWithMode(older, newer, DiffModeShortCircuit)
}
