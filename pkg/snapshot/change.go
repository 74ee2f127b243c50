package snapshot

import (
	"fmt"
	"sort"
)

// ChangeKind identifies the type of a change.
type ChangeKind uint8

const (
	// ChangeKindAdd indicates that an entry was created.
	ChangeKindAdd ChangeKind = iota
	// ChangeKindDelete indicates that an entry was removed.
	ChangeKindDelete
	// ChangeKindModify indicates that a file's metadata changed. It is never
	// used for directories.
	ChangeKindModify
)

// String returns a human-readable representation of the change kind.
func (k ChangeKind) String() string {
	switch k {
	case ChangeKindAdd:
		return "Add"
	case ChangeKindDelete:
		return "Delete"
	case ChangeKindModify:
		return "Modify"
	default:
		return "Unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.MarshalText.
func (k ChangeKind) MarshalText() ([]byte, error) {
	switch k {
	case ChangeKindAdd:
		return []byte("add"), nil
	case ChangeKindDelete:
		return []byte("delete"), nil
	case ChangeKindModify:
		return []byte("modify"), nil
	default:
		return nil, fmt.Errorf("unknown change kind: %d", k)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.UnmarshalText.
func (k *ChangeKind) UnmarshalText(textBytes []byte) error {
	switch text := string(textBytes); text {
	case "add":
		*k = ChangeKindAdd
	case "delete":
		*k = ChangeKindDelete
	case "modify":
		*k = ChangeKindModify
	default:
		return fmt.Errorf("unknown change kind specification: %s", text)
	}
	return nil
}

// sortRank returns the position of the change kind when sorting changes at the
// same path. Deletions come first so that a type change reads as a removal
// followed by a creation.
func (k ChangeKind) sortRank() int {
	switch k {
	case ChangeKindDelete:
		return 0
	case ChangeKindAdd:
		return 1
	default:
		return 2
	}
}

// Change records a single difference between two snapshots.
type Change struct {
	// Path is the absolute path of the affected entry.
	Path string `json:"path"`
	// Kind is the type of change.
	Kind ChangeKind `json:"kind"`
	// Directory indicates whether or not the affected entry is a directory.
	// For deletions it describes the old entry and for additions the new one.
	Directory bool `json:"directory"`
}

// String returns a human-readable representation of the change in the form
// "Kind: path". The directory flag isn't included.
func (c Change) String() string {
	return fmt.Sprintf("%s: %s", c.Kind, c.Path)
}

// SortChanges sorts changes by path and then by kind.
func SortChanges(changes []Change) {
	sort.SliceStable(changes, func(i, j int) bool {
		if changes[i].Path != changes[j].Path {
			return changes[i].Path < changes[j].Path
		}
		return changes[i].Kind.sortRank() < changes[j].Kind.sortRank()
	})
}
