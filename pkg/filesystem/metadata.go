package filesystem

import (
	"os"
)

// Timespec is a filesystem timestamp split into seconds and nanoseconds, as
// reported by the platform's stat implementation.
type Timespec struct {
	// Seconds is the number of seconds since the Unix epoch.
	Seconds int64
	// Nanoseconds is the sub-second component of the timestamp.
	Nanoseconds int64
}

// Metadata encodes information about a filesystem entry.
type Metadata struct {
	// Name is the base name of the filesystem entry.
	Name string
	// Mode is the mode of the filesystem entry.
	Mode os.FileMode
	// Size is the size of the filesystem entry in bytes.
	Size uint64
	// ChangeTime is the inode change time of the filesystem entry. On Windows
	// this is the closest equivalent exposed by the platform.
	ChangeTime Timespec
	// ModificationTime is the modification time of the filesystem entry.
	ModificationTime Timespec
	// DeviceID is the device ID of the filesystem on which the entry resides.
	// On POSIX systems, this is the value of the st_dev field of stat_t. On
	// Windows it is always 0.
	DeviceID uint64
	// FileID is the file ID for the filesystem entry. On POSIX systems, this
	// is the inode number. On Windows it is always 0.
	FileID uint64
}

// IsDirectory indicates whether or not the metadata describes a directory.
func (m *Metadata) IsDirectory() bool {
	return m.Mode.IsDir()
}
