//go:build !windows

package filesystem

import (
	"golang.org/x/sys/unix"
)

// extractChangeTime is a convenience function for extracting the change time
// specification from a Stat_t structure. It's necessary since not all POSIX
// platforms use the same struct field name for this value.
func extractChangeTime(metadata *unix.Stat_t) unix.Timespec {
	return metadata.Ctim
}

// extractModificationTime is a convenience function for extracting the
// modification time specification from a Stat_t structure.
func extractModificationTime(metadata *unix.Stat_t) unix.Timespec {
	return metadata.Mtim
}
