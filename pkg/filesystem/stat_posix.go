//go:build !windows

package filesystem

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
)

// statRetryingOnEINTR is a wrapper around the stat system call that retries on
// EINTR errors and returns on the first successful call or non-EINTR error.
func statRetryingOnEINTR(path string, metadata *unix.Stat_t) error {
	for {
		err := unix.Stat(path, metadata)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		return err
	}
}

// stat is the platform-specific implementation of Stat.
func stat(path string) (*Metadata, error) {
	// Query metadata.
	var metadata unix.Stat_t
	if err := statRetryingOnEINTR(path, &metadata); err != nil {
		return nil, &os.PathError{Op: "stat", Path: path, Err: err}
	}

	// Extract timestamps.
	changeTime := extractChangeTime(&metadata)
	modificationTime := extractModificationTime(&metadata)

	// Success.
	return &Metadata{
		Mode: modeFromRaw(uint32(metadata.Mode)),
		Size: uint64(metadata.Size),
		ChangeTime: Timespec{
			Seconds:     int64(changeTime.Sec),
			Nanoseconds: int64(changeTime.Nsec),
		},
		ModificationTime: Timespec{
			Seconds:     int64(modificationTime.Sec),
			Nanoseconds: int64(modificationTime.Nsec),
		},
		DeviceID: uint64(metadata.Dev),
		FileID:   uint64(metadata.Ino),
	}, nil
}

// modeFromRaw converts a raw st_mode value to an os.FileMode, preserving the
// type bits and permission bits.
func modeFromRaw(raw uint32) os.FileMode {
	// Convert permission bits.
	mode := os.FileMode(raw & 0777)

	// Convert type bits.
	switch raw & unix.S_IFMT {
	case unix.S_IFDIR:
		mode |= os.ModeDir
	case unix.S_IFLNK:
		mode |= os.ModeSymlink
	case unix.S_IFIFO:
		mode |= os.ModeNamedPipe
	case unix.S_IFSOCK:
		mode |= os.ModeSocket
	case unix.S_IFCHR:
		mode |= os.ModeDevice | os.ModeCharDevice
	case unix.S_IFBLK:
		mode |= os.ModeDevice
	}

	// Done.
	return mode
}
