package snapshot

import (
	"github.com/mutagen-io/treediff/pkg/filesystem"
)

// lower32 returns the low 32 bits of a value.
func lower32(value int64) uint32 {
	return uint32(value & 0xFFFFFFFF)
}

// Timestamp is a truncated filesystem timestamp. Only the low 32 bits of the
// seconds and nanoseconds components are retained, so timestamps that differ
// only in their high-order bits compare equal.
type Timestamp struct {
	// Seconds is the low 32 bits of the seconds component.
	Seconds uint32
	// Nanoseconds is the low 32 bits of the nanoseconds component.
	Nanoseconds uint32
}

// newTimestamp creates a truncated timestamp from a filesystem timestamp.
func newTimestamp(value filesystem.Timespec) Timestamp {
	return Timestamp{
		Seconds:     lower32(value.Seconds),
		Nanoseconds: lower32(value.Nanoseconds),
	}
}

// Fingerprint is a compact summary of a filesystem entry's identity and
// modification state. Two fingerprints are equal if and only if all of their
// fields are equal, and equality is treated as a proxy for the entry being
// unchanged. The layout mirrors the stat data cached by Git index entries.
type Fingerprint struct {
	// ChangeTime is the truncated inode change time.
	ChangeTime Timestamp
	// ModificationTime is the truncated content modification time.
	ModificationTime Timestamp
	// DeviceID is the identifier of the device on which the entry resides.
	DeviceID uint64
	// FileID is the inode number of the entry.
	FileID uint64
	// Size is the size of the entry in bytes, as reported by the filesystem.
	Size uint64
}

// NewFingerprint computes the fingerprint for filesystem metadata. It performs
// no filesystem access.
func NewFingerprint(metadata *filesystem.Metadata) Fingerprint {
	return Fingerprint{
		ChangeTime:       newTimestamp(metadata.ChangeTime),
		ModificationTime: newTimestamp(metadata.ModificationTime),
		DeviceID:         metadata.DeviceID,
		FileID:           metadata.FileID,
		Size:             metadata.Size,
	}
}

// Equal determines whether or not two fingerprints are equal.
func (f Fingerprint) Equal(other Fingerprint) bool {
	return f == other
}
