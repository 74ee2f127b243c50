package filesystem

import (
	"os"
	"time"

	"github.com/mutagen-io/extstat"
)

// timespecFromTime converts a time value to a Timespec.
func timespecFromTime(value time.Time) Timespec {
	return Timespec{
		Seconds:     value.Unix(),
		Nanoseconds: int64(value.Nanosecond()),
	}
}

// stat is the platform-specific implementation of Stat. Windows doesn't expose
// device and file identifiers through cheap queries, so those fields are left
// at 0 and change detection relies on timestamps and size.
func stat(path string) (*Metadata, error) {
	// Query basic metadata. This follows symbolic links.
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	// Query extended timestamps.
	extended, err := extstat.NewFromFileName(path)
	if err != nil {
		return nil, err
	}

	// Success.
	return &Metadata{
		Mode:             info.Mode(),
		Size:             uint64(info.Size()),
		ChangeTime:       timespecFromTime(extended.ChangeTime),
		ModificationTime: timespecFromTime(info.ModTime()),
	}, nil
}
