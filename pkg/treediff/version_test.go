package treediff

import (
	"fmt"
	"strings"
	"testing"
)

// TestVersionPrefix tests that the version string starts with the numeric
// version components.
func TestVersionPrefix(t *testing.T) {
	expected := fmt.Sprintf("%d.%d.%d", VersionMajor, VersionMinor, VersionPatch)
	if !strings.HasPrefix(Version, expected) {
		t.Error("version string has unexpected prefix:", Version)
	}
	if VersionTag == "" && Version != expected {
		t.Error("untagged version string has unexpected suffix:", Version)
	}
}
