package random

import (
	"bytes"
	"testing"
)

// TestNew tests New.
func TestNew(t *testing.T) {
	// Generate two values.
	first, err := New(CollisionResistantLength)
	if err != nil {
		t.Fatal("unable to create random data:", err)
	}
	second, err := New(CollisionResistantLength)
	if err != nil {
		t.Fatal("unable to create random data:", err)
	}

	// Verify lengths and distinctness.
	if len(first) != CollisionResistantLength {
		t.Error("random data did not have expected length:", len(first), "!=", CollisionResistantLength)
	}
	if bytes.Equal(first, second) {
		t.Error("successive random values are identical")
	}
}
