package snapshot

import (
	"testing"
)

// TestChangeKindText tests change kind text encoding and rejection of unknown
// values.
func TestChangeKindText(t *testing.T) {
	// Set up test cases.
	testCases := []struct {
		text     string
		expected ChangeKind
	}{
		{"add", ChangeKindAdd},
		{"delete", ChangeKindDelete},
		{"modify", ChangeKindModify},
	}

	// Process test cases.
	for _, testCase := range testCases {
		var kind ChangeKind
		if err := kind.UnmarshalText([]byte(testCase.text)); err != nil {
			t.Errorf("unable to unmarshal %q: %v", testCase.text, err)
		} else if kind != testCase.expected {
			t.Errorf("unmarshaled kind mismatch for %q: %v != %v", testCase.text, kind, testCase.expected)
		} else if text, err := kind.MarshalText(); err != nil {
			t.Errorf("unable to marshal %v: %v", kind, err)
		} else if string(text) != testCase.text {
			t.Errorf("marshaled text mismatch: %s != %s", text, testCase.text)
		}
	}

	// Verify that unknown values are rejected.
	var kind ChangeKind
	if err := kind.UnmarshalText([]byte("rename")); err == nil {
		t.Error("unknown change kind specification accepted")
	}
	if _, err := ChangeKind(42).MarshalText(); err == nil {
		t.Error("unknown change kind marshaled")
	}
}

// TestChangeString tests Change.String.
func TestChangeString(t *testing.T) {
	if s := (Change{Path: "/a/b", Kind: ChangeKindModify}).String(); s != "Modify: /a/b" {
		t.Error("unexpected file change string:", s)
	}
	if s := (Change{Path: "/a/c", Kind: ChangeKindAdd, Directory: true}).String(); s != "Add: /a/c" {
		t.Error("unexpected directory change string:", s)
	}
}

// TestSortChanges tests that SortChanges orders by path and places deletions
// before additions at the same path.
func TestSortChanges(t *testing.T) {
	// Create an unordered change list.
	changes := []Change{
		{Path: "/r/g.dat", Kind: ChangeKindAdd},
		{Path: "/r/d", Kind: ChangeKindAdd},
		{Path: "/r/a.dat", Kind: ChangeKindModify},
		{Path: "/r/d", Kind: ChangeKindDelete, Directory: true},
		{Path: "/r/c/e.dat", Kind: ChangeKindDelete},
	}

	// Sort and verify.
	SortChanges(changes)
	expected := []Change{
		{Path: "/r/a.dat", Kind: ChangeKindModify},
		{Path: "/r/c/e.dat", Kind: ChangeKindDelete},
		{Path: "/r/d", Kind: ChangeKindDelete, Directory: true},
		{Path: "/r/d", Kind: ChangeKindAdd},
		{Path: "/r/g.dat", Kind: ChangeKindAdd},
	}
	if !testingChangesEqual(changes, expected) {
		t.Errorf("sorted changes mismatch: %v != %v", changes, expected)
	}
}
