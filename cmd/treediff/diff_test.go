package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"github.com/mutagen-io/treediff/pkg/snapshot"
)

func init() {
	// Disable colorization so that output can be compared directly.
	color.NoColor = true
}

// TestChangeLine tests human-readable change formatting.
func TestChangeLine(t *testing.T) {
	root := filepath.FromSlash("/root")
	testCases := []struct {
		change   snapshot.Change
		expected string
	}{
		{snapshot.Change{Path: filepath.Join(root, "a"), Kind: snapshot.ChangeKindAdd}, "+ " + filepath.Join(root, "a")},
		{snapshot.Change{Path: filepath.Join(root, "b"), Kind: snapshot.ChangeKindDelete}, "- " + filepath.Join(root, "b")},
		{snapshot.Change{Path: filepath.Join(root, "c"), Kind: snapshot.ChangeKindModify}, "~ " + filepath.Join(root, "c")},
		{
			snapshot.Change{Path: filepath.Join(root, "d"), Kind: snapshot.ChangeKindAdd, Directory: true},
			"+ " + filepath.Join(root, "d") + string(os.PathSeparator),
		},
	}

	// Process test cases.
	for _, testCase := range testCases {
		if line := changeLine(testCase.change); line != testCase.expected {
			t.Errorf("change line mismatch for %v: %q != %q", testCase.change, line, testCase.expected)
		}
	}
}

// TestPrintChangesEmpty tests that an empty change set is reported
// explicitly.
func TestPrintChangesEmpty(t *testing.T) {
	buffer := &bytes.Buffer{}
	printChanges(buffer, nil)
	if buffer.String() != "No changes\n" {
		t.Error("unexpected output for empty change set:", buffer.String())
	}
}

// TestPrintChanges tests that one line is printed per change, in order.
func TestPrintChanges(t *testing.T) {
	changes := []snapshot.Change{
		{Path: "x", Kind: snapshot.ChangeKindDelete, Directory: true},
		{Path: "y", Kind: snapshot.ChangeKindAdd},
	}
	buffer := &bytes.Buffer{}
	printChanges(buffer, changes)
	lines := strings.Split(strings.TrimSuffix(buffer.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatal("unexpected line count:", len(lines))
	}
	if lines[0] != "- x"+string(os.PathSeparator) {
		t.Error("unexpected first line:", lines[0])
	}
	if lines[1] != "+ y" {
		t.Error("unexpected second line:", lines[1])
	}
}

// TestWaitForRescanInterval tests that waiting with an interval returns once
// the interval elapses.
func TestWaitForRescanInterval(t *testing.T) {
	start := time.Now()
	if err := waitForRescan(10 * time.Millisecond); err != nil {
		t.Fatal("unable to wait for rescan:", err)
	}
	if time.Since(start) < 10*time.Millisecond {
		t.Error("wait returned before interval elapsed")
	}
}

// TestPrintSummary tests snapshot summary output.
func TestPrintSummary(t *testing.T) {
	// Scan a small directory.
	directory := t.TempDir()
	if err := os.WriteFile(filepath.Join(directory, "file"), make([]byte, 2048), 0600); err != nil {
		t.Fatal("unable to create file:", err)
	}
	if err := os.Mkdir(filepath.Join(directory, "sub"), 0700); err != nil {
		t.Fatal("unable to create directory:", err)
	}
	tree, err := snapshot.Scan(directory, nil)
	if err != nil {
		t.Fatal("unable to scan directory:", err)
	}

	// Print the summary and verify its content.
	buffer := &bytes.Buffer{}
	printSummary(buffer, tree, time.Second)
	output := buffer.String()
	for _, expected := range []string{
		"Snapshot: " + tree.Identifier + "\n",
		"Directories: 2\n",
		"Files: 1\n",
		"Total size: 2.0 kB\n",
		"Scan time: 1s\n",
	} {
		if !strings.Contains(output, expected) {
			t.Errorf("summary missing %q:\n%s", expected, output)
		}
	}
}
