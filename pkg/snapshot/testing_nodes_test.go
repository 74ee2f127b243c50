package snapshot

import (
	"path/filepath"
)

// testingParent is the root parent used for synthetic test snapshots.
var testingParent = filepath.FromSlash("/parent")

// testingFileID is a counter used to assign unique file IDs to test nodes.
var testingFileID uint64

// testingFingerprint creates a fingerprint with a unique file ID and the
// specified modification time and size.
func testingFingerprint(modificationTime uint32, size uint64) Fingerprint {
	testingFileID++
	return Fingerprint{
		ChangeTime:       Timestamp{Seconds: modificationTime},
		ModificationTime: Timestamp{Seconds: modificationTime},
		DeviceID:         1,
		FileID:           testingFileID,
		Size:             size,
	}
}

// testingFile creates a file node.
func testingFile(name string, modificationTime uint32, size uint64) *Node {
	return &Node{
		Name:        name,
		Fingerprint: testingFingerprint(modificationTime, size),
	}
}

// testingDirectory creates a directory node with the specified contents.
func testingDirectory(name string, modificationTime uint32, contents ...*Node) *Node {
	node := &Node{
		Name:        name,
		Directory:   true,
		Fingerprint: testingFingerprint(modificationTime, 4096),
	}
	if len(contents) > 0 {
		node.Contents = make(map[string]*Node, len(contents))
		for _, content := range contents {
			node.Contents[content.Name] = content
		}
	}
	return node
}

// withFingerprint returns a shallow copy of a node with the fingerprint of
// another node, simulating an entry whose metadata is unchanged.
func withFingerprint(node, source *Node) *Node {
	result := *node
	result.Fingerprint = source.Fingerprint
	return &result
}

// testingTree wraps a root node in a snapshot rooted in testingParent.
func testingTree(root *Node) *Tree {
	return &Tree{RootParent: testingParent, Root: root}
}

// testingPath computes the absolute path for a slash-separated path relative
// to testingParent.
func testingPath(path string) string {
	return filepath.Join(testingParent, filepath.FromSlash(path))
}

// testingChangesEqual determines whether or not two change lists are equal,
// including their order.
func testingChangesEqual(first, second []Change) bool {
	if len(first) != len(second) {
		return false
	}
	for i, change := range first {
		if change != second[i] {
			return false
		}
	}
	return true
}
