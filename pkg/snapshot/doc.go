// Package snapshot builds in-memory snapshots of directory hierarchies and
// computes the changes between two snapshots of the same root. Change
// detection relies solely on filesystem metadata (times, device, inode, and
// size) in the manner of a version control index, so file contents are never
// read.
package snapshot
