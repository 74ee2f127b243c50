// Package filesystem provides the filesystem access used by snapshot scans:
// metadata queries that capture change and modification times alongside
// device and file identifiers, unfiltered directory listings, and path
// normalization.
package filesystem
