// Package ignore provides doublestar-style path patterns for excluding changes
// from reports. Patterns are evaluated in order against slash-separated paths
// relative to a snapshot root, and a pattern prefixed with '!' re-includes
// paths matched by earlier patterns. Scanning itself is never filtered.
package ignore

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pkg/errors"

	"github.com/mutagen-io/treediff/pkg/snapshot"
)

// pattern is a single parsed ignore pattern.
type pattern struct {
	// negated indicates whether or not the pattern re-includes matching
	// paths.
	negated bool
	// glob is the doublestar pattern.
	glob string
}

// newPattern parses and validates an ignore pattern.
func newPattern(specification string) (*pattern, error) {
	// If the pattern is empty, it's invalid.
	if specification == "" {
		return nil, errors.New("empty pattern")
	}

	// Check if this is a negated pattern. If so, strip off but record the
	// negation.
	negated := false
	if specification[0] == '!' {
		negated = true
		specification = specification[1:]
		if specification == "" {
			return nil, errors.New("empty negated pattern")
		}
	}

	// Strip any leading slash, since paths are always root-relative.
	specification = strings.TrimPrefix(specification, "/")

	// Validate the pattern. We have to match against a non-empty path,
	// otherwise bad pattern errors won't be detected.
	if _, err := doublestar.Match(specification, "a"); err != nil {
		return nil, errors.Wrap(err, "unable to validate pattern")
	}

	// Success.
	return &pattern{negated, specification}, nil
}

// matches determines whether or not the pattern matches the path or any of
// its parent directories, so that ignoring a directory also ignores its
// contents.
func (p *pattern) matches(path string) bool {
	for {
		// Validation ensures that Match can't fail here.
		if match, _ := doublestar.Match(p.glob, path); match {
			return true
		}
		index := strings.LastIndexByte(path, '/')
		if index < 0 {
			return false
		}
		path = path[:index]
	}
}

// Ignorer evaluates an ordered list of ignore patterns.
type Ignorer struct {
	// patterns are the parsed patterns.
	patterns []*pattern
}

// NewIgnorer creates a new ignorer from the specified patterns.
func NewIgnorer(patterns []string) (*Ignorer, error) {
	parsed := make([]*pattern, len(patterns))
	for i, p := range patterns {
		if ip, err := newPattern(p); err != nil {
			return nil, errors.Wrapf(err, "unable to parse pattern %q", p)
		} else {
			parsed[i] = ip
		}
	}
	return &Ignorer{parsed}, nil
}

// Ignored determines whether or not a slash-separated root-relative path is
// ignored. Later patterns take precedence over earlier ones.
func (i *Ignorer) Ignored(path string) bool {
	// Nothing is initially ignored.
	ignored := false

	// Run through patterns, keeping track of the ignored state as we reach more
	// specific rules.
	for _, p := range i.patterns {
		if p.matches(path) {
			ignored = !p.negated
		}
	}

	// Done.
	return ignored
}

// FilterChanges returns the changes whose paths, taken relative to root, are
// not ignored. Changes outside of root are retained. The input slice isn't
// modified.
func (i *Ignorer) FilterChanges(root string, changes []snapshot.Change) []snapshot.Change {
	// If there are no patterns, then nothing can be ignored.
	if len(i.patterns) == 0 {
		return changes
	}

	// Filter changes.
	var result []snapshot.Change
	for _, change := range changes {
		relative, err := filepath.Rel(root, change.Path)
		if err != nil || relative == ".." || strings.HasPrefix(relative, ".."+string(filepath.Separator)) {
			result = append(result, change)
			continue
		}
		if !i.Ignored(filepath.ToSlash(relative)) {
			result = append(result, change)
		}
	}

	// Done.
	return result
}
