package globset

import (
	"bytes"
	"path/filepath"
)

// pathSeparator is the platform's native path separator. On platforms
// where it differs from '/', Candidate folds it to '/' during
// normalization; no other transformation is applied (spec §4.1: no case
// folding, no Unicode normalization, no trailing-slash stripping).
var pathSeparator = byte(filepath.Separator)

// Candidate is a prepared representation of a path being tested against a
// GlobSet: the normalized full path, its basename, and its extension.
// Constructing a Candidate is cheap but not free, so callers matching one
// path against many GlobSets should build it once and reuse it via the
// *Candidate matcher methods.
//
// A Candidate is read-only after construction and safe to share across
// goroutines.
type Candidate struct {
	path     []byte
	basename []byte
	ext      string
}

// NewCandidate prepares path for matching.
func NewCandidate(path string) *Candidate {
	b := []byte(path)
	if pathSeparator != '/' {
		for i, c := range b {
			if c == pathSeparator {
				b[i] = '/'
			}
		}
	}
	c := &Candidate{path: b}
	if i := bytes.LastIndexByte(b, '/'); i == -1 {
		c.basename = b
	} else {
		c.basename = b[i+1:]
	}
	c.ext = extensionOf(c.basename)
	return c
}

// extensionOf returns the suffix of basename beginning after the last '.'
// that is not at position 0, or "" if there is none. A leading-dot-only
// file such as ".hidden" therefore has no extension.
func extensionOf(basename []byte) string {
	i := bytes.LastIndexByte(basename, '.')
	if i <= 0 {
		return ""
	}
	return string(basename[i+1:])
}

// Path returns the normalized full path bytes.
func (c *Candidate) Path() []byte { return c.path }

// Basename returns the final path component, or an empty slice if the
// path is empty or ends in '/'.
func (c *Candidate) Basename() []byte { return c.basename }

// Ext returns the basename's extension, or "" if it has none.
func (c *Candidate) Ext() string { return c.ext }

func (c *Candidate) pathPrefix(max int) []byte {
	if len(c.path) <= max {
		return c.path
	}
	return c.path[:max]
}

func (c *Candidate) pathSuffix(max int) []byte {
	if len(c.path) <= max {
		return c.path
	}
	return c.path[len(c.path)-max:]
}
