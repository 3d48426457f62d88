package globset

import "github.com/coregx/coregex/meta"

// requiredExtensionStrategy matches globs whose final path component has
// the shape "<arbitrary>*.EXT" (spec §4.7): candidates are pre-filtered by
// extension equality — rejecting the overwhelming majority of paths for
// free — and only candidates that pass the filter pay for a regex
// evaluation against the glob's full anchored pattern.
type requiredExtensionStrategy struct {
	byExt map[string]*regexSet
}

func newRequiredExtensionStrategy() *requiredExtensionStrategy {
	return &requiredExtensionStrategy{byExt: make(map[string]*regexSet)}
}

func (s *requiredExtensionStrategy) add(globalIndex int, ext, regex string, cfg meta.Config) error {
	set, ok := s.byExt[ext]
	if !ok {
		set = newRegexSet()
		s.byExt[ext] = set
	}
	return set.add(globalIndex, regex, cfg)
}

func (s *requiredExtensionStrategy) isMatch(c *Candidate) bool {
	if c.ext == "" {
		return false
	}
	set, ok := s.byExt[c.ext]
	if !ok {
		return false
	}
	return set.isMatch(c.path)
}

func (s *requiredExtensionStrategy) matchesInto(c *Candidate, out []int) []int {
	if c.ext == "" {
		return out
	}
	set, ok := s.byExt[c.ext]
	if !ok {
		return out
	}
	return set.matchesInto(c.path, out)
}
