package globset

import "sort"

// Builder accumulates compiled Globs and produces a GlobSet.
//
// A Builder is not safe for concurrent use; a GlobSet built by it is.
type Builder struct {
	globs  []*Glob
	limits Limits
}

// NewBuilder returns an empty Builder with DefaultLimits.
func NewBuilder() *Builder {
	return &Builder{limits: DefaultLimits()}
}

// Add appends a compiled Glob to the set under construction.
func (b *Builder) Add(g *Glob) *Builder {
	b.globs = append(b.globs, g)
	return b
}

// WithLimits overrides the resource limits applied to every regex compiled
// during Build.
func (b *Builder) WithLimits(l Limits) *Builder {
	b.limits = l
	return b
}

// Build indexes every added Glob into the strategy its classification
// names and returns the resulting GlobSet. The global index of each glob, used
// in Matches results, is its position in the order Add was called.
func (b *Builder) Build() (*GlobSet, error) {
	cfg := b.limits.regexConfig()

	s := &GlobSet{
		n:                 len(b.globs),
		literal:           newLiteralStrategy(),
		basenameLiteral:   newBasenameLiteralStrategy(),
		extension:         newExtensionStrategy(),
		prefix:            newPrefixStrategy(),
		suffix:            newSuffixStrategy(),
		requiredExtension: newRequiredExtensionStrategy(),
		regex:             newRegexSet(),
	}

	for i, g := range b.globs {
		switch g.class {
		case classLiteral:
			s.literal.add(i, g.literal)
		case classBasenameLiteral:
			s.basenameLiteral.add(i, g.literal)
		case classExtension:
			s.extension.add(i, g.ext)
		case classPrefix:
			s.prefix.add(i, g.prefix)
		case classSuffix:
			s.suffix.add(i, g.suffix)
			if g.suffixIsComponent {
				// A suffix that is itself a complete path component (no
				// embedded '/') is also satisfied by basename equality
				// alone, so it gets a cheap auxiliary entry here in
				// addition to its Suffix entry (spec §3, §4.3, §4.6).
				s.basenameLiteral.add(i, g.suffix[1:])
			} else {
				// A multi-component suffix ("/a/foo" from "**/a/foo") also
				// matches the path that is exactly the suffix without its
				// leading '/' ("a/foo"), which the Suffix entry cannot see.
				s.literal.add(i, g.suffix[1:])
			}
		case classRequiredExtension:
			if err := s.requiredExtension.add(i, g.ext, g.regex, cfg); err != nil {
				if rerr, ok := err.(*RegexCompileError); ok {
					rerr.Pattern = g.original
				}
				return nil, err
			}
		default: // classRegex
			if err := s.regex.add(i, g.regex, cfg); err != nil {
				if rerr, ok := err.(*RegexCompileError); ok {
					rerr.Pattern = g.original
				}
				return nil, err
			}
		}
	}

	if err := s.prefix.build(); err != nil {
		return nil, err
	}
	if err := s.suffix.build(); err != nil {
		return nil, err
	}

	return s, nil
}

// GlobSet is a compiled, immutable collection of globs matched together in
// one pass per candidate (spec §2–§4). It dispatches each candidate
// through the seven match strategies in a fixed order, deduplicating and
// sorting the resulting pattern indices (spec §4.9).
//
// A GlobSet is safe for concurrent use by multiple goroutines.
type GlobSet struct {
	n int

	literal           *literalStrategy
	basenameLiteral   *basenameLiteralStrategy
	extension         *extensionStrategy
	prefix            *prefixStrategy
	suffix            *suffixStrategy
	requiredExtension *requiredExtensionStrategy
	regex             *regexSet
}

// Len returns the number of globs in the set.
func (s *GlobSet) Len() int { return s.n }

// IsEmpty reports whether the set contains no globs.
func (s *GlobSet) IsEmpty() bool { return s.n == 0 }

// IsMatch reports whether path satisfies any glob in the set. It stops as
// soon as one strategy finds a match, trying strategies in the fixed
// order Literal, BasenameLiteral, Extension, Prefix, Suffix,
// RequiredExtension, Regex.
func (s *GlobSet) IsMatch(path string) bool {
	return s.IsMatchCandidate(NewCandidate(path))
}

// IsMatchCandidate is IsMatch for a pre-built Candidate, avoiding
// re-normalizing path when testing the same path against multiple
// GlobSets.
func (s *GlobSet) IsMatchCandidate(c *Candidate) bool {
	if s.n == 0 {
		return false
	}
	return s.literal.isMatch(c) ||
		s.basenameLiteral.isMatch(c) ||
		s.extension.isMatch(c) ||
		s.prefix.isMatch(c) ||
		s.suffix.isMatch(c) ||
		s.requiredExtension.isMatch(c) ||
		s.regex.isMatch(c.path)
}

// Matches returns the sorted, deduplicated indices (in Builder.Add order)
// of every glob in the set that path satisfies.
func (s *GlobSet) Matches(path string) []int {
	return s.MatchesCandidate(NewCandidate(path))
}

// MatchesCandidate is Matches for a pre-built Candidate.
func (s *GlobSet) MatchesCandidate(c *Candidate) []int {
	return s.MatchesCandidateInto(c, nil)
}

// MatchesInto is Matches, appending results to out instead of allocating a
// fresh slice. out is reset to length zero before use; its capacity is
// reused.
func (s *GlobSet) MatchesInto(path string, out []int) []int {
	return s.MatchesCandidateInto(NewCandidate(path), out)
}

// MatchesCandidateInto is MatchesCandidate, appending results to out.
func (s *GlobSet) MatchesCandidateInto(c *Candidate, out []int) []int {
	out = out[:0]
	if s.n == 0 {
		return out
	}

	out = s.literal.matchesInto(c, out)
	out = s.basenameLiteral.matchesInto(c, out)
	out = s.extension.matchesInto(c, out)
	out = s.prefix.matchesInto(c, out)
	out = s.suffix.matchesInto(c, out)
	out = s.requiredExtension.matchesInto(c, out)
	out = s.regex.matchesInto(c.path, out)

	sort.Ints(out)
	return dedupSorted(out)
}

// dedupSorted removes adjacent duplicates from a sorted slice in place.
func dedupSorted(xs []int) []int {
	if len(xs) < 2 {
		return xs
	}
	j := 0
	for i := 1; i < len(xs); i++ {
		if xs[i] != xs[j] {
			j++
			xs[j] = xs[i]
		}
	}
	return xs[:j+1]
}
