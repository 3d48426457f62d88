package globset

import "github.com/coregx/globset/internal/ahocorasick"

// prefixStrategy matches candidates whose full path begins with one of a
// set of literal directory prefixes, each ending in '/' (spec §4.5,
// patterns of the form "literal/**"). All prefixes are compiled into a
// single dense Aho-Corasick automaton so that a candidate is tested
// against every prefix in one linear pass, rather than once per pattern.
type prefixStrategy struct {
	prefixes  []string
	owners    [][]int // owners[i] = global indices sharing prefixes[i]
	automaton *ahocorasick.Automaton
	longest   int // length of the longest indexed prefix (spec §4.5)
}

func newPrefixStrategy() *prefixStrategy {
	return &prefixStrategy{}
}

func (s *prefixStrategy) add(globalIndex int, prefix string) {
	for i, p := range s.prefixes {
		if p == prefix {
			s.owners[i] = append(s.owners[i], globalIndex)
			return
		}
	}
	s.prefixes = append(s.prefixes, prefix)
	s.owners = append(s.owners, []int{globalIndex})
}

// build finalizes the automaton after all patterns have been added. It
// must be called before isMatch/matchesInto; Builder.Build calls it once
// per GlobSet construction.
func (s *prefixStrategy) build() error {
	if len(s.prefixes) == 0 {
		return nil
	}
	b := ahocorasick.NewBuilder()
	for _, p := range s.prefixes {
		b.AddPattern([]byte(p))
	}
	a, err := b.Build()
	if err != nil {
		return err
	}
	s.automaton = a
	s.longest = a.Longest()
	return nil
}

// isMatch scans only the candidate's first min(len(path), longest) bytes
// (spec §4.5): no indexed prefix can begin a match past that window, so
// scanning further would only cost time without finding anything new.
func (s *prefixStrategy) isMatch(c *Candidate) bool {
	if s.automaton == nil {
		return false
	}
	found := false
	s.automaton.EachMatch(c.pathPrefix(s.longest), func(m ahocorasick.Match) bool {
		if m.Start == 0 {
			found = true
			return false
		}
		return true
	})
	return found
}

func (s *prefixStrategy) matchesInto(c *Candidate, out []int) []int {
	if s.automaton == nil {
		return out
	}
	s.automaton.EachMatch(c.pathPrefix(s.longest), func(m ahocorasick.Match) bool {
		if m.Start == 0 {
			out = append(out, s.owners[m.Pattern]...)
		}
		return true
	})
	return out
}
