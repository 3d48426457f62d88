package globset

import "github.com/coregx/globset/internal/ahocorasick"

// suffixStrategy matches candidates whose full path ends with one of a set
// of literal suffixes, each beginning with '/' (spec §4.6, patterns of the
// form "**/literal"). Like prefixStrategy, every suffix is compiled into a
// single dense Aho-Corasick automaton and end-anchored matches are found
// in one pass.
type suffixStrategy struct {
	suffixes  []string
	owners    [][]int
	automaton *ahocorasick.Automaton
	longest   int // length of the longest indexed suffix (spec §4.6)
}

func newSuffixStrategy() *suffixStrategy {
	return &suffixStrategy{}
}

func (s *suffixStrategy) add(globalIndex int, suffix string) {
	for i, p := range s.suffixes {
		if p == suffix {
			s.owners[i] = append(s.owners[i], globalIndex)
			return
		}
	}
	s.suffixes = append(s.suffixes, suffix)
	s.owners = append(s.owners, []int{globalIndex})
}

func (s *suffixStrategy) build() error {
	if len(s.suffixes) == 0 {
		return nil
	}
	b := ahocorasick.NewBuilder()
	for _, p := range s.suffixes {
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

// isMatch scans only the candidate's last min(len(path), longest) bytes
// (spec §4.6): the window is itself a suffix of the full path, so a match
// ending at the window's last byte ends at the path's last byte too.
func (s *suffixStrategy) isMatch(c *Candidate) bool {
	if s.automaton == nil {
		return false
	}
	window := c.pathSuffix(s.longest)
	n := len(window)
	found := false
	s.automaton.EachMatch(window, func(m ahocorasick.Match) bool {
		if m.End == n {
			found = true
			return false
		}
		return true
	})
	return found
}

func (s *suffixStrategy) matchesInto(c *Candidate, out []int) []int {
	if s.automaton == nil {
		return out
	}
	window := c.pathSuffix(s.longest)
	n := len(window)
	s.automaton.EachMatch(window, func(m ahocorasick.Match) bool {
		if m.End == n {
			out = append(out, s.owners[m.Pattern]...)
		}
		return true
	})
	return out
}
