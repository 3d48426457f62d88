package globset

import (
	"github.com/coregx/coregex"
	"github.com/coregx/coregex/meta"
)

// regexSet is the last-resort Regex strategy (spec §4.8): every glob that
// no specialized strategy could classify falls back to its own compiled
// regex, verified independently against the candidate's full path.
//
// coregex does not expose a native multi-pattern "regex set" type (unlike
// the single-pattern Regex it compiles each glob into), so regexSet holds
// one compiled *coregex.Regex per member and evaluates them in sequence.
// This mirrors how the teacher's own meta package composes many single
// patterns behind one dispatcher rather than fusing them into one DFA.
type regexSet struct {
	owners  []int // owners[i] = global index of regexes[i]
	regexes []*coregex.Regex
}

func newRegexSet() *regexSet {
	return &regexSet{}
}

func (s *regexSet) add(globalIndex int, pattern string, cfg meta.Config) error {
	re, err := coregex.CompileWithConfig(pattern, cfg)
	if err != nil {
		return &RegexCompileError{Pattern: pattern, Regex: pattern, Err: err}
	}
	s.owners = append(s.owners, globalIndex)
	s.regexes = append(s.regexes, re)
	return nil
}

func (s *regexSet) isMatch(path []byte) bool {
	for _, re := range s.regexes {
		if re.Match(path) {
			return true
		}
	}
	return false
}

func (s *regexSet) matchesInto(path []byte, out []int) []int {
	for i, re := range s.regexes {
		if re.Match(path) {
			out = append(out, s.owners[i])
		}
	}
	return out
}
