package globset

import "testing"

func TestSuffixStrategy(t *testing.T) {
	s := newSuffixStrategy()
	s.add(0, "/foo.rs")
	if err := s.build(); err != nil {
		t.Fatal(err)
	}

	if !s.isMatch(NewCandidate("src/foo.rs")) {
		t.Fatal("expected match at end of path")
	}
	if s.isMatch(NewCandidate("src/foo.rs.bak")) {
		t.Fatal("expected no match when suffix is not at the very end")
	}
	if s.isMatch(NewCandidate("foo.rs")) {
		t.Fatal("suffix requires the leading separator to be present")
	}
}

func TestSuffixStrategyEmpty(t *testing.T) {
	s := newSuffixStrategy()
	if err := s.build(); err != nil {
		t.Fatal(err)
	}
	if s.isMatch(NewCandidate("anything")) {
		t.Fatal("empty strategy must never match")
	}
}
