package globset

import (
	"sort"
	"testing"
)

func TestPrefixStrategy(t *testing.T) {
	s := newPrefixStrategy()
	s.add(0, "foo/")
	s.add(1, "foo/bar/")
	if err := s.build(); err != nil {
		t.Fatal(err)
	}

	if !s.isMatch(NewCandidate("foo/baz")) {
		t.Fatal("expected match on shorter prefix")
	}

	got := s.matchesInto(NewCandidate("foo/bar/baz"), nil)
	sort.Ints(got)
	if len(got) != 2 || got[0] != 0 || got[1] != 1 {
		t.Errorf("matchesInto = %v, want [0 1] (both mutual prefixes match)", got)
	}

	if s.isMatch(NewCandidate("quux/foo/baz")) {
		t.Fatal("expected no match when prefix does not begin at offset 0")
	}
}

func TestPrefixStrategyEmpty(t *testing.T) {
	s := newPrefixStrategy()
	if err := s.build(); err != nil {
		t.Fatal(err)
	}
	if s.isMatch(NewCandidate("anything")) {
		t.Fatal("empty strategy must never match")
	}
}
