package globset

import "testing"

func TestRequiredExtensionStrategy(t *testing.T) {
	s := newRequiredExtensionStrategy()
	cfg := DefaultLimits().regexConfig()
	if err := s.add(0, "rs", `(?s)^src/.*\.rs$`, cfg); err != nil {
		t.Fatal(err)
	}

	if !s.isMatch(NewCandidate("src/foo.rs")) {
		t.Fatal("expected match: right extension, regex satisfied")
	}
	if s.isMatch(NewCandidate("lib/foo.rs")) {
		t.Fatal("expected no match: right extension, regex not satisfied")
	}
	if s.isMatch(NewCandidate("src/foo.c")) {
		t.Fatal("expected no match: wrong extension short-circuits before regex")
	}
	if s.isMatch(NewCandidate("src/foo")) {
		t.Fatal("expected no match: empty extension short-circuits")
	}
}

func TestRequiredExtensionCompileError(t *testing.T) {
	s := newRequiredExtensionStrategy()
	cfg := DefaultLimits().regexConfig()
	err := s.add(0, "rs", `(unterminated`, cfg)
	if err == nil {
		t.Fatal("expected a RegexCompileError")
	}
	if _, ok := err.(*RegexCompileError); !ok {
		t.Errorf("got %T, want *RegexCompileError", err)
	}
}
