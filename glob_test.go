package globset

import "testing"

func TestClassifyLiteral(t *testing.T) {
	g, err := Compile("src/lib.rs")
	if err != nil {
		t.Fatal(err)
	}
	if g.class != classLiteral || g.literal != "src/lib.rs" {
		t.Errorf("got class=%d literal=%q", g.class, g.literal)
	}
}

func TestClassifyExtensionCrossing(t *testing.T) {
	g, err := New("*.rs").LiteralSeparator(false).Build()
	if err != nil {
		t.Fatal(err)
	}
	if g.class != classExtension || g.ext != "rs" {
		t.Errorf("got class=%d ext=%q", g.class, g.ext)
	}
}

func TestClassifyRequiredExtensionNonCrossing(t *testing.T) {
	g, err := Compile("*.rs") // default LiteralSeparator(true)
	if err != nil {
		t.Fatal(err)
	}
	if g.class != classRequiredExtension || g.ext != "rs" {
		t.Errorf("got class=%d ext=%q", g.class, g.ext)
	}
}

func TestClassifyPrefix(t *testing.T) {
	g, err := Compile("src/**")
	if err != nil {
		t.Fatal(err)
	}
	if g.class != classPrefix || g.prefix != "src/" {
		t.Errorf("got class=%d prefix=%q", g.class, g.prefix)
	}
}

func TestClassifySuffix(t *testing.T) {
	g, err := Compile("**/foo")
	if err != nil {
		t.Fatal(err)
	}
	if g.class != classSuffix || g.suffix != "/foo" || !g.suffixIsComponent {
		t.Errorf("got class=%d suffix=%q component=%v", g.class, g.suffix, g.suffixIsComponent)
	}
}

func TestClassifySuffixNonComponent(t *testing.T) {
	g, err := Compile("**/a/foo")
	if err != nil {
		t.Fatal(err)
	}
	if g.class != classSuffix || g.suffix != "/a/foo" || g.suffixIsComponent {
		t.Errorf("got class=%d suffix=%q component=%v", g.class, g.suffix, g.suffixIsComponent)
	}
}

func TestClassifyRegexFallback(t *testing.T) {
	g, err := Compile("src/{foo,bar}/lib.rs")
	if err != nil {
		t.Fatal(err)
	}
	if g.class != classRegex {
		t.Errorf("got class=%d, want classRegex", g.class)
	}
}

func TestCaseInsensitiveAlwaysRegex(t *testing.T) {
	g, err := New("src/lib.rs").CaseInsensitive(true).Build()
	if err != nil {
		t.Fatal(err)
	}
	if g.class != classRegex {
		t.Errorf("got class=%d, want classRegex", g.class)
	}
}

// TestCaseInsensitiveMatchesEndToEnd exercises CaseInsensitive through a
// built GlobSet, not just classification: the glob's regex carries "(?i)"
// into coregex.CompileWithConfig, which must actually fold case at match
// time.
func TestCaseInsensitiveMatchesEndToEnd(t *testing.T) {
	g, err := New("SRC/LIB.RS").CaseInsensitive(true).Build()
	if err != nil {
		t.Fatal(err)
	}
	b := NewBuilder().Add(g)
	s, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	if !s.IsMatch("src/lib.rs") {
		t.Error("expected case-insensitive match on src/lib.rs")
	}
	if s.IsMatch("src/lib.rsx") {
		t.Error("expected no match on unrelated path")
	}
}

// TestClassifyMultiDotExtensionFallsBackToRegex guards against the
// interior-dot bug: Candidate.ext is only ever the suffix after the last
// '.', so a glob whose literal extension itself contains a '.' (e.g.
// "tar.gz") must never be classified as Extension/RequiredExtension — the
// strategy's ext-equality key would never agree with Candidate.ext's
// last-dot extraction. It must fall through to classRegex instead.
func TestClassifyMultiDotExtensionFallsBackToRegex(t *testing.T) {
	g, err := New("*.tar.gz").LiteralSeparator(false).Build()
	if err != nil {
		t.Fatal(err)
	}
	if g.class != classRegex {
		t.Errorf("got class=%d, want classRegex (crossing separators)", g.class)
	}

	g2, err := Compile("*.tar.gz") // default LiteralSeparator(true)
	if err != nil {
		t.Fatal(err)
	}
	if g2.class != classRegex {
		t.Errorf("got class=%d, want classRegex (non-crossing)", g2.class)
	}
}

func TestTranslateDoubleStarWholeComponentOnly(t *testing.T) {
	_, err := Compile("foo**bar")
	if err == nil {
		t.Fatal("expected error for ** not spanning a whole component")
	}
	var perr *ParseError
	if !asParseError(err, &perr) || perr.Err != ErrInvalidRecursive {
		t.Errorf("got err=%v, want ErrInvalidRecursive", err)
	}
}

func TestTranslateUnclosedClass(t *testing.T) {
	_, err := Compile("[abc")
	var perr *ParseError
	if !asParseError(err, &perr) || perr.Err != ErrUnclosedClass {
		t.Errorf("got err=%v, want ErrUnclosedClass", err)
	}
}

func TestTranslateInvalidRange(t *testing.T) {
	_, err := Compile("[z-a]")
	var perr *ParseError
	if !asParseError(err, &perr) || perr.Err != ErrInvalidRange {
		t.Errorf("got err=%v, want ErrInvalidRange", err)
	}
}

func TestTranslateNestedAlternates(t *testing.T) {
	_, err := Compile("{a,{b,c}}")
	var perr *ParseError
	if !asParseError(err, &perr) || perr.Err != ErrNestedAlternates {
		t.Errorf("got err=%v, want ErrNestedAlternates", err)
	}
}

func TestTranslateUnclosedAlternates(t *testing.T) {
	_, err := Compile("{a,b")
	var perr *ParseError
	if !asParseError(err, &perr) || perr.Err != ErrUnclosedAlternates {
		t.Errorf("got err=%v, want ErrUnclosedAlternates", err)
	}
}

func TestTranslateUnopenedAlternates(t *testing.T) {
	_, err := Compile("a,b}")
	var perr *ParseError
	if !asParseError(err, &perr) || perr.Err != ErrUnopenedAlternates {
		t.Errorf("got err=%v, want ErrUnopenedAlternates", err)
	}
}

func asParseError(err error, target **ParseError) bool {
	pe, ok := err.(*ParseError)
	if !ok {
		return false
	}
	*target = pe
	return true
}

func TestMustCompilePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	MustCompile("[abc")
}
