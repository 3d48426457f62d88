package globset

import (
	"regexp"
	"strings"
)

// classification is the closed seven-way tag the core dispatches on (spec
// §3, §4.9). Dispatch is a tagged union, not open virtual dispatch: the set
// is fixed and known at compile time.
type classification int

const (
	classLiteral classification = iota
	classBasenameLiteral
	classExtension
	classPrefix
	classSuffix
	classRequiredExtension
	classRegex
)

// Glob is a compiled glob pattern: the core's input contract (spec §3). It
// carries the original pattern text for diagnostics, an anchored regex
// equivalent to the pattern, and a classification hint telling the Builder
// which strategy index should own it.
//
// Glob values are produced by Compile or GlobBuilder.Build. They are
// immutable and safe to share.
type Glob struct {
	original string
	regex    string
	class    classification

	literal           string // Literal / BasenameLiteral payload
	ext               string // Extension / RequiredExtension payload
	prefix            string // Prefix payload
	suffix            string // Suffix payload
	suffixIsComponent bool   // Suffix "component" flag (spec §3)
}

// String returns the original pattern text.
func (g *Glob) String() string { return g.original }

// Regex returns the anchored regex equivalent to the glob.
func (g *Glob) Regex() string { return g.regex }

// GlobBuilder configures and compiles a single glob pattern.
//
// The zero value has LiteralSeparator enabled: '*' and '?' do not cross
// path separators unless the pattern uses "**" (this matches spec.md's
// worked example in §8 scenario 1, where "*.c" does not match
// "src/foo.c"; see DESIGN.md for the rationale). Call LiteralSeparator(false)
// to let '*' and '?' cross separators, as in spec.md §8 scenario 2.
type GlobBuilder struct {
	pattern          string
	caseInsensitive  bool
	literalSeparator bool
	setLitSep        bool
}

// New starts building a Glob from pattern.
func New(pattern string) *GlobBuilder {
	return &GlobBuilder{pattern: pattern}
}

// CaseInsensitive enables case-insensitive matching. Case-insensitive globs
// always compile to the Regex strategy: every specialized strategy here
// compares bytes exactly, and Candidate performs no case folding (spec
// §4.1), so any other classification would silently produce wrong answers
// (spec §9's "downgrade to Regex whenever a specialized strategy would be
// incorrect").
func (b *GlobBuilder) CaseInsensitive(yes bool) *GlobBuilder {
	b.caseInsensitive = yes
	return b
}

// LiteralSeparator controls whether '*' and '?' are forbidden from matching
// the path separator. See GlobBuilder's doc comment for the default.
func (b *GlobBuilder) LiteralSeparator(yes bool) *GlobBuilder {
	b.literalSeparator = yes
	b.setLitSep = true
	return b
}

// Build compiles the configured pattern into a Glob.
func (b *GlobBuilder) Build() (*Glob, error) {
	litSep := b.literalSeparator
	if !b.setLitSep {
		litSep = true
	}
	regex, err := translate(b.pattern, litSep, b.caseInsensitive)
	if err != nil {
		return nil, err
	}
	g := &Glob{original: b.pattern, regex: regex}
	classify(g, b.pattern, litSep, b.caseInsensitive)
	return g, nil
}

// Compile parses pattern with default options (LiteralSeparator enabled,
// case-sensitive) and returns the resulting Glob.
func Compile(pattern string) (*Glob, error) {
	return New(pattern).Build()
}

// MustCompile is like Compile but panics on error.
func MustCompile(pattern string) *Glob {
	g, err := Compile(pattern)
	if err != nil {
		panic("globset: Compile(" + pattern + "): " + err.Error())
	}
	return g
}

// classify assigns g's classification and strategy payload by recognizing
// common glob shapes that a specialized index can answer without
// invoking the regex fallback. Any shape it doesn't recognize — or can't
// prove correct under the given options — classifies as Regex, which is
// always correct (spec §9): the strategies are a performance refinement,
// never a change in semantics.
func classify(g *Glob, pattern string, literalSeparator, caseInsensitive bool) {
	if caseInsensitive {
		g.class = classRegex
		return
	}

	if !hasMeta(pattern) {
		g.class = classLiteral
		g.literal = pattern
		return
	}

	// "*.EXT" with no other path components, when '*' is free to cross
	// separators: the anchored regex this compiles to is exactly "ends in
	// .EXT", which extension equality answers on its own, with no
	// directory structure to rule out (spec §4.4, §9). When '*' does NOT
	// cross separators, the same text instead means "a directory-free
	// file named *.EXT", which is a strictly narrower condition than
	// extension equality — that shape falls through to the
	// final-component check below and lands on RequiredExtension, which
	// keeps the ext pre-filter but verifies the rest with a regex.
	if !literalSeparator && !strings.Contains(pattern, "/") {
		if ext, ok := extStarShape(pattern); ok {
			g.class = classExtension
			g.ext = ext
			return
		}
	}

	// "literal/**" (component-aligned recursive suffix): Prefix on the
	// literal directory prefix, including its trailing separator.
	if strings.HasSuffix(pattern, "/**") {
		prefixPart := pattern[:len(pattern)-len("**")]
		if !hasMeta(prefixPart) {
			g.class = classPrefix
			g.prefix = prefixPart
			return
		}
	}

	// "**/literal-remainder": Suffix on "/"+remainder. If remainder has no
	// further '/', it is also a complete basename and gets an auxiliary
	// BasenameLiteral entry (spec §3, §4.3).
	if strings.HasPrefix(pattern, "**/") {
		remainder := pattern[len("**/"):]
		if !hasMeta(remainder) {
			g.class = classSuffix
			g.suffix = "/" + remainder
			g.suffixIsComponent = !strings.Contains(remainder, "/")
			return
		}
	}

	// "<literal-prefix>*.EXT" as the final component, with arbitrary
	// (possibly wildcarded) structure before it: ext equality pre-filters
	// almost every candidate before the anchored regex ever runs.
	final := pattern
	if lastSlash := strings.LastIndexByte(pattern, '/'); lastSlash != -1 {
		final = pattern[lastSlash+1:]
	}
	if ext, ok := extStarShape(final); ok {
		g.class = classRequiredExtension
		g.ext = ext
		return
	}

	g.class = classRegex
}

// hasMeta reports whether pattern contains any glob metacharacter.
func hasMeta(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{\\")
}

// extStarShape recognizes the exact shape "*" + "." + literal-extension,
// with no other metacharacters and no interior '.' or '/', and returns the
// extension. A multi-dot extension such as "tar.gz" in "*.tar.gz" is
// rejected here: Candidate.ext is only ever the suffix after the *last*
// dot (candidate.go), so a glob like "*.tar.gz" would classify to ext key
// "tar.gz" while every candidate's ext is computed as "gz" — the two
// strategies' map lookups would never agree with the glob's own anchored
// regex. Rejecting interior dots routes these patterns to classRegex,
// which is always correct (spec §9).
func extStarShape(component string) (string, bool) {
	if len(component) < 2 || component[0] != '*' {
		return "", false
	}
	rest := component[1:]
	if !strings.HasPrefix(rest, ".") {
		return "", false
	}
	ext := rest[1:]
	if ext == "" || hasMeta(ext) || strings.ContainsAny(ext, "./") {
		return "", false
	}
	return ext, true
}

// translate converts a glob pattern into an anchored regex string,
// understanding '?', '*', "**", "{a,b}" alternation, and "[abc]"/"[!abc]"
// character classes. It does not itself decide classification;
// GlobBuilder.Build uses it only to produce the correctness fallback every
// Glob carries.
func translate(pattern string, literalSeparator, caseInsensitive bool) (string, error) {
	var sb strings.Builder
	sb.WriteString("(?s)")
	if caseInsensitive {
		sb.WriteString("(?i)")
	}
	sb.WriteString("^")
	if err := translateInto(&sb, pattern, literalSeparator); err != nil {
		return "", err
	}
	sb.WriteString("$")
	return sb.String(), nil
}

// translateInto appends the (unanchored) regex translation of pattern to
// sb. It is used both for the top-level translate and, recursively, for
// each alternative inside a "{a,b}" group.
func translateInto(sb *strings.Builder, pattern string, literalSeparator bool) error {
	runes := []rune(pattern)
	n := len(runes)
	atComponentStart := true

	i := 0
	for i < n {
		r := runes[i]
		switch r {
		case '/':
			sb.WriteByte('/')
			i++
			atComponentStart = true

		case '*':
			if i+1 < n && runes[i+1] == '*' {
				after := i + 2
				isWholeComponent := after == n || runes[after] == '/'
				if !atComponentStart || !isWholeComponent {
					return &ParseError{Pattern: pattern, Pos: i, Err: ErrInvalidRecursive}
				}
				switch {
				case i == 0 && after == n:
					sb.WriteString(".*")
				case i == 0:
					sb.WriteString("(?:.*/)?")
					after++ // consume the following '/'
				case after == n:
					sb.WriteString(".*")
				default:
					sb.WriteString("(?:.*/)?")
					after++ // consume the following '/'
				}
				// A consumed '/' leaves the next rune at a component start.
				atComponentStart = after == i+3
				i = after
				continue
			}
			if literalSeparator {
				sb.WriteString("[^/]*")
			} else {
				sb.WriteString(".*")
			}
			i++
			atComponentStart = false

		case '?':
			if literalSeparator {
				sb.WriteString("[^/]")
			} else {
				sb.WriteByte('.')
			}
			i++
			atComponentStart = false

		case '[':
			j, err := translateClass(sb, pattern, runes, i)
			if err != nil {
				return err
			}
			i = j
			atComponentStart = false

		case '{':
			j, err := translateAlternation(sb, pattern, runes, i, literalSeparator)
			if err != nil {
				return err
			}
			i = j
			atComponentStart = false

		case '}':
			return &ParseError{Pattern: pattern, Pos: i, Err: ErrUnopenedAlternates}

		case '\\':
			if i+1 >= n {
				sb.WriteString(regexp.QuoteMeta(string(r)))
				i++
			} else {
				sb.WriteString(regexp.QuoteMeta(string(runes[i+1])))
				i += 2
			}
			atComponentStart = false

		default:
			sb.WriteString(regexp.QuoteMeta(string(r)))
			i++
			atComponentStart = false
		}
	}
	return nil
}

// translateClass translates a "[...]" or "[!...]" character class starting
// at runes[start]=='[' and returns the index just past the closing ']'.
func translateClass(sb *strings.Builder, pattern string, runes []rune, start int) (int, error) {
	i := start + 1
	n := len(runes)
	negate := false
	if i < n && (runes[i] == '!' || runes[i] == '^') {
		negate = true
		i++
	}
	first := i
	sb.WriteByte('[')
	if negate {
		sb.WriteByte('^')
	}
	closed := false
	for i < n {
		if runes[i] == ']' && i != first {
			closed = true
			break
		}
		c := runes[i]
		// Lookahead for an "a-z" range to validate ordering.
		if i+2 < n && runes[i+1] == '-' && runes[i+2] != ']' {
			lo, hi := c, runes[i+2]
			if lo > hi {
				return 0, &ParseError{Pattern: pattern, Pos: i, Err: ErrInvalidRange}
			}
			sb.WriteString(classEscape(lo))
			sb.WriteByte('-')
			sb.WriteString(classEscape(hi))
			i += 3
			continue
		}
		sb.WriteString(classEscape(c))
		i++
	}
	if !closed {
		return 0, &ParseError{Pattern: pattern, Pos: start, Err: ErrUnclosedClass}
	}
	sb.WriteByte(']')
	return i + 1, nil
}

// classEscape escapes a rune for safe placement inside a regex character
// class.
func classEscape(r rune) string {
	switch r {
	case '\\', ']', '^', '-':
		return "\\" + string(r)
	default:
		return string(r)
	}
}

// translateAlternation translates a "{a,b,...}" group starting at
// runes[start]=='{' and returns the index just past the closing '}'.
// Nesting is not allowed (spec: ErrNestedAlternates).
func translateAlternation(sb *strings.Builder, pattern string, runes []rune, start int, literalSeparator bool) (int, error) {
	n := len(runes)
	i := start + 1
	end := -1
	for j := i; j < n; j++ {
		switch runes[j] {
		case '{':
			return 0, &ParseError{Pattern: pattern, Pos: j, Err: ErrNestedAlternates}
		case '}':
			end = j
		}
		if end != -1 {
			break
		}
	}
	if end == -1 {
		return 0, &ParseError{Pattern: pattern, Pos: start, Err: ErrUnclosedAlternates}
	}

	body := string(runes[i:end])
	alts := strings.Split(body, ",")
	sb.WriteString("(?:")
	for idx, alt := range alts {
		if idx > 0 {
			sb.WriteByte('|')
		}
		if err := translateInto(sb, alt, literalSeparator); err != nil {
			return 0, err
		}
	}
	sb.WriteByte(')')
	return end + 1, nil
}
