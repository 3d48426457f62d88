package globset

import (
	"errors"
	"fmt"
)

// Glob-compiler error kinds. These are sentinel values so callers can use
// errors.Is to distinguish them; ParseError wraps one of these with the
// pattern and position that triggered it.
var (
	// ErrInvalidRecursive indicates an invalid use of "**": it must occupy
	// an entire path component (adjacent to a path separator, or the
	// beginning/end of the pattern).
	ErrInvalidRecursive = errors.New("globset: invalid use of **; must be its own path component")

	// ErrUnclosedClass indicates a character class ("[abc]") with no
	// closing ']'.
	ErrUnclosedClass = errors.New("globset: unclosed character class; missing ']'")

	// ErrInvalidRange indicates a character range ("[a-z]") whose start is
	// lexicographically greater than its end.
	ErrInvalidRange = errors.New("globset: invalid character range")

	// ErrUnopenedAlternates indicates a '}' with no matching '{'.
	ErrUnopenedAlternates = errors.New("globset: unopened alternate group; missing '{'")

	// ErrUnclosedAlternates indicates a '{' with no matching '}'.
	ErrUnclosedAlternates = errors.New("globset: unclosed alternate group; missing '}'")

	// ErrNestedAlternates indicates a '{' nested inside another
	// alternate group, e.g. "{{a,b},{c,d}}".
	ErrNestedAlternates = errors.New("globset: nested alternate groups are not allowed")
)

// ParseError reports a failure to translate a glob pattern into its
// classification and anchored regex.
type ParseError struct {
	Pattern string
	Pos     int
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("globset: parsing glob %q at position %d: %v", e.Pattern, e.Pos, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// RegexCompileError wraps a failure from the underlying regex engine while
// compiling the anchored regex fallback for the Regex or RequiredExtension
// strategy (spec §7's sole Build-time error kind).
type RegexCompileError struct {
	Pattern string
	Regex   string
	Err     error
}

func (e *RegexCompileError) Error() string {
	return fmt.Sprintf("globset: compiling regex for glob %q: %v", e.Pattern, e.Err)
}

func (e *RegexCompileError) Unwrap() error { return e.Err }
