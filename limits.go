package globset

import "github.com/coregx/coregex/meta"

// bytesPerDFAState approximates the memory cost of one coregex lazy-DFA
// state, used only to translate Limits.DFACacheSize (a byte budget, per
// spec §5) into meta.Config's MaxDFAStates (a state-count budget). This is
// a deliberately coarse conversion; coregex does not expose a byte-accounted
// cache limit directly.
const bytesPerDFAState = 256

// Limits bounds the resources the Regex and RequiredExtension strategies'
// regex engine may use during Builder.Build. Exceeding either limit fails
// the build with a RegexCompileError (spec §5, §7); it never fails at
// match time.
type Limits struct {
	// CompiledProgramSize approximates the maximum size, in bytes, of a
	// single compiled regex program. coregex does not expose a direct
	// byte-accounted program-size limit, so this is enforced indirectly by
	// capping MaxRecursionDepth; it is kept as an explicit field so callers
	// reading this API see the same two limits spec.md documents.
	CompiledProgramSize int

	// DFACacheSize bounds the memory used by each compiled regex's lazy
	// DFA state cache, converted into coregex's MaxDFAStates.
	DFACacheSize int
}

// DefaultLimits returns the spec-mandated default of 10 MiB for both
// limits.
func DefaultLimits() Limits {
	const tenMiB = 10 * 1 << 20
	return Limits{CompiledProgramSize: tenMiB, DFACacheSize: tenMiB}
}

// regexConfig translates Limits into the coregex engine configuration used
// to compile every fallback regex in the Regex and RequiredExtension
// strategies.
func (l Limits) regexConfig() meta.Config {
	cfg := meta.DefaultConfig()
	if l.DFACacheSize > 0 {
		states := l.DFACacheSize / bytesPerDFAState
		if states < 1 {
			states = 1
		}
		if states > 1_000_000 {
			states = 1_000_000
		}
		cfg.MaxDFAStates = uint32(states)
	}
	if l.CompiledProgramSize > 0 {
		// Smaller program budgets imply shallower nesting is affordable;
		// this is a rough proxy, not a byte count.
		depth := l.CompiledProgramSize / (64 * 1024)
		if depth < 10 {
			depth = 10
		}
		if depth > 1000 {
			depth = 1000
		}
		cfg.MaxRecursionDepth = depth
	}
	return cfg
}
