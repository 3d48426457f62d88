// Package globset provides cross-platform glob and glob-set matching.
//
// Glob set matching is the process of matching one or more glob patterns
// against a single candidate path simultaneously, and reporting every glob
// that matched. Patterns are classified into one of seven specialized match
// strategies (literal, basename literal, extension, prefix, suffix,
// required-extension-plus-regex, and full regex) so that matching a
// candidate against a set of thousands of patterns costs a handful of hash
// lookups and a pair of Aho-Corasick scans rather than thousands of regex
// evaluations.
//
// Basic usage:
//
//	b := globset.NewBuilder()
//	g1, _ := globset.Compile("*.rs")
//	g2, _ := globset.Compile("src/lib.rs")
//	g3, _ := globset.Compile("src/**/*.rs")
//	b.Add(g1).Add(g2).Add(g3)
//	set, err := b.Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(set.Matches("src/lib.rs")) // [1 2]
//
// Matching is synchronous and allocation-free on the hot path when the
// caller reuses a *Candidate and an output buffer via MatchesCandidateInto.
package globset
