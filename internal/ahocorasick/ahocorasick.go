// Package ahocorasick implements a byte-oriented, fully-determinized
// Aho-Corasick automaton: a multi-pattern string-matching automaton that
// reports, in a single linear pass over the input, every indexed pattern
// that occurs (including overlapping occurrences).
//
// Unlike the classic trie-plus-failure-link formulation (see the
// suffix-link walk in a rune-based trie matcher), the automaton built here
// precomputes a dense goto table: every state has exactly 256 outgoing
// transitions, so a single indexed load advances the automaton by one byte
// with no failure-chain walking at match time. This trades build-time work
// and memory for branch-predictable, cache-friendly scanning, which is the
// whole point of using Aho-Corasick for the Prefix and Suffix glob
// strategies: the scan window is tiny but it runs on every candidate path.
package ahocorasick

// Match reports one occurrence of a pattern within a haystack.
type Match struct {
	// Pattern is the index of the matched pattern, in the order it was
	// added to the Builder.
	Pattern int
	Start   int
	End     int
}

// Automaton is an immutable, fully-compiled Aho-Corasick automaton. It is
// safe for concurrent use by multiple goroutines.
type Automaton struct {
	trans      [][256]int32
	outputs    [][]int32
	patternLen []int32
}

// EachMatch scans haystack once, calling yield for every occurrence of
// every indexed pattern, including overlapping ones. Scanning stops early
// if yield returns false.
func (a *Automaton) EachMatch(haystack []byte, yield func(Match) bool) {
	if len(a.trans) == 0 {
		return
	}
	state := int32(0)
	for i := 0; i < len(haystack); i++ {
		state = a.trans[state][haystack[i]]
		for _, p := range a.outputs[state] {
			m := Match{
				Pattern: int(p),
				Start:   i + 1 - int(a.patternLen[p]),
				End:     i + 1,
			}
			if !yield(m) {
				return
			}
		}
	}
}

// IsMatch reports whether any indexed pattern occurs anywhere in haystack.
func (a *Automaton) IsMatch(haystack []byte) bool {
	found := false
	a.EachMatch(haystack, func(Match) bool {
		found = true
		return false
	})
	return found
}

// Longest returns the length, in bytes, of the longest indexed pattern.
func (a *Automaton) Longest() int {
	longest := 0
	for _, l := range a.patternLen {
		if int(l) > longest {
			longest = int(l)
		}
	}
	return longest
}

// Builder accumulates patterns before compiling them into an Automaton.
type Builder struct {
	patterns [][]byte
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// AddPattern appends a pattern and returns its index, which Match.Pattern
// will report for occurrences of it.
func (b *Builder) AddPattern(p []byte) int {
	cp := make([]byte, len(p))
	copy(cp, p)
	b.patterns = append(b.patterns, cp)
	return len(b.patterns) - 1
}

// trieNode is a node of the intermediate trie built before determinization.
type trieNode struct {
	children [256]int32 // -1 if absent
	output   []int32    // pattern indices terminating exactly at this node
}

func newTrieNode() trieNode {
	n := trieNode{}
	for c := range n.children {
		n.children[c] = -1
	}
	return n
}

// Build compiles the accumulated patterns into a dense Automaton. Building
// never fails; the error return exists for parity with other compiled-
// resource constructors in this module family.
func (b *Builder) Build() (*Automaton, error) {
	a := &Automaton{
		patternLen: make([]int32, len(b.patterns)),
	}
	for i, p := range b.patterns {
		a.patternLen[i] = int32(len(p))
	}
	if len(b.patterns) == 0 {
		return a, nil
	}

	// Phase 1: build the trie.
	trie := []trieNode{newTrieNode()}
	for pi, p := range b.patterns {
		cur := int32(0)
		for _, c := range p {
			next := trie[cur].children[c]
			if next == -1 {
				trie = append(trie, newTrieNode())
				next = int32(len(trie) - 1)
				trie[cur].children[c] = next
			}
			cur = next
		}
		trie[cur].output = append(trie[cur].output, int32(pi))
	}

	// Phase 2: BFS over the trie to compute fail links and the dense goto
	// table. fail[0] is unused (root has no proper suffix).
	n := len(trie)
	fail := make([]int32, n)
	a.trans = make([][256]int32, n)
	a.outputs = make([][]int32, n)

	queue := make([]int32, 0, n)
	for c := 0; c < 256; c++ {
		if child := trie[0].children[c]; child != -1 {
			a.trans[0][c] = child
			fail[child] = 0
			queue = append(queue, child)
		} else {
			a.trans[0][c] = 0
		}
	}
	a.outputs[0] = append([]int32{}, trie[0].output...)

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		// Outputs inherit everything reachable via the failure chain;
		// since fail[u] is processed before u in BFS order, its merged
		// output list is already final.
		if len(trie[u].output) > 0 || len(a.outputs[fail[u]]) > 0 {
			merged := make([]int32, 0, len(trie[u].output)+len(a.outputs[fail[u]]))
			merged = append(merged, trie[u].output...)
			merged = append(merged, a.outputs[fail[u]]...)
			a.outputs[u] = merged
		}
		for c := 0; c < 256; c++ {
			v := trie[u].children[c]
			if v != -1 {
				fail[v] = a.trans[fail[u]][c]
				a.trans[u][c] = v
				queue = append(queue, v)
			} else {
				a.trans[u][c] = a.trans[fail[u]][c]
			}
		}
	}

	return a, nil
}
