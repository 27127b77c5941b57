// Package dfa builds a deterministic automaton from a set of input test
// cases and minimizes it with Hopcroft's partition-refinement algorithm
// (modules C and D). Transitions are labeled with grapheme.Grapheme values
// rather than bytes, so a single edge may consume an entire extended
// grapheme cluster or a repeated run of one.
package dfa

import (
	"sort"

	"github.com/projectdiscovery/rexgen/internal/grapheme"
)

// State is one node of the automaton. IDs are dense and start at 0; State 0
// is always the start state.
type State struct {
	ID         int
	Accepting  bool
	transitions map[string]*Transition // keyed by grapheme.Grapheme.Key()
}

// Transition is one labeled edge out of a state.
type Transition struct {
	Label grapheme.Grapheme
	To    *State
}

func newState(id int) *State {
	return &State{ID: id, transitions: make(map[string]*Transition)}
}

// Transitions returns the outgoing edges of s, ordered by label key for
// deterministic iteration (the converter and tests depend on stable order).
func (s *State) Transitions() []*Transition {
	out := make([]*Transition, 0, len(s.transitions))
	for _, t := range s.transitions {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label.Key() < out[j].Label.Key() })
	return out
}

func (s *State) addTransition(label grapheme.Grapheme, to *State) {
	s.transitions[label.Key()] = &Transition{Label: label, To: to}
}

func (s *State) transitionOn(key string) *Transition {
	return s.transitions[key]
}

// DFA is a deterministic automaton over grapheme.Grapheme labels.
type DFA struct {
	Start *State
	// States holds every state reachable from Start, ordered by ID.
	States []*State
}

// BuildTrie constructs the (non-minimal) trie-shaped DFA that accepts
// exactly the given clusters: one accepting path per input, sharing common
// prefixes the way a standard trie does (grounded on the teacher's
// TrieNode/insert idiom, generalized from runes to graphemes). Inputs are
// inserted longest first, equal lengths in lexicographic order, so state
// numbering does not depend on the order of clusters.
func BuildTrie(clusters []grapheme.Cluster) *DFA {
	d := &DFA{}
	root := newState(0)
	d.States = append(d.States, root)
	d.Start = root

	sorted := make([]grapheme.Cluster, len(clusters))
	copy(sorted, clusters)
	sort.SliceStable(sorted, func(i, j int) bool {
		if len(sorted[i]) != len(sorted[j]) {
			return len(sorted[i]) > len(sorted[j])
		}
		return sorted[i].Raw() < sorted[j].Raw()
	})

	for _, c := range sorted {
		node := root
		for _, g := range c {
			key := g.Key()
			tr := node.transitionOn(key)
			if tr == nil {
				next := newState(len(d.States))
				d.States = append(d.States, next)
				node.addTransition(g, next)
				node = next
			} else {
				node = tr.To
			}
		}
		node.Accepting = true
	}
	return d
}
