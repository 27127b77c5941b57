package dfa

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/projectdiscovery/rexgen/internal/grapheme"
)

func clusters(strs ...string) []grapheme.Cluster {
	out := make([]grapheme.Cluster, len(strs))
	for i, s := range strs {
		out[i] = grapheme.Segment(s)
	}
	return out
}

func TestBuildTrieSharesCommonPrefix(t *testing.T) {
	d := BuildTrie(clusters("ab", "ac", "ad"))
	require.Len(t, d.Start.Transitions(), 1, "shared 'a' prefix collapses to one edge")
}

func TestMinimizeMergesEquivalentStates(t *testing.T) {
	// "ab" and "cb" reach equivalent accepting tails and should merge.
	trie := BuildTrie(clusters("ab", "cb"))
	min := Minimize(trie)
	require.Len(t, min.States, 3, "start + shared-b state + accepting state")
}

func TestMinimizeIdempotent(t *testing.T) {
	trie := BuildTrie(clusters("foo", "bar", "baz", "foobar"))
	once := Minimize(trie)
	twice := Minimize(once)
	require.Equal(t, len(once.States), len(twice.States))
}

func TestAcceptsEmptyInput(t *testing.T) {
	d := BuildTrie(clusters(""))
	require.True(t, d.Start.Accepting)
	require.Empty(t, d.Start.Transitions())
}
