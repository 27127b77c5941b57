package convert

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/projectdiscovery/rexgen/internal/ast"
	"github.com/projectdiscovery/rexgen/internal/dfa"
	"github.com/projectdiscovery/rexgen/internal/grapheme"
)

func build(strs ...string) *dfa.DFA {
	clusters := make([]grapheme.Cluster, len(strs))
	for i, s := range strs {
		clusters[i] = grapheme.Segment(s)
	}
	return dfa.Minimize(dfa.BuildTrie(clusters))
}

func TestConvertSingleLiteral(t *testing.T) {
	e := Convert(build("abc"))
	require.Equal(t, "abc", ast.Print(e, ast.PrintOptions{}))
}

func TestConvertAlternation(t *testing.T) {
	e := Convert(build("a", "b"))
	got := ast.Print(e, ast.PrintOptions{})
	require.Equal(t, "a|b", got)
}

func TestConvertSharedPrefix(t *testing.T) {
	e := Convert(build("foo", "foobar"))
	got := ast.Print(e, ast.PrintOptions{})
	require.Contains(t, got, "foo")
}

func TestConvertEmptyDFA(t *testing.T) {
	e := Convert(&dfa.DFA{})
	require.Equal(t, "", ast.Print(e, ast.PrintOptions{}))
}
