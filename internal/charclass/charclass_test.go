package charclass

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/projectdiscovery/rexgen/internal/ast"
	"github.com/projectdiscovery/rexgen/internal/grapheme"
)

func lit(s string) ast.Expr {
	return ast.Literal{Cluster: grapheme.Segment(s)}
}

func TestCollapseSingleCodePointAlternation(t *testing.T) {
	e := ast.Alt(lit("a"), lit("b"), lit("c"))
	got := Collapse(e)
	cc, ok := got.(ast.CharClass)
	require.True(t, ok)
	require.Equal(t, []rune("abc"), cc.Chars)
}

func TestCollapseLeavesMultiCharLiteralsAlone(t *testing.T) {
	e := ast.Alt(lit("ab"), lit("c"))
	got := Collapse(e)
	_, ok := got.(ast.CharClass)
	require.False(t, ok)
}

func TestCollapseRecursesIntoConcatenation(t *testing.T) {
	e := ast.Concat(ast.Alt(lit("a"), lit("b")), lit("x"))
	got := Collapse(e).(ast.Concatenation)
	_, ok := got.Left.(ast.CharClass)
	require.True(t, ok)
}

func TestCollapseSingleOptionNotAClass(t *testing.T) {
	// ast.Alt already collapses a single option down to that option itself,
	// so this never reaches Collapse as an Alternation at all.
	e := ast.Alt(lit("a"))
	require.Equal(t, lit("a"), Collapse(e))
}
