package feature

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/projectdiscovery/rexgen/internal/ast"
	"github.com/projectdiscovery/rexgen/internal/grapheme"
)

func TestRewriteDigitClass(t *testing.T) {
	cc := ast.CharClass{Chars: []rune("0123456789")}
	got := Rewrite(cc, []Class{ClassDigit})
	sh, ok := got.(ast.Shorthand)
	require.True(t, ok)
	require.Equal(t, ast.ShorthandDigit, sh.Kind)
}

func TestRewritePartialClassStillBroadensToShorthand(t *testing.T) {
	// Every member of the class is a digit, even though not every digit
	// appears in it: \d broadens the language, it doesn't need to exactly
	// reproduce the original class's member set (spec.md §8 scenario 6).
	cc := ast.CharClass{Chars: []rune("0123")}
	got := Rewrite(cc, []Class{ClassDigit})
	sh, ok := got.(ast.Shorthand)
	require.True(t, ok)
	require.Equal(t, ast.ShorthandDigit, sh.Kind)
}

func TestRewriteLeavesMixedClassAlone(t *testing.T) {
	cc := ast.CharClass{Chars: []rune("0a")}
	got := Rewrite(cc, []Class{ClassDigit})
	_, ok := got.(ast.Shorthand)
	require.False(t, ok, "a class with a non-digit member must not become \\d")
}

func TestRewritePriorityPrefersDigitOverWord(t *testing.T) {
	cc := ast.CharClass{Chars: []rune("0123456789")}
	got := Rewrite(cc, []Class{ClassWord, ClassDigit}).(ast.Shorthand)
	require.Equal(t, ast.ShorthandDigit, got.Kind)
}

func TestRewriteSingleCodePointLiteral(t *testing.T) {
	lit := ast.Literal{Cluster: grapheme.Cluster{grapheme.New([]rune("7"))}}
	got := Rewrite(lit, []Class{ClassDigit})
	sh, ok := got.(ast.Shorthand)
	require.True(t, ok)
	require.Equal(t, ast.ShorthandDigit, sh.Kind)
}

func TestRewriteSplitsMultiGraphemeLiteral(t *testing.T) {
	lit := ast.Literal{Cluster: grapheme.Cluster{
		grapheme.New([]rune("1")),
		grapheme.New([]rune("2")),
	}}
	got := Rewrite(lit, []Class{ClassDigit})
	concat, ok := got.(ast.Concatenation)
	require.True(t, ok)
	left, ok := concat.Left.(ast.Shorthand)
	require.True(t, ok)
	require.Equal(t, ast.ShorthandDigit, left.Kind)
	right, ok := concat.Right.(ast.Shorthand)
	require.True(t, ok)
	require.Equal(t, ast.ShorthandDigit, right.Kind)
}
