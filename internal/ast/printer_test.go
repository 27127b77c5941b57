package ast

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/projectdiscovery/rexgen/internal/grapheme"
)

func lit(s string) Expr {
	return Literal{Cluster: grapheme.Segment(s)}
}

func TestPrintConcatenation(t *testing.T) {
	e := Concat(lit("foo"), lit("bar"))
	require.Equal(t, "foobar", Print(e, PrintOptions{}))
}

func TestPrintAlternationWrapsUnderConcatenation(t *testing.T) {
	e := Concat(lit("a"), Alt(lit("b"), lit("c")))
	require.Equal(t, "a(b|c)", Print(e, PrintOptions{}))
}

func TestPrintSingleCodePointNeverWrapped(t *testing.T) {
	e := Repetition{Inner: lit("a"), Quantifier: Star()}
	require.Equal(t, "a*", Print(e, PrintOptions{}))
}

func TestPrintMultiCodePointLiteralWrappedUnderRepetition(t *testing.T) {
	e := Repetition{Inner: lit("ab"), Quantifier: Star()}
	require.Equal(t, "(ab)*", Print(e, PrintOptions{}))
}

func TestPrintCharClassRange(t *testing.T) {
	c := CharClass{Chars: []rune("abcdef")}
	require.Equal(t, "[a-f]", Print(c, PrintOptions{}))
}

func TestPrintCharClassShortRunKeptIndividual(t *testing.T) {
	c := CharClass{Chars: []rune("ab")}
	require.Equal(t, "[ab]", Print(c, PrintOptions{}))
}

func TestPrintMinMaxQuantifier(t *testing.T) {
	e := Repetition{Inner: lit("a"), Quantifier: MinMax(2, 4)}
	require.Equal(t, "a{2,4}", Print(e, PrintOptions{}))
}

func TestPrintEmptyLiteral(t *testing.T) {
	require.Equal(t, "", Print(EmptyLiteral(), PrintOptions{}))
}

func TestPrintShorthand(t *testing.T) {
	require.Equal(t, `\d`, Print(Shorthand{Kind: ShorthandDigit}, PrintOptions{}))
	require.Equal(t, `\W`, Print(Shorthand{Kind: ShorthandNonWord}, PrintOptions{}))
}

func TestAltDeduplicates(t *testing.T) {
	e := Alt(lit("a"), lit("a"), lit("b"))
	require.Equal(t, "a|b", Print(e, PrintOptions{}))
}
