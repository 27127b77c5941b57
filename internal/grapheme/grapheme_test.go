package grapheme

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSegmentASCII(t *testing.T) {
	c := Segment("abc")
	require.Equal(t, 3, c.Len())
	require.Equal(t, "abc", c.Raw())
}

func TestSegmentEmoji(t *testing.T) {
	// family emoji with ZWJ joiners is one extended grapheme cluster
	c := Segment("a\U0001F469‍\U0001F467b")
	require.Equal(t, 3, c.Len())
	require.True(t, c[0].IsSingleCodePoint())
	require.False(t, c[1].IsSingleCodePoint())
}

func TestRepeatedGrapheme(t *testing.T) {
	g := New([]rune("a")).Repeated(3, 3)
	require.True(t, g.HasRepetitions())
	min, max := g.MinMax()
	require.Equal(t, 3, min)
	require.Equal(t, 3, max)
}

func TestClusterEqual(t *testing.T) {
	require.True(t, Segment("abc").Equal(Segment("abc")))
	require.False(t, Segment("abc").Equal(Segment("abd")))
	require.False(t, Segment("ab").Equal(Segment("abc")))
}

func TestEscapeMetacharacters(t *testing.T) {
	for _, r := range []rune(`\()[]{}|?*+.^$`) {
		require.Equal(t, "\\"+string(r), EscapeRune(r, EscapeOptions{}))
	}
	require.Equal(t, "a", EscapeRune('a', EscapeOptions{}))
}

func TestEscapeWhitespace(t *testing.T) {
	require.Equal(t, `\n`, EscapeRune('\n', EscapeOptions{}))
	require.Equal(t, `\r`, EscapeRune('\r', EscapeOptions{}))
	require.Equal(t, `\t`, EscapeRune('\t', EscapeOptions{}))
}

func TestEscapeInClass(t *testing.T) {
	for _, r := range []rune(`[]\-^`) {
		require.Equal(t, "\\"+string(r), EscapeRuneInClass(r, EscapeOptions{}))
	}
	// metacharacters outside a class need no escaping inside one
	require.Equal(t, "(", EscapeRuneInClass('(', EscapeOptions{}))
}

func TestEscapeNonASCII(t *testing.T) {
	got := EscapeRune('♥', EscapeOptions{EscapeNonASCII: true})
	require.Equal(t, `\u{2665}`, got)
}

func TestEscapeSurrogatePair(t *testing.T) {
	got := EscapeRune('𝄞', EscapeOptions{EscapeNonASCII: true, SurrogatePairs: true})
	require.Equal(t, `\u{D834}\u{DD1E}`, got)
}

func TestEscapeAstralWithoutSurrogates(t *testing.T) {
	got := EscapeRune('𝄞', EscapeOptions{EscapeNonASCII: true})
	require.Equal(t, `\u{1D11E}`, got)
}
