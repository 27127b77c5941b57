package rexgen

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildContiguousCharClassCollapsesToRange(t *testing.T) {
	got := New([]string{"a", "b", "c"}).Build()
	require.Equal(t, "[a-c]", got)
}

func TestBuildShortRunKeptIndividual(t *testing.T) {
	got := New([]string{"a", "b"}).Build()
	require.Equal(t, "[ab]", got)
}

func TestBuildSharedPrefix(t *testing.T) {
	got := New([]string{"foo", "foobar"}).Build()
	re, err := regexp.Compile("^(?:" + got + ")$")
	require.NoError(t, err)
	require.True(t, re.MatchString("foo"))
	require.True(t, re.MatchString("foobar"))
	require.False(t, re.MatchString("foob"))
}

func TestBuildSoundAndComplete(t *testing.T) {
	cases := []string{"cat", "car", "card", "dog"}
	got := New(cases).Build()
	re, err := regexp.Compile("^(?:" + got + ")$")
	require.NoError(t, err)
	for _, c := range cases {
		require.True(t, re.MatchString(c), "must match %q", c)
	}
	for _, notIn := range []string{"ca", "dogs", "do", ""} {
		require.False(t, re.MatchString(notIn), "must not match %q", notIn)
	}
}

func TestBuildEmptyTestCase(t *testing.T) {
	got := New([]string{""}).Build()
	require.Equal(t, "", got)
}

func TestBuildNoTestCases(t *testing.T) {
	got := New(nil).Build()
	require.Equal(t, "", got)
}

func TestBuildDigitFeature(t *testing.T) {
	got := New([]string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"}).
		WithConversionOf(FeatureDigit).
		Build()
	require.Equal(t, `\d`, got)
}

func TestBuildRepetitionFeature(t *testing.T) {
	got := New([]string{"aaa"}).WithConversionOf(FeatureRepetition).Build()
	require.Equal(t, "a{3}", got)
}

func TestBuildEscapingNonASCII(t *testing.T) {
	got := New([]string{"♥"}).WithEscapingOfNonASCIIChars(false).Build()
	require.Equal(t, `\u{2665}`, got)
}

func TestValidateRejectsSurrogatesWithoutEscape(t *testing.T) {
	o := &Options{ConvertAstralToSurrogate: true}
	require.Error(t, o.Validate())
}

func TestValidateAcceptsSurrogatesWithEscape(t *testing.T) {
	o := &Options{ConvertAstralToSurrogate: true, EscapeNonASCII: true}
	require.NoError(t, o.Validate())
}
