// Package rexgen synthesizes a single regular expression that matches
// exactly a given set of input strings: grapheme-segment each test case,
// build and minimize a DFA over the segmented inputs, convert the DFA back
// to a regex AST by state elimination, then optionally fold character
// classes into Unicode shorthand tokens and repeated runs into quantifiers.
package rexgen

import (
	"github.com/projectdiscovery/gologger"

	"github.com/projectdiscovery/rexgen/internal/ast"
	"github.com/projectdiscovery/rexgen/internal/charclass"
	"github.com/projectdiscovery/rexgen/internal/convert"
	"github.com/projectdiscovery/rexgen/internal/dfa"
	"github.com/projectdiscovery/rexgen/internal/feature"
	"github.com/projectdiscovery/rexgen/internal/grapheme"
	"github.com/projectdiscovery/rexgen/internal/repetition"
)

// Options configures a single regex synthesis run.
type Options struct {
	// TestCases is the set of strings the generated expression must match.
	// With no shorthand-class conversion enabled it matches no other
	// string; \d, \w, \s and their negations widen the matched language.
	TestCases []string
	// ConversionFeatures are the optional post-processing passes to apply,
	// resolved in the fixed priority order spec.md §4.8 defines regardless
	// of the order they are listed here.
	ConversionFeatures []Feature
	// EscapeNonASCII renders every code point above 0x7F as \u{HHHH}.
	EscapeNonASCII bool
	// ConvertAstralToSurrogate splits escaped astral code points into a
	// UTF-16 surrogate pair. Requires EscapeNonASCII.
	ConvertAstralToSurrogate bool
	// Colorize syntax-highlights the printed expression with ANSI codes.
	Colorize bool
}

// RegExpBuilder accumulates Options via its With* methods and synthesizes
// the expression on Build, mirroring the teacher's Options/New/Mutator
// construction shape (mutator.go).
type RegExpBuilder struct {
	opts *Options
}

// New starts a builder over the given test cases.
func New(testCases []string) *RegExpBuilder {
	return &RegExpBuilder{opts: &Options{TestCases: testCases}}
}

// WithConversionOf enables one or more shorthand/repetition features.
func (b *RegExpBuilder) WithConversionOf(features ...Feature) *RegExpBuilder {
	b.opts.ConversionFeatures = append(b.opts.ConversionFeatures, features...)
	return b
}

// WithEscapingOfNonASCIIChars enables \u{HHHH} escaping of non-ASCII code
// points, optionally splitting astral code points into surrogate pairs.
func (b *RegExpBuilder) WithEscapingOfNonASCIIChars(convertToSurrogates bool) *RegExpBuilder {
	b.opts.EscapeNonASCII = true
	b.opts.ConvertAstralToSurrogate = convertToSurrogates
	return b
}

// WithSyntaxHighlighting enables ANSI-colorized output.
func (b *RegExpBuilder) WithSyntaxHighlighting() *RegExpBuilder {
	b.opts.Colorize = true
	return b
}

// Build runs the synthesis pipeline and returns the resulting expression
// as regex source text. On an invalid Options combination it logs the
// error and returns an empty string, the way the teacher's ExecuteWithWriter
// reports failures via gologger rather than panicking.
func (b *RegExpBuilder) Build() string {
	if err := b.opts.Validate(); err != nil {
		gologger.Error().Msgf("rexgen: %v", err)
		return ""
	}
	if len(b.opts.TestCases) == 0 {
		return ""
	}

	clusters := make([]grapheme.Cluster, len(b.opts.TestCases))
	for i, s := range b.opts.TestCases {
		clusters[i] = grapheme.Segment(s)
	}

	if b.hasFeature(FeatureRepetition) {
		clusters = repetition.DetectAll(clusters)
	}

	automaton := dfa.Minimize(dfa.BuildTrie(clusters))
	expr := convert.Convert(automaton)
	expr = charclass.Collapse(expr)

	if classes := b.shorthandClasses(); len(classes) > 0 {
		expr = feature.Rewrite(expr, classes)
	}

	return ast.Print(expr, ast.PrintOptions{
		EscapeNonASCII: b.opts.EscapeNonASCII,
		SurrogatePairs: b.opts.ConvertAstralToSurrogate,
		Colorize:       b.opts.Colorize,
	})
}

func (b *RegExpBuilder) hasFeature(want Feature) bool {
	for _, f := range b.opts.ConversionFeatures {
		if f == want {
			return true
		}
	}
	return false
}

func (b *RegExpBuilder) shorthandClasses() []feature.Class {
	var classes []feature.Class
	for _, f := range b.opts.ConversionFeatures {
		if c, ok := f.shorthandClass(); ok {
			classes = append(classes, c)
		}
	}
	return classes
}
