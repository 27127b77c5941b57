// Package grapheme segments input strings into Unicode extended grapheme
// clusters and renders them back as escaped regular-expression literals.
package grapheme

import (
	"fmt"
	"strings"

	"github.com/rivo/uniseg"
)

// Grapheme is a single extended grapheme cluster, optionally tagged with a
// repetition count produced by the repetition detector.
type Grapheme struct {
	codePoints []rune
	min, max   int
}

// New returns a plain, unrepeated Grapheme made of the given code points.
func New(codePoints []rune) Grapheme {
	return Grapheme{codePoints: codePoints, min: 1, max: 1}
}

// Repeated returns a copy of g tagged with the given (min, max) repetition
// range, as produced when the repetition detector collapses a repeated run
// of g into a single quantified transition label.
func (g Grapheme) Repeated(min, max int) Grapheme {
	g.min, g.max = min, max
	return g
}

// HasRepetitions reports whether g carries a non-trivial (min,max) range.
func (g Grapheme) HasRepetitions() bool { return g.min != 1 || g.max != 1 }

// MinMax returns the repetition range; (1,1) for a plain grapheme.
func (g Grapheme) MinMax() (int, int) { return g.min, g.max }

// CodePoints returns the underlying code points of one occurrence of g.
func (g Grapheme) CodePoints() []rune { return g.codePoints }

// IsSingleCodePoint reports whether g is exactly one code point with no
// repetition tag, the condition the AST printer uses to decide whether a
// child node ever needs parenthesizing.
func (g Grapheme) IsSingleCodePoint() bool {
	return len(g.codePoints) == 1 && !g.HasRepetitions()
}

// Key returns a string uniquely identifying g's code points and repetition
// range, suitable as a DFA transition-table key. Two Graphemes are the same
// transition label iff their Key()s are equal.
func (g Grapheme) Key() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d-%d:", g.min, g.max)
	for _, r := range g.codePoints {
		fmt.Fprintf(&b, "%x,", r)
	}
	return b.String()
}

// Raw returns the unescaped string form of one occurrence of g.
func (g Grapheme) Raw() string { return string(g.codePoints) }

// Cluster is an ordered sequence of Graphemes representing one input
// string.
type Cluster []Grapheme

// Segment breaks s into its extended grapheme clusters per Unicode UAX #29.
func Segment(s string) Cluster {
	var c Cluster
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		c = append(c, New(gr.Runes()))
	}
	return c
}

// Len returns the number of graphemes in c.
func (c Cluster) Len() int { return len(c) }

// Raw concatenates the unescaped string forms of every grapheme in c,
// expanding any repetition tags into their literal repeated form.
func (c Cluster) Raw() string {
	var b strings.Builder
	for _, g := range c {
		min, _ := g.MinMax()
		if g.HasRepetitions() {
			b.WriteString(strings.Repeat(g.Raw(), min))
		} else {
			b.WriteString(g.Raw())
		}
	}
	return b.String()
}

// Equal reports whether two clusters are built from the same sequence of
// Grapheme keys, i.e. whether they would follow the same transition path
// through the trie.
func (c Cluster) Equal(other Cluster) bool {
	if len(c) != len(other) {
		return false
	}
	for i := range c {
		if c[i].Key() != other[i].Key() {
			return false
		}
	}
	return true
}
