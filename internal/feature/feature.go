// Package feature rewrites synthesized CharClass nodes into Unicode
// shorthand classes (\d \D \s \S \w \W, module H). Classification uses the
// standard library's unicode package: no library in the example pack does
// Unicode character-predicate classification, so this is the one place the
// pipeline reaches for the standard library instead of a third-party dep
// (see DESIGN.md).
package feature

import (
	"unicode"

	"github.com/projectdiscovery/rexgen/internal/ast"
	"github.com/projectdiscovery/rexgen/internal/grapheme"
)

// Class identifies one of the shorthand conversions a caller can enable.
type Class int

const (
	ClassDigit Class = iota
	ClassNonDigit
	ClassSpace
	ClassNonSpace
	ClassWord
	ClassNonWord
)

// priority is the fixed resolution order spec.md §4.8 mandates when more
// than one enabled class could match the same CharClass: digit beats word
// beats space beats non-digit beats non-word beats non-space.
var priority = []Class{ClassDigit, ClassWord, ClassSpace, ClassNonDigit, ClassNonWord, ClassNonSpace}

func (c Class) predicate() func(rune) bool {
	switch c {
	case ClassDigit:
		return unicode.IsDigit
	case ClassNonDigit:
		return func(r rune) bool { return !unicode.IsDigit(r) }
	case ClassSpace:
		return unicode.IsSpace
	case ClassNonSpace:
		return func(r rune) bool { return !unicode.IsSpace(r) }
	case ClassWord:
		return isWord
	default:
		return func(r rune) bool { return !isWord(r) }
	}
}

func isWord(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func (c Class) shorthandKind() ast.ShorthandKind {
	switch c {
	case ClassDigit:
		return ast.ShorthandDigit
	case ClassNonDigit:
		return ast.ShorthandNonDigit
	case ClassSpace:
		return ast.ShorthandSpace
	case ClassNonSpace:
		return ast.ShorthandNonSpace
	case ClassWord:
		return ast.ShorthandWord
	default:
		return ast.ShorthandNonWord
	}
}

// Rewrite walks e bottom-up and replaces any single-code-point Literal or
// CharClass all of whose members satisfy an enabled class's predicate with
// the corresponding ast.Shorthand node (spec.md §4.8: "rewrite operates per
// single-code-point transition; multi-code-point literals are split").
func Rewrite(e ast.Expr, enabled []Class) ast.Expr {
	order := orderedEnabled(enabled)
	return rewrite(e, order)
}

func rewrite(e ast.Expr, order []Class) ast.Expr {
	switch v := e.(type) {
	case ast.Literal:
		return rewriteLiteral(v, order)
	case ast.CharClass:
		for _, c := range order {
			if matchesClass(v.Chars, c) {
				return ast.Shorthand{Kind: c.shorthandKind()}
			}
		}
		return v
	case ast.Concatenation:
		return ast.Concatenation{Left: rewrite(v.Left, order), Right: rewrite(v.Right, order)}
	case ast.Alternation:
		opts := make([]ast.Expr, len(v.Options))
		for i, o := range v.Options {
			opts[i] = rewrite(o, order)
		}
		return ast.Alternation{Options: opts}
	case ast.Repetition:
		return ast.Repetition{Inner: rewrite(v.Inner, order), Quantifier: v.Quantifier}
	default:
		return e
	}
}

// rewriteLiteral converts a single-code-point Literal whose code point
// satisfies an enabled class into the matching Shorthand. A Literal
// spanning more than one grapheme is split into a Concatenation of
// single-grapheme Literals first, each rewritten independently; a Literal
// that is one multi-code-point grapheme (e.g. a combining sequence) is left
// alone, since it names no single code point to classify.
func rewriteLiteral(l ast.Literal, order []Class) ast.Expr {
	if l.IsSingleCodePoint() {
		r := l.Cluster[0].CodePoints()[0]
		for _, c := range order {
			if c.predicate()(r) {
				return ast.Shorthand{Kind: c.shorthandKind()}
			}
		}
		return l
	}
	if len(l.Cluster) <= 1 {
		return l
	}
	var out ast.Expr = ast.EmptyLiteral()
	for _, g := range l.Cluster {
		out = ast.Concat(out, rewriteLiteral(ast.Literal{Cluster: grapheme.Cluster{g}}, order))
	}
	return out
}

// matchesClass reports whether every code point in chars satisfies c's
// predicate (and chars is non-empty: an empty class never qualifies, since
// a shorthand token must always stand for at least one code point). This
// broadens rather than restricts the language: a class of digits becomes
// \d regardless of which other digits appear elsewhere in the input.
func matchesClass(chars []rune, c Class) bool {
	if len(chars) == 0 {
		return false
	}
	pred := c.predicate()
	for _, r := range chars {
		if !pred(r) {
			return false
		}
	}
	return true
}

// orderedEnabled filters the fixed priority list down to the classes the
// caller actually enabled, preserving priority's order.
func orderedEnabled(enabled []Class) []Class {
	set := make(map[Class]bool, len(enabled))
	for _, c := range enabled {
		set[c] = true
	}
	var out []Class
	for _, c := range priority {
		if set[c] {
			out = append(out, c)
		}
	}
	return out
}
