// Package charclass synthesizes ast.CharClass nodes out of alternations
// whose every branch is a single code point (module F). Range collapsing
// itself lives in the ast printer (it needs to run again after feature
// rewriting substitutes \d/\w/\s tokens); this package only decides which
// alternations qualify to become a class in the first place.
package charclass

import (
	"sort"

	"github.com/projectdiscovery/rexgen/internal/ast"
)

// Collapse walks e bottom-up and rewrites every Alternation all of whose
// branches are single-code-point literals into a single ast.CharClass,
// deduplicating and sorting the resulting code points by value.
func Collapse(e ast.Expr) ast.Expr {
	switch v := e.(type) {
	case ast.Alternation:
		options := make([]ast.Expr, len(v.Options))
		for i, o := range v.Options {
			options[i] = Collapse(o)
		}
		if chars, ok := singleCodePoints(options); ok {
			return ast.CharClass{Chars: chars}
		}
		return ast.Alternation{Options: options}
	case ast.Concatenation:
		return ast.Concatenation{Left: Collapse(v.Left), Right: Collapse(v.Right)}
	case ast.Repetition:
		return ast.Repetition{Inner: Collapse(v.Inner), Quantifier: v.Quantifier}
	default:
		return e
	}
}

// singleCodePoints reports whether every expr in options is a bare single
// code point (a Literal of length 1 holding one plain grapheme, or an
// already-synthesized single-char CharClass), returning their code points
// sorted and deduplicated if so.
func singleCodePoints(options []ast.Expr) ([]rune, bool) {
	seen := make(map[rune]bool, len(options))
	var chars []rune
	for _, o := range options {
		r, ok := codePointOf(o)
		if !ok {
			return nil, false
		}
		if !seen[r] {
			seen[r] = true
			chars = append(chars, r)
		}
	}
	if len(chars) < 2 {
		return nil, false
	}
	sort.Slice(chars, func(i, j int) bool { return chars[i] < chars[j] })
	return chars, true
}

func codePointOf(e ast.Expr) (rune, bool) {
	switch v := e.(type) {
	case ast.Literal:
		if len(v.Cluster) == 1 && v.Cluster[0].IsSingleCodePoint() {
			return v.Cluster[0].CodePoints()[0], true
		}
	case ast.CharClass:
		if len(v.Chars) == 1 {
			return v.Chars[0], true
		}
	}
	return 0, false
}
