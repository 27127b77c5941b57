package grapheme

import (
	"fmt"
	"strings"
)

// EscapeOptions controls how code points are rendered into regex-literal
// form. Neither flag changes what language a pattern matches, only how it
// is spelled (spec §4.1).
type EscapeOptions struct {
	// EscapeNonASCII renders every code point above 0x7F as \u{HHHH}.
	EscapeNonASCII bool
	// SurrogatePairs splits astral code points (>=0x10000) into a UTF-16
	// surrogate pair when EscapeNonASCII is also set.
	SurrogatePairs bool
}

// metacharacters that must be backslash-escaped when used as a literal
// outside a character class.
const topLevelMeta = `\()[]{}|?*+.^$`

// charsToEscapeInClass are escaped when they appear inside [...].
const charsToEscapeInClass = `[]\-^`

// Escape renders g as it would appear outside a character class: exactly
// one occurrence of its code points, metacharacters and non-ASCII code
// points escaped per opts. A repetition tag on g is ignored here; the
// quantifier is rendered by the AST.
func Escape(g Grapheme, opts EscapeOptions) string {
	var b strings.Builder
	for _, r := range g.codePoints {
		escapeRune(&b, r, opts, false)
	}
	return b.String()
}

// EscapeRune renders a single code point outside a character class.
func EscapeRune(r rune, opts EscapeOptions) string {
	var b strings.Builder
	escapeRune(&b, r, opts, false)
	return b.String()
}

// EscapeRuneInClass renders a single code point for use inside [...].
func EscapeRuneInClass(r rune, opts EscapeOptions) string {
	var b strings.Builder
	escapeRune(&b, r, opts, true)
	return b.String()
}

func escapeRune(b *strings.Builder, r rune, opts EscapeOptions, inClass bool) {
	switch {
	case r == '\n':
		b.WriteString(`\n`)
	case r == '\r':
		b.WriteString(`\r`)
	case r == '\t':
		b.WriteString(`\t`)
	case inClass && strings.ContainsRune(charsToEscapeInClass, r):
		b.WriteByte('\\')
		b.WriteRune(r)
	case !inClass && strings.ContainsRune(topLevelMeta, r):
		b.WriteByte('\\')
		b.WriteRune(r)
	case opts.EscapeNonASCII && r > 0x7F:
		writeUnicodeEscape(b, r, opts.SurrogatePairs)
	default:
		b.WriteRune(r)
	}
}

// writeUnicodeEscape writes r as one or two \u{HHHH} escapes, splitting
// astral code points into a UTF-16 surrogate pair when requested.
func writeUnicodeEscape(b *strings.Builder, r rune, surrogatePairs bool) {
	if surrogatePairs && r >= 0x10000 {
		v := r - 0x10000
		high := 0xD800 + (v >> 10)
		low := 0xDC00 + (v & 0x3FF)
		fmt.Fprintf(b, `\u{%X}`, high)
		fmt.Fprintf(b, `\u{%X}`, low)
		return
	}
	fmt.Fprintf(b, `\u{%X}`, r)
}
