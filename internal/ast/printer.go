package ast

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/projectdiscovery/rexgen/internal/grapheme"
)

// PrintOptions controls how an Expr is rendered into regex source text.
type PrintOptions struct {
	EscapeNonASCII bool
	SurrogatePairs bool
	Colorize       bool
}

// style is the redesign spec.md §9 recommends: Expr nodes carry no
// presentation state at all, and Print picks one of two style
// implementations based on PrintOptions.Colorize. Adding a third style
// (e.g. a different color scheme) means adding one more case here, not
// touching a single Expr type.
type style interface {
	paren(s string) string
	pipe() string
	bracket(s string) string
	hyphen() string
	quantifier(s string) string
	literal(s string) string
	class(s string) string
}

type plainStyle struct{}

func (plainStyle) paren(s string) string      { return "(" + s + ")" }
func (plainStyle) pipe() string               { return "|" }
func (plainStyle) bracket(s string) string    { return "[" + s + "]" }
func (plainStyle) hyphen() string             { return "-" }
func (plainStyle) quantifier(s string) string { return s }
func (plainStyle) literal(s string) string    { return s }
func (plainStyle) class(s string) string      { return s }

// ansiStyle colorizes structural punctuation the way a syntax-highlighted
// regex tester does: grouping in one color, alternation bars in another,
// character classes in a third, quantifiers in a fourth.
type ansiStyle struct {
	group      lipgloss.Style
	altBar     lipgloss.Style
	classStl   lipgloss.Style
	quant      lipgloss.Style
	literalStl lipgloss.Style
}

func newANSIStyle() ansiStyle {
	return ansiStyle{
		group:      lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		altBar:     lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		classStl:   lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
		quant:      lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true),
		literalStl: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	}
}

func (s ansiStyle) paren(body string) string {
	return s.group.Render("(") + body + s.group.Render(")")
}
func (s ansiStyle) pipe() string { return s.altBar.Render("|") }
func (s ansiStyle) bracket(body string) string {
	return s.classStl.Render("[") + body + s.classStl.Render("]")
}
func (s ansiStyle) hyphen() string             { return s.classStl.Render("-") }
func (s ansiStyle) quantifier(q string) string { return s.quant.Render(q) }
func (s ansiStyle) literal(l string) string    { return s.literalStl.Render(l) }
func (s ansiStyle) class(c string) string      { return s.classStl.Render(c) }

// Print renders e as regex source text under opts.
func Print(e Expr, opts PrintOptions) string {
	var st style
	if opts.Colorize {
		st = newANSIStyle()
	} else {
		st = plainStyle{}
	}
	return print(e, opts, st, 0)
}

func print(e Expr, opts PrintOptions, st style, parentPrec int) string {
	body := printBody(e, opts, st)
	if parentPrec > Precedence(e) && !e.IsSingleCodePoint() {
		return st.paren(body)
	}
	return body
}

func printBody(e Expr, opts PrintOptions, st style) string {
	switch v := e.(type) {
	case Literal:
		return printLiteral(v, opts, st)
	case CharClass:
		return printCharClass(v, opts, st)
	case Shorthand:
		return st.class(v.Kind.Token())
	case Concatenation:
		return print(v.Left, opts, st, PrecConcatenation) + print(v.Right, opts, st, PrecConcatenation)
	case Alternation:
		parts := make([]string, len(v.Options))
		for i, o := range v.Options {
			parts[i] = print(o, opts, st, PrecAlternation)
		}
		return strings.Join(parts, st.pipe())
	case Repetition:
		return print(v.Inner, opts, st, PrecRepetition+1) + st.quantifier(printQuantifier(v.Quantifier))
	default:
		return ""
	}
}

func printLiteral(l Literal, opts PrintOptions, st style) string {
	eo := grapheme.EscapeOptions{EscapeNonASCII: opts.EscapeNonASCII, SurrogatePairs: opts.SurrogatePairs}
	var b strings.Builder
	for _, g := range l.Cluster {
		b.WriteString(grapheme.Escape(g, eo))
	}
	return st.literal(b.String())
}

func printCharClass(c CharClass, opts PrintOptions, st style) string {
	if len(c.Chars) == 1 {
		eo := grapheme.EscapeOptions{EscapeNonASCII: opts.EscapeNonASCII, SurrogatePairs: opts.SurrogatePairs}
		return st.literal(grapheme.EscapeRune(c.Chars[0], eo))
	}
	var b strings.Builder
	eo := grapheme.EscapeOptions{EscapeNonASCII: opts.EscapeNonASCII, SurrogatePairs: opts.SurrogatePairs}
	for _, rng := range collapseRanges(c.Chars) {
		if rng.lo == rng.hi {
			b.WriteString(grapheme.EscapeRuneInClass(rng.lo, eo))
			continue
		}
		if rng.hi-rng.lo+1 <= 2 {
			b.WriteString(grapheme.EscapeRuneInClass(rng.lo, eo))
			b.WriteString(grapheme.EscapeRuneInClass(rng.hi, eo))
			continue
		}
		b.WriteString(grapheme.EscapeRuneInClass(rng.lo, eo))
		b.WriteString(st.hyphen())
		b.WriteString(grapheme.EscapeRuneInClass(rng.hi, eo))
	}
	return st.bracket(b.String())
}

type runeRange struct{ lo, hi rune }

// collapseRanges groups c's (already sorted, deduplicated) code points into
// maximal contiguous runs; printCharClass applies the run-length-3 cutoff,
// this just finds the runs.
func collapseRanges(chars []rune) []runeRange {
	if len(chars) == 0 {
		return nil
	}
	var out []runeRange
	start := chars[0]
	prev := chars[0]
	for _, r := range chars[1:] {
		if r == prev+1 {
			prev = r
			continue
		}
		out = append(out, runeRange{lo: start, hi: prev})
		start, prev = r, r
	}
	out = append(out, runeRange{lo: start, hi: prev})
	return out
}

func printQuantifier(q Quantifier) string {
	switch q.Kind {
	case QuantStar:
		return "*"
	case QuantQuestion:
		return "?"
	default:
		if q.Max < 0 {
			return "{" + strconv.Itoa(q.Min) + ",}"
		}
		if q.Min == q.Max {
			return "{" + strconv.Itoa(q.Min) + "}"
		}
		return "{" + strconv.Itoa(q.Min) + "," + strconv.Itoa(q.Max) + "}"
	}
}
