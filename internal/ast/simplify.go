package ast

// This file holds the smart constructors that apply spec.md §4.5 step 5's
// algebraic simplification rules. They are kept next to the AST types so
// every pass that builds new expressions (the state-elimination converter,
// the character-class synthesizer, the feature rewriter) gets the
// simplifications for free instead of re-deriving them.

// epsilon is represented as the empty literal; it is the identity element
// for Concat and the operand Star treats specially ((ε)* = ε).
func isEpsilon(e Expr) bool { return IsEmptyLiteral(e) }

// Concat builds a Concatenation, applying "α·ε = ε·α = α" and "α*·α* = α*"
// and flattening nested concatenations into a right-leaning spine.
func Concat(a, b Expr) Expr {
	if isEpsilon(a) {
		return b
	}
	if isEpsilon(b) {
		return a
	}
	if ra, ok := a.(Repetition); ok && ra.Quantifier.IsKleeneStar() {
		if rb, ok := b.(Repetition); ok && rb.Quantifier.IsKleeneStar() && fingerprint(ra) == fingerprint(rb) {
			return a
		}
	}
	if left, ok := a.(Concatenation); ok {
		// re-associate so the spine leans right, per spec.md's AST table
		return Concat(left.Left, Concat(left.Right, b))
	}
	return Concatenation{Left: a, Right: b}
}

// Alt builds an Alternation from one or more options, deduplicating equal
// branches while preserving first-seen order ("order-stable").
func Alt(options ...Expr) Expr {
	var flat []Expr
	for _, o := range options {
		if a, ok := o.(Alternation); ok {
			flat = append(flat, a.Options...)
		} else {
			flat = append(flat, o)
		}
	}
	seen := make(map[string]bool, len(flat))
	var deduped []Expr
	for _, o := range flat {
		k := fingerprint(o)
		if seen[k] {
			continue
		}
		seen[k] = true
		deduped = append(deduped, o)
	}
	if len(deduped) == 1 {
		return deduped[0]
	}
	return Alternation{Options: deduped}
}

// Star builds a Kleene-star repetition, applying "α**=α*" and "(ε)*=ε".
func Star(e Expr) Expr {
	if isEpsilon(e) {
		return e
	}
	if r, ok := e.(Repetition); ok && r.Quantifier.IsKleeneStar() {
		return r
	}
	return Repetition{Inner: e, Quantifier: Star()}
}

// fingerprint renders e into a structural key used only for alternation
// deduplication; it does not need to be a valid regex, only injective
// enough to tell distinct sub-trees apart.
func fingerprint(e Expr) string {
	switch v := e.(type) {
	case Literal:
		s := "L:"
		for _, g := range v.Cluster {
			s += g.Key() + "#"
		}
		return s
	case CharClass:
		s := "C:"
		for _, r := range v.Chars {
			s += string(r) + ","
		}
		return s
	case Concatenation:
		return "(" + fingerprint(v.Left) + "." + fingerprint(v.Right) + ")"
	case Alternation:
		s := "{"
		for _, o := range v.Options {
			s += fingerprint(o) + "|"
		}
		return s + "}"
	case Repetition:
		return fingerprint(v.Inner) + quantFingerprint(v.Quantifier)
	case Shorthand:
		return "S:" + v.Kind.Token()
	default:
		return "?"
	}
}

func quantFingerprint(q Quantifier) string {
	switch q.Kind {
	case QuantStar:
		return "*"
	case QuantQuestion:
		return "?"
	default:
		return "{m,n}"
	}
}
