// Package convert turns a minimized DFA back into a regex AST via
// state elimination (the GNFA/Brzozowski-McNaughton-Yamada construction,
// module E), applying ast's algebraic smart constructors at every step so
// the result comes out already simplified.
package convert

import (
	"sort"

	"github.com/projectdiscovery/rexgen/internal/ast"
	"github.com/projectdiscovery/rexgen/internal/dfa"
	"github.com/projectdiscovery/rexgen/internal/grapheme"
)

type edge struct{ from, to int }

// gnfa is a generalized NFA: at most one expression-labeled edge between
// any ordered pair of states, combining parallel transitions via ast.Alt.
type gnfa struct {
	edges map[edge]ast.Expr
	start int
	final int
	// nodes excludes start/final; it is the working set still to eliminate.
	nodes map[int]bool
}

func (g *gnfa) get(i, j int) (ast.Expr, bool) {
	e, ok := g.edges[edge{i, j}]
	return e, ok
}

func (g *gnfa) set(i, j int, e ast.Expr) {
	if existing, ok := g.edges[edge{i, j}]; ok {
		g.edges[edge{i, j}] = ast.Alt(existing, e)
	} else {
		g.edges[edge{i, j}] = e
	}
}

func (g *gnfa) remove(i, j int) {
	delete(g.edges, edge{i, j})
}

// Convert turns d into a regex AST equivalent to its accepted language.
func Convert(d *dfa.DFA) ast.Expr {
	if len(d.States) == 0 {
		return ast.EmptyLiteral()
	}

	start := len(d.States)
	final := len(d.States) + 1
	g := &gnfa{edges: make(map[edge]ast.Expr), start: start, final: final, nodes: make(map[int]bool)}

	g.set(start, d.Start.ID, ast.EmptyLiteral())
	for _, s := range d.States {
		g.nodes[s.ID] = true
		if s.Accepting {
			g.set(s.ID, final, ast.EmptyLiteral())
		}
		for _, tr := range s.Transitions() {
			g.set(s.ID, tr.To.ID, labelExpr(tr.Label))
		}
	}

	for len(g.nodes) > 0 {
		k := pickEliminationCandidate(g)
		delete(g.nodes, k)
		eliminate(g, k)
	}

	if e, ok := g.get(start, final); ok {
		return e
	}
	return ast.EmptyLiteral()
}

// labelExpr renders a single DFA transition label as an AST literal,
// wrapping it in a Repetition if the grapheme carries a repetition tag
// from module G.
func labelExpr(g grapheme.Grapheme) ast.Expr {
	min, max := g.MinMax()
	plain := grapheme.New(g.CodePoints())
	lit := ast.Literal{Cluster: grapheme.Cluster{plain}}
	if !g.HasRepetitions() {
		return lit
	}
	if max < 0 {
		return ast.Repetition{Inner: lit, Quantifier: ast.Star()}
	}
	return ast.Repetition{Inner: lit, Quantifier: ast.MinMax(min, max)}
}

// pickEliminationCandidate chooses the next state to eliminate, preferring
// the one with the fewest incoming x outgoing edges so concatenations built
// during elimination stay as small as possible (spec.md §9 Open Question,
// resolved in DESIGN.md).
func pickEliminationCandidate(g *gnfa) int {
	best := -1
	bestScore := -1
	for k := range g.nodes {
		in, out := 0, 0
		for e := range g.edges {
			if e.to == k {
				in++
			}
			if e.from == k {
				out++
			}
		}
		score := in * out
		if best == -1 || score < bestScore || (score == bestScore && k < best) {
			best = k
			bestScore = score
		}
	}
	return best
}

// eliminate removes state k from g, rerouting every i->k->j path through a
// direct i->j edge: R_ij |= R_ik . (R_kk)* . R_kj.
func eliminate(g *gnfa, k int) {
	self, hasSelf := g.get(k, k)

	var preds, succs []edge
	for e := range g.edges {
		if e.to == k && e.from != k {
			preds = append(preds, e)
		}
		if e.from == k && e.to != k {
			succs = append(succs, e)
		}
	}
	sort.Slice(preds, func(i, j int) bool { return preds[i].from < preds[j].from })
	sort.Slice(succs, func(i, j int) bool { return succs[i].to < succs[j].to })

	for _, pe := range preds {
		rik := g.edges[pe]
		for _, se := range succs {
			rkj := g.edges[se]
			through := rik
			if hasSelf {
				through = ast.Concat(through, ast.Star(self))
			}
			through = ast.Concat(through, rkj)
			g.set(pe.from, se.to, through)
		}
	}

	for e := range g.edges {
		if e.from == k || e.to == k {
			delete(g.edges, e)
		}
	}
}
