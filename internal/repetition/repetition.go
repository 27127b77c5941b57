// Package repetition finds maximal non-overlapping runs of a repeated
// grapheme factor within a single test case and collapses each run into a
// single grapheme group tagged with a repetition count (module G, spec.md
// §4.7). Each run keeps its exact count: the same factor repeated a
// different number of times in another input is a distinct transition
// label, and no later stage merges such counts into a {min,max} range.
package repetition

import (
	"sort"
	"sync"

	"github.com/projectdiscovery/rexgen/internal/grapheme"
)

// run is a candidate repeated-factor occupying c[start : start+m*k), the
// k-gram at start repeated m times.
type run struct {
	start, k, m int
}

func (r run) coverage() int { return r.k * r.m }

// Detect scans c for every factor length k from 1 up to len(c)/2, keeping
// any k-gram that repeats >=2 times consecutively, then greedily selects a
// non-overlapping set of runs preferring the one covering the most
// graphemes, breaking ties by earliest start and then by longer factor
// length (spec.md §4.7 steps 1-2). Each selected run collapses into one
// grapheme tagged Repeated(m, m); untouched graphemes pass through as-is.
func Detect(c grapheme.Cluster) grapheme.Cluster {
	runs := selectRuns(len(c), candidateRuns(c))

	out := make(grapheme.Cluster, 0, len(c))
	i, ri := 0, 0
	for i < len(c) {
		if ri < len(runs) && runs[ri].start == i {
			r := runs[ri]
			out = append(out, factorGrapheme(c, r.start, r.k).Repeated(r.m, r.m))
			i += r.coverage()
			ri++
			continue
		}
		out = append(out, c[i])
		i++
	}
	return out
}

// candidateRuns finds every maximal run of >=2 consecutive occurrences of a
// k-gram, for every factor length k and start position.
func candidateRuns(c grapheme.Cluster) []run {
	n := len(c)
	var runs []run
	for k := 1; k <= n/2; k++ {
		for start := 0; start+2*k <= n; start++ {
			m := 1
			for start+(m+1)*k <= n && kgramEqual(c, start, start+m*k, k) {
				m++
			}
			if m >= 2 {
				runs = append(runs, run{start: start, k: k, m: m})
			}
		}
	}
	return runs
}

func kgramEqual(c grapheme.Cluster, a, b, k int) bool {
	for x := 0; x < k; x++ {
		if c[a+x].Key() != c[b+x].Key() {
			return false
		}
	}
	return true
}

// selectRuns greedily picks non-overlapping runs in spec.md §4.7 step 2's
// priority order, then returns the selection sorted by start position so
// Detect can walk it left to right alongside c.
func selectRuns(n int, runs []run) []run {
	sort.Slice(runs, func(i, j int) bool {
		if runs[i].coverage() != runs[j].coverage() {
			return runs[i].coverage() > runs[j].coverage()
		}
		if runs[i].start != runs[j].start {
			return runs[i].start < runs[j].start
		}
		return runs[i].k > runs[j].k
	})

	covered := make([]bool, n)
	var selected []run
	for _, r := range runs {
		end := r.start + r.coverage()
		overlaps := false
		for x := r.start; x < end; x++ {
			if covered[x] {
				overlaps = true
				break
			}
		}
		if overlaps {
			continue
		}
		for x := r.start; x < end; x++ {
			covered[x] = true
		}
		selected = append(selected, r)
	}

	sort.Slice(selected, func(i, j int) bool { return selected[i].start < selected[j].start })
	return selected
}

// factorGrapheme builds the single-occurrence grapheme for the k-gram
// starting at start, concatenating its graphemes' code points into one
// group so the printer renders it as one quantified unit (e.g. "(ab){2}").
func factorGrapheme(c grapheme.Cluster, start, k int) grapheme.Grapheme {
	if k == 1 {
		return grapheme.New(c[start].CodePoints())
	}
	var codePoints []rune
	for x := 0; x < k; x++ {
		codePoints = append(codePoints, c[start+x].CodePoints()...)
	}
	return grapheme.New(codePoints)
}

// DetectAll runs Detect over every cluster concurrently, one goroutine per
// input, the way the teacher's Mutator fans work out across a WaitGroup.
// Each goroutine only ever writes its own index, so no further merge step
// is needed to keep output order identical to input order.
func DetectAll(clusters []grapheme.Cluster) []grapheme.Cluster {
	out := make([]grapheme.Cluster, len(clusters))
	wg := &sync.WaitGroup{}
	for i, c := range clusters {
		wg.Add(1)
		go func(i int, c grapheme.Cluster) {
			defer wg.Done()
			out[i] = Detect(c)
		}(i, c)
	}
	wg.Wait()
	return out
}
