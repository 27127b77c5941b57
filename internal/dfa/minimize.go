package dfa

import (
	"sort"

	"github.com/projectdiscovery/rexgen/internal/grapheme"
)

// Minimize returns the minimal DFA equivalent to d, computed with
// Hopcroft's partition-refinement algorithm (module D). The input is
// assumed to be the trie BuildTrie produces, but Minimize makes no such
// assumption itself: it works on any DFA.
func Minimize(d *DFA) *DFA {
	alphabet := collectAlphabet(d)
	sink := -1 // sentinel "no transition" state id

	// total[s][symbolIndex] = target state id, or sink
	total := make([][]int, len(d.States))
	for _, s := range d.States {
		row := make([]int, len(alphabet))
		for i, sym := range alphabet {
			if tr := s.transitionOn(sym.key); tr != nil {
				row[i] = tr.To.ID
			} else {
				row[i] = sink
			}
		}
		total[s.ID] = row
	}

	accepting := make([]bool, len(d.States)+1) // index len(States) is the sink
	for _, s := range d.States {
		accepting[s.ID] = s.Accepting
	}
	sinkID := len(d.States)
	accepting[sinkID] = false
	total = append(total, make([]int, len(alphabet)))
	for i := range alphabet {
		total[sinkID][i] = sinkID // sink self-loops on every symbol
	}

	partition := hopcroft(len(d.States)+1, alphabet, total, accepting)

	return rebuild(d, alphabet, total, partition, sinkID)
}

type labeledSymbol struct {
	key string
	g   grapheme.Grapheme
}

// collectAlphabet gathers every distinct transition label used anywhere in
// d, in a stable (sorted by key) order.
func collectAlphabet(d *DFA) []labeledSymbol {
	seen := make(map[string]grapheme.Grapheme)
	for _, s := range d.States {
		for _, tr := range s.Transitions() {
			seen[tr.Label.Key()] = tr.Label
		}
	}
	syms := make([]labeledSymbol, 0, len(seen))
	for k, g := range seen {
		syms = append(syms, labeledSymbol{key: k, g: g})
	}
	sort.Slice(syms, func(i, j int) bool { return syms[i].key < syms[j].key })
	return syms
}

// hopcroft runs partition refinement over n states (0..n-1) under the given
// alphabet and total transition table, returning the final partition as a
// slice mapping state id -> block id.
func hopcroft(n int, alphabet []labeledSymbol, total [][]int, accepting []bool) []int {
	var acceptSet, rejectSet []int
	for i := 0; i < n; i++ {
		if accepting[i] {
			acceptSet = append(acceptSet, i)
		} else {
			rejectSet = append(rejectSet, i)
		}
	}

	partition := [][]int{}
	if len(acceptSet) > 0 {
		partition = append(partition, acceptSet)
	}
	if len(rejectSet) > 0 {
		partition = append(partition, rejectSet)
	}

	// worklist of blocks still to use as splitters
	worklist := make([][]int, len(partition))
	copy(worklist, partition)

	blockOf := func(p [][]int) []int {
		m := make([]int, n)
		for bi, block := range p {
			for _, s := range block {
				m[s] = bi
			}
		}
		return m
	}

	for len(worklist) > 0 {
		splitter := worklist[0]
		worklist = worklist[1:]

		for symIdx := range alphabet {
			// X = states with a transition on sym into splitter
			splitterSet := make(map[int]bool, len(splitter))
			for _, s := range splitter {
				splitterSet[s] = true
			}
			var x []int
			for s := 0; s < n; s++ {
				if splitterSet[total[s][symIdx]] {
					x = append(x, s)
				}
			}
			if len(x) == 0 {
				continue
			}
			xSet := make(map[int]bool, len(x))
			for _, s := range x {
				xSet[s] = true
			}

			var newPartition [][]int
			for _, block := range partition {
				var inX, notInX []int
				for _, s := range block {
					if xSet[s] {
						inX = append(inX, s)
					} else {
						notInX = append(notInX, s)
					}
				}
				if len(inX) > 0 && len(notInX) > 0 {
					newPartition = append(newPartition, inX, notInX)
					replaceOrAdd(&worklist, block, inX, notInX)
				} else {
					newPartition = append(newPartition, block)
				}
			}
			partition = newPartition
		}
	}

	m := blockOf(partition)
	return m
}

// replaceOrAdd implements the standard Hopcroft worklist update: if the
// split block was itself on the worklist, replace it with both halves;
// otherwise add the smaller half.
func replaceOrAdd(worklist *[][]int, block, inX, notInX []int) {
	idx := -1
	for i, w := range *worklist {
		if sameSlice(w, block) {
			idx = i
			break
		}
	}
	if idx >= 0 {
		(*worklist)[idx] = inX
		*worklist = append(*worklist, notInX)
		return
	}
	if len(inX) <= len(notInX) {
		*worklist = append(*worklist, inX)
	} else {
		*worklist = append(*worklist, notInX)
	}
}

func sameSlice(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	am := make(map[int]bool, len(a))
	for _, v := range a {
		am[v] = true
	}
	for _, v := range b {
		if !am[v] {
			return false
		}
	}
	return true
}

// rebuild constructs the minimized DFA from the computed partition, keeping
// only states reachable from the start block and dropping the sink block
// entirely (its edges simply become "no transition" again).
func rebuild(d *DFA, alphabet []labeledSymbol, total [][]int, blockOf []int, sinkID int) *DFA {
	startBlock := blockOf[d.Start.ID]
	sinkBlock := blockOf[sinkID]

	blockToState := make(map[int]*State)
	out := &DFA{}

	if startBlock != sinkBlock {
		s := newState(len(out.States))
		out.States = append(out.States, s)
		blockToState[startBlock] = s
	}

	// mark accepting using any representative member of the block
	repOf := make(map[int]int) // block -> representative state id
	for sid, b := range blockOf {
		if _, ok := repOf[b]; !ok {
			repOf[b] = sid
		}
	}

	visited := map[int]bool{startBlock: true}
	queue := []int{startBlock}
	for len(queue) > 0 {
		b := queue[0]
		queue = queue[1:]
		if b == sinkBlock {
			continue
		}
		from := blockToState[b]
		rep := repOf[b]
		if rep < len(d.States) {
			from.Accepting = d.States[rep].Accepting
		}
		for symIdx, sym := range alphabet {
			target := total[rep][symIdx]
			tb := blockOf[target]
			if tb == sinkBlock {
				continue
			}
			if _, ok := blockToState[tb]; !ok {
				ns := newState(len(out.States))
				out.States = append(out.States, ns)
				blockToState[tb] = ns
			}
			from.addTransition(sym.g, blockToState[tb])
			if !visited[tb] {
				visited[tb] = true
				queue = append(queue, tb)
			}
		}
	}

	out.Start = blockToState[startBlock]
	return out
}
