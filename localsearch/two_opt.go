// Package localsearch - the 2-opt operator.
//
// A 2-opt move replaces the two edges (a → next[a]) and (b → next[b]) with
// (a → b) and (next[a] → next[b]), reversing the sub-path from next[a] to b.
// Because the matrix is symmetric, the unordered pair {a,b} is enumerated
// exactly once by enforcing a < b; the twoOptLimits table balances the
// resulting triangular workload across workers.
package localsearch

// TwoOptStep scans every eligible pair (a,b) with a < b, selects the best
// strictly improving move and applies it.
//
// Gain: d(a,next[a]) + d(b,next[b]) − d(a,b) − d(next[a],next[b]).
//
// Pairs sharing an endpoint ({a,next[a]} ∩ {b,next[b]} ≠ ∅) are skipped —
// the move would not produce two new edges. Returns the applied gain, or 0
// when no move improves (the tour is left untouched). Tours with n < 4
// have an empty 2-opt neighborhood and return 0 immediately.
//
// Complexity: O(n²) candidate checks split across workers; the one applied
// move costs O(L) where L is the reversed segment length.
func (s *Search) TwoOptStep() int64 {
	if s.n < 4 {
		return 0
	}

	look := func(from, to int, c *candidate) {
		var (
			edge1Start, edge1End int
			edge2Start, edge2End int
			before, after, gain  int64
		)
		for edge1Start = from; edge1Start < to; edge1Start++ {
			edge1End = s.next[edge1Start]
			for edge2Start = edge1Start + 1; edge2Start < s.n; edge2Start++ {
				edge2End = s.next[edge2Start]
				if edge2Start == edge1End || edge2End == edge1Start {
					// Adjacent edges; the move degenerates.
					continue
				}

				before = s.at(edge1Start, edge1End) + s.at(edge2Start, edge2End)
				after = s.at(edge1Start, edge2Start) + s.at(edge1End, edge2End)
				if before > after {
					gain = before - after
					// Strictly greater only: the first discovery of the
					// current best survives ties.
					if gain > c.gain {
						c.gain = gain
						c.edge1Start = edge1Start
						c.edge2Start = edge2Start
					}
				}
			}
		}
	}

	best := s.bestCandidate(s.twoOptLimits, look)
	if best.gain > 0 {
		s.applyTwoOpt(best)
	}

	return best.gain
}

// applyTwoOpt rewires the successor array for an accepted 2-opt move,
// reversing the sub-path from next[edge1Start] to edge2Start inclusive.
//
// Complexity: O(L) time and space, L = reversed segment length.
func (s *Search) applyTwoOpt(best candidate) {
	var (
		edge1End = s.next[best.edge1Start]
		edge2End = s.next[best.edge2Start]
	)

	// Collect the segment that needs to be reversed, exclusive of
	// edge2Start itself.
	var (
		toReverse []int
		cur       int
	)
	for cur = edge1End; cur != best.edge2Start; cur = s.next[cur] {
		toReverse = append(toReverse, cur)
	}

	// Relink: edge1Start → edge2Start, then the collected segment in
	// reverse order, then close with edge1End → edge2End.
	cur = best.edge2Start
	s.next[best.edge1Start] = cur
	var i int
	for i = len(toReverse) - 1; i >= 0; i-- {
		s.next[cur] = toReverse[i]
		cur = toReverse[i]
	}
	s.next[cur] = edge2End

	s.cost -= best.gain
}

// PerformAllTwoOptSteps applies 2-opt moves until none improves and
// returns the cumulative gain.
func (s *Search) PerformAllTwoOptSteps() int64 {
	gain, _ := performAll(s.TwoOptStep)

	return gain
}
