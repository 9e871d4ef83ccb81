// Package localsearch - the single-node relocate operator (or-1).
//
// A relocate move takes the node v = next[u] out from between u and
// w = next[v] and reinserts it between another consecutive pair (p, q):
// u → v → w becomes u → w, and p → q becomes p → v → q.
package localsearch

// RelocateStep scans, for every node u, every reinsertion point p around
// the cycle (from w back to u, which excludes p ∈ {u, v}), selects the best
// strictly improving move and applies it.
//
// Gain: d(u,v) + d(v,w) + d(p,q) − d(u,w) − d(p,v) − d(v,q).
//
// Returns the applied gain, or 0 when no move improves. Tours with n < 3
// have an empty relocate neighborhood and return 0 immediately; on any
// 3-cycle the gain is identically zero by symmetry.
//
// Complexity: O(n²) candidate checks split across workers (equal-length
// ranges — the inner walk is the same length for every u); the applied
// move is O(1).
func (s *Search) RelocateStep() int64 {
	if s.n < 3 {
		return 0
	}

	look := func(from, to int, c *candidate) {
		var (
			edge1Start, edge1End, after int
			edge2Start, edge2End        int
			relocated, edge1W, afterW   int64
			before, post, gain          int64
		)
		for edge1Start = from; edge1Start < to; edge1Start++ {
			edge1End = s.next[edge1Start]
			after = s.next[edge1End]

			// Weights that do not depend on the reinsertion point.
			afterW = s.at(edge1Start, after)
			edge1W = s.at(edge1Start, edge1End)
			relocated = s.at(edge1End, after)

			for edge2Start = after; edge2Start != edge1Start; edge2Start = edge2End {
				edge2End = s.next[edge2Start]

				before = edge1W + relocated + s.at(edge2Start, edge2End)
				post = afterW + s.at(edge2Start, edge1End) + s.at(edge1End, edge2End)
				if before > post {
					gain = before - post
					if gain > c.gain {
						c.gain = gain
						c.edge1Start = edge1Start
						c.edge2Start = edge2Start
					}
				}
			}
		}
	}

	best := s.bestCandidate(s.rankLimits, look)
	if best.gain > 0 {
		// Snapshot the three successors before any write: each assignment
		// below reads a pre-move value.
		var (
			edge1End = s.next[best.edge1Start]
			after    = s.next[edge1End]
			edge2End = s.next[best.edge2Start]
		)
		s.next[best.edge1Start] = after
		s.next[edge1End] = edge2End
		s.next[best.edge2Start] = edge1End

		s.cost -= best.gain
	}

	return best.gain
}

// PerformAllRelocateSteps applies relocate moves until none improves and
// returns the cumulative gain.
func (s *Search) PerformAllRelocateSteps() int64 {
	gain, _ := performAll(s.RelocateStep)

	return gain
}
