// Package localsearch - the two-node relocate operator (or-opt, or-2).
//
// An or-opt move takes the consecutive pair (v, w) with v = next[u],
// w = next[v] out from between u and x = next[w] and reinserts it, same
// orientation, between another consecutive pair (p, q): u → v → w → x
// becomes u → x, and p → q becomes p → v → w → q. The internal edge (v,w)
// is preserved.
package localsearch

// OrOptStep scans, for every node u, every reinsertion point p around the
// cycle (from x back to u, which excludes p ∈ {u, v, w}), selects the best
// strictly improving move and applies it.
//
// Gain: d(u,v) + d(w,x) + d(p,q) − d(u,x) − d(p,v) − d(w,q).
//
// Returns the applied gain, or 0 when no move improves. Tours with n < 4
// cannot host the operator and return 0 immediately.
//
// Complexity: O(n²) candidate checks split across workers (equal-length
// ranges); the applied move is O(1).
func (s *Search) OrOptStep() int64 {
	if s.n < 4 {
		return 0
	}

	look := func(from, to int, c *candidate) {
		var (
			edge1Start, edge1End     int
			blockEnd, after          int
			edge2Start, edge2End     int
			afterW, edge1W, blockOut int64
			before, post, gain       int64
		)
		for edge1Start = from; edge1Start < to; edge1Start++ {
			edge1End = s.next[edge1Start]
			blockEnd = s.next[edge1End]
			after = s.next[blockEnd]

			// Weights that do not depend on the reinsertion point.
			afterW = s.at(edge1Start, after)
			edge1W = s.at(edge1Start, edge1End)
			blockOut = s.at(blockEnd, after)

			for edge2Start = after; edge2Start != edge1Start; edge2Start = edge2End {
				edge2End = s.next[edge2Start]

				before = edge1W + blockOut + s.at(edge2Start, edge2End)
				post = afterW + s.at(edge2Start, edge1End) + s.at(blockEnd, edge2End)
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
		// Snapshot the four successors before any write; the block (v,w)
		// keeps its internal edge and orientation.
		var (
			edge1End = s.next[best.edge1Start]
			blockEnd = s.next[edge1End]
		)
		s.next[best.edge1Start] = s.next[blockEnd]
		s.next[blockEnd] = s.next[best.edge2Start]
		s.next[best.edge2Start] = edge1End

		s.cost -= best.gain
	}

	return best.gain
}

// PerformAllOrOptSteps applies or-opt moves until none improves and
// returns the cumulative gain.
func (s *Search) PerformAllOrOptSteps() int64 {
	gain, _ := performAll(s.OrOptStep)

	return gain
}
