// Package localsearch - Search construction, partition tables and the
// parallel scan/reduce scaffolding shared by the three operators.
//
// Contracts:
//   - The distance matrix is validated once (shape, negativity, exact
//     symmetry) and prefetched into a flat buffer; it is never re-read.
//   - The successor array always encodes a single cycle covering all n
//     nodes: every constructor and every operator application preserves it.
//   - Partition tables are computed once and are read-only afterwards.
package localsearch

import (
	"sync"

	"github.com/kvolkov/touropt/distmat"
)

// Search is a local-search engine bound to one distance matrix and one
// mutable tour.
type Search struct {
	n       int
	threads int

	// w is the prefetched weight table in linearized form: w[u*n+v] = d(u,v).
	w []int64

	// next[i] is the node immediately following i in the cycle.
	next []int

	// cost is the current tour cost, maintained incrementally: every
	// applied move subtracts its gain.
	cost int64

	// rankLimits splits the outer index range [0,n) into threads
	// equal-length pieces for relocate and or-opt.
	rankLimits []int

	// twoOptLimits splits [0,n) so that each piece carries approximately
	// the same number of 2-opt candidate checks (work on outer index i
	// shrinks as i grows; equal lengths would imbalance by a factor of
	// threads).
	twoOptLimits []int
}

// NewSearch builds a Search from a distance oracle, an initial node
// sequence and options.
//
// Contract:
//   - dist must satisfy the oracle contract (distmat.Validate): square,
//     n ≥ 2, nonnegative, exactly symmetric.
//   - seq must be a permutation of {0..n−1}; closure is implicit (the last
//     element's successor is the first).
//   - opts.Threads ≥ 1; the effective worker count is min(Threads, n).
//
// Errors: ErrThreadCount, ErrDimensionMismatch, or a distmat sentinel.
//
// Complexity: O(n²) time (validation + prefetch), O(n²) space.
func NewSearch(dist distmat.Matrix, seq []int, opts Options) (*Search, error) {
	if opts.Threads < 1 {
		return nil, ErrThreadCount
	}

	n, err := distmat.Validate(dist)
	if err != nil {
		return nil, err
	}
	if err = ValidatePermutation(seq, n); err != nil {
		return nil, err
	}

	s := &Search{n: n, threads: opts.Threads}
	if s.threads > n {
		s.threads = n
	}

	// Prefetch weights into a flat buffer to remove interface indirection
	// from the scan loops. Validate already proved every read succeeds.
	s.w = make([]int64, n*n)
	var (
		i, j int
		x    int64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			x, _ = dist.At(i, j)
			s.w[i*n+j] = x
		}
	}

	// Build the successor array from the ordered sequence.
	s.next = make([]int, n)
	for i = 0; i < n; i++ {
		s.next[seq[i]] = seq[(i+1)%n]
	}

	// Initial cost: one outgoing edge per node covers the whole cycle.
	for i = 0; i < n; i++ {
		s.cost += s.at(i, s.next[i])
	}

	s.rankLimits = equalRankLimits(n, s.threads)
	s.twoOptLimits = twoOptRankLimits(n, s.threads)

	return s, nil
}

// at is the hot-path weight accessor; zero allocations, no bounds checks
// beyond the slice's own.
func (s *Search) at(u, v int) int64 { return s.w[u*s.n+v] }

// Size returns the number of nodes.
func (s *Search) Size() int { return s.n }

// Threads returns the effective worker count (requested, clamped to n).
func (s *Search) Threads() int { return s.threads }

// Cost returns the current total tour cost.
func (s *Search) Cost() int64 { return s.cost }

// Tour returns the current cycle as a closed sequence of length n+1
// starting and ending at start, produced by walking the successor array.
//
// Errors: ErrStartOutOfRange.
//
// Complexity: O(n) time, O(n) space.
func (s *Search) Tour(start int) ([]int, error) {
	if start < 0 || start >= s.n {
		return nil, ErrStartOutOfRange
	}

	out := make([]int, s.n+1)

	var (
		i   int
		cur = start
	)
	for i = 0; i < s.n; i++ {
		out[i] = cur
		cur = s.next[cur]
	}
	out[s.n] = start

	return out, nil
}

// equalRankLimits splits [0,n) into t contiguous ranges whose lengths
// differ by at most one: the first n mod t ranges get the extra index.
// Returns t+1 boundaries with limits[0]=0 and limits[t]=n.
//
// Complexity: O(t).
func equalRankLimits(n, t int) []int {
	var (
		limits = make([]int, t+1)
		q      = n / t
		r      = n % t
		k      int
		shift  int
	)
	for k = 1; k < t; k++ {
		if shift < r {
			shift++
		}
		limits[k] = k*q + shift
	}
	limits[t] = n

	return limits
}

// twoOptRankLimits splits [0,n) by cumulative 2-opt lookup counts so that
// each range carries approximately total/t candidate checks.
//
// With the a<b enumeration the outer index 0 performs n−3 inner checks,
// outer index 1 again n−3, then one fewer per index down to zero; the
// total is n(n−3)/2. Boundary k is the smallest rank whose cumulative
// count reaches k·(total/t), advanced by one.
//
// For t == 1, or for n < 4 where the 2-opt neighborhood is empty, the
// equal-length split is returned instead.
//
// Complexity: O(n).
func twoOptRankLimits(n, t int) []int {
	if t == 1 || n < 4 {
		return equalRankLimits(n, t)
	}

	// lookups[i] is the number of inner checks for outer index i.
	lookups := make([]int, n-1)
	lookups[0] = n - 3
	var i int
	for i = 1; i < n-1; i++ {
		lookups[i] = n - 2 - i
	}

	// Prefix sums of lookups.
	cum := make([]int, n-1)
	cum[0] = lookups[0]
	for i = 1; i < n-1; i++ {
		cum[i] = cum[i-1] + lookups[i]
	}

	var (
		total  = n * (n - 3) / 2
		share  = total / t
		limits = make([]int, 0, t+1)
		rank   int
		k      int
	)
	limits = append(limits, 0)
	for k = 1; k < t; k++ {
		for cum[rank] < k*share {
			rank++
		}
		rank++
		limits = append(limits, rank)
	}
	limits = append(limits, n)

	return limits
}

// bestCandidate fans one operator's scan out over the t ranges of limits
// and reduces the per-worker results to a single winner.
//
// The calling goroutine spawns t−1 workers, scans the last range itself,
// then joins. Workers read the successor array and the weight buffer and
// write only their own candidate slot, so no synchronization beyond the
// join is required. Reduction keeps the leftmost slot on equal gains.
func (s *Search) bestCandidate(limits []int, look func(from, to int, c *candidate)) candidate {
	var (
		t     = s.threads
		cands = make([]candidate, t)
		wg    sync.WaitGroup
		i     int
	)

	wg.Add(t - 1)
	for i = 0; i < t-1; i++ {
		go func(slot int) {
			defer wg.Done()
			look(limits[slot], limits[slot+1], &cands[slot])
		}(i)
	}
	look(limits[t-1], limits[t], &cands[t-1])
	wg.Wait()

	best := cands[0]
	for i = 1; i < t; i++ {
		if cands[i].gain > best.gain {
			best = cands[i]
		}
	}

	return best
}
