// Package localsearch_test provides lightweight testing helpers shared
// across *_test.go files in this package. The helpers are intentionally
// minimal, stdlib-only, and avoid duplicating functionality that already
// lives in focused test files.
package localsearch_test

import (
	"math/rand"
	"testing"

	"github.com/kvolkov/touropt/distmat"
	"github.com/kvolkov/touropt/localsearch"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// seedDet is the deterministic seed for random symmetric instances.
	seedDet = int64(42)

	// startV is the canonical start node used for tour normalization.
	startV = 0

	// maxRandWeight keeps random instances effectively tie-free: with
	// weights drawn from [1, 1e6] equal gains across distinct moves are
	// vanishingly rare, so thread-count runs follow identical move
	// sequences.
	maxRandWeight = int64(1_000_000)
)

// -----------------------------------------------------------------------------
// Instance builders
// -----------------------------------------------------------------------------

// euclid builds a rounded-Euclidean distance matrix from planar points.
func euclid(t *testing.T, pts [][2]float64) *distmat.Dense {
	t.Helper()

	ps := make([]distmat.Point, len(pts))
	var i int
	for i = 0; i < len(pts); i++ {
		ps[i] = distmat.Point{X: pts[i][0], Y: pts[i][1]}
	}

	m, err := distmat.FromPoints(ps)
	if err != nil {
		t.Fatalf("FromPoints: %v", err)
	}

	return m
}

// line builds a rounded-Euclidean matrix from 1-D coordinates on the x axis.
func line(t *testing.T, xs []float64) *distmat.Dense {
	t.Helper()

	pts := make([][2]float64, len(xs))
	var i int
	for i = 0; i < len(xs); i++ {
		pts[i] = [2]float64{xs[i], 0}
	}

	return euclid(t, pts)
}

// randSym builds a random symmetric matrix with weights in [1, maxRandWeight].
func randSym(t *testing.T, n int, seed int64) *distmat.Dense {
	t.Helper()

	m, err := distmat.NewDense(n)
	if err != nil {
		t.Fatalf("NewDense: %v", err)
	}

	rng := rand.New(rand.NewSource(seed))
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if err = m.SetSym(i, j, 1+rng.Int63n(maxRandWeight)); err != nil {
				t.Fatalf("SetSym: %v", err)
			}
		}
	}

	return m
}

// identity returns the sequence 0,1,…,n−1.
func identity(n int) []int {
	seq := make([]int, n)
	var i int
	for i = 0; i < n; i++ {
		seq[i] = i
	}

	return seq
}

// -----------------------------------------------------------------------------
// Search helpers
// -----------------------------------------------------------------------------

// newSearch constructs a Search or fails the test.
func newSearch(t *testing.T, m distmat.Matrix, seq []int, threads int) *localsearch.Search {
	t.Helper()

	s, err := localsearch.NewSearch(m, seq, localsearch.Options{Threads: threads})
	if err != nil {
		t.Fatalf("NewSearch: %v", err)
	}

	return s
}

// checkTour validates the closed-tour invariants and that the engine's
// incremental cost matches an independent recomputation on the matrix.
func checkTour(t *testing.T, s *localsearch.Search, m distmat.Matrix) {
	t.Helper()

	tour, err := s.Tour(startV)
	if err != nil {
		t.Fatalf("Tour: %v", err)
	}
	if err = localsearch.ValidateTour(tour, s.Size(), startV); err != nil {
		t.Fatalf("tour invalid: %v (%v)", err, tour)
	}

	cost, err := localsearch.TourCost(m, tour)
	if err != nil {
		t.Fatalf("TourCost: %v", err)
	}
	if cost != s.Cost() {
		t.Fatalf("cost bookkeeping drifted: recomputed %d, tracked %d", cost, s.Cost())
	}
}

// equalInts compares two int slices.
func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	var i int
	for i = 0; i < len(a); i++ {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
