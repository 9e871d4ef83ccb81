// Package localsearch_test - relocate (or-1) operator tests.
package localsearch_test

import (
	"testing"
)

// TestRelocateMisplacedNodeOnLine: node 2 sits at x=5 between x=1 and x=2
// in the initial tour; the best relocate move (gain 2) re-seats it and the
// round trip reaches the optimal 2·span = 10.
func TestRelocateMisplacedNodeOnLine(t *testing.T) {
	m := line(t, []float64{0, 1, 5, 2, 3})
	s := newSearch(t, m, identity(5), 1)

	if s.Cost() != 12 {
		t.Fatalf("initial cost: want 12, got %d", s.Cost())
	}

	gain := s.RelocateStep()
	if gain != 2 {
		t.Fatalf("gain: want 2, got %d", gain)
	}
	if s.Cost() != 10 {
		t.Fatalf("cost: want 10, got %d", s.Cost())
	}

	// First-wins tie-breaking on a single worker: the u=1 move is found
	// before the equal-gain u=2 and u=3 alternatives.
	tour, err := s.Tour(startV)
	if err != nil {
		t.Fatalf("Tour: %v", err)
	}
	if !equalInts(tour, []int{0, 1, 3, 2, 4, 0}) {
		t.Fatalf("tour: want [0 1 3 2 4 0], got %v", tour)
	}

	if gain = s.RelocateStep(); gain != 0 {
		t.Fatalf("second step: want 0, got %d", gain)
	}
	checkTour(t, s, m)
}

// TestRelocateThreadCountKeepsCost: the same instance solved with more
// workers may pick a different equal-gain move but lands on the same cost.
func TestRelocateThreadCountKeepsCost(t *testing.T) {
	m := line(t, []float64{0, 1, 5, 2, 3})

	for _, threads := range []int{1, 2, 5} {
		s := newSearch(t, m, identity(5), threads)
		total := s.PerformAllRelocateSteps()
		if total != 2 {
			t.Fatalf("threads=%d: total gain want 2, got %d", threads, total)
		}
		if s.Cost() != 10 {
			t.Fatalf("threads=%d: cost want 10, got %d", threads, s.Cost())
		}
		checkTour(t, s, m)
	}
}

// TestRelocateRefusesSmall: below three nodes the neighborhood is empty,
// and on any 3-cycle every move is a no-op by symmetry.
func TestRelocateRefusesSmall(t *testing.T) {
	s := newSearch(t, line(t, []float64{0, 4}), identity(2), 1)
	if gain := s.RelocateStep(); gain != 0 {
		t.Fatalf("n=2: want 0, got %d", gain)
	}

	s = newSearch(t, line(t, []float64{0, 4, 9}), identity(3), 1)
	if gain := s.RelocateStep(); gain != 0 {
		t.Fatalf("n=3: want 0, got %d", gain)
	}
}

// TestRelocateCostBookkeeping mirrors the 2-opt bookkeeping law.
func TestRelocateCostBookkeeping(t *testing.T) {
	m := randSym(t, 15, seedDet+2)
	s := newSearch(t, m, identity(15), 4)

	for {
		before := s.Cost()
		gain := s.RelocateStep()
		if s.Cost() != before-gain {
			t.Fatalf("bookkeeping: %d - %d != %d", before, gain, s.Cost())
		}
		checkTour(t, s, m)
		if gain == 0 {
			break
		}
	}
}
