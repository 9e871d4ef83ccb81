// Package localsearch_test - or-opt (or-2) operator tests.
package localsearch_test

import (
	"testing"
)

// TestOrOptMovesMisplacedBlock: the block (2,3) sits at x=(4,5) between
// x=1 and x=2; one or-opt step (gain 2) re-seats the pair, preserving its
// orientation, and reaches the optimal round trip 10.
func TestOrOptMovesMisplacedBlock(t *testing.T) {
	m := line(t, []float64{0, 1, 4, 5, 2, 3})
	s := newSearch(t, m, identity(6), 1)

	if s.Cost() != 12 {
		t.Fatalf("initial cost: want 12, got %d", s.Cost())
	}

	gain := s.OrOptStep()
	if gain != 2 {
		t.Fatalf("gain: want 2, got %d", gain)
	}
	if s.Cost() != 10 {
		t.Fatalf("cost: want 10, got %d", s.Cost())
	}

	// First-wins on one worker picks reinsertion after node 4; the block
	// keeps its internal orientation: …→2→3→… survives.
	tour, err := s.Tour(startV)
	if err != nil {
		t.Fatalf("Tour: %v", err)
	}
	if !equalInts(tour, []int{0, 1, 4, 2, 3, 5, 0}) {
		t.Fatalf("tour: want [0 1 4 2 3 5 0], got %v", tour)
	}

	if gain = s.OrOptStep(); gain != 0 {
		t.Fatalf("second step: want 0, got %d", gain)
	}
	checkTour(t, s, m)
}

// TestOrOptRefusesSmall: the operator needs at least four nodes.
func TestOrOptRefusesSmall(t *testing.T) {
	for _, xs := range [][]float64{{0, 7}, {0, 3, 9}} {
		s := newSearch(t, line(t, xs), identity(len(xs)), 1)
		if gain := s.OrOptStep(); gain != 0 {
			t.Fatalf("n=%d: want 0, got %d", len(xs), gain)
		}
	}
}

// TestOrOptCostBookkeeping mirrors the 2-opt bookkeeping law.
func TestOrOptCostBookkeeping(t *testing.T) {
	m := randSym(t, 15, seedDet+3)
	s := newSearch(t, m, identity(15), 5)

	for {
		before := s.Cost()
		gain := s.OrOptStep()
		if s.Cost() != before-gain {
			t.Fatalf("bookkeeping: %d - %d != %d", before, gain, s.Cost())
		}
		checkTour(t, s, m)
		if gain == 0 {
			break
		}
	}
}
