// Package localsearch — tour utilities shared by the engine and its callers.
//
// This file contains compact, allocation-conscious helpers that operate on
// tour structure (index sequences) and tour cost:
//   - ValidatePermutation: verify a permutation over {0..n−1}.
//   - ValidateTour: enforce closed Hamiltonian-cycle invariants.
//   - TourCost: total cost of a closed tour on a distance matrix.
//
// Design:
//   - No logging, no panics on user input — only sentinel errors.
//   - O(n) time; at most one O(n) marker slice of allocation.
package localsearch

import "github.com/kvolkov/touropt/distmat"

// ValidatePermutation checks that seq is a permutation of {0..n−1} of
// length n. It does not allocate besides a single O(n) boolean marker slice.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(seq []int, n int) error {
	if len(seq) != n {
		return ErrDimensionMismatch
	}
	if n <= 0 {
		return ErrDimensionMismatch
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = seq[i]
		// Out-of-range element violates the permutation contract.
		if v < 0 || v >= n {
			return ErrDimensionMismatch
		}
		// So does a duplicate.
		if seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}

	return nil
}

// ValidateTour enforces closed Hamiltonian-cycle invariants:
//
//	len(tour) == n+1, tour[0]==tour[n]==start,
//	each node v∈[0..n−1] appears exactly once in positions [0..n−1].
//
// Returns nil if valid.
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, n int, start int) error {
	if n <= 0 {
		return ErrDimensionMismatch
	}
	if len(tour) != n+1 {
		return ErrDimensionMismatch
	}
	if start < 0 || start >= n {
		return ErrStartOutOfRange
	}
	if tour[0] != start || tour[n] != start {
		return ErrDimensionMismatch
	}

	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = tour[i]
		if v < 0 || v >= n {
			return ErrDimensionMismatch
		}
		if seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}

	return nil
}

// TourCost sums costs along the cycle edges tour[i]→tour[i+1].
//
// Contract:
//   - tour must be closed: len(tour) ≥ 2 with indices within [0..n−1].
//   - m must be square; entries are read through the Matrix interface.
//
// Errors: ErrDimensionMismatch on shape/range violations, distmat
// sentinels propagated from reads.
//
// Complexity: O(n) time, O(1) space.
func TourCost(m distmat.Matrix, tour []int) (int64, error) {
	if m == nil || len(tour) < 2 {
		return 0, ErrDimensionMismatch
	}
	var (
		nr = m.Rows()
		nc = m.Cols()
	)
	if nr != nc || nr <= 0 {
		return 0, distmat.ErrNonSquare
	}

	var (
		sum int64
		i   int
		u   int
		v   int
		w   int64
		err error
		n   = nr
		l   = len(tour) - 1
	)
	for i = 0; i < l; i++ {
		u = tour[i]
		v = tour[i+1]
		if u < 0 || u >= n || v < 0 || v >= n {
			return 0, ErrDimensionMismatch
		}
		w, err = m.At(u, v)
		if err != nil {
			return 0, err
		}
		if w < 0 {
			return 0, distmat.ErrNegativeWeight
		}
		sum += w
	}

	return sum, nil
}
