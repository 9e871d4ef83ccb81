// SPDX-License-Identifier: MIT

// Package distmat - validation of the distance-oracle contract.
//
// Validate is the single checkpoint between arbitrary Matrix values and the
// local-search engine: shape, minimum size, negativity and exact symmetry.
// It is side-effect free and returns only sentinel errors.

package distmat

// Validate verifies that m satisfies the oracle contract and returns the
// matrix order n on success.
//
// Checks, in priority order:
//   - m non-nil                → ErrNilMatrix
//   - square shape             → ErrNonSquare
//   - n ≥ 2                    → ErrInvalidDimensions
//   - entries readable         → ErrOutOfRange (implementation defect)
//   - no negative entries      → ErrNegativeWeight
//   - d(i,j) == d(j,i) exactly → ErrAsymmetry
//
// The diagonal may hold any nonnegative value; the engine never reads it.
//
// Complexity: O(n²) time, O(1) space.
func Validate(m Matrix) (int, error) {
	if m == nil {
		return 0, ErrNilMatrix
	}

	var (
		nr = m.Rows()
		nc = m.Cols()
	)
	if nr != nc || nr <= 0 {
		return 0, ErrNonSquare
	}
	if nr < 2 {
		return 0, ErrInvalidDimensions
	}
	var n = nr

	var (
		i, j     int
		wij, wji int64
		err      error
	)
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			wij, err = m.At(i, j)
			if err != nil {
				return 0, err
			}
			if wij < 0 {
				return 0, ErrNegativeWeight
			}
			if i == j {
				continue
			}
			wji, err = m.At(j, i)
			if err != nil {
				return 0, err
			}
			if wji < 0 {
				return 0, ErrNegativeWeight
			}
			if wij != wji {
				return 0, ErrAsymmetry
			}
		}
	}

	return n, nil
}
