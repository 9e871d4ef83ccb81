// SPDX-License-Identifier: MIT
// Package distmat: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// distmat package. All entry points MUST return these sentinels and tests
// MUST check them via errors.Is. Nothing here panics on user input.

package distmat

import "errors"

// Every message is prefixed with "distmat: ..." for consistency and easy
// grepping across logs. Do not %w-wrap these sentinels when returning
// directly; if context is essential, wrap at the outer boundary with
// fmt.Errorf("ctx: %w", ErrX) — callers still match via errors.Is.

var (
	// ErrInvalidDimensions is returned when a requested matrix order is
	// non-positive or below the minimum instance size (n ≥ 2).
	ErrInvalidDimensions = errors.New("distmat: dimensions must be >= 2")

	// ErrOutOfRange indicates that a row or column index is outside valid
	// bounds. Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("distmat: index out of range")

	// ErrNonSquare signals that a square matrix was required but the input
	// was not square.
	ErrNonSquare = errors.New("distmat: matrix is not square")

	// ErrNegativeWeight signals a negative distance entry; the oracle
	// contract requires nonnegative integers everywhere.
	ErrNegativeWeight = errors.New("distmat: negative weight")

	// ErrAsymmetry signals that d(i,j) != d(j,i) for some pair; the local
	// search engine requires exact symmetry.
	ErrAsymmetry = errors.New("distmat: matrix is not symmetric")

	// ErrNilMatrix indicates that a nil Matrix argument was passed where a
	// concrete matrix is required (returned by Validate).
	ErrNilMatrix = errors.New("distmat: nil matrix")

	// ErrTooFewLocations is returned by builders when fewer than two
	// coordinates are supplied; a tour needs at least two locations.
	ErrTooFewLocations = errors.New("distmat: at least two locations required")
)
