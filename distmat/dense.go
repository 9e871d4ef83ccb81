// SPDX-License-Identifier: MIT

// Package distmat - Dense storage (row-major) & safe accessors.
//
// Dense keeps a cache-friendly flat buffer with the explicit index formula
// i*n + j. The public surface returns errors instead of panicking; loop
// orders are fixed, so construction and iteration are deterministic.
//
// Complexity quicksheet:
//   - NewDense: O(n²) zero-init; At/Set/SetSym: O(1); Clone: O(n²).

package distmat

import (
	"fmt"
	"strings"
)

// Dense is a concrete square row-major distance matrix.
//   - n holds the order (n ≥ 2 via the public constructor).
//   - data is a flat buffer of length n*n (offset = i*n + j).
type Dense struct {
	n    int
	data []int64
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an n×n zero matrix using row-major storage.
//
// Errors: ErrInvalidDimensions when n < 2.
//
// Complexity: O(n²) zero-init, single allocation.
func NewDense(n int) (*Dense, error) {
	if n < 2 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{n: n, data: make([]int64, n*n)}, nil
}

// Rows returns the matrix order.
func (d *Dense) Rows() int { return d.n }

// Cols returns the matrix order (Dense is always square).
func (d *Dense) Cols() int { return d.n }

// At returns the entry at (i,j) with bounds checking.
//
// Complexity: O(1).
func (d *Dense) At(i, j int) (int64, error) {
	if i < 0 || i >= d.n || j < 0 || j >= d.n {
		return 0, fmt.Errorf("Dense.At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return d.data[i*d.n+j], nil
}

// Set writes the entry at (i,j) with bounds and sign checking.
//
// Complexity: O(1).
func (d *Dense) Set(i, j int, v int64) error {
	if i < 0 || i >= d.n || j < 0 || j >= d.n {
		return fmt.Errorf("Dense.Set(%d,%d): %w", i, j, ErrOutOfRange)
	}
	if v < 0 {
		return fmt.Errorf("Dense.Set(%d,%d): %w", i, j, ErrNegativeWeight)
	}
	d.data[i*d.n+j] = v

	return nil
}

// SetSym writes v at (i,j) and (j,i) so both triangles stay symmetric.
//
// Complexity: O(1).
func (d *Dense) SetSym(i, j int, v int64) error {
	if err := d.Set(i, j, v); err != nil {
		return err
	}

	return d.Set(j, i, v)
}

// Clone returns an independent deep copy of the matrix.
//
// Complexity: O(n²).
func (d *Dense) Clone() Matrix {
	cp := &Dense{n: d.n, data: make([]int64, len(d.data))}
	copy(cp.data, d.data)

	return cp
}

// String renders the matrix row by row; intended for tests and debugging,
// not for serialization.
func (d *Dense) String() string {
	var b strings.Builder

	var (
		i int
		j int
	)
	for i = 0; i < d.n; i++ {
		b.WriteString("[")
		for j = 0; j < d.n; j++ {
			if j > 0 {
				b.WriteString(" ")
			}
			fmt.Fprintf(&b, "%d", d.data[i*d.n+j])
		}
		b.WriteString("]\n")
	}

	return b.String()
}
