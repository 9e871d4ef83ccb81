// Package localsearch - sentinel errors, options and result types.
package localsearch

import (
	"errors"
	"runtime"
)

var (
	// ErrDimensionMismatch is returned when the initial sequence is not a
	// permutation of {0..n−1}: wrong length, duplicate or out-of-range ids.
	ErrDimensionMismatch = errors.New("localsearch: dimension mismatch")

	// ErrStartOutOfRange is returned by Tour when the requested first node
	// is outside [0..n−1].
	ErrStartOutOfRange = errors.New("localsearch: start vertex out of range")

	// ErrThreadCount is returned when Options.Threads is not positive.
	ErrThreadCount = errors.New("localsearch: thread count must be positive")
)

// Options configures a Search.
type Options struct {
	// Threads is the requested worker count for candidate scans. It is
	// clamped to n at construction; each operator step spawns Threads−1
	// goroutines and works the last range on the calling goroutine.
	Threads int
}

// DefaultOptions returns the canonical configuration: one worker per
// available CPU.
func DefaultOptions() Options {
	return Options{Threads: runtime.GOMAXPROCS(0)}
}

// Summary reports what Optimize did: per-operator applied-move counts and
// gain totals, plus the number of full operator rounds (the final,
// all-zero round included).
type Summary struct {
	Rounds int

	TwoOptSteps   int
	RelocateSteps int
	OrOptSteps    int

	TwoOptGain   int64
	RelocateGain int64
	OrOptGain    int64
}

// TotalGain is the cumulative cost reduction over all operators; it equals
// initial cost − final cost.
func (s Summary) TotalGain() int64 {
	return s.TwoOptGain + s.RelocateGain + s.OrOptGain
}

// candidate is one worker's best move so far: the gain and the two edge
// starts identifying the move. Reset at the start of every step.
type candidate struct {
	gain       int64
	edge1Start int
	edge2Start int
}
