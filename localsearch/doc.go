// Package localsearch improves symmetric TSP tours by parallel
// steepest-descent local search.
//
// The engine holds one Hamiltonian cycle over {0..n−1} as a successor array
// next[i] — the node immediately following i — and repeatedly applies three
// neighborhood operators until none of them can produce a strictly positive
// gain:
//
//   - TwoOptStep      — remove two non-adjacent edges, reconnect the only
//     other way that keeps a single cycle; reverses one segment.
//   - RelocateStep    — move one node between another adjacent pair.
//   - OrOptStep       — move a block of two consecutive nodes, same
//     orientation, between another adjacent pair.
//
// Each step scans its full candidate space, split across worker goroutines
// by precomputed partition tables, selects the single best move, and applies
// it in place. Optimize composes the three perform-all routines to a fixed
// point: the resulting tour is a local minimum under the union of the three
// neighborhoods.
//
// Determinism:
//   - Per-worker updates overwrite only on strictly greater gain, so a
//     worker keeps its first discovery of the current best.
//   - Reduction across workers is leftmost-wins.
//
// Together these make the chosen move a pure function of (matrix, initial
// tour, thread count). Changing the thread count may pick a different move
// among equal-gain candidates, never change whether improvement is found.
//
// Design:
//   - Weights are prefetched into a flat int64 buffer at construction; hot
//     loops read two flat arrays and perform exact integer arithmetic.
//   - The successor array is read concurrently during a scan and written
//     only after all workers have joined, so no locks are needed.
//   - No logging, no panics on user input — only sentinel errors (from
//     types.go, or distmat's for a bad matrix) at construction; steps and
//     moves are total.
package localsearch
