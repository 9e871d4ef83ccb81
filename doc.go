// Package touropt improves symmetric TSP tours by parallel steepest-descent
// local search.
//
// Given a complete symmetric integer distance matrix over n locations and an
// initial Hamiltonian cycle, the engine repeatedly applies three neighborhood
// operators — 2-opt, single-node relocate and or-opt (two-node blocks) — and
// stops at a local minimum under the union of the three neighborhoods.
//
// Packages:
//
//   - distmat      — integer distance matrices: dense storage, builders from
//     planar points (rounded Euclidean) and lat/lon pairs (haversine meters),
//     plus shape/negativity/symmetry validation.
//
//   - localsearch  — the engine: successor-array tour representation,
//     per-operator work partitions, parallel candidate scans with
//     deterministic tie-breaking, and the fixed-point improvement driver.
//
//   - loader       — coordinate input parsing: loc=lat,lon&… query strings
//     and minimal TSPLIB-style coordinate sections.
//
//   - solstore     — SQLite-backed record of solved instances.
//
//   - server       — HTTP surface (gorilla/mux) around parse → build → solve,
//     used by cmd/touropt-server.
//
// The core is deterministic: for a fixed matrix, initial tour and thread
// count, every step selects the same move. Changing the thread count may
// change which of several equal-gain moves is taken, never whether an
// improvement is found.
package touropt
