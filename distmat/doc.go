// SPDX-License-Identifier: MIT

// Package distmat provides read-mostly integer distance matrices for tour
// optimization.
//
// The central type is Dense — a flat row-major n×n buffer of nonnegative
// int64 weights with the explicit index formula i*n + j. Weights are plain
// integers (not float64) so that local-search gain arithmetic stays exact:
// an improvement is an improvement on every platform, with no epsilon policy.
//
// Builders:
//   - FromPoints  — planar coordinates, Euclidean distance rounded to the
//     nearest integer (the TSPLIB EUC_2D convention).
//   - FromLatLon  — geographic coordinates, haversine great-circle distance
//     in meters rounded to the nearest integer.
//
// Validate enforces the oracle contract expected by package localsearch:
// square shape, n ≥ 2, no negative entries, exact symmetry.
//
// All public entry points return sentinel errors from errors.go instead of
// panicking; tests match them via errors.Is.
package distmat
