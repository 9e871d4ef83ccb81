// SPDX-License-Identifier: MIT

// Package distmat — matrix builders from raw coordinates.
//
// Two metrics are supported, matching the two input grammars of package
// loader: planar points with rounded Euclidean distance, and geographic
// lat/lon pairs with haversine great-circle distance in meters.

package distmat

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// Point is a planar coordinate pair.
type Point struct {
	X float64
	Y float64
}

// LatLon is a geographic coordinate pair in decimal degrees.
type LatLon struct {
	Lat float64
	Lon float64
}

// FromPoints builds a symmetric matrix of Euclidean distances rounded to the
// nearest integer (the TSPLIB EUC_2D convention). The diagonal stays zero.
//
// Errors: ErrTooFewLocations when len(pts) < 2.
//
// Complexity: O(n²) time, O(n²) space.
func FromPoints(pts []Point) (*Dense, error) {
	var n = len(pts)
	if n < 2 {
		return nil, ErrTooFewLocations
	}

	d, err := NewDense(n)
	if err != nil {
		return nil, err
	}

	var (
		i, j   int
		dx, dy float64
		w      int64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			dx = pts[i].X - pts[j].X
			dy = pts[i].Y - pts[j].Y
			w = int64(math.Round(math.Sqrt(dx*dx + dy*dy)))
			// SetSym cannot fail here: indices are in range and w ≥ 0.
			_ = d.SetSym(i, j, w)
		}
	}

	return d, nil
}

// FromLatLon builds a symmetric matrix of haversine great-circle distances
// in whole meters. The diagonal stays zero.
//
// Errors: ErrTooFewLocations when len(locs) < 2.
//
// Complexity: O(n²) time, O(n²) space.
func FromLatLon(locs []LatLon) (*Dense, error) {
	var n = len(locs)
	if n < 2 {
		return nil, ErrTooFewLocations
	}

	d, err := NewDense(n)
	if err != nil {
		return nil, err
	}

	// orb.Point is (lon, lat) order.
	pts := make([]orb.Point, n)
	var i int
	for i = 0; i < n; i++ {
		pts[i] = orb.Point{locs[i].Lon, locs[i].Lat}
	}

	var (
		j int
		w int64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			w = int64(math.Round(geo.DistanceHaversine(pts[i], pts[j])))
			_ = d.SetSym(i, j, w)
		}
	}

	return d, nil
}
