// Package loader - input grammars and the Problem type.
package loader

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/kvolkov/touropt/distmat"
)

var (
	// ErrSyntax is returned for a malformed location entry; the wrapped
	// message carries the 1-based ordinal of the offending location.
	ErrSyntax = errors.New("loader: invalid location syntax")

	// ErrDimensionKey is returned when a coordinate-section document has a
	// missing or malformed DIMENSION key.
	ErrDimensionKey = errors.New("loader: incorrect DIMENSION key")

	// ErrNodeCoordSection is returned when the NODE_COORD_SECTION is
	// missing or holds fewer parsable lines than DIMENSION promises.
	ErrNodeCoordSection = errors.New("loader: incorrect NODE_COORD_SECTION")

	// ErrTooFewLocations is returned when the input holds fewer than two
	// locations.
	ErrTooFewLocations = errors.New("loader: at least two locations required")
)

// validLoc matches one query-string location entry, e.g. "loc=48.85,2.35".
var validLoc = regexp.MustCompile(`^loc=(-?[0-9]+\.?[0-9]*),(-?[0-9]+\.?[0-9]*)\s*$`)

// dimensionKey extracts the instance size from a coordinate section.
var dimensionKey = regexp.MustCompile(`DIMENSION\s*:\s*([0-9]+)`)

// Problem is a parsed instance: exactly one of the two coordinate lists is
// populated, deciding which metric Matrix uses.
type Problem struct {
	// LatLon holds geographic locations from query-string input.
	LatLon []distmat.LatLon

	// Points holds planar locations from coordinate-section input.
	Points []distmat.Point
}

// Size returns the number of locations.
func (p Problem) Size() int {
	if p.LatLon != nil {
		return len(p.LatLon)
	}

	return len(p.Points)
}

// Matrix builds the instance's distance table: haversine meters for
// geographic input, rounded Euclidean for planar input.
func (p Problem) Matrix() (*distmat.Dense, error) {
	if p.LatLon != nil {
		return distmat.FromLatLon(p.LatLon)
	}

	return distmat.FromPoints(p.Points)
}

// Parse auto-detects the input grammar and parses it. A document that
// mentions DIMENSION is treated as a coordinate section; anything else as
// a query-string location list.
func Parse(input string) (Problem, error) {
	if strings.Contains(input, "DIMENSION") {
		pts, err := ParseNodeCoords(input)
		if err != nil {
			return Problem{}, err
		}

		return Problem{Points: pts}, nil
	}

	locs, err := ParseQuery(input)
	if err != nil {
		return Problem{}, err
	}

	return Problem{LatLon: locs}, nil
}

// ParseQuery parses a "loc=lat,lon&loc=lat,lon&…" list.
//
// Errors: ErrSyntax (with the location ordinal), ErrTooFewLocations.
func ParseQuery(input string) ([]distmat.LatLon, error) {
	var (
		locs  []distmat.LatLon
		parts = strings.Split(input, "&")
		part  string
		i     int
	)
	for i, part = range parts {
		m := validLoc.FindStringSubmatch(part)
		if m == nil {
			return nil, fmt.Errorf("location %d: %w", i+1, ErrSyntax)
		}
		// The regexp only admits well-formed decimals; ParseFloat cannot
		// fail on its submatches.
		lat, _ := strconv.ParseFloat(m[1], 64)
		lon, _ := strconv.ParseFloat(m[2], 64)
		locs = append(locs, distmat.LatLon{Lat: lat, Lon: lon})
	}

	if len(locs) < 2 {
		return nil, ErrTooFewLocations
	}

	return locs, nil
}

// ParseNodeCoords parses a minimal TSPLIB-style document: a DIMENSION key
// followed by a NODE_COORD_SECTION with n lines of "index x y". The index
// column is accepted and ignored; node ids are assigned in listing order.
//
// Errors: ErrDimensionKey, ErrNodeCoordSection, ErrTooFewLocations.
func ParseNodeCoords(input string) ([]distmat.Point, error) {
	dim := dimensionKey.FindStringSubmatch(input)
	if dim == nil {
		return nil, ErrDimensionKey
	}
	n, err := strconv.Atoi(dim[1])
	if err != nil {
		return nil, ErrDimensionKey
	}
	if n < 2 {
		return nil, ErrTooFewLocations
	}

	_, body, found := strings.Cut(input, "NODE_COORD_SECTION")
	if !found {
		return nil, ErrNodeCoordSection
	}

	var (
		pts    = make([]distmat.Point, 0, n)
		lines  = strings.Split(body, "\n")
		line   string
		fields []string
		x, y   float64
	)
	for _, line = range lines {
		line = strings.TrimSpace(line)
		if line == "" || line == "EOF" {
			continue
		}
		fields = strings.Fields(line)
		if len(fields) != 3 {
			return nil, fmt.Errorf("line %q: %w", line, ErrNodeCoordSection)
		}
		if x, err = strconv.ParseFloat(fields[1], 64); err != nil {
			return nil, fmt.Errorf("line %q: %w", line, ErrNodeCoordSection)
		}
		if y, err = strconv.ParseFloat(fields[2], 64); err != nil {
			return nil, fmt.Errorf("line %q: %w", line, ErrNodeCoordSection)
		}
		pts = append(pts, distmat.Point{X: x, Y: y})
		if len(pts) == n {
			break
		}
	}

	if len(pts) != n {
		return nil, ErrNodeCoordSection
	}

	return pts, nil
}
