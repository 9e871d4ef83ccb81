// Package loader_test - grammar acceptance and rejection tests.
package loader_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kvolkov/touropt/loader"
)

// TestParseQueryOK parses a three-stop lat/lon list.
func TestParseQueryOK(t *testing.T) {
	locs, err := loader.ParseQuery("loc=48.8566,2.3522&loc=52.52,13.405&loc=-33.9,151.2")
	require.NoError(t, err)
	require.Len(t, locs, 3)
	require.InDelta(t, 48.8566, locs[0].Lat, 1e-9)
	require.InDelta(t, 2.3522, locs[0].Lon, 1e-9)
	require.InDelta(t, -33.9, locs[2].Lat, 1e-9)
}

// TestParseQuerySyntax rejects malformed entries with their ordinal.
func TestParseQuerySyntax(t *testing.T) {
	for _, input := range []string{
		"loc=1,2&loc=3;4",     // bad separator
		"loc=1,2&pos=3,4",     // wrong key
		"loc=1,2&loc=3,4,5",   // extra component
		"loc=1,2&loc=abc,4.0", // non-numeric
	} {
		_, err := loader.ParseQuery(input)
		require.ErrorIs(t, err, loader.ErrSyntax, "input %q", input)
		require.Contains(t, err.Error(), "location 2")
	}
}

// TestParseQueryTooFew rejects a single location.
func TestParseQueryTooFew(t *testing.T) {
	_, err := loader.ParseQuery("loc=1.0,2.0")
	require.ErrorIs(t, err, loader.ErrTooFewLocations)
}

// TestParseNodeCoordsOK parses a minimal coordinate section.
func TestParseNodeCoordsOK(t *testing.T) {
	input := "NAME : square\nDIMENSION : 4\nNODE_COORD_SECTION\n" +
		"1 0 0\n2 10 10\n3 10 0\n4 0 10\nEOF\n"

	pts, err := loader.ParseNodeCoords(input)
	require.NoError(t, err)
	require.Len(t, pts, 4)
	require.Equal(t, 10.0, pts[1].X)
	require.Equal(t, 10.0, pts[1].Y)
}

// TestParseNodeCoordsBadDimension rejects missing or undersized keys.
func TestParseNodeCoordsBadDimension(t *testing.T) {
	_, err := loader.ParseNodeCoords("NODE_COORD_SECTION\n1 0 0\n")
	require.ErrorIs(t, err, loader.ErrDimensionKey)

	_, err = loader.ParseNodeCoords("DIMENSION : 1\nNODE_COORD_SECTION\n1 0 0\n")
	require.ErrorIs(t, err, loader.ErrTooFewLocations)
}

// TestParseNodeCoordsShortSection rejects sections shorter than DIMENSION.
func TestParseNodeCoordsShortSection(t *testing.T) {
	input := "DIMENSION : 4\nNODE_COORD_SECTION\n1 0 0\n2 1 1\nEOF\n"
	_, err := loader.ParseNodeCoords(input)
	require.ErrorIs(t, err, loader.ErrNodeCoordSection)
}

// TestParseAutoDetect routes by grammar and the Problem builds a matrix.
func TestParseAutoDetect(t *testing.T) {
	p, err := loader.Parse("loc=48.85,2.35&loc=52.52,13.40")
	require.NoError(t, err)
	require.NotNil(t, p.LatLon)
	require.Equal(t, 2, p.Size())

	m, err := p.Matrix()
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())

	p, err = loader.Parse("DIMENSION : 2\nNODE_COORD_SECTION\n1 0 0\n2 3 4\n")
	require.NoError(t, err)
	require.NotNil(t, p.Points)

	m, err = p.Matrix()
	require.NoError(t, err)

	d, err := m.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, int64(5), d)
}
