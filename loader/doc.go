// Package loader parses raw coordinate input into problem instances.
//
// Two input grammars are accepted, mirroring the two ways a tour request
// typically arrives:
//
//   - Query-string lists: "loc=48.85,2.35&loc=52.52,13.40&…" — each
//     location is a lat,lon pair in decimal degrees. Distances for this
//     form are haversine meters.
//
//   - Coordinate sections: a minimal TSPLIB-style document with a
//     "DIMENSION : n" key and a "NODE_COORD_SECTION" holding n lines of
//     "index x y". Distances for this form are rounded Euclidean.
//
// Parse auto-detects the grammar (a document mentioning DIMENSION is a
// coordinate section, anything else a query string) and returns a Problem
// that knows how to build its distance matrix via package distmat.
//
// At least two locations are required. Query-string syntax errors report
// the ordinal of the offending location; coordinate-section errors quote
// the offending line.
package loader
