// Package numeric provides epsilon-aware floating-point comparisons used by
// the point, rectangle, segment, and intersect packages.
//
// Direct equality checks on float64 coordinates are unreliable once values
// have passed through intersection arithmetic; FloatEquals and its relatives
// give every other package a single place to apply a configurable tolerance.
package numeric
