// Package intersect implements the Intersection Engine: a brute-force
// pairwise scan and a Bentley-Ottmann sweep-line algorithm, both
// producing the same sorted sequence of intersection points, plus a
// split operation that cuts segments at those points.
package intersect

import (
	"github.com/planarkit/core/point"
	"github.com/planarkit/core/segment"
)

// Entry is one segment's touch-location at a shared intersection point.
type Entry struct {
	Index    int
	Location segment.Location
}

// M is a point shared by one or more segments, with one Entry per
// distinct segment that touches it. The Intersection Engine's output is
// a sequence of M sorted by point.Compare (or point.CompareEpsilon) over
// P.
type M struct {
	P       point.Point
	Entries []Entry
}

// hasIndex reports whether idx already has an entry at this point.
func (m *M) hasIndex(idx int) bool {
	for _, e := range m.Entries {
		if e.Index == idx {
			return true
		}
	}
	return false
}

// addEntry appends (idx, loc) if idx has no entry here yet.
func (m *M) addEntry(idx int, loc segment.Location) {
	if m.hasIndex(idx) {
		return
	}
	m.Entries = append(m.Entries, Entry{Index: idx, Location: loc})
}
