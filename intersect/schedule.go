package intersect

import (
	"github.com/google/btree"
	"github.com/planarkit/core/point"
)

// schedule is the ordered map from a shared point P to its event (an
// *M being accumulated), ordered by cmp. Both the brute-force scan and
// the sweep-line algorithm use it: the brute-force scan as the event
// map described in §4.1, the sweep as the schedule described in §4.2.
// Backed by a B-tree so obtain-or-create and pop-minimum are O(log n)
// instead of a linear slice scan, and in-order iteration needs no sort.
type schedule struct {
	tree *btree.BTreeG[*M]
	cmp  func(a, b point.Point) int
}

func newSchedule(cmp func(a, b point.Point) int) *schedule {
	less := func(a, b *M) bool { return cmp(a.P, b.P) < 0 }
	return &schedule{tree: btree.NewG(32, less), cmp: cmp}
}

// getOrCreate returns the event at p, creating an empty one if absent.
func (s *schedule) getOrCreate(p point.Point) *M {
	probe := &M{P: p}
	if found, ok := s.tree.Get(probe); ok {
		return found
	}
	s.tree.ReplaceOrInsert(probe)
	return probe
}

// find returns the event at p without creating one.
func (s *schedule) find(p point.Point) (*M, bool) {
	return s.tree.Get(&M{P: p})
}

// popMin removes and returns the lowest-ordered event, or false if
// empty.
func (s *schedule) popMin() (*M, bool) {
	return s.tree.DeleteMin()
}

// empty reports whether the schedule has no pending events.
func (s *schedule) empty() bool {
	return s.tree.Len() == 0
}

// ascending returns every event in ascending order, consuming nothing.
func (s *schedule) ascending() []*M {
	out := make([]*M, 0, s.tree.Len())
	s.tree.Ascend(func(m *M) bool {
		out = append(out, m)
		return true
	})
	return out
}
