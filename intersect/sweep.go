package intersect

import (
	"fmt"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/emirpasic/gods/utils"
	"github.com/planarkit/core/errs"
	"github.com/planarkit/core/point"
	"github.com/planarkit/core/segment"
)

// FindSweep returns every intersection among segments using the
// Bentley-Ottmann sweep-line algorithm, sorted by point.Compare. It
// fails with errs.ErrInvalidArgument for a nil input or a degenerate
// segment, and with errs.ErrInvalidState if the sweep-line structure's
// own consistency checks trip (see sweepState.handleEvent).
func FindSweep(segments []segment.Segment) ([]M, error) {
	if segments == nil {
		return nil, fmt.Errorf("%w: segments is nil", errs.ErrInvalidArgument)
	}

	st, err := newSweepState(segments)
	if err != nil {
		return nil, err
	}

	for {
		e, ok := st.schedule.popMin()
		if !ok {
			break
		}
		st.cursor = e.P
		if err := st.handleEvent(e); err != nil {
			return nil, err
		}
	}
	if st.sweepLine.Size() != 0 {
		return nil, fmt.Errorf("%w: sweep line not empty after schedule drained", errs.ErrInvalidState)
	}

	return st.output, nil
}

// sweepState is the working state of one FindSweep call, discarded when it
// returns. No part of it is ever exposed to the caller.
type sweepState struct {
	original []segment.Segment
	oriented []segment.Segment
	reversed []bool
	invSlope []float64
	position []float64

	schedule  *schedule
	sweepLine *redblacktree.Tree
	cursor    point.Point
	output    []M
}

func newSweepState(segments []segment.Segment) (*sweepState, error) {
	st := &sweepState{
		original: segments,
		oriented: make([]segment.Segment, len(segments)),
		reversed: make([]bool, len(segments)),
		invSlope: make([]float64, len(segments)),
		position: make([]float64, len(segments)),
		schedule: newSchedule(point.Compare),
	}

	st.sweepLine = redblacktree.NewWith(utils.Comparator(func(a, b interface{}) int {
		return st.compareIndices(a.(int), b.(int))
	}))

	for i, s := range segments {
		if s.Start().Eq(s.End()) {
			return nil, fmt.Errorf("%w: segment %d has coincident start and end", errs.ErrInvalidArgument, i)
		}
		if point.Compare(s.Start(), s.End()) <= 0 {
			st.oriented[i] = s
			st.reversed[i] = false
		} else {
			st.oriented[i] = s.Reverse()
			st.reversed[i] = true
		}
		st.invSlope[i] = st.oriented[i].InverseSlope()
		st.schedule.getOrCreate(st.oriented[i].Start()).addEntry(i, segment.START)
		st.schedule.getOrCreate(st.oriented[i].End()).addEntry(i, segment.END)
	}
	return st, nil
}

// compareIndices is the sweep-line comparator: position first, slope
// second, index last as a final tie-break. Exact floating-point
// equality only, by design: handleEvent sets position to the cursor's x
// for every index at an event, so segments through the same point tie
// on position and are ordered by slope with no tolerance involved.
func (st *sweepState) compareIndices(a, b int) int {
	if st.position[a] != st.position[b] {
		if st.position[a] < st.position[b] {
			return -1
		}
		return 1
	}
	if st.invSlope[a] != st.invSlope[b] {
		if st.invSlope[a] < st.invSlope[b] {
			return -1
		}
		return 1
	}
	if a != b {
		if a < b {
			return -1
		}
		return 1
	}
	return 0
}

func (st *sweepState) handleEvent(e *M) error {
	var toRemove []int
	added := false
	for _, entry := range e.Entries {
		switch entry.Location {
		case segment.START:
			added = true
		case segment.END:
			toRemove = append(toRemove, entry.Index)
		case segment.BETWEEN:
			toRemove = append(toRemove, entry.Index)
			added = true
		}
	}

	for _, idx := range toRemove {
		if _, found := st.sweepLine.Get(idx); !found {
			return fmt.Errorf("%w: sweep line missing index %d at removal", errs.ErrInvalidState, idx)
		}
		st.sweepLine.Remove(idx)
	}

	if !added {
		if len(toRemove) > 0 {
			lowest, highest := st.extremes(toRemove)
			prev, prevOk := st.sweepLine.Floor(lowest)
			next, nextOk := st.sweepLine.Ceiling(highest)
			if prevOk && nextOk {
				st.addCrossing(prev.Key.(int), next.Key.(int), e)
			}
		}
		if len(e.Entries) < 2 {
			return nil
		}
		if st.hasTwoDistinctSlopes(e) {
			st.output = append(st.output, st.normalize(e))
		}
		return nil
	}

	it := st.sweepLine.Iterator()
	for it.Next() {
		idx := it.Key().(int)
		if st.invSlope[idx] != segment.VerticalSlope {
			st.position[idx] = st.invSlope[idx]*(st.cursor.Y()-st.oriented[idx].Start().Y()) + st.oriented[idx].Start().X()
		}
	}

	var toAdd []int
	for _, entry := range e.Entries {
		if entry.Location != segment.END {
			toAdd = append(toAdd, entry.Index)
			st.position[entry.Index] = st.cursor.X()
		}
	}

	if len(toAdd) > 0 {
		lowest, highest := st.extremes(toAdd)
		lowerNeighbor, lowOk := st.sweepLine.Floor(lowest)
		upperNeighbor, highOk := st.sweepLine.Ceiling(highest)

		for _, idx := range toAdd {
			st.sweepLine.Put(idx, struct{}{})
		}

		if lowOk {
			st.addCrossing(lowest, lowerNeighbor.Key.(int), e)
		}
		if highOk {
			st.addCrossing(highest, upperNeighbor.Key.(int), e)
		}
	}

	if len(e.Entries) >= 2 {
		st.output = append(st.output, st.normalize(e))
	}
	return nil
}

// extremes returns the lowest- and highest-ordered index in idxs per
// the sweep-line comparator.
func (st *sweepState) extremes(idxs []int) (lowest, highest int) {
	lowest, highest = idxs[0], idxs[0]
	for _, idx := range idxs[1:] {
		if st.compareIndices(idx, lowest) < 0 {
			lowest = idx
		}
		if st.compareIndices(idx, highest) > 0 {
			highest = idx
		}
	}
	return lowest, highest
}

func (st *sweepState) hasTwoDistinctSlopes(e *M) bool {
	var first float64
	haveFirst := false
	for _, entry := range e.Entries {
		s := st.invSlope[entry.Index]
		if !haveFirst {
			first, haveFirst = s, true
			continue
		}
		if s != first {
			return true
		}
	}
	return false
}

// addCrossing computes the primitive intersection of oriented segments
// a and b and, if it is a genuine crossing not already behind the
// cursor, records it either into the current event (if it falls
// exactly at the cursor) or into a future schedule entry.
func (st *sweepState) addCrossing(a, b int, e *M) {
	isect := segment.Intersect(st.oriented[a], st.oriented[b])
	aBetween := isect.First == segment.BETWEEN && segment.Contains(isect.Second)
	bBetween := isect.Second == segment.BETWEEN && segment.Contains(isect.First)
	if !aBetween && !bBetween {
		return
	}
	switch {
	case point.Compare(isect.P, st.cursor) < 0:
		return
	case point.Compare(isect.P, st.cursor) == 0:
		e.addEntry(a, isect.First)
		e.addEntry(b, isect.Second)
	default:
		future := st.schedule.getOrCreate(isect.P)
		future.addEntry(a, isect.First)
		future.addEntry(b, isect.Second)
	}
}

// normalize restores START/END tags to each segment's original
// orientation, undoing the reorientation newSweepState performed for
// event generation.
func (st *sweepState) normalize(e *M) M {
	out := M{P: e.P, Entries: make([]Entry, len(e.Entries))}
	for i, entry := range e.Entries {
		loc := entry.Location
		if st.reversed[entry.Index] {
			switch loc {
			case segment.START:
				loc = segment.END
			case segment.END:
				loc = segment.START
			}
		}
		out.Entries[i] = Entry{Index: entry.Index, Location: loc}
	}
	return out
}
