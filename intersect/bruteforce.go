package intersect

import (
	"fmt"

	"github.com/planarkit/core/errs"
	"github.com/planarkit/core/point"
	"github.com/planarkit/core/segment"
)

// FindBruteForce returns every intersection among segments using an
// exact pairwise scan, sorted by point.Compare. It fails with
// errs.ErrInvalidArgument if segments is nil.
func FindBruteForce(segments []segment.Segment) ([]M, error) {
	return findSimple(segments, 0)
}

// FindBruteForceEpsilon is FindBruteForce with epsilon-tolerant
// coordinate comparison. It fails with errs.ErrInvalidArgument if
// epsilon is negative or segments is nil.
func FindBruteForceEpsilon(segments []segment.Segment, epsilon float64) ([]M, error) {
	if epsilon < 0 {
		return nil, fmt.Errorf("%w: epsilon %g is negative", errs.ErrInvalidArgument, epsilon)
	}
	return findSimple(segments, epsilon)
}

func findSimple(segments []segment.Segment, epsilon float64) ([]M, error) {
	if segments == nil {
		return nil, fmt.Errorf("%w: segments is nil", errs.ErrInvalidArgument)
	}

	cmp := func(a, b point.Point) int { return point.CompareEpsilon(a, b, epsilon) }
	sched := newSchedule(cmp)

	for i := 0; i < len(segments); i++ {
		for j := i + 1; j < len(segments); j++ {
			isect := segment.IntersectEpsilon(segments[i], segments[j], epsilon)
			if !isect.Exists() {
				continue
			}
			e := sched.getOrCreate(isect.P)
			e.addEntry(i, isect.First)
			e.addEntry(j, isect.Second)
		}
	}

	ordered := sched.ascending()
	out := make([]M, len(ordered))
	for i, e := range ordered {
		out[i] = *e
	}
	return out, nil
}
