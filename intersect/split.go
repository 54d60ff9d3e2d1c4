package intersect

import (
	"fmt"
	"sort"

	"github.com/planarkit/core/errs"
	"github.com/planarkit/core/point"
	"github.com/planarkit/core/segment"
)

// Split cuts each segment at the crossings that touch it, returning a
// new sequence of segments with no intersections except at endpoints.
// Segments with no crossings are returned unchanged. It fails with
// errs.ErrInvalidArgument if any crossing's location tag is not
// START, BETWEEN, or END.
func Split(segments []segment.Segment, crossings []M) ([]segment.Segment, error) {
	points := make([][]point.Point, len(segments))
	for i, s := range segments {
		points[i] = []point.Point{s.Start(), s.End()}
	}

	for _, m := range crossings {
		for _, e := range m.Entries {
			if e.Index < 0 || e.Index >= len(segments) {
				return nil, fmt.Errorf("%w: crossing references segment index %d out of range", errs.ErrInvalidArgument, e.Index)
			}
			switch e.Location {
			case segment.START:
				points[e.Index][0] = m.P
			case segment.END:
				points[e.Index][1] = m.P
			case segment.BETWEEN:
				points[e.Index] = append(points[e.Index], m.P)
			default:
				return nil, fmt.Errorf("%w: split location tag %s is not START, BETWEEN, or END", errs.ErrInvalidArgument, e.Location)
			}
		}
	}

	var out []segment.Segment
	for _, pts := range points {
		first := pts[0]
		sort.Slice(pts, func(a, b int) bool {
			return first.DistanceSquaredTo(pts[a]) < first.DistanceSquaredTo(pts[b])
		})
		for k := 0; k+1 < len(pts); k++ {
			if pts[k].Eq(pts[k+1]) {
				continue
			}
			s, err := segment.NewFromPoints(pts[k], pts[k+1])
			if err != nil {
				continue
			}
			out = append(out, s)
		}
	}
	return out, nil
}
