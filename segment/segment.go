// Package segment defines the Segment primitive and the intersect primitive
// that computes where two segments' infinite lines meet, tagging the shared
// point's location on each segment. The Intersection Engine (package
// intersect) consumes both.
package segment

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/planarkit/core/errs"
	"github.com/planarkit/core/numeric"
	"github.com/planarkit/core/options"
	"github.com/planarkit/core/point"
)

// VerticalSlope is the sentinel InverseSlope returns for a horizontal
// segment (Δy = 0), whose x(y) graph has a vertical tangent. A real
// dx/dy ratio is never this large in practice, so callers can compare
// against it directly instead of checking Δy themselves.
const VerticalSlope = math.MaxFloat64

// Segment is a directed line segment between two distinct points.
type Segment struct {
	start, end point.Point
}

// New creates a segment from (x1,y1) to (x2,y2). It fails with
// errs.ErrInvalidArgument if the endpoints coincide.
func New(x1, y1, x2, y2 float64) (Segment, error) {
	return NewFromPoints(point.New(x1, y1), point.New(x2, y2))
}

// NewFromPoints creates a segment between two distinct points. It fails
// with errs.ErrInvalidArgument if start and end coincide.
func NewFromPoints(start, end point.Point) (Segment, error) {
	if start.Eq(end) {
		return Segment{}, fmt.Errorf("%w: segment start and end coincide at %s", errs.ErrInvalidArgument, start)
	}
	return Segment{start: start, end: end}, nil
}

// Start returns the segment's first endpoint.
func (s Segment) Start() point.Point { return s.start }

// End returns the segment's second endpoint.
func (s Segment) End() point.Point { return s.end }

// Reverse returns the segment with its endpoints swapped.
func (s Segment) Reverse() Segment { return Segment{start: s.end, end: s.start} }

// DeltaX returns end.X() - start.X().
func (s Segment) DeltaX() float64 { return s.end.X() - s.start.X() }

// DeltaY returns end.Y() - start.Y().
func (s Segment) DeltaY() float64 { return s.end.Y() - s.start.Y() }

// Slope returns the ordinary slope Δy/Δx. A vertical segment (Δx = 0)
// yields NaN.
func (s Segment) Slope() float64 {
	dx := s.DeltaX()
	if dx == 0 {
		return math.NaN()
	}
	return s.DeltaY() / dx
}

// InverseSlope returns Δx/Δy, the rate at which x changes per unit of y.
// This is what the sweep-line status structure uses to track a segment's
// current x-position as the sweep descends through y. A horizontal
// segment (Δy = 0) yields VerticalSlope.
func (s Segment) InverseSlope() float64 {
	dy := s.DeltaY()
	if dy == 0 {
		return VerticalSlope
	}
	return s.DeltaX() / dy
}

// XAtY returns the x-coordinate of the point on the segment's infinite
// line at the given y. A horizontal segment (Δy = 0) yields NaN, since
// no single x corresponds to its one y value.
func (s Segment) XAtY(y float64) float64 {
	dy := s.DeltaY()
	if dy == 0 {
		return math.NaN()
	}
	return s.DeltaX()/dy*(y-s.start.Y()) + s.start.X()
}

// ContainsPoint reports whether p lies on the segment (endpoints
// inclusive), optionally within an epsilon tolerance.
func (s Segment) ContainsPoint(p point.Point, opts ...options.GeometryOptionsFunc) bool {
	geoOpts := options.ApplyGeometryOptions(options.GeometryOptions{Epsilon: 0}, opts...)
	dx, dy := s.DeltaX(), s.DeltaY()
	offset := dx*(p.Y()-s.start.Y()) - dy*(p.X()-s.start.X())
	if !numeric.FloatEquals(offset/math.Hypot(dx, dy), 0, geoOpts.Epsilon) {
		return false
	}
	loc := s.locate(p, geoOpts.Epsilon)
	return Contains(loc)
}

// Eq reports whether s and other have the same start and end points,
// optionally within an epsilon tolerance.
func (s Segment) Eq(other Segment, opts ...options.GeometryOptionsFunc) bool {
	return s.start.Eq(other.start, opts...) && s.end.Eq(other.end, opts...)
}

// String renders s as "(start)->(end)".
func (s Segment) String() string {
	return fmt.Sprintf("%s->%s", s.start, s.end)
}

// MarshalJSON serializes s as {"start":...,"end":...}.
func (s Segment) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Start point.Point `json:"start"`
		End   point.Point `json:"end"`
	}{Start: s.start, End: s.end})
}

// UnmarshalJSON deserializes s from {"start":...,"end":...}.
func (s *Segment) UnmarshalJSON(data []byte) error {
	var temp struct {
		Start point.Point `json:"start"`
		End   point.Point `json:"end"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	s.start = temp.Start
	s.end = temp.End
	return nil
}

// locate classifies p's position along s's directed line using the
// parametric offset of p projected onto s, tolerant to epsilon.
func (s Segment) locate(p point.Point, epsilon float64) Location {
	dx, dy := s.DeltaX(), s.DeltaY()
	// t such that p = start + t*(end-start), measured along whichever
	// axis has the larger extent for numerical stability.
	var t float64
	if math.Abs(dx) >= math.Abs(dy) {
		t = (p.X() - s.start.X()) / dx
	} else {
		t = (p.Y() - s.start.Y()) / dy
	}
	switch {
	case numeric.FloatEquals(t, 0, epsilon):
		return START
	case numeric.FloatEquals(t, 1, epsilon):
		return END
	case t > 0 && t < 1:
		return BETWEEN
	case t < 0:
		return BEFORE
	default:
		return AFTER
	}
}
