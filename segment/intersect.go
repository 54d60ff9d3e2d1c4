package segment

import (
	"github.com/planarkit/core/numeric"
	"github.com/planarkit/core/point"
)

// Intersection is the shared point of two segments' infinite lines,
// tagged with where it falls on each one.
type Intersection struct {
	P             point.Point
	First, Second Location
}

// Exists reports whether the intersection actually touches both
// segments: both locations fall in the contains-set. LEFT and RIGHT
// never contribute here — in this implementation a genuine collinear
// overlap is always expressed through the ordinary BEFORE..AFTER tags
// (see intersectCollinear), so LEFT/RIGHT only ever mark segments that
// provably never touch.
func (i Intersection) Exists() bool {
	return Contains(i.First) && Contains(i.Second)
}

// Intersect computes the exact intersection of s1 and s2.
func Intersect(s1, s2 Segment) Intersection {
	return intersect(s1, s2, 0)
}

// IntersectEpsilon computes the intersection of s1 and s2, treating
// coordinates within epsilon of a boundary (0, 1, or each other) as
// equal.
func IntersectEpsilon(s1, s2 Segment, epsilon float64) Intersection {
	return intersect(s1, s2, epsilon)
}

func intersect(s1, s2 Segment, epsilon float64) Intersection {
	d1x, d1y := s1.DeltaX(), s1.DeltaY()
	d2x, d2y := s2.DeltaX(), s2.DeltaY()
	denom := d1x*d2y - d1y*d2x

	wx := s2.start.X() - s1.start.X()
	wy := s2.start.Y() - s1.start.Y()

	if numeric.FloatEquals(denom, 0, epsilon) {
		// Parallel. Are they collinear?
		cross := wx*d1y - wy*d1x
		if !numeric.FloatEquals(cross, 0, epsilon) {
			// Parallel, offset: never touch. Tag the side s2 lies on
			// relative to s1's direction.
			loc := LEFT
			if cross > 0 {
				loc = RIGHT
			}
			return Intersection{P: s1.start, First: loc, Second: loc}
		}
		return intersectCollinear(s1, s2, epsilon)
	}

	t := (wx*d2y - wy*d2x) / denom
	u := (wx*d1y - wy*d1x) / denom
	p := point.New(s1.start.X()+t*d1x, s1.start.Y()+t*d1y)
	return Intersection{
		P:      p,
		First:  classify(t, epsilon),
		Second: classify(u, epsilon),
	}
}

// intersectCollinear handles two segments known to lie on the same
// infinite line. It projects both onto s1's dominant axis and reports
// the first point (in s1's direction) common to both, or LEFT/RIGHT if
// their ranges don't overlap.
func intersectCollinear(s1, s2 Segment, epsilon float64) Intersection {
	d1x, d1y := s1.DeltaX(), s1.DeltaY()

	project := func(p point.Point) float64 {
		if absF(d1x) >= absF(d1y) {
			return (p.X() - s1.start.X()) / d1x
		}
		return (p.Y() - s1.start.Y()) / d1y
	}

	t2Start := project(s2.start)
	t2End := project(s2.end)
	lo, hi := t2Start, t2End
	if lo > hi {
		lo, hi = hi, lo
	}
	overlapLo := maxF(0, lo)
	overlapHi := minF(1, hi)

	if overlapLo > overlapHi && !numeric.FloatEquals(overlapLo, overlapHi, epsilon) {
		loc := LEFT
		if lo > 1 {
			loc = RIGHT
		}
		return Intersection{P: s1.start, First: loc, Second: loc}
	}

	t := overlapLo
	p := point.New(s1.start.X()+t*d1x, s1.start.Y()+t*d1y)
	// Locate p on s2 using its own parametrization so the reported tag
	// matches s2's own orientation.
	second := s2.locate(p, epsilon)
	return Intersection{P: p, First: classify(t, epsilon), Second: second}
}

func classify(t, epsilon float64) Location {
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

func absF(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
