// Package point defines the Point primitive shared by the segment, rectangle,
// intersect, and quadtree packages.
//
// A Point is an ordered pair (x, y) of float64 coordinates. The package's
// main contribution beyond simple storage is the "y-first, then x"
// lexicographic order (Compare / CompareEpsilon) that the intersection
// engine's event schedule and output sequence are built on.
package point

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/planarkit/core/numeric"
	"github.com/planarkit/core/options"
)

// Point is a point in the plane with float64 coordinates.
type Point struct {
	x, y float64
}

// New creates a Point at (x, y).
func New(x, y float64) Point {
	return Point{x: x, y: y}
}

// X returns the point's x-coordinate.
func (p Point) X() float64 { return p.x }

// Y returns the point's y-coordinate.
func (p Point) Y() float64 { return p.y }

// Coordinates returns both coordinates at once.
func (p Point) Coordinates() (x, y float64) { return p.x, p.y }

// Translate returns p shifted by the vector (q.x, q.y).
func (p Point) Translate(q Point) Point {
	return Point{x: p.x + q.x, y: p.y + q.y}
}

// Negate returns the point reflected through the origin.
func (p Point) Negate() Point {
	return Point{x: -p.x, y: -p.y}
}

// CrossProduct returns the 2D cross product (determinant) of p and q,
// treating both as vectors from the origin:
//
//	p × q = p.x*q.y - p.y*q.x
//
// Positive means q is counterclockwise of p, negative clockwise, zero
// collinear.
func (p Point) CrossProduct(q Point) float64 {
	return p.x*q.y - p.y*q.x
}

// DotProduct returns the dot product of p and q as vectors from the origin.
func (p Point) DotProduct(q Point) float64 {
	return p.x*q.x + p.y*q.y
}

// DistanceSquaredTo returns the squared Euclidean distance between p and q.
// Used in preference to DistanceTo wherever only relative ordering matters,
// to avoid the sqrt call — notably the split operation's point ordering and
// the quadtree's circular range query.
func (p Point) DistanceSquaredTo(q Point) float64 {
	dx := p.x - q.x
	dy := p.y - q.y
	return dx*dx + dy*dy
}

// DistanceTo returns the Euclidean distance between p and q.
func (p Point) DistanceTo(q Point) float64 {
	return math.Sqrt(p.DistanceSquaredTo(q))
}

// Eq reports whether p and q are the same point, optionally within an
// epsilon tolerance supplied via options.WithEpsilon.
func (p Point) Eq(q Point, opts ...options.GeometryOptionsFunc) bool {
	geoOpts := options.ApplyGeometryOptions(options.GeometryOptions{Epsilon: 0}, opts...)
	return numeric.FloatEquals(p.x, q.x, geoOpts.Epsilon) && numeric.FloatEquals(p.y, q.y, geoOpts.Epsilon)
}

// Compare orders points exactly, y-first then x: the point with the
// smaller y comes first; ties broken by the smaller x.
// Returns a negative number, zero, or a positive number as p is less than,
// equal to, or greater than q.
func Compare(p, q Point) int {
	if p.y != q.y {
		if p.y < q.y {
			return -1
		}
		return 1
	}
	if p.x != q.x {
		if p.x < q.x {
			return -1
		}
		return 1
	}
	return 0
}

// CompareEpsilon is Compare with epsilon-tolerant coordinate equality:
// coordinates within epsilon of each other are treated as equal. epsilon
// must be nonnegative; negative epsilon is treated as a usage error by
// callers that validate input (see intersect.FindBruteForceEpsilon).
func CompareEpsilon(p, q Point, epsilon float64) int {
	if !numeric.FloatEquals(p.y, q.y, epsilon) {
		if p.y < q.y {
			return -1
		}
		return 1
	}
	if !numeric.FloatEquals(p.x, q.x, epsilon) {
		if p.x < q.x {
			return -1
		}
		return 1
	}
	return 0
}

// Less reports whether p strictly precedes q in the Compare order.
func Less(p, q Point) bool { return Compare(p, q) < 0 }

// String renders p as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%s,%s)", trimFloat(p.x), trimFloat(p.y))
}

// MarshalJSON serializes p as {"x":...,"y":...}.
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	}{X: p.x, Y: p.y})
}

// UnmarshalJSON deserializes p from {"x":...,"y":...}.
func (p *Point) UnmarshalJSON(data []byte) error {
	var temp struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	p.x = temp.X
	p.y = temp.Y
	return nil
}

// trimFloat formats a float64 without a trailing ".0" for whole numbers,
// matching the compact coordinate rendering used throughout this module's
// String methods and example tests.
func trimFloat(f float64) string {
	if f == math.Trunc(f) && !math.IsInf(f, 0) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprintf("%g", f)
}
