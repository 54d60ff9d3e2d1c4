// Package rectangle defines the axis-aligned Rectangle primitive used as the
// quadtree's domain bounds, node bounds, and range-query regions.
package rectangle

import (
	"fmt"

	"github.com/planarkit/core/point"
)

// Rectangle is an axis-aligned rectangle, stored as its minimum and maximum
// corners. New does not reject a zero width or height.
type Rectangle struct {
	min, max point.Point
}

// New creates a rectangle given two opposite corners, in any order.
func New(x1, y1, x2, y2 float64) Rectangle {
	return Rectangle{
		min: point.New(min(x1, x2), min(y1, y2)),
		max: point.New(max(x1, x2), max(y1, y2)),
	}
}

// NewFromPoints creates a rectangle given two opposite corners, in any order.
func NewFromPoints(p1, p2 point.Point) Rectangle {
	return New(p1.X(), p1.Y(), p2.X(), p2.Y())
}

// Min returns the rectangle's minimum corner (smallest x, smallest y).
func (r Rectangle) Min() point.Point { return r.min }

// Max returns the rectangle's maximum corner (largest x, largest y).
func (r Rectangle) Max() point.Point { return r.max }

// Width returns the rectangle's extent along x.
func (r Rectangle) Width() float64 { return r.max.X() - r.min.X() }

// Height returns the rectangle's extent along y.
func (r Rectangle) Height() float64 { return r.max.Y() - r.min.Y() }

// Center returns the rectangle's midpoint, precomputed once by quadtree
// nodes since it is consulted on every descent.
func (r Rectangle) Center() point.Point {
	return point.New(r.min.X()+r.Width()/2, r.min.Y()+r.Height()/2)
}

// Contains reports whether p lies inside the rectangle, boundary inclusive
// on all four sides.
func (r Rectangle) Contains(p point.Point) bool {
	return p.X() >= r.min.X() && p.X() <= r.max.X() &&
		p.Y() >= r.min.Y() && p.Y() <= r.max.Y()
}

// ContainsOpen reports whether p lies inside the rectangle, with the
// right and bottom edges (maxX, maxY) excluded. This is the containment
// test the quadtree uses so that a point on a shared edge between two
// sibling leaves belongs to exactly one of them.
func (r Rectangle) ContainsOpen(p point.Point) bool {
	return p.X() >= r.min.X() && p.X() < r.max.X() &&
		p.Y() >= r.min.Y() && p.Y() < r.max.Y()
}

// IntersectsWith reports whether r and other share any area or boundary.
func (r Rectangle) IntersectsWith(other Rectangle) bool {
	return r.min.X() <= other.max.X() && r.max.X() >= other.min.X() &&
		r.min.Y() <= other.max.Y() && r.max.Y() >= other.min.Y()
}

// Eq reports whether r and other have identical corners.
func (r Rectangle) Eq(other Rectangle) bool {
	return r.min.Eq(other.min) && r.max.Eq(other.max)
}

// String renders r as "[(minX,minY),(maxX,maxY)]".
func (r Rectangle) String() string {
	return fmt.Sprintf("[%s,%s]", r.min, r.max)
}

// Quadrant splits the rectangle into its four children around c (its own
// center, in normal use), indexed the way the quadtree's signature packs
// grid coordinates: 0 = (--), 1 = (-+), 2 = (+-), 3 = (++), where the first
// sign is x relative to c and the second is y relative to c.
func (r Rectangle) Quadrant(c point.Point, index int) Rectangle {
	switch index {
	case 0: // --: x<cx, y<cy
		return Rectangle{min: r.min, max: c}
	case 1: // -+: x<cx, y>=cy
		return Rectangle{min: point.New(r.min.X(), c.Y()), max: point.New(c.X(), r.max.Y())}
	case 2: // +-: x>=cx, y<cy
		return Rectangle{min: point.New(c.X(), r.min.Y()), max: point.New(r.max.X(), c.Y())}
	case 3: // ++: x>=cx, y>=cy
		return Rectangle{min: c, max: r.max}
	default:
		panic("rectangle: quadrant index out of range [0,3]")
	}
}
