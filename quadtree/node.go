package quadtree

import (
	"github.com/planarkit/core/point"
	"github.com/planarkit/core/rectangle"
)

// NodeHandle is an opaque reference to a node, stable for the node's
// lifetime. It is safe to hold across calls but never implies
// ownership. A handle is its node's signature and carries no tree
// identity: Move rejects a handle only when no node with that signature
// exists in this tree, so a handle from another tree is accepted
// whenever the signatures coincide.
type NodeHandle int32

// NodeInfo is a read-only snapshot of a node, returned by Nodes() so
// callers can inspect tree shape without holding a live reference into
// it.
type NodeInfo struct {
	Handle     NodeHandle
	Level      int
	GridX      uint32
	GridY      uint32
	Bounds     rectangle.Rectangle
	Center     point.Point
	IsLeaf     bool
	EntryCount int
}

// node is the tree's internal representation. A node is a leaf iff
// entries is non-nil; a non-leaf has at least one child set and no
// entries, except the root, which may be an empty leaf representing an
// empty tree.
type node struct {
	signature int32
	level     int
	gridX     uint32
	gridY     uint32
	bounds    rectangle.Rectangle
	center    point.Point

	hasParent bool
	parent    int32

	childSet [4]bool
	children [4]int32

	entries map[point.Point]any
}

func (n *node) isLeaf() bool { return n.entries != nil }

func (n *node) anyChildSet() bool {
	for _, set := range n.childSet {
		if set {
			return true
		}
	}
	return false
}

// quadrantIndex classifies key relative to center using the same sign
// convention as rectangle.Quadrant: 0=(--), 1=(-+), 2=(+-), 3=(++),
// negative meaning "less than center" on that axis.
func quadrantIndex(center, key point.Point) int {
	xBit, yBit := 0, 0
	if key.X() >= center.X() {
		xBit = 1
	}
	if key.Y() >= center.Y() {
		yBit = 1
	}
	return xBit*2 + yBit
}

// childGridCoords returns the child's (gridX, gridY) given the
// parent's and the quadrant index, matching quadrantIndex's encoding.
func childGridCoords(parentX, parentY uint32, idx int) (gridX, gridY uint32) {
	xBit := uint32(idx / 2)
	yBit := uint32(idx % 2)
	return parentX*2 + xBit, parentY*2 + yBit
}
