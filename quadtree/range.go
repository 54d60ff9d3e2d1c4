package quadtree

import (
	"github.com/planarkit/core/point"
	"github.com/planarkit/core/rectangle"
)

// Entry is one stored key-value pair.
type Entry struct {
	Key   point.Point
	Value any
}

// FindRange returns every entry whose key lies in rect (boundary
// inclusive on all sides), pruning the descent to only those subtrees
// whose bounds intersect rect.
func (q *Quadtree) FindRange(rect rectangle.Rectangle) []Entry {
	var out []Entry
	q.collectRange(q.root(), rect, &out)
	return out
}

func (q *Quadtree) collectRange(n *node, rect rectangle.Rectangle, out *[]Entry) {
	if !n.bounds.IntersectsWith(rect) {
		return
	}
	if n.isLeaf() {
		for k, v := range n.entries {
			if rect.Contains(k) {
				*out = append(*out, Entry{Key: k, Value: v})
			}
		}
		return
	}
	for i, set := range n.childSet {
		if set {
			q.collectRange(q.nodes[n.children[i]], rect, out)
		}
	}
}

// FindRangeCircle returns every entry whose key lies within radius of
// center (inclusive), using the circumscribing square to prune the
// descent the same way FindRange does.
func (q *Quadtree) FindRangeCircle(center point.Point, radius float64) []Entry {
	square := rectangle.New(center.X()-radius, center.Y()-radius, center.X()+radius, center.Y()+radius)
	radiusSq := radius * radius
	var out []Entry
	q.collectRangeCircle(q.root(), square, center, radiusSq, &out)
	return out
}

func (q *Quadtree) collectRangeCircle(n *node, square rectangle.Rectangle, center point.Point, radiusSq float64, out *[]Entry) {
	if !n.bounds.IntersectsWith(square) {
		return
	}
	if n.isLeaf() {
		for k, v := range n.entries {
			if k.DistanceSquaredTo(center) <= radiusSq {
				*out = append(*out, Entry{Key: k, Value: v})
			}
		}
		return
	}
	for i, set := range n.childSet {
		if set {
			q.collectRangeCircle(q.nodes[n.children[i]], square, center, radiusSq, out)
		}
	}
}

// Nodes returns a read-only snapshot of every node in the tree, keyed
// by its handle.
func (q *Quadtree) Nodes() map[NodeHandle]NodeInfo {
	out := make(map[NodeHandle]NodeInfo, len(q.nodes))
	for sig, n := range q.nodes {
		out[NodeHandle(sig)] = NodeInfo{
			Handle:     NodeHandle(sig),
			Level:      n.level,
			GridX:      n.gridX,
			GridY:      n.gridY,
			Bounds:     n.bounds,
			Center:     n.center,
			IsLeaf:     n.isLeaf(),
			EntryCount: len(n.entries),
		}
	}
	return out
}

// Entries returns every key-value pair in the tree, in arbitrary order
// that does not survive structural modification.
func (q *Quadtree) Entries() []Entry {
	out := make([]Entry, 0, q.size)
	for _, n := range q.nodes {
		if !n.isLeaf() {
			continue
		}
		for k, v := range n.entries {
			out = append(out, Entry{Key: k, Value: v})
		}
	}
	return out
}
