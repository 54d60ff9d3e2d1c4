package quadtree

import (
	"fmt"

	"github.com/planarkit/core/errs"
	"github.com/planarkit/core/point"
)

// Move rekeys oldKey to newKey, optimized to skip the first lookup when
// hint names a leaf of this tree that already holds oldKey. It returns
// the handle of the leaf now holding newKey, or nil if removing oldKey
// collapsed that leaf and newKey was reinserted elsewhere by a fresh
// put. Fails with errs.ErrInvalidArgument if either key is outside the
// tree's bounds or hint names a node absent from this tree's table, and
// errs.ErrNotFound if oldKey is not present.
func (q *Quadtree) Move(oldKey, newKey point.Point, hint *NodeHandle) (*NodeHandle, error) {
	if err := q.checkBounds(oldKey); err != nil {
		return nil, err
	}
	if err := q.checkBounds(newKey); err != nil {
		return nil, err
	}

	leaf := q.root()
	if hint != nil {
		n, ok := q.nodes[int32(*hint)]
		if !ok {
			return nil, fmt.Errorf("%w: node handle %d does not belong to this tree", errs.ErrInvalidArgument, *hint)
		}
		if n.isLeaf() {
			if _, has := n.entries[oldKey]; has {
				leaf = n
			} else {
				leaf = q.findNode(oldKey)
			}
		} else {
			leaf = q.findNode(oldKey)
		}
	} else {
		leaf = q.findNode(oldKey)
	}

	value, ok := leaf.entries[oldKey]
	if !ok {
		return nil, fmt.Errorf("%w: key %s not present", errs.ErrNotFound, oldKey)
	}

	delete(leaf.entries, oldKey)

	if leaf.bounds.ContainsOpen(newKey) {
		leaf.entries[newKey] = value
		h := NodeHandle(leaf.signature)
		return &h, nil
	}

	q.size--
	collapsed := false
	if len(leaf.entries) == 0 {
		collapsed = leaf.signature != rootSignature
		q.collapse(leaf)
	}
	q.invalidateProbeCache()

	newLeaf, _, _ := q.insert(newKey, value)
	if collapsed {
		return nil, nil
	}
	h := NodeHandle(newLeaf.signature)
	return &h, nil
}
