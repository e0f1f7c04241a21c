package rangetree

import (
	"github.com/ermel272/frechetrange/curve"
	"github.com/ermel272/frechetrange/frechetgrid"
)

// node is one vertex of a CurveRangeTree: an internal node owns the
// sub-curve spanning its leaves and a FrechetGrid built for that
// sub-curve; a leaf owns a 2-point sub-curve. The same shape also backs
// the synthetic clipped-edge nodes partitionPath produces mid-walk — see
// a note on modelling these as one tagged shape rather than
// three separate node types.
type node struct {
	parent      *node
	left, right *node

	curve curve.PolygonalCurve
	grid  frechetgrid.FrechetGrid

	// gpar is the head of this node's decomposition curve, set by decompose.
	gpar *node
	size int
	ell  int
}

// isLeaf reports whether n has no children.
func (n *node) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// children returns n's non-nil children, left before right.
func (n *node) children() []*node {
	var c []*node
	if n.left != nil {
		c = append(c, n.left)
	}
	if n.right != nil {
		c = append(c, n.right)
	}

	return c
}

// adjacentNodes returns n's parent (if any) followed by its children.
func (n *node) adjacentNodes() []*node {
	var adj []*node
	if n.parent != nil {
		adj = append(adj, n.parent)
	}

	return append(adj, n.children()...)
}
