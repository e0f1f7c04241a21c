package rangetree

import (
	"fmt"

	"github.com/ermel272/frechetrange/curve"
	"github.com/ermel272/frechetrange/point"
)

// findNode descends from n looking for the leaf or internal node whose
// curve contains edge, recursing left or right as edge's containment
// dictates. It returns ErrNotFound if edge is contained in neither half of
// some internal node along the way, or is not the edge of the leaf reached —
// a structural bug in the caller, or a query edge that does not belong to
// the tree's curve at all.
func findNode(n *node, edge point.Edge) (*node, error) {
	if n.isLeaf() {
		if !n.curve.Contains(edge) {
			return nil, fmt.Errorf("%w: edge is not the leaf's edge", ErrNotFound)
		}

		return n, nil
	}
	if n.curve.IsInLeftCurve(edge) {
		return findNode(n.left, edge)
	}
	if n.curve.IsInRightCurve(edge) {
		return findNode(n.right, edge)
	}

	return nil, fmt.Errorf("%w: edge not contained in either half at this node", ErrNotFound)
}

// walkLeft descends from n (the LCA's left child) toward xNode, collecting
// the right sibling of every internal node on the path as a full-cover
// subpath, and yielding the leaf itself when reached.
func walkLeft(n *node, edge point.Edge) []*node {
	switch {
	case n.isLeaf():
		return []*node{n}
	case n.curve.IsInLeftCurve(edge):
		return append(walkLeft(n.left, edge), n.right)
	case n.curve.IsInRightCurve(edge):
		return walkLeft(n.right, edge)
	default:
		return nil
	}
}

// walkRight is walkLeft's mirror image, descending toward yNode and
// collecting left siblings.
func walkRight(n *node, edge point.Edge) []*node {
	switch {
	case n.isLeaf():
		return []*node{n}
	case n.curve.IsInLeftCurve(edge):
		return walkRight(n.left, edge)
	case n.curve.IsInRightCurve(edge):
		return append(walkRight(n.right, edge), n.left)
	default:
		return nil
	}
}

// partitionPath locates the O(log n) subpaths of the tree's curve spanning
// [x, y]. x and y need not be vertices of the curve; they
// are clipped into the leftmost/rightmost subpath via a freshly built
// synthetic node.
func (t *CurveRangeTree) partitionPath(x, y point.Point, xEdge, yEdge point.Edge) ([]*node, error) {
	xNode, err := findNode(t.root, xEdge)
	if err != nil {
		return nil, fmt.Errorf("locating x: %w", err)
	}

	yNode, err := findNode(t.root, yEdge)
	if err != nil {
		return nil, fmt.Errorf("locating y: %w", err)
	}

	// x and y fall in the same leaf: the whole query subpath is the single
	// clipped edge (x, y), with no LCA to compute.
	if xNode == yNode {
		clipped, err := t.buildClippedNode(x, y)
		if err != nil {
			return nil, err
		}

		return []*node{clipped}, nil
	}

	lca := lowestCommonAncestor(xNode, yNode)

	var subpaths []*node

	if lca.left != nil {
		for _, n := range walkLeft(lca.left, xEdge) {
			if n == xNode {
				p1, err := n.curve.Get(1)
				if err != nil {
					return nil, err
				}

				n, err = t.buildClippedNode(x, p1)
				if err != nil {
					return nil, err
				}
			}

			subpaths = append(subpaths, n)
		}
	}

	if lca.right != nil {
		right := walkRight(lca.right, yEdge)

		for idx, n := range right {
			if n == yNode {
				p0, err := n.curve.Get(0)
				if err != nil {
					return nil, err
				}

				clipped, err := t.buildClippedNode(p0, y)
				if err != nil {
					return nil, err
				}

				right[idx] = clipped
			}
		}

		for i, j := 0, len(right)-1; i < j; i, j = i+1, j-1 {
			right[i], right[j] = right[j], right[i]
		}

		subpaths = append(subpaths, right...)
	}

	return subpaths, nil
}

// buildClippedNode builds a detached node (no parent, not part of the
// tree) whose curve is the 2-point edge (from, to), with its own freshly
// built FrechetGrid: every synthetic clipped edge produced mid-walk gets
// its own grid rather than reusing a parent's.
func (t *CurveRangeTree) buildClippedNode(from, to point.Point) (*node, error) {
	edge, err := point.NewEdge(from, to)
	if err != nil {
		return nil, fmt.Errorf("%w: clipped subpath endpoint: %w", ErrInvalidInput, err)
	}

	return buildNode(curve.FromEdge(edge), t.error, t.cfg.steinerSpacing, nil)
}
