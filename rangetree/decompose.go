package rangetree

import "math"

// depthFirstSearch returns every node reachable from root via an
// explicit-stack walk that pushes each node's parent and children as
// neighbours, visiting each node once. The root is returned first.
//
// Mirrors tree.DepthFirstSearch, specialised to the binary left/right
// shape of a CurveRangeTree node: an explicit stack + visited set,
// not a generator.
func depthFirstSearch(root *node) []*node {
	if root == nil {
		return nil
	}

	stack := []*node{root}
	visited := make(map[*node]bool)

	var order []*node
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if visited[n] {
			continue
		}
		visited[n] = true
		order = append(order, n)

		stack = append(stack, n.adjacentNodes()...)
	}

	return order
}

// postOrderTraversal returns every node reachable from root in post-order.
func postOrderTraversal(root *node) []*node {
	if root == nil {
		return nil
	}

	type frame struct {
		n        *node
		children []*node
		next     int
	}

	var order []*node
	stack := []*frame{{n: root, children: root.children()}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]

		if top.next < len(top.children) {
			child := top.children[top.next]
			top.next++
			stack = append(stack, &frame{n: child, children: child.children()})

			continue
		}

		order = append(order, top.n)
		stack = stack[:len(stack)-1]
	}

	return order
}

// decompose runs the heavy-path-flavoured tree decomposition (tree.Tree's
// Decompose, specialised to a binary node) over the curve range tree's own
// tree-of-curves, so that lowestCommonAncestor can answer in O(log n).
func decompose(root *node) [][]*node {
	for _, n := range postOrderTraversal(root) {
		if n.isLeaf() {
			n.size = 1
		} else {
			size := 0
			for _, c := range n.children() {
				size += c.size
			}
			n.size = size
		}
		n.ell = int(math.Floor(math.Log2(float64(n.size))))
	}

	var curves [][]*node

	closeCurve := func(stack []*node) {
		curve := append([]*node{stack[0].parent}, stack...)
		curves = append(curves, curve)

		for _, n := range curve {
			n.gpar = curve[0]
		}
	}

	var stack []*node
	var last *node

	for _, n := range depthFirstSearch(root) {
		if n == root {
			last = n

			continue
		}

		if len(stack) > 0 && (n.ell != stack[len(stack)-1].ell || n.parent != last) {
			closeCurve(stack)
			stack = nil
		}

		last = n
		stack = append(stack, n)
	}

	if len(stack) > 0 {
		closeCurve(stack)
	}

	return curves
}

// computeParentSequence builds [n, n.gpar, n.gpar.parent.gpar, ...],
// climbing decomposition heads until one with no parent, then duplicates
// the final element as lowestCommonAncestor's terminator.
func computeParentSequence(n *node) []*node {
	seq := []*node{n, n.gpar}

	for seq[len(seq)-1].parent != nil {
		seq = append(seq, seq[len(seq)-1].parent.gpar)
	}

	seq = append(seq, seq[len(seq)-1])

	return seq
}

// lowestCommonAncestor returns the lowest common ancestor of u and v via
// their decomposition-head chains in O(log n), given an existing
// decomposition. u and v must be distinct, non-root nodes.
func lowestCommonAncestor(u, v *node) *node {
	uSeq := computeParentSequence(u)
	vSeq := computeParentSequence(v)

	k := 0
	for uSeq[len(uSeq)-1-k] == vSeq[len(vSeq)-1-k] {
		k++
	}

	i, j := len(uSeq), len(vSeq)

	switch {
	case i == j && j == k:
		if u.size >= v.size {
			return u
		}

		return v
	case i != j && k == i:
		if u.size >= vSeq[j-1-k].parent.size {
			return u
		}

		return v
	case i != j && k == j:
		if v.size >= uSeq[i-1-k].parent.size {
			return v
		}

		return u
	default:
		up := uSeq[i-1-k].parent
		vp := vSeq[j-1-k].parent
		if up.size >= vp.size {
			return up
		}

		return vp
	}
}
