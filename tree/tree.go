package tree

import "math"

// Tree is a rooted Node tree with an optional cached decomposition.
type Tree struct {
	Root *Node

	// Decomposition is the result of the most recent Decompose call.
	Decomposition [][]*Node
}

// New returns a Tree rooted at root.
func New(root *Node) *Tree {
	return &Tree{Root: root}
}

// DepthFirstSearch returns every node reachable from root, in the order an
// explicit-stack DFS (parent and children both pushed as neighbours)
// visits them. The root is included first.
func DepthFirstSearch(root *Node) []*Node {
	if root == nil {
		return nil
	}

	stack := []*Node{root}
	visited := make(map[*Node]bool)

	var order []*Node
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if visited[n] {
			continue
		}
		visited[n] = true
		order = append(order, n)

		stack = append(stack, n.AdjacentNodes()...)
	}

	return order
}

// PostOrderTraversal returns every node reachable from root in post-order:
// all of a node's children (in order), then the node itself.
func PostOrderTraversal(root *Node) []*Node {
	if root == nil {
		return nil
	}

	type frame struct {
		node     *Node
		children []*Node
		next     int
	}

	var order []*Node
	stack := []*frame{{node: root, children: root.Children()}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]

		if top.next < len(top.children) {
			child := top.children[top.next]
			top.next++
			stack = append(stack, &frame{node: child, children: child.Children()})

			continue
		}

		order = append(order, top.node)
		stack = stack[:len(stack)-1]
	}

	return order
}

// Leaves returns every leaf reachable from root, in post-order.
func Leaves(root *Node) []*Node {
	var leaves []*Node
	for _, n := range PostOrderTraversal(root) {
		if n.IsLeaf() {
			leaves = append(leaves, n)
		}
	}

	return leaves
}

// Decompose runs a heavy-path-flavoured tree decomposition: a post-order
// pass sets node.Size and node.Ell on every node, then a DFS from the root
// partitions the non-root nodes into decomposition curves, closing the
// current curve whenever the next node's Ell differs
// from the curve's, or the next node isn't a child of the last node
// visited (a sibling jump). Every closed curve is prefixed with its
// topmost node's parent, and every node in it has its Gpar set to that
// curve's head.
func (t *Tree) Decompose() [][]*Node {
	for _, node := range PostOrderTraversal(t.Root) {
		if node.IsLeaf() {
			node.Size = 1
		} else {
			size := 0
			for _, c := range node.Children() {
				size += c.Size
			}
			node.Size = size
		}
		node.Ell = int(math.Floor(math.Log2(float64(node.Size))))
	}

	var curves [][]*Node

	closeCurve := func(stack []*Node) {
		curve := append([]*Node{stack[0].Parent}, stack...)
		curves = append(curves, curve)

		for _, n := range curve {
			n.Gpar = curve[0]
		}
	}

	var stack []*Node
	var last *Node

	for _, node := range DepthFirstSearch(t.Root) {
		if node == t.Root {
			last = node

			continue
		}

		if len(stack) > 0 && (node.Ell != stack[len(stack)-1].Ell || node.Parent != last) {
			closeCurve(stack)
			stack = nil
		}

		last = node
		stack = append(stack, node)
	}

	if len(stack) > 0 {
		closeCurve(stack)
	}

	t.Decomposition = curves

	return curves
}

// computeParentSequence builds [node, node.Gpar, node.Gpar.Parent.Gpar, ...],
// climbing decomposition heads until reaching one with no parent, then
// duplicates the final element — the terminator LowestCommonAncestor's
// suffix-matching loop relies on.
func computeParentSequence(node *Node) []*Node {
	seq := []*Node{node, node.Gpar}

	for seq[len(seq)-1].Parent != nil {
		seq = append(seq, seq[len(seq)-1].Parent.Gpar)
	}

	seq = append(seq, seq[len(seq)-1])

	return seq
}

// LowestCommonAncestor returns the lowest common ancestor of u and v using
// their decomposition-head (Gpar) chains, in O(log n) given an existing
// decomposition. u and v must be distinct, non-root nodes
// of a tree that has already been decomposed.
func (t *Tree) LowestCommonAncestor(u, v *Node) (*Node, error) {
	if u == t.Root || v == t.Root {
		return nil, ErrIsRoot
	}
	if u == v {
		return nil, ErrSameNode
	}
	if u.Gpar == nil || v.Gpar == nil {
		return nil, ErrNotDecomposed
	}

	uSeq := computeParentSequence(u)
	vSeq := computeParentSequence(v)

	k := 0
	for uSeq[len(uSeq)-1-k] == vSeq[len(vSeq)-1-k] {
		k++
	}

	i, j := len(uSeq), len(vSeq)

	switch {
	case i == j && j == k:
		if u.Size >= v.Size {
			return u, nil
		}

		return v, nil
	case i != j && k == i:
		if u.Size >= vSeq[j-1-k].Parent.Size {
			return u, nil
		}

		return v, nil
	case i != j && k == j:
		if v.Size >= uSeq[i-1-k].Parent.Size {
			return v, nil
		}

		return u, nil
	default:
		up := uSeq[i-1-k].Parent
		vp := vSeq[j-1-k].Parent
		if up.Size >= vp.Size {
			return up, nil
		}

		return vp, nil
	}
}
