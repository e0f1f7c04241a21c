package tree

import "errors"

// ErrIsRoot is returned by LowestCommonAncestor when either input node is
// the tree's root.
var ErrIsRoot = errors.New("tree: input node cannot be the root")

// ErrSameNode is returned by LowestCommonAncestor when the two input nodes
// are identical.
var ErrSameNode = errors.New("tree: input nodes must be distinct")

// ErrNotDecomposed is returned by LowestCommonAncestor when either input
// node has no gpar set, meaning Decompose has not yet run.
var ErrNotDecomposed = errors.New("tree: tree must be decomposed before computing LCA")
