// Package tree implements a general rooted tree with left-child/right-
// sibling linkage, heavy-path-flavoured decomposition into O(log n)
// curves, and O(log n) lowest-common-ancestor queries driven by that
// decomposition.
//
// Traversals are explicit-stack iterators rather than generators/closures:
// DepthFirstSearch and PostOrderTraversal both return a fully materialised
// slice, computed with an explicit stack and (for DFS) a visited set, so
// callers never depend on lazy evaluation order.
package tree
