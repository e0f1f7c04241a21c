package tree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ermel272/frechetrange/point"
	"github.com/ermel272/frechetrange/tree"
)

// buildSample builds:
//
//	root
//	├── a
//	│   ├── a1
//	│   └── a2
//	└── b
//	    └── b1
func buildSample() (root, a, a1, a2, b, b1 *tree.Node) {
	root = tree.NewNode(point.New(0, 0))
	a = tree.NewNode(point.New(1, 0))
	a1 = tree.NewNode(point.New(2, 0))
	a2 = tree.NewNode(point.New(2, 1))
	b = tree.NewNode(point.New(1, 1))
	b1 = tree.NewNode(point.New(2, 2))

	root.AddChild(a)
	root.AddChild(b)
	a.AddChild(a1)
	a.AddChild(a2)
	b.AddChild(b1)

	return
}

func TestDepthFirstSearch_VisitsEveryNode(t *testing.T) {
	root, a, a1, a2, b, b1 := buildSample()

	order := tree.DepthFirstSearch(root)
	assert.Len(t, order, 6)
	assert.Contains(t, order, a)
	assert.Contains(t, order, a1)
	assert.Contains(t, order, a2)
	assert.Contains(t, order, b)
	assert.Contains(t, order, b1)
}

func TestPostOrderTraversal_ChildrenBeforeParent(t *testing.T) {
	root, a, a1, a2, _, _ := buildSample()

	order := tree.PostOrderTraversal(root)
	require.Equal(t, root, order[len(order)-1])

	posA1, posA2, posA := -1, -1, -1
	for i, n := range order {
		switch n {
		case a1:
			posA1 = i
		case a2:
			posA2 = i
		case a:
			posA = i
		}
	}

	assert.Less(t, posA1, posA)
	assert.Less(t, posA2, posA)
}

// TestDecompose_Exhaustiveness is property 7: every non-root node has a
// non-null gpar after decomposition.
func TestDecompose_Exhaustiveness(t *testing.T) {
	root, a, a1, a2, b, b1 := buildSample()
	tr := tree.New(root)

	curves := tr.Decompose()
	assert.NotEmpty(t, curves)

	for _, n := range []*tree.Node{a, a1, a2, b, b1} {
		assert.NotNil(t, n.Gpar)
	}
}

// TestDecompose_Idempotence is property 8: re-running a query (here, the
// decomposition itself) yields identical structural results.
func TestDecompose_Idempotence(t *testing.T) {
	root, _, _, _, _, _ := buildSample()
	tr := tree.New(root)

	first := tr.Decompose()
	second := tr.Decompose()

	assert.Equal(t, first, second)
}

func TestLowestCommonAncestor(t *testing.T) {
	root, a, a1, a2, b, b1 := buildSample()
	tr := tree.New(root)
	tr.Decompose()

	lca, err := tr.LowestCommonAncestor(a1, a2)
	require.NoError(t, err)
	assert.Equal(t, a, lca)

	lca, err = tr.LowestCommonAncestor(a1, b1)
	require.NoError(t, err)
	assert.Equal(t, root, lca)
}

func TestLowestCommonAncestor_RejectsRootOrSameNode(t *testing.T) {
	root, a, _, _, _, _ := buildSample()
	tr := tree.New(root)
	tr.Decompose()

	_, err := tr.LowestCommonAncestor(root, a)
	assert.ErrorIs(t, err, tree.ErrIsRoot)

	_, err = tr.LowestCommonAncestor(a, a)
	assert.ErrorIs(t, err, tree.ErrSameNode)
}
