package dag_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ermel272/frechetrange/dag"
	"github.com/ermel272/frechetrange/point"
)

func TestBottleneckPathWeight_EasyDAG(t *testing.T) {
	d := dag.New()

	p1, p2, p3 := point.New(0, 0), point.New(1, 0), point.New(2, 0)

	require.NoError(t, d.AddEdge(p1, p2, 1))
	require.NoError(t, d.AddEdge(p2, p3, 2))

	w, err := d.BottleneckPathWeight(p1, p3)
	require.NoError(t, err)
	assert.Equal(t, 2.0, w)
}

// TestBottleneckPathWeight_HardDAG is scenario S4.
func TestBottleneckPathWeight_HardDAG(t *testing.T) {
	d := dag.New()

	p1 := point.New(0, 0)
	p2 := point.New(1, 0)
	p3 := point.New(2, 0)
	p4 := point.New(3, 0)
	p5 := point.New(1, -1)
	p6 := point.New(2, -1)

	require.NoError(t, d.AddEdge(p1, p2, 1))
	require.NoError(t, d.AddEdge(p2, p3, 2))
	require.NoError(t, d.AddEdge(p3, p4, 1))
	require.NoError(t, d.AddEdge(p2, p6, 3))
	require.NoError(t, d.AddEdge(p1, p5, 2))
	require.NoError(t, d.AddEdge(p5, p6, 5))
	require.NoError(t, d.AddEdge(p6, p4, 6))

	w, err := d.BottleneckPathWeight(p1, p4)
	require.NoError(t, err)
	assert.Equal(t, 2.0, w)
}

func TestAddEdge_RejectsCycle(t *testing.T) {
	d := dag.New()
	p1, p2 := point.New(0, 0), point.New(1, 0)

	require.NoError(t, d.AddEdge(p1, p2, 1))
	assert.ErrorIs(t, d.AddEdge(p2, p1, 1), dag.ErrCycle)
}

func TestAddEdge_FirstOccurrenceWins(t *testing.T) {
	d := dag.New()
	p1, p2, p3 := point.New(0, 0), point.New(1, 0), point.New(2, 0)

	require.NoError(t, d.AddEdge(p1, p2, 1))
	require.NoError(t, d.AddEdge(p1, p2, 99))
	require.NoError(t, d.AddEdge(p2, p3, 1))

	w, err := d.BottleneckPathWeight(p1, p3)
	require.NoError(t, err)
	assert.Equal(t, 1.0, w)
}

func TestAddEdgeMin_KeepsTighterBound(t *testing.T) {
	d := dag.New()
	p1, p2 := point.New(0, 0), point.New(1, 0)

	require.NoError(t, d.AddEdgeMin(p1, p2, 5))
	require.NoError(t, d.AddEdgeMin(p1, p2, 2))

	w, err := d.BottleneckPathWeight(p1, p2)
	require.NoError(t, err)
	assert.Equal(t, 2.0, w)
}

func TestBottleneckPathWeight_NoPath(t *testing.T) {
	d := dag.New()
	p1, p2, p3 := point.New(0, 0), point.New(1, 0), point.New(2, 0)

	require.NoError(t, d.AddEdge(p1, p2, 1))

	_, err := d.BottleneckPathWeight(p1, p3)
	assert.ErrorIs(t, err, dag.ErrNoPath)
}
