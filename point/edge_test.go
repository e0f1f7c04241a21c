package point_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ermel272/frechetrange/point"
)

func TestNewEdge_Degenerate(t *testing.T) {
	_, err := point.NewEdge(point.New(1, 1), point.New(1, 1))
	assert.ErrorIs(t, err, point.ErrDegenerateEdge)
}

func TestEdge_SlopeAndLength(t *testing.T) {
	e, err := point.NewEdge(point.New(0, 0), point.New(2, 2))
	require.NoError(t, err)

	assert.InDelta(t, 1.0, e.Slope(), 1e-9)
	assert.InDelta(t, 0.0, e.YIntercept(), 1e-9)
	assert.InDelta(t, 2.8284271247, e.Length(), 1e-9)
}

func TestEdge_Slope_VerticalSentinel(t *testing.T) {
	e, err := point.NewEdge(point.New(5, 0), point.New(5, 9))
	require.NoError(t, err)

	assert.Equal(t, 0.0, e.Slope())
	assert.Equal(t, 0.0, e.YIntercept())
}

func TestEdge_SubDivide(t *testing.T) {
	e, err := point.NewEdge(point.New(0, 0), point.New(10, 0))
	require.NoError(t, err)

	pts, err := e.SubDivide(2.5)
	require.NoError(t, err)
	require.Len(t, pts, 5)
	assert.True(t, pts[0].Equal(point.New(0, 0)))
	assert.True(t, pts[len(pts)-1].Equal(point.New(10, 0)))
}

func TestEdge_SubDivide_BadSpacing(t *testing.T) {
	e, err := point.NewEdge(point.New(0, 0), point.New(1, 0))
	require.NoError(t, err)

	_, err = e.SubDivide(0)
	assert.ErrorIs(t, err, point.ErrBadSpacing)
}

func TestPartition(t *testing.T) {
	center := point.New(0, 0)
	pi := []point.Point{
		point.New(0.5, 0),
		point.New(1, 0),
		point.New(5, 0),
	}

	got, err := point.Partition(pi, center, 1.0)
	require.NoError(t, err)
	assert.Equal(t, []point.Point{pi[0], pi[1]}, got)
}

func TestPartition_BadSpacing(t *testing.T) {
	_, err := point.Partition(nil, point.New(0, 0), 0)
	assert.ErrorIs(t, err, point.ErrBadPartitionSpacing)
}
