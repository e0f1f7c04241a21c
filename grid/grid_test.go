package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ermel272/frechetrange/grid"
	"github.com/ermel272/frechetrange/point"
)

func TestHyperCube_Corners(t *testing.T) {
	h := grid.NewHyperCube(point.New(0, 0), 4)

	assert.True(t, h.TopLeft().Equal(point.New(-2, -2)))
	assert.True(t, h.TopRight().Equal(point.New(2, -2)))
	assert.True(t, h.BottomLeft().Equal(point.New(-2, 2)))
	assert.True(t, h.BottomRight().Equal(point.New(2, 2)))
	assert.True(t, h.Contains(point.New(0, 0)))
	assert.False(t, h.Contains(point.New(3, 3)))
}

func TestGrid_Locate(t *testing.T) {
	h := grid.NewHyperCube(point.New(0, 0), 4)
	g, err := grid.NewGrid(h, 1.0, nil)
	require.NoError(t, err)

	cell := g.Locate(point.New(0.4, 0.4))
	closest := cell.FindClosest(point.New(0.4, 0.4))
	// cell spans [0,1]x[0,1]; nearest corner to (0.4,0.4) is (0,0).
	assert.True(t, closest.Equal(point.New(0, 0)))
}

// TestExponentialGrid_Approximation is scenario S6 / property 4.
func TestExponentialGrid_Approximation(t *testing.T) {
	const errorRate = 0.05

	eg, err := grid.NewExponentialGrid(point.New(0, 0), errorRate, 1.0, 20.0)
	require.NoError(t, err)

	p := point.New(1, 18)
	pPrime, err := eg.ApproximatePoint(p)
	require.NoError(t, err)

	bound := (errorRate / 2) * point.Distance(p, point.New(0, 0))
	assert.LessOrEqual(t, point.Distance(p, pPrime), bound)
}

func TestExponentialGrid_OutOfRange(t *testing.T) {
	eg, err := grid.NewExponentialGrid(point.New(0, 0), 0.1, 1.0, 10.0)
	require.NoError(t, err)

	_, err = eg.ApproximatePoint(point.New(0, 0))
	assert.ErrorIs(t, err, grid.ErrOutOfRange)

	_, err = eg.ApproximatePoint(point.New(100, 100))
	assert.ErrorIs(t, err, grid.ErrOutOfRange)
}

func TestExponentialGrid_ZeroAxisDelta(t *testing.T) {
	eg, err := grid.NewExponentialGrid(point.New(0, 0), 0.1, 1.0, 10.0)
	require.NoError(t, err)

	// dx == 0: lookup must fall back to the y-axis formula, not log2(0).
	p := point.New(0, 5)
	pPrime, err := eg.ApproximatePoint(p)
	require.NoError(t, err)

	bound := (0.1 / 2) * point.Distance(p, point.New(0, 0))
	assert.LessOrEqual(t, point.Distance(p, pPrime), bound)
}

func TestNewExponentialGrid_BadError(t *testing.T) {
	_, err := grid.NewExponentialGrid(point.New(0, 0), 0, 1, 10)
	assert.ErrorIs(t, err, grid.ErrBadError)

	_, err = grid.NewExponentialGrid(point.New(0, 0), 1.5, 1, 10)
	assert.ErrorIs(t, err, grid.ErrBadError)
}
