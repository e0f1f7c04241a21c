package curve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ermel272/frechetrange/curve"
	"github.com/ermel272/frechetrange/point"
)

func pts(coords ...float64) []point.Point {
	out := make([]point.Point, 0, len(coords)/2)
	for i := 0; i < len(coords); i += 2 {
		out = append(out, point.New(coords[i], coords[i+1]))
	}

	return out
}

func TestNew_TooShort(t *testing.T) {
	_, err := curve.New(pts(0, 0))
	assert.ErrorIs(t, err, curve.ErrTooShort)
}

func TestNew_DuplicateConsecutive(t *testing.T) {
	_, err := curve.New(pts(0, 0, 0, 0, 1, 1))
	assert.ErrorIs(t, err, curve.ErrDuplicateConsecutivePoints)
}

func TestSplit_Odd(t *testing.T) {
	c, err := curve.New(pts(0, 0, 1, 0, 2, 0, 3, 0, 4, 0))
	require.NoError(t, err)

	left := c.LeftCurve()
	right := c.RightCurve()

	assert.Equal(t, 3, left.Size())  // [0,1,2]
	assert.Equal(t, 3, right.Size()) // [2,3,4]

	p, _ := left.Get(2)
	q, _ := right.Get(0)
	assert.True(t, p.Equal(q)) // shared median vertex
}

func TestSplit_Leaf(t *testing.T) {
	c, err := curve.New(pts(0, 0, 1, 1))
	require.NoError(t, err)

	assert.Equal(t, c, c.LeftCurve())
	assert.Equal(t, c, c.RightCurve())
}

func TestContains(t *testing.T) {
	c, err := curve.New(pts(0, 0, 1, 0, 2, 0))
	require.NoError(t, err)

	e, err := point.NewEdge(point.New(1, 0), point.New(2, 0))
	require.NoError(t, err)
	assert.True(t, c.Contains(e))

	rev, err := point.NewEdge(point.New(2, 0), point.New(1, 0))
	require.NoError(t, err)
	assert.False(t, c.Contains(rev))
}

func TestSteinerSubdivide_NoDuplicateJoints(t *testing.T) {
	c, err := curve.New(pts(0, 0, 2, 0, 2, 2))
	require.NoError(t, err)

	samples, err := c.SteinerSubdivide(1.0)
	require.NoError(t, err)

	for i := 1; i < len(samples); i++ {
		assert.False(t, samples[i].Equal(samples[i-1]), "no adjacent duplicate samples")
	}
	assert.True(t, samples[0].Equal(point.New(0, 0)))
	assert.True(t, samples[len(samples)-1].Equal(point.New(2, 2)))
}
