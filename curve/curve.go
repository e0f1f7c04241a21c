package curve

import (
	"math"

	"github.com/ermel272/frechetrange/point"
)

// PolygonalCurve is an ordered sequence of at least two points.
type PolygonalCurve struct {
	points []point.Point
}

// New constructs a PolygonalCurve from points. It requires at least 2
// points (ErrTooShort) and rejects duplicate consecutive points, which
// would otherwise produce a zero-length edge (ErrDuplicateConsecutivePoints).
func New(points []point.Point) (PolygonalCurve, error) {
	if len(points) < 2 {
		return PolygonalCurve{}, ErrTooShort
	}

	for i := 1; i < len(points); i++ {
		if points[i].Equal(points[i-1]) {
			return PolygonalCurve{}, ErrDuplicateConsecutivePoints
		}
	}

	cp := make([]point.Point, len(points))
	copy(cp, points)

	return PolygonalCurve{points: cp}, nil
}

// FromEdge returns the trivial 2-point curve spanning e — "an Edge is also
// a PolygonalCurve of size 2".
func FromEdge(e point.Edge) PolygonalCurve {
	return PolygonalCurve{points: []point.Point{e.P1(), e.P2()}}
}

// Append adds point p to the end of the curve.
func (c *PolygonalCurve) Append(p point.Point) {
	c.points = append(c.points, p)
}

// Get returns the point at index i, or ErrIndexOutOfRange if i is out of
// bounds.
func (c PolygonalCurve) Get(i int) (point.Point, error) {
	if i < 0 || i >= len(c.points) {
		return point.Point{}, ErrIndexOutOfRange
	}

	return c.points[i], nil
}

// Spine returns the curve's first and last points.
func (c PolygonalCurve) Spine() (point.Point, point.Point) {
	return c.points[0], c.points[len(c.points)-1]
}

// Size returns the number of points in the curve.
func (c PolygonalCurve) Size() int {
	return len(c.points)
}

// Points returns a read-only view of the curve's point sequence. Callers
// must not mutate the returned slice.
func (c PolygonalCurve) Points() []point.Point {
	return c.points
}

// median returns floor(n/2), the shared split index.
func (c PolygonalCurve) median() int {
	return int(math.Floor(float64(c.Size()) / 2))
}

// LeftCurve returns the left half of the curve: points[0:median+1]. Curves
// of size <= 2 are terminal and split to themselves.
func (c PolygonalCurve) LeftCurve() PolygonalCurve {
	if c.Size() <= 2 {
		return c
	}

	m := c.median()

	return PolygonalCurve{points: c.points[:m+1]}
}

// RightCurve returns the right half of the curve: points[median:]. Curves
// of size <= 2 are terminal and split to themselves.
func (c PolygonalCurve) RightCurve() PolygonalCurve {
	if c.Size() <= 2 {
		return c
	}

	m := c.median()

	return PolygonalCurve{points: c.points[m:]}
}

// Contains reports whether e's endpoints equal some consecutive pair of
// points in the curve, in order.
func (c PolygonalCurve) Contains(e point.Edge) bool {
	for i := 1; i < len(c.points); i++ {
		if c.points[i-1].Equal(e.P1()) && c.points[i].Equal(e.P2()) {
			return true
		}
	}

	return false
}

// IsInLeftCurve reports whether e is contained in c.LeftCurve().
func (c PolygonalCurve) IsInLeftCurve(e point.Edge) bool {
	return c.LeftCurve().Contains(e)
}

// IsInRightCurve reports whether e is contained in c.RightCurve().
func (c PolygonalCurve) IsInRightCurve(e point.Edge) bool {
	return c.RightCurve().Contains(e)
}

// SteinerSubdivide returns a denser point sequence sampling every segment
// of c at constant arclength spacing, via point.Edge.SubDivide. Shared
// vertices between consecutive segments are not duplicated in the output.
func (c PolygonalCurve) SteinerSubdivide(spacing float64) ([]point.Point, error) {
	out := make([]point.Point, 0, len(c.points))

	for i := 1; i < len(c.points); i++ {
		e, err := point.NewEdge(c.points[i-1], c.points[i])
		if err != nil {
			return nil, err
		}

		samples, err := e.SubDivide(spacing)
		if err != nil {
			return nil, err
		}

		if i > 1 {
			samples = samples[1:] // drop the duplicate shared vertex
		}

		out = append(out, samples...)
	}

	return out, nil
}

// SteinerCurve is SteinerSubdivide wrapped back into a PolygonalCurve, the
// form frechetgrid.FrechetGrid consumes when computing discrete Fréchet
// distances against Steiner-subdivided curves.
func (c PolygonalCurve) SteinerCurve(spacing float64) (PolygonalCurve, error) {
	pts, err := c.SteinerSubdivide(spacing)
	if err != nil {
		return PolygonalCurve{}, err
	}

	return New(pts)
}
