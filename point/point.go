package point

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
)

// Point is a single location in the plane. Equality and hashing are both
// coordinate-wise, so two Points with equal (X, Y) are interchangeable as
// map keys, DAG vertices, or grid lookup results regardless of where they
// were constructed — the invariant stable hashing depends on.
type Point struct {
	// V holds the coordinate pair as a gonum vector; X/Y accessors below
	// read through it so call sites never have to think about the wrapper.
	V r2.Vec
}

// New constructs a Point at (x, y).
func New(x, y float64) Point {
	return Point{V: r2.Vec{X: x, Y: y}}
}

// X returns the point's x-coordinate.
func (p Point) X() float64 { return p.V.X }

// Y returns the point's y-coordinate.
func (p Point) Y() float64 { return p.V.Y }

// Equal reports whether p and q have identical coordinates.
func (p Point) Equal(q Point) bool {
	return p.V.X == q.V.X && p.V.Y == q.V.Y
}

// Key returns a stable, hashable string identity for p, used throughout
// this module (dag, frechetgrid's distance table, grid's point set) anywhere
// a map key derived from coordinate identity is needed.
func (p Point) Key() string {
	return fmt.Sprintf("%g,%g", p.V.X, p.V.Y)
}

// String renders p as "(x, y)".
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.V.X, p.V.Y)
}

// Distance returns the Euclidean distance between p and q.
func Distance(p, q Point) float64 {
	return r2.Norm(p.V.Sub(q.V))
}

// IsOnEdge reports whether p lies on the closed segment e. It first tests
// linear collinearity using e's slope/intercept, then confirms p's
// coordinate lies within e's endpoint interval on whichever axis e is not
// degenerate along (the y-range branch handles vertical edges, where slope
// is the zero sentinel — see Edge.Slope).
func (p Point) IsOnEdge(e Edge) bool {
	if e.p1.V.X == e.p2.V.X {
		// For a vertical edge, Slope/YIntercept both collapse to sentinel
		// values that can't express the collinearity test on (x, y)
		// directly; fall back to an exact-x check.
		if p.V.X != e.p1.V.X {
			return false
		}
	} else if p.V.Y != e.Slope()*p.V.X+e.YIntercept() {
		return false
	}

	if e.p1.V.X != e.p2.V.X {
		lo, hi := e.p1.V.X, e.p2.V.X
		if lo > hi {
			lo, hi = hi, lo
		}

		return lo <= p.V.X && p.V.X <= hi
	}

	lo, hi := e.p1.V.Y, e.p2.V.Y
	if lo > hi {
		lo, hi = hi, lo
	}

	return lo <= p.V.Y && p.V.Y <= hi
}
