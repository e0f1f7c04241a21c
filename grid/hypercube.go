package grid

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/ermel272/frechetrange/point"
)

// HyperCube is an axis-aligned square centred at a point, with a given
// side length. It is backed by an r2.Box so its corners reuse gonum's
// bounding-box vocabulary instead of four ad hoc fields.
type HyperCube struct {
	box        r2.Box
	center     point.Point
	sideLength float64
}

// NewHyperCube constructs the square of side sideLength centred at center.
func NewHyperCube(center point.Point, sideLength float64) HyperCube {
	half := sideLength / 2

	return HyperCube{
		box: r2.Box{
			Min: r2.Vec{X: center.X() - half, Y: center.Y() - half},
			Max: r2.Vec{X: center.X() + half, Y: center.Y() + half},
		},
		center:     center,
		sideLength: sideLength,
	}
}

// Center returns the cube's centre point.
func (h HyperCube) Center() point.Point { return h.center }

// SideLength returns the cube's side length.
func (h HyperCube) SideLength() float64 { return h.sideLength }

// TopLeft returns the (min-x, min-y) corner.
func (h HyperCube) TopLeft() point.Point { return point.New(h.box.Min.X, h.box.Min.Y) }

// TopRight returns the (max-x, min-y) corner.
func (h HyperCube) TopRight() point.Point { return point.New(h.box.Max.X, h.box.Min.Y) }

// BottomLeft returns the (min-x, max-y) corner.
func (h HyperCube) BottomLeft() point.Point { return point.New(h.box.Min.X, h.box.Max.Y) }

// BottomRight returns the (max-x, max-y) corner.
func (h HyperCube) BottomRight() point.Point { return point.New(h.box.Max.X, h.box.Max.Y) }

// Contains reports whether p lies within the (closed) square.
func (h HyperCube) Contains(p point.Point) bool {
	return h.box.Min.X <= p.X() && p.X() <= h.box.Max.X &&
		h.box.Min.Y <= p.Y() && p.Y() <= h.box.Max.Y
}
