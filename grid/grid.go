package grid

import (
	"math"

	"github.com/ermel272/frechetrange/point"
)

// Cell is one square tile of a Grid, identified by its four corners.
type Cell struct {
	corners [4]point.Point
}

// Corners returns the cell's four corner points.
func (c Cell) Corners() [4]point.Point { return c.corners }

// FindClosest returns whichever of the cell's four corners is nearest to p.
func (c Cell) FindClosest(p point.Point) point.Point {
	closest := c.corners[0]
	minDist := point.Distance(p, closest)

	for _, corner := range c.corners[1:] {
		if d := point.Distance(p, corner); d < minDist {
			closest = corner
			minDist = d
		}
	}

	return closest
}

// Grid tilts a HyperCube into a square lattice of cells with fixed cell
// width w. A Grid may optionally be cropped by a smaller, nested
// HyperCube: cells that would fall wholly inside that inner cube are
// never materialised, since a finer-scale ExponentialGrid already covers
// that region.
type Grid struct {
	cube      HyperCube
	cellWidth float64
	numCells  int
	inner     *HyperCube
}

// NewGrid tiles cube into square cells of width cellWidth. inner, if
// non-nil, is a smaller nested HyperCube whose interior this Grid does not
// need to cover.
func NewGrid(cube HyperCube, cellWidth float64, inner *HyperCube) (Grid, error) {
	numCells := int(math.Ceil(cube.SideLength() / cellWidth))
	if numCells <= 0 {
		return Grid{}, ErrBadCellWidth
	}

	return Grid{cube: cube, cellWidth: cellWidth, numCells: numCells, inner: inner}, nil
}

// NumCells returns the number of cells along one side of the grid.
func (g Grid) NumCells() int { return g.numCells }

// Cube returns the HyperCube this grid tiles.
func (g Grid) Cube() HyperCube { return g.cube }

// cellAt builds the Cell at (row, col), clamped to the grid's bounds, by
// offsetting from the cube's top-left corner — the O(1) integer-arithmetic
// step the multi-scale family calls for.
func (g Grid) cellAt(row, col int) Cell {
	if row < 0 {
		row = 0
	} else if row >= g.numCells {
		row = g.numCells - 1
	}
	if col < 0 {
		col = 0
	} else if col >= g.numCells {
		col = g.numCells - 1
	}

	tl := g.cube.TopLeft()
	x0 := tl.X() + float64(col)*g.cellWidth
	y0 := tl.Y() + float64(row)*g.cellWidth

	return Cell{corners: [4]point.Point{
		point.New(x0, y0),
		point.New(x0+g.cellWidth, y0),
		point.New(x0, y0+g.cellWidth),
		point.New(x0+g.cellWidth, y0+g.cellWidth),
	}}
}

// isPunched reports whether the cell at (row, col) lies wholly within the
// grid's inner exclusion cube, in which case it is never materialised by
// a real ExponentialGrid (a finer scale already covers it). Locate still
// resolves points that land there, which only happens when a caller probes
// this Grid directly rather than through ExponentialGrid.ApproximatePoint.
func (g Grid) isPunched(row, col int) bool {
	if g.inner == nil {
		return false
	}

	c := g.cellAt(row, col)
	corners := c.Corners()
	for _, corner := range corners {
		if !g.inner.Contains(corner) {
			return false
		}
	}

	return true
}

// Locate returns the Cell containing p, clamped to the grid's bounds.
func (g Grid) Locate(p point.Point) Cell {
	tl := g.cube.TopLeft()
	col := int(math.Floor((p.X() - tl.X()) / g.cellWidth))
	row := int(math.Floor((p.Y() - tl.Y()) / g.cellWidth))

	return g.cellAt(row, col)
}
