package grid

import (
	"math"

	"github.com/ermel272/frechetrange/point"
)

// ExponentialGrid is a multi-scale family of HyperCubes centred at u, one
// per doubling of radius from alpha to beta, each tiled by a Grid whose
// cell width shrinks with scale so that ApproximatePoint always returns a
// point within (error/2)*||p-u|| of its argument (the grid's key guarantee).
type ExponentialGrid struct {
	center     point.Point
	alpha      float64
	beta       float64
	errorRate  float64
	hypercubes []HyperCube
	grids      []Grid
}

// NewExponentialGrid builds the exponential grid centred at center, valid
// over the annulus [alpha, beta] (alpha is clamped to beta if given out of
// order), at the given approximation error rate.
func NewExponentialGrid(center point.Point, errorRate, alpha, beta float64) (ExponentialGrid, error) {
	if errorRate <= 0 || errorRate > 1 {
		return ExponentialGrid{}, ErrBadError
	}

	if alpha > beta {
		alpha = beta
	}
	if alpha <= 0 {
		return ExponentialGrid{}, ErrBadRadii
	}

	count := int(math.Ceil(math.Log2(beta / alpha)))
	if count < 1 {
		count = 1
	}

	eg := ExponentialGrid{
		center: center, alpha: alpha, beta: beta, errorRate: errorRate,
		hypercubes: make([]HyperCube, count),
		grids:      make([]Grid, count),
	}

	for i := 0; i < count; i++ {
		side := math.Pow(2, float64(i+2)) * alpha
		cube := NewHyperCube(center, side)
		eg.hypercubes[i] = cube

		cellWidth := (errorRate * side) / (4 * math.Sqrt2)

		var inner *HyperCube
		if i > 0 {
			prev := eg.hypercubes[i-1]
			inner = &prev
		}

		g, err := NewGrid(cube, cellWidth, inner)
		if err != nil {
			return ExponentialGrid{}, err
		}
		eg.grids[i] = g
	}

	return eg, nil
}

// Alpha returns the inner radius of the covered annulus.
func (eg ExponentialGrid) Alpha() float64 { return eg.alpha }

// Beta returns the outer radius of the covered annulus.
func (eg ExponentialGrid) Beta() float64 { return eg.beta }

// Center returns the grid's centre point.
func (eg ExponentialGrid) Center() point.Point { return eg.center }

// scaleIndex selects which of the nested grids covers p: the larger of
// ceil(log2(|dx|/alpha) - 1) and ceil(log2(|dy|/alpha) - 1). A zero axis
// delta is excluded from the max rather than producing log2(0) = -Inf;
// if both deltas are zero the precondition alpha <= ||p-u|| is violated.
func (eg ExponentialGrid) scaleIndex(dx, dy float64) (int, error) {
	adx, ady := math.Abs(dx), math.Abs(dy)
	if adx == 0 && ady == 0 {
		return 0, ErrOutOfRange
	}

	var idx int
	have := false

	if adx > 0 {
		idx = int(math.Ceil(math.Log2(adx/eg.alpha) - 1))
		have = true
	}
	if ady > 0 {
		candidate := int(math.Ceil(math.Log2(ady/eg.alpha) - 1))
		if !have || candidate > idx {
			idx = candidate
		}
	}

	if idx < 0 {
		idx = 0
	}
	if idx >= len(eg.grids) {
		idx = len(eg.grids) - 1
	}

	return idx, nil
}

// ApproximatePoint returns a grid point p' with ||p-p'|| <= (error/2)*||p-u||,
// where u is the grid's centre. Precondition: alpha <= ||p-u|| <= beta,
// enforced as ErrOutOfRange.
func (eg ExponentialGrid) ApproximatePoint(p point.Point) (point.Point, error) {
	dist := point.Distance(p, eg.center)
	if dist < eg.alpha || dist > eg.beta {
		return point.Point{}, ErrOutOfRange
	}

	dx := p.X() - eg.center.X()
	dy := p.Y() - eg.center.Y()

	idx, err := eg.scaleIndex(dx, dy)
	if err != nil {
		return point.Point{}, err
	}

	cell := eg.grids[idx].Locate(p)

	return cell.FindClosest(p), nil
}

// Points enumerates every distinct corner point across all active
// (non-punched) cells of every scale, the full candidate set
// ApproximatePoint can ever return. FrechetGrid tabulates its distance
// table over exactly this set for both of its ExponentialGrids.
func (eg ExponentialGrid) Points() []point.Point {
	seen := make(map[string]point.Point)

	for _, g := range eg.grids {
		n := g.NumCells()
		for row := 0; row < n; row++ {
			for col := 0; col < n; col++ {
				if g.isPunched(row, col) {
					continue
				}

				for _, corner := range g.cellAt(row, col).Corners() {
					seen[corner.Key()] = corner
				}
			}
		}
	}

	out := make([]point.Point, 0, len(seen))
	for _, p := range seen {
		out = append(out, p)
	}

	return out
}
