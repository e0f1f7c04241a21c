package grid

import "errors"

// Sentinel errors returned by the grid package.
var (
	// ErrBadRadii indicates alpha <= 0 or a nonsensical alpha/beta pairing
	// was supplied to NewExponentialGrid.
	ErrBadRadii = errors.New("grid: alpha must be positive and at most beta")

	// ErrBadError indicates an error rate outside (0, 1] was supplied.
	ErrBadError = errors.New("grid: error rate must be in (0, 1]")

	// ErrOutOfRange indicates ApproximatePoint was called with a point
	// whose distance from the grid's centre falls outside [alpha, beta].
	ErrOutOfRange = errors.New("grid: point falls outside the grid's covered annulus")

	// ErrBadCellWidth indicates a HyperCube/cell-width pairing that yields
	// zero usable cells.
	ErrBadCellWidth = errors.New("grid: invalid hypercube side length and cell width")
)
