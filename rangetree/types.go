package rangetree

import "errors"

// ErrInvalidInput marks a violated construction or query precondition:
// a curve shorter than 2 points, an error rate outside (0, 1], a
// non-positive delta, or a degenerate edge.
var ErrInvalidInput = errors.New("rangetree: invalid input")

// ErrNotFound is returned when an edge passed to a query cannot be located
// as an edge of the tree's curve during path routing.
var ErrNotFound = errors.New("rangetree: edge not found in tree")
