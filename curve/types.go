package curve

import "errors"

// Sentinel errors returned by the curve package.
var (
	// ErrTooShort indicates fewer than 2 points were supplied to build a
	// PolygonalCurve.
	ErrTooShort = errors.New("curve: need at least 2 points to define a polygonal curve")

	// ErrDuplicateConsecutivePoints indicates two consecutive input points
	// were coordinate-equal, which would produce a zero-length edge.
	ErrDuplicateConsecutivePoints = errors.New("curve: consecutive points must be distinct")

	// ErrIndexOutOfRange indicates Get was called with an out-of-bounds index.
	ErrIndexOutOfRange = errors.New("curve: index out of range")
)
