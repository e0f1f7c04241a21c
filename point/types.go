package point

import "errors"

// Sentinel errors returned by the point package.
var (
	// ErrDegenerateEdge indicates an Edge was constructed with p1 == p2.
	ErrDegenerateEdge = errors.New("point: edge endpoints must be distinct")

	// ErrBadPartitionSpacing indicates Partition was called with a
	// non-positive distance threshold.
	ErrBadPartitionSpacing = errors.New("point: partition threshold must be positive")

	// ErrBadSpacing indicates SubDivide was called with a non-positive
	// arclength step.
	ErrBadSpacing = errors.New("point: subdivision spacing must be positive")
)
