package rangetree

import (
	"fmt"

	"github.com/ermel272/frechetrange/curve"
	"github.com/ermel272/frechetrange/frechetgrid"
)

// CurveRangeTree answers (1+error)-approximate Fréchet matching queries
// against subpaths of a fixed polygonal curve P, fixed at construction to
// a target distance delta.
type CurveRangeTree struct {
	root  *node
	error float64
	delta float64
	cfg   config
}

// New decomposes p into a CurveRangeTree valid for (1+errorRate)-approximate
// queries against the fixed target distance delta. p must have at least 2
// points, errorRate must be in (0, 1], and delta must be positive.
func New(p curve.PolygonalCurve, errorRate, delta float64, opts ...Option) (*CurveRangeTree, error) {
	if p.Size() < 2 {
		return nil, fmt.Errorf("%w: curve must have at least 2 points", ErrInvalidInput)
	}
	if errorRate <= 0 || errorRate > 1 {
		return nil, fmt.Errorf("%w: error rate must be in (0, 1]", ErrInvalidInput)
	}
	if delta <= 0 {
		return nil, fmt.Errorf("%w: delta must be positive", ErrInvalidInput)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	root, err := buildNode(p, errorRate, cfg.steinerSpacing, nil)
	if err != nil {
		return nil, err
	}

	decompose(root)

	return &CurveRangeTree{root: root, error: errorRate, delta: delta, cfg: cfg}, nil
}

// buildNode constructs the node owning c, recursing on c.LeftCurve() and
// c.RightCurve() until c.Size() == 2.
//
// Every node's FrechetGrid is built with errorRate, not errorRate/2 — the
// final revision of this structure's source dropped the halved error rate
// "for performance reasons"; either is internally consistent; the kept
// variant yields a weaker but still (1+errorRate)-bounded guarantee after
// absorbing constants.
func buildNode(c curve.PolygonalCurve, errorRate, steinerSpacing float64, parent *node) (*node, error) {
	grid, err := frechetgrid.New(c, errorRate, steinerSpacing)
	if err != nil {
		return nil, fmt.Errorf("%w: building node grid: %w", ErrInvalidInput, err)
	}

	n := &node{parent: parent, curve: c, grid: grid}

	if c.Size() == 2 {
		return n, nil
	}

	n.left, err = buildNode(c.LeftCurve(), errorRate, steinerSpacing, n)
	if err != nil {
		return nil, err
	}

	n.right, err = buildNode(c.RightCurve(), errorRate, steinerSpacing, n)
	if err != nil {
		return nil, err
	}

	return n, nil
}
