package rangetree

import (
	"fmt"

	"github.com/ermel272/frechetrange/dag"
	"github.com/ermel272/frechetrange/point"
)

// IsApproximate reports whether the discrete Fréchet distance from qEdge
// to this tree's subpath P[x, y] is at most (1+error)*delta, the fixed
// target distance supplied at construction. xEdge and
// yEdge must be edges of P containing x and y respectively; ErrNotFound
// is returned when either is not an edge of P. Whether x and y actually
// lie on xEdge and yEdge is not checked.
func (t *CurveRangeTree) IsApproximate(qEdge point.Edge, x, y point.Point, xEdge, yEdge point.Edge) (bool, error) {
	subpaths, err := t.partitionPath(x, y, xEdge, yEdge)
	if err != nil {
		return false, err
	}

	return t.findFrechetBottleneck(qEdge, subpaths)
}

// findFrechetBottleneck partitions qEdge's dense Steiner subdivision
// against each subpath's head point, assembles a DAG over the resulting
// point sets, and answers the query from the DAG's bottleneck path weight
// the steps below.
func (t *CurveRangeTree) findFrechetBottleneck(qEdge point.Edge, subpaths []*node) (bool, error) {
	pi, err := qEdge.SubDivide(t.error * t.delta / 3)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	var partitions [][]point.Point
	for _, subpath := range subpaths[1:] {
		head, err := subpath.curve.Get(0)
		if err != nil {
			return false, err
		}

		dagPoints, err := point.Partition(pi, head, 2*t.delta)
		if err != nil {
			return false, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}

		if len(dagPoints) > 0 {
			partitions = append(partitions, dagPoints)
		}
	}

	d := dag.New()
	q1, q2 := qEdge.P1(), qEdge.P2()

	for i := 0; i < len(partitions)-1; i++ {
		j := i + 1

		for _, u := range partitions[i] {
			for _, v := range partitions[j] {
				if u.Equal(v) || u.Equal(q2) {
					continue
				}

				uq2, err := point.NewEdge(u, q2)
				if err != nil {
					continue
				}
				if !v.IsOnEdge(uq2) {
					continue
				}

				w, err := subpaths[i+1].grid.ApproximateFrechet(point.MustNewEdge(u, v))
				if err != nil {
					return false, err
				}

				// A cycle-rejected edge is dropped silently here: a missing
				// edge just narrows the candidate paths the DAG considers.
				_ = d.AddEdge(u, v, w)
			}
		}
	}

	switch {
	case len(partitions) > 0:
		for _, v := range partitions[0] {
			if v.Equal(q1) {
				continue
			}

			w, err := subpaths[0].grid.ApproximateFrechet(point.MustNewEdge(q1, v))
			if err != nil {
				return false, err
			}

			_ = d.AddEdge(q1, v, w)
		}

		last := partitions[len(partitions)-1]
		for _, u := range last {
			if u.Equal(q2) {
				continue
			}

			w, err := subpaths[len(partitions)-1].grid.ApproximateFrechet(point.MustNewEdge(u, q2))
			if err != nil {
				return false, err
			}

			_ = d.AddEdge(u, q2, w)
		}
	default:
		// No non-empty partitions: the whole query edge couples against
		// both the first and last subpaths directly. Both candidate
		// weights target the very same edge q1 -> q2, so AddEdgeMin keeps
		// the tighter of the two instead of silently dropping one.
		w0, err := subpaths[0].grid.ApproximateFrechet(qEdge)
		if err != nil {
			return false, err
		}
		_ = d.AddEdgeMin(q1, q2, w0)

		wN, err := subpaths[len(subpaths)-1].grid.ApproximateFrechet(qEdge)
		if err != nil {
			return false, err
		}
		_ = d.AddEdgeMin(q1, q2, wN)
	}

	deltaPrime, err := d.BottleneckPathWeight(q1, q2)
	if err != nil {
		return false, fmt.Errorf("rangetree: bottleneck path: %w", err)
	}

	return deltaPrime <= (1+t.error)*t.delta, nil
}
