package frechetgrid

import (
	"fmt"

	"github.com/ermel272/frechetrange/curve"
	"github.com/ermel272/frechetrange/frechet"
	"github.com/ermel272/frechetrange/grid"
	"github.com/ermel272/frechetrange/point"
)

// FrechetGrid answers (1+error)-approximate discrete Fréchet distance
// queries between an edge and a fixed curve C in O(1) time, after
// O(X^2 * n) preprocessing (X = error^-2 * log(1/error), n = C.Size()).
type FrechetGrid struct {
	u, v      point.Point
	steinerC  curve.PolygonalCurve
	l         float64
	error     float64
	gridU     grid.ExponentialGrid
	gridV     grid.ExponentialGrid
	distances map[string]map[string]float64
}

// New builds the FrechetGrid attached to c, valid for (1+errorRate)-approximate
// queries. steinerSpacing controls the Steiner-point density used both to
// estimate L (the discrete Fréchet distance between C's spine and C) and
// to populate the distance
// table; callers thread this through as the structure's STEINER_SPACING
// parameter rather than a package-level constant.
func New(c curve.PolygonalCurve, errorRate, steinerSpacing float64) (FrechetGrid, error) {
	if errorRate <= 0 || errorRate > 1 {
		return FrechetGrid{}, ErrBadError
	}

	u, v := c.Spine()

	steinerC, err := c.SteinerCurve(steinerSpacing)
	if err != nil {
		return FrechetGrid{}, fmt.Errorf("frechetgrid: steiner curve of C: %w", err)
	}

	l, err := initL(u, v, steinerC, steinerSpacing)
	if err != nil {
		return FrechetGrid{}, err
	}

	gridU, err := grid.NewExponentialGrid(u, errorRate, errorRate*l/2, l/errorRate)
	if err != nil {
		return FrechetGrid{}, fmt.Errorf("frechetgrid: building G(u): %w", err)
	}

	gridV, err := grid.NewExponentialGrid(v, errorRate, errorRate*l/2, l/errorRate)
	if err != nil {
		return FrechetGrid{}, fmt.Errorf("frechetgrid: building G(v): %w", err)
	}

	fg := FrechetGrid{
		u: u, v: v, steinerC: steinerC, l: l, error: errorRate,
		gridU: gridU, gridV: gridV,
	}

	fg.distances, err = fg.initDistances(steinerSpacing)
	if err != nil {
		return FrechetGrid{}, err
	}

	return fg, nil
}

// initL computes L, the discrete Fréchet distance between the Steiner
// subdivision of the spine edge (u, v) and the Steiner subdivision of C.
// L is floored to 1 when the spine and C coincide, since L appears as a
// divisor below.
func initL(u, v point.Point, steinerC curve.PolygonalCurve, steinerSpacing float64) (float64, error) {
	spine, err := point.NewEdge(u, v)
	if err != nil {
		return 0, fmt.Errorf("frechetgrid: degenerate spine: %w", err)
	}

	steinerSpine, err := curve.FromEdge(spine).SteinerCurve(steinerSpacing)
	if err != nil {
		return 0, fmt.Errorf("frechetgrid: steiner curve of spine: %w", err)
	}

	l := frechet.Distance(steinerSpine, steinerC)
	if l == 0 {
		l = 1
	}

	return l, nil
}

// initDistances tabulates, for every p' in G(u).Points() and q' in
// G(v).Points(), the discrete Fréchet distance between the Steiner
// subdivision of segment (p', q') and steinerC.
func (fg *FrechetGrid) initDistances(steinerSpacing float64) (map[string]map[string]float64, error) {
	pPrimes := fg.gridU.Points()
	qPrimes := fg.gridV.Points()

	distances := make(map[string]map[string]float64, len(pPrimes))

	for _, pPrime := range pPrimes {
		row := make(map[string]float64, len(qPrimes))

		for _, qPrime := range qPrimes {
			d, err := fg.segmentDistance(pPrime, qPrime, steinerSpacing)
			if err != nil {
				return nil, err
			}

			row[qPrime.Key()] = d
		}

		distances[pPrime.Key()] = row
	}

	return distances, nil
}

// segmentDistance computes the discrete Fréchet distance between the
// Steiner subdivision of segment (p, q) and steinerC. If p and q coincide
// exactly — possible, if rare, when G(u) and G(v) overlap — the "segment"
// degenerates to a single repeated point; its discrete Fréchet distance to
// steinerC reduces to the usual recurrence's singleton-curve case, the max
// distance from p to any vertex of steinerC.
func (fg *FrechetGrid) segmentDistance(p, q point.Point, steinerSpacing float64) (float64, error) {
	if p.Equal(q) {
		return maxDistanceToCurve(p, fg.steinerC), nil
	}

	e, err := point.NewEdge(p, q)
	if err != nil {
		return 0, fmt.Errorf("frechetgrid: segment (%s, %s): %w", p, q, err)
	}

	steinerPQ, err := curve.FromEdge(e).SteinerCurve(steinerSpacing)
	if err != nil {
		return 0, fmt.Errorf("frechetgrid: steiner curve of segment: %w", err)
	}

	return frechet.Distance(steinerPQ, fg.steinerC), nil
}

// maxDistanceToCurve returns the greatest distance from p to any vertex of c.
func maxDistanceToCurve(p point.Point, c curve.PolygonalCurve) float64 {
	var max float64

	for _, v := range c.Points() {
		if d := point.Distance(p, v); d > max {
			max = d
		}
	}

	return max
}

// ApproximateFrechet returns a (1+error)-approximate discrete Fréchet
// distance between edge and the curve this grid was built from, per
// the three-branch formula below.
func (fg FrechetGrid) ApproximateFrechet(edge point.Edge) (float64, error) {
	p, q := edge.P1(), edge.P2()

	r := max2(point.Distance(p, fg.u), point.Distance(q, fg.v))

	switch {
	case r <= fg.error*fg.l/2:
		return fg.l - r, nil
	case r >= fg.l/fg.error:
		return r, nil
	}

	pPrime, err := fg.gridU.ApproximatePoint(p)
	if err != nil {
		return 0, fmt.Errorf("frechetgrid: approximating p: %w", err)
	}

	qPrime, err := fg.gridV.ApproximatePoint(q)
	if err != nil {
		return 0, fmt.Errorf("frechetgrid: approximating q: %w", err)
	}

	d := fg.distances[pPrime.Key()][qPrime.Key()]
	correction := max2(point.Distance(p, pPrime), point.Distance(q, qPrime))

	return d - correction, nil
}

func max2(a, b float64) float64 {
	if a > b {
		return a
	}

	return b
}
