package frechet

import (
	"github.com/ermel272/frechetrange/curve"
	"github.com/ermel272/frechetrange/point"
)

// unfilled marks a memo cell that has not yet been computed.
const unfilled = -1.0

// memo holds the Eiter–Mannila coupling-measure table for one Distance
// call. p and q are the two curves being compared; ca[i][j] caches the
// recursive relation's value at (i, j), 0-based.
type memo struct {
	p, q curve.PolygonalCurve
	ca   [][]float64
}

// Distance computes the discrete Fréchet distance between polygonal
// curves p and q in O(|p|*|q|) time.
func Distance(p, q curve.PolygonalCurve) float64 {
	m := &memo{p: p, q: q, ca: newTable(p.Size(), q.Size())}

	return m.c(p.Size()-1, q.Size()-1)
}

// newTable allocates an m x n table with every cell marked unfilled.
func newTable(m, n int) [][]float64 {
	ca := make([][]float64, m)
	for i := range ca {
		row := make([]float64, n)
		for j := range row {
			row[j] = unfilled
		}
		ca[i] = row
	}

	return ca
}

// c computes (and memoizes) the coupling measure at 0-based indices (i, j),
// mirroring the 1-based recurrence of the discrete Fréchet recursion:
//
//	ca[0,0]   = dist(p0, q0)
//	ca[i,0]   = max(ca[i-1,0], dist(pi, q0))         for i > 0
//	ca[0,j]   = max(ca[0,j-1], dist(p0, qj))         for j > 0
//	ca[i,j]   = max(min(ca[i-1,j], ca[i-1,j-1], ca[i,j-1]), dist(pi, qj))
func (m *memo) c(i, j int) float64 {
	if m.ca[i][j] > unfilled {
		return m.ca[i][j]
	}

	pi, _ := m.p.Get(i)
	qj, _ := m.q.Get(j)
	d := point.Distance(pi, qj)

	switch {
	case i == 0 && j == 0:
		m.ca[i][j] = d
	case i > 0 && j == 0:
		m.ca[i][j] = max2(m.c(i-1, 0), d)
	case i == 0 && j > 0:
		m.ca[i][j] = max2(m.c(0, j-1), d)
	default:
		m.ca[i][j] = max2(min3(m.c(i-1, j), m.c(i-1, j-1), m.c(i, j-1)), d)
	}

	return m.ca[i][j]
}

func max2(a, b float64) float64 {
	if a > b {
		return a
	}

	return b
}

func min3(a, b, c float64) float64 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}

	return m
}
