package point

// Edge is an ordered pair of distinct points (p1, p2). It carries the
// derived line properties — slope, y-intercept, and
// Euclidean length — computed once at construction.
//
// Slope is defined as 0 for a vertical edge (p1.X == p2.X). This is a
// degenerate sentinel, not a geometric fact: callers must never use Slope
// alone to test collinearity on a vertical edge. Point.IsOnEdge is the only
// supported way to test membership and already accounts for this.
type Edge struct {
	p1, p2 Point

	slope      float64
	yIntercept float64
	length     float64
}

// NewEdge constructs an Edge from p1 to p2. p1 and p2 must be distinct;
// zero-length edges are not constructible (ErrDegenerateEdge).
func NewEdge(p1, p2 Point) (Edge, error) {
	if p1.Equal(p2) {
		return Edge{}, ErrDegenerateEdge
	}

	e := Edge{p1: p1, p2: p2, length: Distance(p1, p2)}

	if p1.V.X == p2.V.X {
		// Vertical edge: slope sentinel, see type doc comment.
		e.slope = 0
		e.yIntercept = 0
	} else {
		e.slope = (p1.V.Y - p2.V.Y) / (p1.V.X - p2.V.X)
		e.yIntercept = p1.V.Y - e.slope*p1.V.X
	}

	return e, nil
}

// MustNewEdge is NewEdge for call sites that already know p1 != p2 (e.g.
// internal constructions derived from an existing, validated curve).
// It panics on a degenerate edge, signalling a programmer error rather
// than a data-dependent one.
func MustNewEdge(p1, p2 Point) Edge {
	e, err := NewEdge(p1, p2)
	if err != nil {
		panic(err)
	}

	return e
}

// P1 returns the edge's first endpoint.
func (e Edge) P1() Point { return e.p1 }

// P2 returns the edge's second endpoint.
func (e Edge) P2() Point { return e.p2 }

// Slope returns the edge's slope, or 0 for a vertical edge (see the type
// doc comment — this is a sentinel, not a geometric value).
func (e Edge) Slope() float64 { return e.slope }

// YIntercept returns the edge's y-intercept, or 0 for a vertical edge.
func (e Edge) YIntercept() float64 { return e.yIntercept }

// Length returns the Euclidean length of the edge.
func (e Edge) Length() float64 { return e.length }

// SubDivide samples e at constant parametric step spacing/Length(), starting
// at p1 and stopping before the parameter reaches 1, then appends p2. The
// result always has at least the two endpoints, even when spacing exceeds
// the edge's length.
func (e Edge) SubDivide(spacing float64) ([]Point, error) {
	if spacing <= 0 {
		return nil, ErrBadSpacing
	}

	pts := make([]Point, 0, int(e.length/spacing)+2)
	pts = append(pts, e.p1)

	step := spacing / e.length
	for t := step; t < 1; t += step {
		x := (1-t)*e.p1.V.X + t*e.p2.V.X
		y := (1-t)*e.p1.V.Y + t*e.p2.V.Y
		pts = append(pts, New(x, y))
	}

	pts = append(pts, e.p2)

	return pts, nil
}

// Partition returns the ordered sub-list of pi within Euclidean distance
// 2*delta of center. pi is a pre-computed dense point set (typically a
// Steiner subdivision of a query edge) rather than a spacing value, so
// callers subdivide once and partition it against several centers; delta
// must be positive.
func Partition(pi []Point, center Point, delta float64) ([]Point, error) {
	if delta <= 0 {
		return nil, ErrBadPartitionSpacing
	}

	threshold := 2 * delta
	out := make([]Point, 0, len(pi))
	for _, p := range pi {
		if Distance(p, center) <= threshold {
			out = append(out, p)
		}
	}

	return out, nil
}
