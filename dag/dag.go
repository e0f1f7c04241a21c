package dag

import (
	"math"

	"github.com/ermel272/frechetrange/point"
)

// neighbor is one outgoing edge: a destination vertex and its weight.
type neighbor struct {
	to     point.Point
	weight float64
}

// DAG is a directed acyclic graph keyed by point.Point.Key(). It is built
// up once via AddEdge / AddEdgeMin and then queried; it carries no mutex
// because, like curve.PolygonalCurve, it is constructed single-threaded
// and treated as read-only afterward.
type DAG struct {
	vertices map[string]point.Point
	adj      map[string][]neighbor
}

// New returns an empty DAG.
func New() *DAG {
	return &DAG{
		vertices: make(map[string]point.Point),
		adj:      make(map[string][]neighbor),
	}
}

// addVertex registers p if not already present.
func (d *DAG) addVertex(p point.Point) {
	if _, ok := d.vertices[p.Key()]; !ok {
		d.vertices[p.Key()] = p
	}
}

// hasEdge reports whether an edge from -> to already exists.
func (d *DAG) hasEdge(from, to point.Point) bool {
	for _, n := range d.adj[from.Key()] {
		if n.to.Equal(to) {
			return true
		}
	}

	return false
}

// AddEdge adds the directed edge p1 -> p2 with the given weight. It
// enforces acyclicity by rejecting the edge if p2 -> p1 already exists
// If p1 -> p2 is already present, the call is a no-op: the
// first weight recorded for a given edge wins.
func (d *DAG) AddEdge(p1, p2 point.Point, weight float64) error {
	d.addVertex(p1)
	d.addVertex(p2)

	if d.hasEdge(p2, p1) {
		return ErrCycle
	}

	if d.hasEdge(p1, p2) {
		return nil
	}

	d.adj[p1.Key()] = append(d.adj[p1.Key()], neighbor{to: p2, weight: weight})

	return nil
}

// AddEdgeMin is AddEdge, except that when p1 -> p2 already exists its
// weight is replaced by the smaller of the existing and new weights,
// rather than keeping whichever was recorded first.
//
// This resolves the degenerate case where a curve range tree node's path
// partitioning produces the same directed edge twice with two different
// candidate bottleneck weights: silently
// keeping the first would drop a tighter bound the second computation
// found.
func (d *DAG) AddEdgeMin(p1, p2 point.Point, weight float64) error {
	d.addVertex(p1)
	d.addVertex(p2)

	if d.hasEdge(p2, p1) {
		return ErrCycle
	}

	neighbors := d.adj[p1.Key()]
	for i, n := range neighbors {
		if n.to.Equal(p2) {
			if weight < n.weight {
				neighbors[i].weight = weight
			}

			return nil
		}
	}

	d.adj[p1.Key()] = append(neighbors, neighbor{to: p2, weight: weight})

	return nil
}

// BottleneckPathWeight returns the minimum, over all paths from start to
// end, of the path's maximum edge weight — computed by relaxing edges in
// topological order (Kahn's algorithm) rather than the naive recursive
// min-then-max walk, so that shared sub-paths are each relaxed once
// instead of being re-explored per path.
func (d *DAG) BottleneckPathWeight(start, end point.Point) (float64, error) {
	order := d.topologicalOrder()

	const inf = math.MaxFloat64
	dist := make(map[string]float64, len(d.vertices))
	for key := range d.vertices {
		dist[key] = inf
	}
	dist[start.Key()] = 0

	for _, key := range order {
		du := dist[key]
		if du == inf {
			continue
		}

		for _, n := range d.adj[key] {
			candidate := du
			if n.weight > candidate {
				candidate = n.weight
			}

			if candidate < dist[n.to.Key()] {
				dist[n.to.Key()] = candidate
			}
		}
	}

	w, ok := dist[end.Key()]
	if !ok || w == inf {
		return 0, ErrNoPath
	}

	return w, nil
}

// topologicalOrder returns all vertices in topological order via Kahn's
// algorithm.
func (d *DAG) topologicalOrder() []string {
	indegree := make(map[string]int, len(d.vertices))
	for key := range d.vertices {
		indegree[key] = 0
	}
	for _, neighbors := range d.adj {
		for _, n := range neighbors {
			indegree[n.to.Key()]++
		}
	}

	queue := make([]string, 0, len(d.vertices))
	for key, deg := range indegree {
		if deg == 0 {
			queue = append(queue, key)
		}
	}

	order := make([]string, 0, len(d.vertices))
	for len(queue) > 0 {
		key := queue[0]
		queue = queue[1:]
		order = append(order, key)

		for _, n := range d.adj[key] {
			nk := n.to.Key()
			indegree[nk]--
			if indegree[nk] == 0 {
				queue = append(queue, nk)
			}
		}
	}

	return order
}
