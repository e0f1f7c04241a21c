// Package dag implements a point-keyed directed acyclic graph and its
// bottleneck shortest-path query: the minimum, over all paths from a
// source to a sink, of the path's maximum edge weight.
//
// Vertices are identified by point.Point.Key(), so two points with equal
// coordinates are the same vertex regardless of which caller constructed
// them — the same identity convention point.Point documents for map keys
// and grid lookups.
package dag
