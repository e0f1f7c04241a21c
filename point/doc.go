// Package point provides the 2D point and edge primitives that every other
// package in this module is built on: coordinate identity, the on-edge
// test, and the dense-point-set partition helper used to seed the
// bottleneck DAG during a range query.
//
// A Point is a pair of real coordinates backed by gonum's r2.Vec, so every
// distance computation in this module (here and in curve, grid, frechet,
// frechetgrid, dag) goes through r2.Norm instead of hand-rolled math.
//
// An Edge is an ordered pair of distinct points. It is also, trivially, a
// two-point PolygonalCurve (see the curve package) — callers that need a
// curve view of a single segment should construct one there; this package
// only knows about the segment itself.
package point
