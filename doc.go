// Package frechetrange answers (1+epsilon)-approximate discrete Fréchet
// range queries against subpaths of a fixed polygonal curve.
//
// Given a curve P and a target distance delta, a CurveRangeTree built over
// P preprocesses it so that, for any subpath P[x, y] and any query edge Q,
// IsApproximate(Q, x, y) answers whether the discrete Fréchet distance from
// Q to P[x, y] is at most (1+epsilon)*delta — without walking P[x, y]
// itself at query time.
//
// Everything under this module follows from these building blocks:
//
//	point/, curve/    — coordinates, edges, and polygonal curves
//	frechet/          — the discrete Fréchet distance between two curves
//	grid/, frechetgrid/ — exponential grids and the per-curve Fréchet grid
//	                      that answers a Fréchet query against a fixed
//	                      curve in O(1)
//	tree/, dag/       — a general decomposable tree with O(log n) lowest
//	                    common ancestor, and a bottleneck-path DAG
//	rangetree/        — CurveRangeTree itself, composing the above into
//	                    the O(log n) range query
//
// A typical caller only touches rangetree.New and CurveRangeTree.IsApproximate;
// the lower packages are exported so their pieces (the exponential grid,
// the bottleneck DAG) can be reused independently.
package frechetrange
