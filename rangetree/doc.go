// Package rangetree implements the data structure described in Lemma 2 of
// "Fast Algorithms for Approximate Fréchet Matching Queries in Geometric
// Trees" by Michiel Smid and Joachim Gudmundsson.
//
// A CurveRangeTree decomposes an input polygonal curve P into a binary
// tree, building a frechetgrid.FrechetGrid at every node for the subpath
// stored there. Given a query segment Q and two points x, y on P (with
// the edges of P that contain them), IsApproximate answers whether the
// discrete Fréchet distance from Q to P[x, y] is at most (1+error)*delta,
// for the delta fixed at construction. The O(log n) subpaths strictly
// between x and y are answered from their precomputed grids, but each query
// also builds a fresh FrechetGrid for every clipped end edge it produces,
// so its running time includes that grid construction and is not bounded
// by O((log n) / error^2).
//
// Construction takes O(error^-4 * log^2(n/error) * log^2(n)) time, the
// frechetgrid table built per node dominating.
package rangetree
