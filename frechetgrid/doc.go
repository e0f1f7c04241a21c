// Package frechetgrid implements the data structure described in Lemma
// 4.2.4 of "Realistic Analysis for Algorithmic Problems on Geographical
// Data" by Anne Driemel.
//
// Attached to a fixed curve C with spine (u, v), a FrechetGrid precomputes
// the exponential grids G(u) and G(v) of the spine and, for every segment
// in G(u) x G(v), the discrete Fréchet distance between that segment and
// C. This lets ApproximateFrechet answer a (1+error)-approximate Fréchet
// query against C for any edge in O(1) time, at the cost of
// O(X^2 * n) preprocessing, where X = error^-2 * log(1/error).
//
// Note on the X^2*n*log(n) vs X^2*n distinction in Driemel's analysis: the
// paper's bound assumes the continuous Fréchet distance between a segment
// and an n-vertex curve can be computed in O(n log n) time (Alt & Godau).
// This package instead computes the discrete Fréchet distance in O(n)
// time per pair, trading some accuracy for a simpler, faster
// implementation.
package frechetgrid
