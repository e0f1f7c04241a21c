// Package frechet computes the discrete Fréchet distance between two
// polygonal curves, per the dynamic program described in Table 1 of
// "Computing the Discrete Fréchet Distance" by Thomas Eiter and Heikki
// Mannila.
//
// Discrete Fréchet distance is the coupling measure between two curves
// sampled at their vertices — the minimum leash length for a person and
// dog walking along each curve, visiting vertices in order, without
// backtracking.
//
// Complexity: O(m*n) time and space, where m, n are the two curves' vertex
// counts. The memo table is filled via the same recursive relation the
// paper states, translated to 0-based indices
// with -1 marking an unfilled cell.
package frechet
