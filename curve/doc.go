// Package curve implements PolygonalCurve — an ordered sequence of at
// least two points, with the binary split and Steiner subdivision
// operations the Curve Range Tree (see the rangetree package) is built
// from.
//
// Splitting a curve of size n produces a left half points[0:median+1] and
// a right half points[median:] around median = floor(n/2), sharing the
// median point itself — the two halves overlap by exactly one vertex so a
// caller descending the resulting binary tree never loses an edge at the
// split boundary. Curves of size <= 2 are leaves: LeftCurve/RightCurve
// return the curve unchanged.
package curve
