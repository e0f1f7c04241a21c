// Package grid implements HyperCube, Grid, and ExponentialGrid — the
// multi-scale nested tiling built around a centre point to
// answer O(1), (ε/2)-approximate nearest-grid-point queries over an
// exponential range of radii.
//
// An ExponentialGrid is a family of HyperCubes centred at u with side
// lengths 4*alpha*2^i, each covered by a Grid whose cell width shrinks with
// i so that the (ε/2)-approximation bound holds uniformly across scales.
// ApproximatePoint locates the scale a query point falls in in O(1) via
// the Driemel-lemma index formula, then the containing cell via O(1)
// integer offset arithmetic, and returns that cell's nearest corner.
package grid
