package dag

import "errors"

// ErrCycle is returned by AddEdge when adding p1 -> p2 would close a cycle,
// i.e. an edge p2 -> p1 already exists.
var ErrCycle = errors.New("dag: edge would close a cycle")

// ErrNoPath is returned by BottleneckPathWeight when end is unreachable
// from start.
var ErrNoPath = errors.New("dag: no path from start to end")
