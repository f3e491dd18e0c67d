// Package dijkstra defines options, the result type, and sentinel errors
// for the shortest-path search.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by Dijkstra.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNoPath is returned when the destination is unreachable from the
	// source, detected as "no predecessor recorded for dst" after the
	// search terminates.
	ErrNoPath = errors.New("dijkstra: no path between source and destination")
)

// Option configures the search via functional arguments.
type Option func(*Options)

// Options holds tunable parameters for a single Dijkstra run.
type Options struct {
	// MaxDistance caps exploration: routes costing more than this are not
	// relaxed. Default math.MaxUint64 means no cap. A destination only
	// reachable above the cap surfaces ErrNoPath.
	MaxDistance uint64
}

// DefaultOptions returns Options with no distance cap.
func DefaultOptions() Options {
	return Options{MaxDistance: math.MaxUint64}
}

// WithMaxDistance stops exploration beyond the given total cost.
func WithMaxDistance(limit uint64) Option {
	return func(o *Options) {
		o.MaxDistance = limit
	}
}

// Result holds the outcome of a search:
//   - Cost: total weight of the returned path.
//   - Path: node sequence from src to dst, both endpoints included.
//
// Cost always equals the sum of edge weights along Path.
type Result struct {
	Cost uint64
	Path []int
}
