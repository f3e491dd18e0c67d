// Package traverse defines options, result types, and sentinel errors for
// the DFS and BFS searches.
package traverse

import "errors"

// Sentinel errors for traversal execution.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("traverse: graph is nil")

	// ErrNoPath is returned when the destination is unreachable from the
	// source, detected as "no predecessor recorded for dst" after the
	// search loop drains its frontier.
	ErrNoPath = errors.New("traverse: no path between source and destination")
)

// Option configures a search via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks customizing a search.
type Options struct {
	// OnVisit is called when a node is visited (popped and processed).
	// Returning an error aborts the search and propagates that error.
	OnVisit func(id int) error

	// FilterNeighbor can skip edges by returning false.
	// Called for each arc curr->next before discovery.
	FilterNeighbor func(curr, next int) bool
}

// DefaultOptions returns Options with a no-op visit hook and no filtering.
func DefaultOptions() Options {
	return Options{
		OnVisit:        func(int) error { return nil },
		FilterNeighbor: func(_, _ int) bool { return true },
	}
}

// WithOnVisit registers a callback invoked on every visited node;
// returning an error from it stops the search.
func WithOnVisit(fn func(id int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithFilterNeighbor skips arcs for which fn returns false.
func WithFilterNeighbor(fn func(curr, next int) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of a search:
//   - Path:  node sequence from src to dst, both endpoints included.
//   - Order: nodes in the order they were visited.
type Result struct {
	Path  []int
	Order []int
}
