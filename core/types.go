// Package core defines the weighted undirected Graph type used by the
// traversal and shortest-path packages of algograph.
//
// A Graph has a node count fixed at construction time. Nodes are identified
// by the contiguous integer range [0, n). Edges are undirected and carry an
// unsigned weight, so negative weights are unrepresentable by construction.
//
// This file declares Arc, GraphOption, and the sentinel errors shared by
// every public entry point that accepts a node id.
//
// Errors:
//
//	ErrBadNodeCount   - negative node count passed to NewGraph.
//	ErrNodeOutOfRange - a node id argument falls outside [0, n).
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrBadNodeCount indicates a negative node count was passed to NewGraph.
	ErrBadNodeCount = errors.New("core: node count must be non-negative")

	// ErrNodeOutOfRange indicates a node id argument falls outside [0, n).
	ErrNodeOutOfRange = errors.New("core: node id out of range")
)

// Arc is one directed half of an undirected edge: the neighbor it reaches
// and the weight of the connecting edge. Every inserted edge (a, b, w)
// stores Arc{b, w} under a and Arc{a, w} under b.
type Arc struct {
	// To is the neighbor node id.
	To int

	// Weight is the cost of the connecting edge.
	Weight uint64
}

// GraphOption configures a Graph at construction time.
type GraphOption func(*Graph)

// WithArcCapacityHint preallocates room for perNode arcs in every adjacency
// slice. It only tunes allocation; a node may still grow past the hint.
// Non-positive hints are ignored.
func WithArcCapacityHint(perNode int) GraphOption {
	return func(g *Graph) {
		if perNode > 0 {
			g.arcCapHint = perNode
		}
	}
}
