package core

import "fmt"

// Graph is a fixed-node-count, undirected, non-negatively-weighted graph
// stored as an adjacency list.
//
// The node set never changes after NewGraph; the only mutation is AddEdge,
// which appends symmetric arcs to both endpoints. Duplicate edges between
// the same pair are permitted and produce multiple adjacency entries.
// There is no edge removal.
//
// Query methods never mutate the Graph, so a constructed Graph may be read
// concurrently as long as no AddEdge call is in flight.
type Graph struct {
	// adjacency[id] holds the arcs incident to id, in insertion order.
	adjacency [][]Arc

	// edgeCount counts inserted edges (each undirected edge counted once).
	edgeCount int

	// arcCapHint preallocates adjacency slices, see WithArcCapacityHint.
	arcCapHint int
}

// NewGraph creates a graph with nodes 0..n-1 and no edges.
// Returns ErrBadNodeCount if n is negative. A zero-node graph is valid,
// though every query on it fails with ErrNodeOutOfRange.
// Complexity: O(n).
func NewGraph(n int, opts ...GraphOption) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadNodeCount, n)
	}

	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}

	g.adjacency = make([][]Arc, n)
	if g.arcCapHint > 0 {
		for i := range g.adjacency {
			g.adjacency[i] = make([]Arc, 0, g.arcCapHint)
		}
	}

	return g, nil
}

// NodeCount returns the fixed number of nodes.
func (g *Graph) NodeCount() int { return len(g.adjacency) }

// EdgeCount returns the number of inserted edges, counting each undirected
// edge once and counting duplicates individually.
func (g *Graph) EdgeCount() int { return g.edgeCount }

// HasNode reports whether id is a valid node of this graph.
func (g *Graph) HasNode(id int) bool { return id >= 0 && id < len(g.adjacency) }

// AddEdge inserts the undirected edge (from, to) with the given weight.
// The arc (to, weight) is appended to from's adjacency and (from, weight)
// to to's, preserving insertion order on both sides. No deduplication is
// performed. Returns ErrNodeOutOfRange if either endpoint is invalid.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int, weight uint64) error {
	if !g.HasNode(from) {
		return fmt.Errorf("%w: from=%d, nodes=[0,%d)", ErrNodeOutOfRange, from, len(g.adjacency))
	}
	if !g.HasNode(to) {
		return fmt.Errorf("%w: to=%d, nodes=[0,%d)", ErrNodeOutOfRange, to, len(g.adjacency))
	}

	g.adjacency[from] = append(g.adjacency[from], Arc{To: to, Weight: weight})
	g.adjacency[to] = append(g.adjacency[to], Arc{To: from, Weight: weight})
	g.edgeCount++

	return nil
}

// Neighbors returns a copy of id's incident arcs in insertion order.
// Mutating the returned slice does not affect the graph.
// Returns ErrNodeOutOfRange for an invalid id.
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id int) ([]Arc, error) {
	if !g.HasNode(id) {
		return nil, fmt.Errorf("%w: id=%d, nodes=[0,%d)", ErrNodeOutOfRange, id, len(g.adjacency))
	}

	out := make([]Arc, len(g.adjacency[id]))
	copy(out, g.adjacency[id])

	return out, nil
}

// Degree returns the number of arcs incident to id, counting duplicate
// edges individually. Returns ErrNodeOutOfRange for an invalid id.
func (g *Graph) Degree(id int) (int, error) {
	if !g.HasNode(id) {
		return 0, fmt.Errorf("%w: id=%d, nodes=[0,%d)", ErrNodeOutOfRange, id, len(g.adjacency))
	}

	return len(g.adjacency[id]), nil
}

// HasEdge reports whether at least one edge connects a and b.
// Returns ErrNodeOutOfRange if either id is invalid.
// Complexity: O(deg(a)).
func (g *Graph) HasEdge(a, b int) (bool, error) {
	if !g.HasNode(a) {
		return false, fmt.Errorf("%w: a=%d, nodes=[0,%d)", ErrNodeOutOfRange, a, len(g.adjacency))
	}
	if !g.HasNode(b) {
		return false, fmt.Errorf("%w: b=%d, nodes=[0,%d)", ErrNodeOutOfRange, b, len(g.adjacency))
	}

	for _, arc := range g.adjacency[a] {
		if arc.To == b {
			return true, nil
		}
	}

	return false, nil
}
