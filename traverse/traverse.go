package traverse

import (
	"fmt"

	"github.com/rhartert/sparsesets"

	"github.com/kexaron/algograph/core"
)

// frontier abstracts the discovered-but-not-yet-processed collection that
// drives a search. The pop discipline is the only difference between DFS
// and BFS.
type frontier interface {
	push(id int)
	pop() (int, bool)
}

// stackFrontier pops the most recently pushed node (LIFO).
type stackFrontier []int

func (s *stackFrontier) push(id int) { *s = append(*s, id) }

func (s *stackFrontier) pop() (int, bool) {
	old := *s
	n := len(old)
	if n == 0 {
		return 0, false
	}
	id := old[n-1]
	*s = old[:n-1]

	return id, true
}

// queueFrontier pops the earliest pushed node (FIFO).
// head indexes into items so dequeue does not reallocate.
type queueFrontier struct {
	items []int
	head  int
}

func (q *queueFrontier) push(id int) { q.items = append(q.items, id) }

func (q *queueFrontier) pop() (int, bool) {
	if q.head >= len(q.items) {
		return 0, false
	}
	id := q.items[q.head]
	q.head++

	return id, true
}

// DFS searches for a path from src to dst using a last-in-first-out
// frontier and returns the first path discovered. The path is valid but
// not guaranteed shortest in edge count or weight.
// Complexity: O(V + E) time, O(V) memory.
func DFS(g *core.Graph, src, dst int, opts ...Option) (*Result, error) {
	return search(g, src, dst, &stackFrontier{}, opts)
}

// BFS searches for a path from src to dst using a first-in-first-out
// frontier. The returned path has the minimum number of edges among all
// src-to-dst paths.
// Complexity: O(V + E) time, O(V) memory.
func BFS(g *core.Graph, src, dst int, opts ...Option) (*Result, error) {
	return search(g, src, dst, &queueFrontier{}, opts)
}

// walker encapsulates the transient state of a single search.
// Nothing in it outlives the call.
type walker struct {
	graph   *core.Graph
	opts    Options
	front   frontier
	visited *sparsesets.Set
	parents map[int]int
	order   []int
}

// search validates inputs, runs the frontier loop, and reconstructs the
// path from the predecessor table.
func search(g *core.Graph, src, dst int, front frontier, opts []Option) (*Result, error) {
	// 1. Validate graph and endpoints.
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasNode(src) {
		return nil, fmt.Errorf("%w: src=%d", core.ErrNodeOutOfRange, src)
	}
	if !g.HasNode(dst) {
		return nil, fmt.Errorf("%w: dst=%d", core.ErrNodeOutOfRange, dst)
	}

	// 2. Apply options.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 3. Prepare per-call state.
	n := g.NodeCount()
	w := &walker{
		graph:   g,
		opts:    o,
		front:   front,
		visited: sparsesets.New(n),
		parents: make(map[int]int, n),
		order:   make([]int, 0, n),
	}

	// 4. Seed the frontier and run the loop.
	w.front.push(src)
	if err := w.loop(dst); err != nil {
		return nil, err
	}

	// 5. Reconstruct. A missing predecessor chain means dst was never
	// discovered.
	path, ok := core.PathFromParents(w.parents, src, dst)
	if !ok {
		return nil, fmt.Errorf("%w: %d -> %d", ErrNoPath, src, dst)
	}

	return &Result{Path: path, Order: w.order}, nil
}

// loop pops from the frontier until dst is reached or the frontier drains.
func (w *walker) loop(dst int) error {
	for {
		current, ok := w.front.pop()
		if !ok {
			return nil
		}

		// Success exit: dst popped from the frontier.
		if current == dst {
			return nil
		}

		// Duplicate frontier entries are expected; discard revisits.
		if w.visited.Contains(current) {
			continue
		}
		w.visited.Insert(current)

		w.order = append(w.order, current)
		if err := w.opts.OnVisit(current); err != nil {
			return fmt.Errorf("traverse: OnVisit hook for %d: %w", current, err)
		}

		if err := w.discoverNeighbors(current); err != nil {
			return err
		}
	}
}

// discoverNeighbors pushes every unvisited neighbor of current and records
// current as its predecessor. First discovery wins: a node rediscovered
// from a later frontier entry keeps its original predecessor, which keeps
// BFS parents on the shallowest layer.
func (w *walker) discoverNeighbors(current int) error {
	arcs, err := w.graph.Neighbors(current)
	if err != nil {
		return fmt.Errorf("traverse: neighbors of %d: %w", current, err)
	}

	for _, arc := range arcs {
		next := arc.To
		if w.visited.Contains(next) {
			continue
		}
		if !w.opts.FilterNeighbor(current, next) {
			continue
		}

		if _, seen := w.parents[next]; !seen {
			w.parents[next] = current
		}
		w.front.push(next)
	}

	return nil
}
