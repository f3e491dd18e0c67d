package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/rhartert/sparsesets"

	"github.com/kexaron/algograph/core"
)

// Dijkstra computes the minimum-cost path from src to dst in g.
// It stops as soon as dst is popped from the priority queue; with
// non-negative weights no shorter route can appear afterwards.
//
// Returns the total cost together with the path, or ErrNoPath when dst is
// unreachable. Querying a node's distance to itself yields cost 0 and the
// single-node path.
// Complexity: O((V + E) log V) time, O(V + E) space.
func Dijkstra(g *core.Graph, src, dst int, opts ...Option) (*Result, error) {
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

	// 3. Prepare per-call state. dist[v] is meaningful only while
	// reached[v] is true; unreached nodes carry no sentinel cost.
	n := g.NodeCount()
	r := &runner{
		graph:   g,
		opts:    o,
		dist:    make([]uint64, n),
		reached: make([]bool, n),
		visited: sparsesets.New(n),
		parents: make(map[int]int, n),
		pq:      make(nodePQ, 0, n),
	}

	// 4. Seed with (0, src) and run the main loop.
	r.init(src)
	r.process(dst)

	// 5. Reconstruct. A missing predecessor chain means dst was never
	// relaxed, so it is unreachable (or beyond MaxDistance).
	path, ok := core.PathFromParents(r.parents, src, dst)
	if !ok {
		return nil, fmt.Errorf("%w: %d -> %d", ErrNoPath, src, dst)
	}

	return &Result{Cost: r.dist[dst], Path: path}, nil
}

// runner holds the mutable state of a single Dijkstra execution.
type runner struct {
	graph   *core.Graph
	opts    Options
	dist    []uint64        // best known cost, valid only where reached
	reached []bool          // whether dist holds a real cost
	visited *sparsesets.Set // nodes whose cost is finalized
	parents map[int]int     // predecessor on the best known route
	pq      nodePQ          // min-heap with lazy decrease-key
}

// init records cost 0 for the source and pushes it onto the heap.
func (r *runner) init(src int) {
	r.dist[src] = 0
	r.reached[src] = true

	heap.Init(&r.pq)
	heap.Push(&r.pq, pqEntry{id: src, cost: 0})
}

// process repeatedly pops the cheapest frontier entry and relaxes its
// arcs, stopping when dst is popped or the heap drains.
func (r *runner) process(dst int) {
	for r.pq.Len() > 0 {
		entry := heap.Pop(&r.pq).(pqEntry)

		// Success exit: dst's cost is final the moment it is popped.
		if entry.id == dst {
			return
		}

		// Stale entry, variant 1: the node was already finalized by an
		// earlier, cheaper pop.
		if r.visited.Contains(entry.id) {
			continue
		}

		// Stale entry, variant 2: a cheaper push superseded this one
		// while it sat in the heap.
		if entry.cost != r.dist[entry.id] {
			continue
		}

		r.visited.Insert(entry.id)
		r.relax(entry.id)
	}
}

// relax examines each arc out of u and improves neighbor costs where the
// route through u is strictly cheaper. Improvements push fresh heap
// entries; superseded entries are left for process to discard.
func (r *runner) relax(u int) {
	arcs, _ := r.graph.Neighbors(u) // u was validated on entry

	for _, arc := range arcs {
		v := arc.To

		candidate, ok := addCost(r.dist[u], arc.Weight)
		if !ok || candidate > r.opts.MaxDistance {
			continue
		}
		if r.reached[v] && candidate >= r.dist[v] {
			continue
		}

		r.dist[v] = candidate
		r.reached[v] = true
		r.parents[v] = u
		heap.Push(&r.pq, pqEntry{id: v, cost: candidate})
	}
}

// addCost returns a+b, reporting false instead of wrapping on overflow.
func addCost(a, b uint64) (uint64, bool) {
	if a > math.MaxUint64-b {
		return 0, false
	}

	return a + b, true
}

// pqEntry pairs a node with the cost it was pushed at.
type pqEntry struct {
	id   int
	cost uint64
}

// nodePQ is a min-heap of pqEntry ordered by cost ascending. Ties break
// arbitrarily. Under lazy decrease-key the heap may briefly hold several
// entries for one node; only the cheapest survives the staleness checks.
type nodePQ []pqEntry

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].cost < pq[j].cost }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(pqEntry)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	entry := old[n-1]
	*pq = old[:n-1]

	return entry
}
