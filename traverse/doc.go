// Package traverse provides depth-first and breadth-first path search over
// a core.Graph, sharing a single walker parameterized by frontier
// discipline.
//
// What
//
//   - DFS(g, src, dst): explore with a LIFO frontier (explicit stack, not
//     recursion, so stack depth is independent of graph depth) and return
//     the first path discovered.
//   - BFS(g, src, dst): identical control structure with a FIFO frontier,
//     which guarantees the returned path has the minimum number of edges
//     among all src-to-dst paths.
//   - Both return a Result with the reconstructed Path and the visit Order.
//   - Hooks: OnVisit (may abort with an error) and FilterNeighbor.
//
// Shared skeleton
//
//	The two searches differ only in how the frontier hands back the next
//	node. The walker maintains a visited set, a first-discovery-wins
//	predecessor table, and the frontier; duplicate frontier entries are
//	expected and discarded on pop. Path reconstruction is the common
//	core.PathFromParents walk.
//
// Ordering
//
//	Neighbors are explored in adjacency insertion order. A DFS path is
//	therefore deterministic for a given graph but is not guaranteed
//	shortest by any metric; a BFS path is shortest in edge count.
//
// Complexity (V = nodes, E = edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the frontier, visited set, and predecessor table
//
// Errors
//
//   - ErrNilGraph            if the graph pointer is nil.
//   - core.ErrNodeOutOfRange if src or dst is not a valid node id.
//   - ErrNoPath              if dst is unreachable from src.
//   - Wrapped errors from a user-supplied OnVisit hook.
//
// Each call builds its own transient state, so a failed search never
// affects later searches on the same graph.
package traverse
