// Package dijkstra implements Dijkstra's shortest-path algorithm between
// two nodes of a weighted core.Graph.
//
// Dijkstra processes nodes in order of increasing distance from the source
// using a min-heap priority queue, relaxing arcs and updating distances.
// Non-negative weights are guaranteed by core.Arc's unsigned weight type,
// which makes the early exit on the destination valid: once dst is popped,
// no later pop can improve it.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each node is finalized at most once: V pops that do real work.
//   - Each relaxation may push a new entry: up to E pushes.
//   - Each heap operation costs O(log N), N <= V + E, simplified to O(log V).
//   - Space: O(V + E)
//   - O(V) for the distance and predecessor tables.
//   - O(E) worst case of heap entries under lazy decrease-key.
//
// Notes on implementation choices:
//
//   - Lazy decrease-key: a cheaper route pushes a fresh heap entry and the
//     superseded entry stays behind; stale entries are recognized on pop,
//     either because the node is already finalized or because the popped
//     cost no longer matches the recorded best, and are discarded.
//   - Distances are kept as a plain uint64 table plus a reached flag per
//     node instead of an "infinity" sentinel, so no sentinel value ever
//     enters the arithmetic. Additions that would overflow uint64 mark the
//     candidate route unusable rather than wrapping around.
//
// Errors:
//
//   - ErrNilGraph            if the graph pointer is nil.
//   - core.ErrNodeOutOfRange if src or dst is not a valid node id.
//   - ErrNoPath              if dst is unreachable from src, including
//     reachable-only-above-WithMaxDistance.
package dijkstra
