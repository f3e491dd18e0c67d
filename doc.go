// Package algograph is a small teaching library for in-memory data
// structures: a weighted undirected graph with three path searches, and a
// range-sum segment tree with point updates.
//
// What is inside?
//
//	A compact library intended for a single caller on trusted data:
//		- Graph primitives: fixed node count, integer node ids, symmetric
//		  weighted edges
//		- Traversals: DFS and BFS over one shared frontier-driven walker
//		- Shortest paths: Dijkstra with a lazy decrease-key min-heap
//		- Range sums: iterative segment tree, O(log n) query and update
//
// Why choose algograph?
//
//   - Beginner-friendly: minimal API, one package per algorithm
//   - Defined failures: out-of-range ids and unreachable destinations
//     surface sentinel errors instead of undefined behavior
//   - Pure Go: no cgo, tiny dependency footprint
//
// Everything is organized under four subpackages:
//
//	core/     - Graph, Arc, edge insertion, adjacency queries, and the
//	            shared predecessor-chain path reconstruction
//	traverse/ - DFS (LIFO frontier) and BFS (FIFO frontier) path search
//	dijkstra/ - minimum-cost path with non-negative weights
//	segtree/  - range-sum segment tree with point updates
//
// Quick ASCII example:
//
//	(0)──7──(1)
//	 │       │
//	 14      20
//	 │       │
//	(5)──~──(3)
//
//	a weighted square: BFS minimizes hops, Dijkstra minimizes weight.
//
// See each subpackage's doc.go for contracts, complexity, and examples.
//
//	go get github.com/kexaron/algograph
package algograph
