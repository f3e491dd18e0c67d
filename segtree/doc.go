// Package segtree implements a range-sum segment tree with point updates.
//
// A Tree is built once from a slice of values and then answers inclusive
// range-sum queries and single-element updates, both in O(log n). It is a
// flat, iterative tree: leaves occupy the upper half of a 2n-node array
// and every internal node holds the sum of its two children, so no
// recursion is involved in build, query, or update regardless of n.
//
// Complexity:
//
//   - Build:    O(n)
//   - RangeSum: O(log n)
//   - Update:   O(log n)
//
// Errors:
//
//   - ErrEmptyInput      if New is given no values.
//   - ErrIndexOutOfRange if an index falls outside [0, n).
//   - ErrBadRange        if start > end.
//
// The tree is not safe for concurrent use with Update; concurrent
// RangeSum calls on a quiescent tree are fine.
package segtree
