package segtree

import (
	"errors"
	"fmt"
)

// Sentinel errors for segment tree operations.
var (
	// ErrEmptyInput indicates New was called with no values.
	ErrEmptyInput = errors.New("segtree: input values must be non-empty")

	// ErrIndexOutOfRange indicates an index argument falls outside [0, n).
	ErrIndexOutOfRange = errors.New("segtree: index out of range")

	// ErrBadRange indicates a query range with start > end.
	ErrBadRange = errors.New("segtree: range start exceeds end")
)

// Tree is a range-sum segment tree over a fixed-length sequence of int64
// values. The element count never changes after New; Update replaces a
// single value in place.
type Tree struct {
	n      int
	values []int64 // current leaf values, kept for Value and Update deltas
	nodes  []int64 // nodes[n:2n] are leaves; nodes[i] = nodes[2i] + nodes[2i+1]
}

// New builds a segment tree over a copy of values.
// Returns ErrEmptyInput if values is empty.
// Complexity: O(n).
func New(values []int64) (*Tree, error) {
	if len(values) == 0 {
		return nil, ErrEmptyInput
	}

	n := len(values)
	t := &Tree{
		n:      n,
		values: make([]int64, n),
		nodes:  make([]int64, 2*n),
	}
	copy(t.values, values)
	copy(t.nodes[n:], values)

	// Fill internal nodes bottom-up.
	for i := n - 1; i > 0; i-- {
		t.nodes[i] = t.nodes[2*i] + t.nodes[2*i+1]
	}

	return t, nil
}

// Len returns the number of elements the tree was built over.
func (t *Tree) Len() int { return t.n }

// Value returns the current value at index.
// Returns ErrIndexOutOfRange for an invalid index.
func (t *Tree) Value(index int) (int64, error) {
	if index < 0 || index >= t.n {
		return 0, fmt.Errorf("%w: index=%d, len=%d", ErrIndexOutOfRange, index, t.n)
	}

	return t.values[index], nil
}

// RangeSum returns the sum of values[start..end], both bounds inclusive.
// Returns ErrBadRange if start > end, ErrIndexOutOfRange if either bound
// is invalid.
// Complexity: O(log n).
func (t *Tree) RangeSum(start, end int) (int64, error) {
	if start < 0 || start >= t.n {
		return 0, fmt.Errorf("%w: start=%d, len=%d", ErrIndexOutOfRange, start, t.n)
	}
	if end < 0 || end >= t.n {
		return 0, fmt.Errorf("%w: end=%d, len=%d", ErrIndexOutOfRange, end, t.n)
	}
	if start > end {
		return 0, fmt.Errorf("%w: [%d, %d]", ErrBadRange, start, end)
	}

	// Climb from both ends of the half-open leaf range [l, r), adding
	// node sums whenever a bound is a right or left sibling.
	var sum int64
	l := start + t.n
	r := end + 1 + t.n
	for l < r {
		if l&1 == 1 {
			sum += t.nodes[l]
			l++
		}
		if r&1 == 1 {
			r--
			sum += t.nodes[r]
		}
		l >>= 1
		r >>= 1
	}

	return sum, nil
}

// Update replaces the value at index and refreshes the sums on the path
// to the root. Returns ErrIndexOutOfRange for an invalid index.
// Complexity: O(log n).
func (t *Tree) Update(index int, value int64) error {
	if index < 0 || index >= t.n {
		return fmt.Errorf("%w: index=%d, len=%d", ErrIndexOutOfRange, index, t.n)
	}

	t.values[index] = value

	p := index + t.n
	t.nodes[p] = value
	for p > 1 {
		p >>= 1
		t.nodes[p] = t.nodes[2*p] + t.nodes[2*p+1]
	}

	return nil
}
