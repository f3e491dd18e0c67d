package segtree_test

import (
	"fmt"

	"github.com/kexaron/algograph/segtree"
)

// ExampleTree builds a tree, queries a prefix, updates one element, and
// queries again.
func ExampleTree() {
	tr, err := segtree.New([]int64{1, 3, 5, 7, 9, 11})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	sum, _ := tr.RangeSum(0, 1)
	fmt.Println(sum)

	tr.Update(1, 9)
	sum, _ = tr.RangeSum(0, 1)
	fmt.Println(sum)

	// Output:
	// 4
	// 10
}
