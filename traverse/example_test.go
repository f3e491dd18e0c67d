package traverse_test

import (
	"fmt"

	"github.com/kexaron/algograph/core"
	"github.com/kexaron/algograph/traverse"
)

// ExampleBFS finds the fewest-hop route between two stations of a small
// transit map. Edge weights are travel minutes; BFS ignores them and
// minimizes hops only.
func ExampleBFS() {
	g, _ := core.NewGraph(6)
	g.AddEdge(0, 1, 7)
	g.AddEdge(0, 5, 14)
	g.AddEdge(1, 2, 10)
	g.AddEdge(1, 3, 20)
	g.AddEdge(2, 3, 11)
	g.AddEdge(2, 5, 1)
	g.AddEdge(2, 4, 3)
	g.AddEdge(4, 5, 9)

	res, err := traverse.BFS(g, 0, 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("path:", res.Path)
	// Output: path: [0 1 3]
}

// ExampleDFS returns some valid route, favoring depth over breadth.
func ExampleDFS() {
	g, _ := core.NewGraph(4)
	g.AddEdge(0, 1, 1)
	g.AddEdge(1, 2, 1)
	g.AddEdge(2, 3, 1)

	res, err := traverse.DFS(g, 0, 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("path:", res.Path)
	// Output: path: [0 1 2 3]
}
