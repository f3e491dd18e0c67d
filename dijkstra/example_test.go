package dijkstra_test

import (
	"fmt"

	"github.com/kexaron/algograph/core"
	"github.com/kexaron/algograph/dijkstra"
)

// ExampleDijkstra computes the cheapest route across the 6-node demo
// graph. The direct-ish route 0-1-3 costs 27; going the long way around
// through 5 and 2 is cheaper.
func ExampleDijkstra() {
	g, _ := core.NewGraph(6)
	g.AddEdge(0, 1, 7)
	g.AddEdge(0, 5, 14)
	g.AddEdge(1, 2, 10)
	g.AddEdge(1, 3, 20)
	g.AddEdge(2, 3, 11)
	g.AddEdge(2, 5, 1)
	g.AddEdge(2, 4, 3)
	g.AddEdge(4, 5, 9)

	res, err := dijkstra.Dijkstra(g, 0, 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("cost=%d path=%v\n", res.Cost, res.Path)
	// Output: cost=26 path=[0 5 2 3]
}

// ExampleDijkstra_maxDistance caps exploration: destinations only
// reachable above the cap report no path.
func ExampleDijkstra_maxDistance() {
	g, _ := core.NewGraph(3)
	g.AddEdge(0, 1, 10)
	g.AddEdge(1, 2, 10)

	_, err := dijkstra.Dijkstra(g, 0, 2, dijkstra.WithMaxDistance(15))
	fmt.Println(err != nil)
	// Output: true
}
