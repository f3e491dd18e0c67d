package dijkstra_test

import (
	"testing"

	"github.com/kexaron/algograph/core"
	"github.com/kexaron/algograph/dijkstra"
)

// buildWeightedGrid connects n*n nodes as a grid with weights that make
// straight routes expensive, forcing plenty of relaxations and stale
// heap entries.
func buildWeightedGrid(b *testing.B, n int) *core.Graph {
	b.Helper()

	g, err := core.NewGraph(n * n)
	if err != nil {
		b.Fatal(err)
	}
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			id := y*n + x
			if x+1 < n {
				if err := g.AddEdge(id, id+1, uint64(1+(x+y)%7)); err != nil {
					b.Fatal(err)
				}
			}
			if y+1 < n {
				if err := g.AddEdge(id, id+n, uint64(1+(x*y)%5)); err != nil {
					b.Fatal(err)
				}
			}
		}
	}

	return g
}

func BenchmarkDijkstra_Grid32(b *testing.B) {
	g := buildWeightedGrid(b, 32)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dijkstra.Dijkstra(g, 0, 32*32-1); err != nil {
			b.Fatal(err)
		}
	}
}
