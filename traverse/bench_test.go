package traverse_test

import (
	"testing"

	"github.com/kexaron/algograph/core"
	"github.com/kexaron/algograph/traverse"
)

// buildLadder creates n nodes chained 0-1-2-... with a rung every other
// node, giving BFS and DFS some branching to chew on.
func buildLadder(b *testing.B, n int) *core.Graph {
	b.Helper()

	g, err := core.NewGraph(n)
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i+1 < n; i++ {
		if err := g.AddEdge(i, i+1, 1); err != nil {
			b.Fatal(err)
		}
		if i+2 < n && i%2 == 0 {
			if err := g.AddEdge(i, i+2, 1); err != nil {
				b.Fatal(err)
			}
		}
	}

	return g
}

func BenchmarkBFS_Ladder1k(b *testing.B) {
	g := buildLadder(b, 1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := traverse.BFS(g, 0, 999); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDFS_Ladder1k(b *testing.B) {
	g := buildLadder(b, 1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := traverse.DFS(g, 0, 999); err != nil {
			b.Fatal(err)
		}
	}
}
