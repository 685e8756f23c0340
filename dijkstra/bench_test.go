package dijkstra_test

import (
	"math/rand"
	"testing"

	"github.com/sparsegraph/sparsegraph/core"
	"github.com/sparsegraph/sparsegraph/dijkstra"
)

// randomSparse builds a connected pseudo-random graph with n nodes and
// roughly 4n arcs.
func randomSparse(n int, seed int64) core.Graph {
	rng := rand.New(rand.NewSource(seed))
	g := core.NewGraph(n)
	for i := 0; i < n; i++ {
		g.AddEdge(i, (i+1)%n, rng.Float64()*10+0.1)
		g.AddEdge(i, rng.Intn(n), rng.Float64()*10+0.1)
	}
	return g
}

func BenchmarkShortestPathLinear(b *testing.B) {
	g := randomSparse(2000, 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dijkstra.ShortestPathLinear(g, 0, 1999); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkShortestPathHeap(b *testing.B) {
	g := randomSparse(2000, 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dijkstra.ShortestPathHeap(g, 0, 1999); err != nil {
			b.Fatal(err)
		}
	}
}
