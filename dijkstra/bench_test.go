package dijkstra_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/riskpath/dijkstra"
	"github.com/katalvlaran/riskpath/gridgraph"
)

// benchmarkLowestRisk measures one full search of an n×n random grid.
func benchmarkLowestRisk(b *testing.B, n int, sel dijkstra.Selection) {
	g := randomGrid(b, n, n, rand.New(rand.NewSource(42)))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dijkstra.LowestRisk(g, dijkstra.WithSelection(sel)); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkLowestRisk_Linear100 searches a 100×100 grid by linear scan.
// Complexity: O(V²)
func BenchmarkLowestRisk_Linear100(b *testing.B) { benchmarkLowestRisk(b, 100, dijkstra.SelectLinearScan) }

// BenchmarkLowestRisk_Heap100 searches the same grid with the heap.
// Complexity: O((V+E) log V)
func BenchmarkLowestRisk_Heap100(b *testing.B) { benchmarkLowestRisk(b, 100, dijkstra.SelectHeap) }

// BenchmarkLowestRisk_HeapExpanded measures the full 5×5 tiling of a 100×100 pattern.
func BenchmarkLowestRisk_HeapExpanded(b *testing.B) {
	base := randomGrid(b, 100, 100, rand.New(rand.NewSource(42)))
	full, err := base.Expand(gridgraph.DefaultTiles)
	if err != nil {
		b.Fatalf("setup Expand failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.LowestRisk(full, dijkstra.WithSelection(dijkstra.SelectHeap))
	}
}
