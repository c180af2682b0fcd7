package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/riskpath/gridgraph"
)

// randomPattern returns an n×n digit pattern with values in [1,9].
func randomPattern(n int, r *rand.Rand) []string {
	lines := make([]string, n)
	buf := make([]byte, n)
	for y := range lines {
		for x := range buf {
			buf[x] = byte('1' + r.Intn(9))
		}
		lines[y] = string(buf)
	}
	return lines
}

// BenchmarkParsePattern measures parsing a 100×100 pattern.
// Complexity: O(W×H)
func BenchmarkParsePattern(b *testing.B) {
	lines := randomPattern(100, rand.New(rand.NewSource(42)))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := gridgraph.ParsePattern(lines); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkExpand measures the default 5×5 tiling of a 100×100 pattern.
// Complexity: O(25×W×H)
func BenchmarkExpand(b *testing.B) {
	base, err := gridgraph.ParsePattern(randomPattern(100, rand.New(rand.NewSource(42))))
	if err != nil {
		b.Fatalf("setup ParsePattern failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = base.Expand(gridgraph.DefaultTiles)
	}
}
