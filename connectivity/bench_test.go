package connectivity_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/platesketch/connectivity"
)

// BenchmarkUnionFind unions 10k random pairs over 4k elements.
func BenchmarkUnionFind(b *testing.B) {
	r := rand.New(rand.NewSource(1))
	pairs := make([][2]int, 10000)
	for i := range pairs {
		pairs[i] = [2]int{r.Intn(4000), r.Intn(4000)}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		uf := connectivity.New(4000)
		for _, p := range pairs {
			uf.Union(p[0], p[1])
		}
	}
}
