package autoconnect_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/platesketch/autoconnect"
	"github.com/katalvlaran/platesketch/surface"
)

// BenchmarkConnect measures the full optimizer on 20 rolled points.
func BenchmarkConnect(b *testing.B) {
	surf := surface.Default()
	pts := rollPoints(surf, 20, rand.New(rand.NewSource(1)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = autoconnect.Connect(surf, pts, autoconnect.WithSeed(int64(i+1)))
	}
}

// BenchmarkBuild measures a single build attempt on 20 rolled points.
func BenchmarkBuild(b *testing.B) {
	surf := surface.Default()
	pts := autoconnect.ConnectablePoints(rollPoints(surf, 20, rand.New(rand.NewSource(1))))
	cfg := autoconnect.DefaultConfig(surf)
	rng := rand.New(rand.NewSource(2))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = autoconnect.Build(surf, pts, cfg, rng)
	}
}
