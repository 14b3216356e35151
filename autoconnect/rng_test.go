package autoconnect

import (
	"math/rand"
	"sort"
	"testing"
)

// TestNewRand_SeedZeroIsDefault checks that seed 0 and the default seed draw
// the same sequence.
func TestNewRand_SeedZeroIsDefault(t *testing.T) {
	a, b := newRand(0), newRand(defaultSeed)
	for i := 0; i < 8; i++ {
		if x, y := a.Int63(), b.Int63(); x != y {
			t.Fatalf("draw %d: %d != %d", i, x, y)
		}
	}
}

// TestAttemptRand_Determinism checks that equal parents yield equal attempt
// streams and that distinct attempts get distinct seeds.
func TestAttemptRand_Determinism(t *testing.T) {
	c1 := attemptRand(rand.New(rand.NewSource(42)), 3)
	c2 := attemptRand(rand.New(rand.NewSource(42)), 3)
	for i := 0; i < 8; i++ {
		if x, y := c1.Int63(), c2.Int63(); x != y {
			t.Fatalf("draw %d: %d != %d", i, x, y)
		}
	}
	if attemptSeed(42, 0) == attemptSeed(42, 1) {
		t.Fatal("distinct attempts share a seed")
	}
	if attemptRand(nil, 0) == nil {
		t.Fatal("nil base must still produce a stream")
	}
}

func TestShuffledOrder_Permutation(t *testing.T) {
	order := make([]int, 10)
	for i := range order {
		order[i] = 99
	}
	shuffledOrder(order, newRand(9))
	sorted := append([]int(nil), order...)
	sort.Ints(sorted)
	for i, v := range sorted {
		if v != i {
			t.Fatalf("not a permutation of 0..9: %v", order)
		}
	}
}
