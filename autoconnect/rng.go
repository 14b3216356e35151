// Random streams for the network optimizer.
//
// Determinism:
//   - One base *rand.Rand per Connect call (from WithSeed or WithRand).
//   - Each attempt draws from its own child stream, so attempt k sees the
//     same randomness no matter how many candidates earlier attempts tested.
//
// Concurrency:
//   - *rand.Rand is not goroutine-safe; every build owns its stream.

package autoconnect

import "math/rand"

// defaultSeed stands in for seed 0 so that an unconfigured Connect is still
// reproducible.
const defaultSeed int64 = 1

// golden is the SplitMix64 increment (2^64 / phi).
const golden = 0x9e3779b97f4a7c15

// newRand returns a source seeded with seed, or with defaultSeed when seed
// is 0.
//
// Complexity: O(1).
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// mix64 is the SplitMix64 finalizer.
func mix64(x uint64) uint64 {
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

// attemptSeed derives the seed of optimizer attempt number attempt from the
// parent draw.
//
// Complexity: O(1).
func attemptSeed(parent int64, attempt uint64) int64 {
	return int64(mix64((uint64(parent) ^ (attempt + golden)) + golden))
}

// attemptRand returns the child stream for one attempt. base advances by one
// Int63 per call; a nil base uses defaultSeed as the parent.
//
// Complexity: O(1).
func attemptRand(base *rand.Rand, attempt uint64) *rand.Rand {
	parent := defaultSeed
	if base != nil {
		parent = base.Int63()
	}
	return rand.New(rand.NewSource(attemptSeed(parent, attempt)))
}

// shuffledOrder resets order to 0..len-1 and shuffles it with rng
// (Fisher-Yates, back to front). The fill pass uses it to break ties
// between points of equal degree.
//
// Complexity: O(n) time, no allocation.
func shuffledOrder(order []int, rng *rand.Rand) []int {
	for i := range order {
		order[i] = i
	}
	for i := len(order) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		order[i], order[j] = order[j], order[i]
	}
	return order
}
