package autoconnect

import (
	"math/rand"

	"github.com/katalvlaran/platesketch/boundary"
)

// Option customizes a Config. Constructors panic on meaningless input;
// the algorithms themselves never panic.
type Option func(*Config)

// WithSeed seeds the random source. Seed 0 selects the fixed default seed.
func WithSeed(seed int64) Option {
	return func(c *Config) {
		c.rng = newRand(seed)
	}
}

// WithRand supplies the random source directly. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("autoconnect: WithRand(nil)")
	}
	return func(c *Config) {
		c.rng = r
	}
}

// WithObstacles adds pre-existing boundaries that new edges must not cross.
// Obstacles sharing a keyed endpoint with a candidate are exempt.
func WithObstacles(bs []boundary.Boundary) Option {
	return func(c *Config) {
		c.Obstacles = append(c.Obstacles, bs...)
	}
}

// WithWrap enables or disables wrap-around candidates.
func WithWrap(enabled bool) Option {
	return func(c *Config) {
		c.Wrap = enabled
	}
}

// WithMaxDegree sets the per-point degree cap. Panics if d < 1.
func WithMaxDegree(d int) Option {
	if d < 1 {
		panic("autoconnect: WithMaxDegree(d<1)")
	}
	return func(c *Config) {
		c.MaxDegree = d
	}
}

// WithAttempts bounds the optimizer attempt count. Panics unless
// 1 <= min <= max.
func WithAttempts(min, max int) Option {
	if min < 1 || max < min {
		panic("autoconnect: WithAttempts requires 1 <= min <= max")
	}
	return func(c *Config) {
		c.MinAttempts = min
		c.MaxAttempts = max
	}
}

// WithCostWeights replaces the evaluation weights.
func WithCostWeights(w CostWeights) Option {
	return func(c *Config) {
		c.Weights = w
	}
}

// WithOnAccept installs a hook called after every accepted edge. Panics on
// nil.
func WithOnAccept(fn AcceptFunc) Option {
	if fn == nil {
		panic("autoconnect: WithOnAccept(nil)")
	}
	return func(c *Config) {
		c.OnAccept = fn
	}
}
