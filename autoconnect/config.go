package autoconnect

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/platesketch/boundary"
	"github.com/katalvlaran/platesketch/surface"
)

// Structural defaults.
const (
	DefaultMaxDegree       = 3
	DefaultMinAttempts     = 10
	DefaultMaxAttempts     = 28
	DefaultAttemptBase     = 10.0
	DefaultAttemptPerPoint = 0.35
)

// Candidate scoring defaults. Lengths are fractions of the surface's short
// side; jitter amplitudes are multiples of one editing-grid cell.
const (
	DefaultPreferredFrac  = 0.22
	DefaultLongFrac       = 0.48
	DefaultLongWeight     = 5.4
	DefaultExtremeFrac    = 0.62
	DefaultExtremeWeight  = 22.0
	DefaultFillDeviation  = 0.72
	DefaultFillLength     = 0.32
	DefaultFillJitterCell = 1.6
	DefaultFillWrapBonus  = 1.6
	DefaultTreeLongFactor = 1.45
	DefaultTreeExtreme    = 2.7
	DefaultTreeJitterCell = 1.2
	DefaultTreeWrapBonus  = 1.1
	DefaultWrapTie        = 1e-4
)

// Degree-filling defaults.
const (
	DefaultDeficientBonus      = 18.0
	DefaultSaturatedPenalty    = 6.0
	DefaultIsolatedBonus       = 8.0
	DefaultAngleThreshold      = math.Pi / 4.3
	DefaultAngleScale          = 3.6
	DefaultNodeAngleWeight     = 8.0
	DefaultOtherAngleWeight    = 5.6
	DefaultMergeBonus          = 10.0
	DefaultRelaxedCrossPenalty = 220.0
	DefaultTrianglePenalty     = 95.0
	DefaultTriangleAllowance   = 2
	DefaultTriangleOverflow    = 620.0
	DefaultPickJitter          = 0.8
	DefaultSafetyFactor        = 6
)

// DefaultStatsLongFrac is the edge length, as a fraction of the short side,
// past which Evaluate charges a squared overflow penalty.
const DefaultStatsLongFrac = 0.56

// CostWeights folds Stats into a scalar. The defaults are ordered so that any
// one extra component outweighs every isolated point, which outweighs points
// under degree 2, then crossings, triangles, points under degree 3, long-edge
// overflow and finally raw length.
type CostWeights struct {
	Components       float64
	Isolated         float64
	UnderTwo         float64
	Crossings        float64
	Triangles        float64
	TriangleOverflow float64
	UnderThree       float64
	LongPenalty      float64
	Length           float64
	// TriangleAllowance is how many triangles are free of the overflow term.
	TriangleAllowance int
}

// DefaultCostWeights returns the tuned weights.
func DefaultCostWeights() CostWeights {
	return CostWeights{
		Components:        1e9,
		Isolated:          2.6e8,
		UnderTwo:          7.2e7,
		Crossings:         1.8e7,
		Triangles:         4.8e5,
		TriangleOverflow:  1.4e7,
		UnderThree:        2.2e6,
		LongPenalty:       32,
		Length:            1,
		TriangleAllowance: DefaultTriangleAllowance,
	}
}

// AcceptFunc observes every edge accepted during a build together with the
// component count right after the acceptance.
type AcceptFunc func(c *Candidate, components int)

// Config holds every tunable of the builder, evaluator and optimizer.
// Obtain it from DefaultConfig and adjust with Options.
type Config struct {
	MaxDegree       int
	Wrap            bool
	MinAttempts     int
	MaxAttempts     int
	AttemptBase     float64
	AttemptPerPoint float64
	Obstacles       []boundary.Boundary
	OnAccept        AcceptFunc

	// Candidate scoring, in surface units.
	PreferredLength  float64
	LongThreshold    float64
	LongWeight       float64
	ExtremeThreshold float64
	ExtremeWeight    float64
	FillDeviation    float64
	FillLength       float64
	FillJitter       float64
	FillWrapBonus    float64
	TreeLongFactor   float64
	TreeExtreme      float64
	TreeJitter       float64
	TreeWrapBonus    float64
	WrapTie          float64

	// Degree filling.
	DeficientBonus      float64
	SaturatedPenalty    float64
	IsolatedBonus       float64
	AngleThreshold      float64
	AngleScale          float64
	NodeAngleWeight     float64
	OtherAngleWeight    float64
	MergeBonus          float64
	RelaxedCrossPenalty float64
	TrianglePenalty     float64
	TriangleAllowance   int
	TriangleOverflow    float64
	PickJitter          float64
	SafetyFactor        int

	// Evaluation.
	StatsLongThreshold float64
	Weights            CostWeights

	rng *rand.Rand
}

// DefaultConfig returns the tuned defaults scaled to surf.
func DefaultConfig(surf surface.Surface) Config {
	short := surf.ShortSide()
	cell := surf.CellSize()
	return Config{
		MaxDegree:       DefaultMaxDegree,
		Wrap:            true,
		MinAttempts:     DefaultMinAttempts,
		MaxAttempts:     DefaultMaxAttempts,
		AttemptBase:     DefaultAttemptBase,
		AttemptPerPoint: DefaultAttemptPerPoint,

		PreferredLength:  short * DefaultPreferredFrac,
		LongThreshold:    short * DefaultLongFrac,
		LongWeight:       DefaultLongWeight,
		ExtremeThreshold: short * DefaultExtremeFrac,
		ExtremeWeight:    DefaultExtremeWeight,
		FillDeviation:    DefaultFillDeviation,
		FillLength:       DefaultFillLength,
		FillJitter:       cell * DefaultFillJitterCell,
		FillWrapBonus:    DefaultFillWrapBonus,
		TreeLongFactor:   DefaultTreeLongFactor,
		TreeExtreme:      DefaultTreeExtreme,
		TreeJitter:       cell * DefaultTreeJitterCell,
		TreeWrapBonus:    DefaultTreeWrapBonus,
		WrapTie:          DefaultWrapTie,

		DeficientBonus:      DefaultDeficientBonus,
		SaturatedPenalty:    DefaultSaturatedPenalty,
		IsolatedBonus:       DefaultIsolatedBonus,
		AngleThreshold:      DefaultAngleThreshold,
		AngleScale:          DefaultAngleScale,
		NodeAngleWeight:     DefaultNodeAngleWeight,
		OtherAngleWeight:    DefaultOtherAngleWeight,
		MergeBonus:          DefaultMergeBonus,
		RelaxedCrossPenalty: DefaultRelaxedCrossPenalty,
		TrianglePenalty:     DefaultTrianglePenalty,
		TriangleAllowance:   DefaultTriangleAllowance,
		TriangleOverflow:    DefaultTriangleOverflow,
		PickJitter:          DefaultPickJitter,
		SafetyFactor:        DefaultSafetyFactor,

		StatsLongThreshold: short * DefaultStatsLongFrac,
		Weights:            DefaultCostWeights(),
	}
}

// Rand returns the configured random source, creating the default-seeded one
// on first use.
func (c *Config) Rand() *rand.Rand {
	if c.rng == nil {
		c.rng = newRand(0)
	}
	return c.rng
}

// attempts returns the optimizer attempt budget for n points.
func (c Config) attempts(n int) int {
	k := int(math.Round(c.AttemptBase + float64(n)*c.AttemptPerPoint))
	if k < c.MinAttempts {
		k = c.MinAttempts
	}
	if k > c.MaxAttempts {
		k = c.MaxAttempts
	}
	return k
}
