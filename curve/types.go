package curve

import "fmt"

// Mode selects the curve family.
type Mode int

const (
	// ModeLine is a straight segment.
	ModeLine Mode = iota
	// ModeArc is a quadratic Bézier bowing to one side.
	ModeArc
	// ModeS is a cubic Bézier with control points on opposite sides.
	ModeS
	// ModeTectonic is a randomized multi-knot polyline.
	ModeTectonic
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case ModeLine:
		return "line"
	case ModeArc:
		return "arc"
	case ModeS:
		return "s"
	case ModeTectonic:
		return "tectonic"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Knot perturbs one interior point of a tectonic curve.
//   - T: parametric jitter, scaled by 1/(knots+1) when applied.
//   - N: lateral (normal) offset in [-1, 1], scaled by Roughness.
//   - A: longitudinal offset in [-1, 1], scaled by AlongScale.
type Knot struct {
	T, N, A float64
}

// Curve describes how to draw a boundary between two points. Only the fields
// of the selected Mode are read; the rest stay zero.
type Curve struct {
	Mode Mode

	// Tectonic parameters.
	KnotCount  int
	Roughness  float64
	BroadBend  float64
	AlongScale float64
	Knots      []Knot

	// Arc and S parameters. Side is +1 or -1.
	Side     int
	Strength float64
	Bias     float64 // arc apex shift along the segment
	Split    float64 // s control point positions (t and 1-t)
	Skew     float64 // s second-control amplitude factor
}

// Line returns a straight curve.
func Line() Curve { return Curve{Mode: ModeLine} }

// Clone returns a deep copy; Knots is not shared.
func (c Curve) Clone() Curve {
	out := c
	if c.Knots != nil {
		out.Knots = append([]Knot(nil), c.Knots...)
	}
	return out
}

// Tectonic synthesis ranges.
const (
	minKnots = 2
	maxKnots = 5

	persistenceMin = 0.36
	persistenceMax = 0.72
	normalDrift    = 0.34
	knotJitter     = 0.22

	roughnessMin  = 0.028
	roughnessMax  = 0.1
	broadBendMax  = 0.2
	alongScaleMin = 0.005
	alongScaleMax = 0.055
)

// Tectonic evaluation clamps. Stored curves may come from older records or
// external editors, so every field is clamped again on use.
const (
	evalDefaultKnots = 3
	evalDefaultRough = 0.06
	evalDefaultAlong = 0.03
	evalMaxKnots     = 6
	evalRoughMin     = 0.012
	evalRoughMax     = 0.15
	evalBendMax      = 0.34
	evalAlongMax     = 0.09
	evalJitterMax    = 0.32
	knotMinAdvance   = 0.06
	knotTailReserve  = 0.05
	degenerateLength = 1e-4
)

// Damping applied to auto-connected boundaries so generated networks look
// calmer than freehand ones.
const (
	dampRoughness     = 0.65
	dampRoughnessMin  = 0.018
	dampRoughnessMax  = 0.075
	dampBend          = 0.6
	dampBendMax       = 0.16
	dampAlongScale    = 0.55
	dampAlongScaleMin = 0.003
	dampAlongScaleMax = 0.03
)

// Style curve parameters.
const (
	arcStrengthMin = 0.05
	arcStrengthMax = 0.42
	arcDefaultStr  = 0.18
	arcBiasMax     = 0.22
	arcApexMin     = 0.2
	arcApexMax     = 0.8
	sSplitMin      = 0.2
	sSplitMax      = 0.45
	sDefaultSplit  = 0.35
	sSkewMin       = 0.6
	sSkewMax       = 1.4
	sDefaultSkew   = 1.0
	arcHitSteps    = 12
	sHitSteps      = 18
	arcPointSteps  = 18
	sPointSteps    = 26
)

// Random ranges for freshly drawn style curves.
const (
	styleStrengthMin = 0.1
	styleStrengthMax = 0.3
	styleBiasMax     = 0.15
	styleSplitMin    = 0.25
	styleSplitMax    = 0.4
	styleSkewMin     = 0.8
	styleSkewMax     = 1.2
)
