package curve

import "math/rand"

// NewTectonic draws a fresh tectonic curve from rng.
//
// Knot normals are serially correlated: with the drawn persistence
// probability a knot keeps the previous knot's lateral offset (plus a small
// drift), otherwise it restarts anywhere in [-1, 1].
func NewTectonic(rng *rand.Rand) Curve {
	knots := minKnots + rng.Intn(maxKnots-minKnots+1)
	persistence := between(rng, persistenceMin, persistenceMax)

	nodes := make([]Knot, 0, knots)
	prevNormal := between(rng, -1, 1)
	for i := 0; i < knots; i++ {
		var normal float64
		if i > 0 && rng.Float64() < persistence {
			normal = prevNormal + between(rng, -normalDrift, normalDrift)
		} else {
			normal = between(rng, -1, 1)
		}
		normal = clamp(normal, -1, 1)
		prevNormal = normal
		nodes = append(nodes, Knot{
			T: between(rng, -knotJitter, knotJitter),
			N: normal,
			A: between(rng, -1, 1),
		})
	}

	return Curve{
		Mode:       ModeTectonic,
		KnotCount:  knots,
		Roughness:  between(rng, roughnessMin, roughnessMax),
		BroadBend:  between(rng, -broadBendMax, broadBendMax),
		AlongScale: between(rng, alongScaleMin, alongScaleMax),
		Knots:      nodes,
	}
}

// Damped returns a calmer copy of a tectonic curve. Other modes are returned
// unchanged.
func (c Curve) Damped() Curve {
	out := c.Clone()
	if out.Mode != ModeTectonic {
		return out
	}
	out.Roughness = clamp(out.Roughness*dampRoughness, dampRoughnessMin, dampRoughnessMax)
	out.BroadBend = clamp(out.BroadBend*dampBend, -dampBendMax, dampBendMax)
	out.AlongScale = clamp(out.AlongScale*dampAlongScale, dampAlongScaleMin, dampAlongScaleMax)
	return out
}

// NewArc draws a quadratic style curve bowing to a random side.
func NewArc(rng *rand.Rand) Curve {
	return Curve{
		Mode:     ModeArc,
		Side:     randomSide(rng),
		Strength: between(rng, styleStrengthMin, styleStrengthMax),
		Bias:     between(rng, -styleBiasMax, styleBiasMax),
	}
}

// NewS draws a cubic style curve whose control points sit on opposite sides.
func NewS(rng *rand.Rand) Curve {
	return Curve{
		Mode:     ModeS,
		Side:     randomSide(rng),
		Strength: between(rng, styleStrengthMin, styleStrengthMax),
		Split:    between(rng, styleSplitMin, styleSplitMax),
		Skew:     between(rng, styleSkewMin, styleSkewMax),
	}
}

func randomSide(rng *rand.Rand) int {
	if rng.Intn(2) == 0 {
		return -1
	}
	return 1
}

// between returns a uniform value in [lo, hi).
func between(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
