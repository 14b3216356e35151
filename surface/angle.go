package surface

import "math"

// NormalizeAngle maps an angle in radians into [-pi, pi].
func NormalizeAngle(a float64) float64 {
	const fullTurn = 2 * math.Pi
	n := math.Mod(a, fullTurn)
	if n > math.Pi {
		n -= fullTurn
	} else if n < -math.Pi {
		n += fullTurn
	}
	return n
}

// AngleDiff returns the smallest absolute difference between two bearings,
// in [0, pi].
func AngleDiff(a, b float64) float64 {
	d := math.Abs(NormalizeAngle(a - b))
	if d > math.Pi {
		return 2*math.Pi - d
	}
	return d
}

// Bearing returns the direction of the offset (dx, dy) in radians.
func Bearing(dx, dy float64) float64 {
	return math.Atan2(dy, dx)
}
