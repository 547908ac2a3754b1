// Package utils contains small angle-unit helpers shared by the rotation
// types and their tests.
package utils

import "math"

// DegToRad converts degrees to radians.
func DegToRad(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(radians float64) float64 {
	return radians * 180 / math.Pi
}

// AngleDiffDeg returns the closest difference from the two given
// angles in degrees. The arguments are commutative.
func AngleDiffDeg(a1, a2 float64) float64 {
	return float64(180) - math.Abs(math.Abs(a1-a2)-float64(180))
}

// ModAngDeg normalizes an angle in degrees into [0, 360).
func ModAngDeg(ang float64) float64 {
	return math.Mod(math.Mod(ang, 360)+360, 360)
}

// WrapToPi wraps an angle in radians into the interval (-pi, pi].
func WrapToPi(rad float64) float64 {
	res := math.Mod(rad+math.Pi, 2*math.Pi)
	if res <= 0 {
		res += 2 * math.Pi
	}
	return res - math.Pi
}
