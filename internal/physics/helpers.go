package physics

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// nearZero is the length below which a vector is treated as having no direction.
const nearZero = 0.001

// clamp restricts a value to a range
func clamp(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func isNaN(x float32) bool {
	return x != x
}

// NormalizeOr returns v scaled to unit length, or fallback when v is too short
// to carry a direction. The result never contains NaN.
func NormalizeOr(v, fallback rl.Vector3) rl.Vector3 {
	length := rl.Vector3Length(v)
	if length < nearZero || isNaN(length) {
		return fallback
	}
	return rl.Vector3Scale(v, 1/length)
}

// HorizontalDistance is the XZ-plane distance between two points.
func HorizontalDistance(a, b rl.Vector3) float32 {
	dx := float64(a.X - b.X)
	dz := float64(a.Z - b.Z)
	return float32(math.Sqrt(dx*dx + dz*dz))
}

// HorizontalDirection returns the unit XZ direction from b to a, or fallback
// when the two points share a vertical axis.
func HorizontalDirection(a, b, fallback rl.Vector3) rl.Vector3 {
	return NormalizeOr(rl.Vector3{X: a.X - b.X, Z: a.Z - b.Z}, fallback)
}
