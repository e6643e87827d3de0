package physics

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// RayIntersectsBox runs the slab test for a ray starting at origin. It returns
// the entry distance t along dir (negative when the origin is inside the box).
//
// A zero direction component yields an infinite reciprocal, so that axis is
// either always inside or never inside depending on where the origin sits. An
// origin exactly on a slab plane of a parallel axis counts as inside.
func RayIntersectsBox(origin, dir rl.Vector3, box Box) (bool, float32) {
	tx0, tx1 := slab(origin.X, dir.X, box.Min.X, box.Max.X)
	ty0, ty1 := slab(origin.Y, dir.Y, box.Min.Y, box.Max.Y)
	tz0, tz1 := slab(origin.Z, dir.Z, box.Min.Z, box.Max.Z)

	tmin := max(tx0, ty0, tz0)
	tmax := min(tx1, ty1, tz1)

	// Whole box is behind the ray origin
	if tmax < 0 {
		return false, tmax
	}
	// Intervals do not overlap on every axis
	if tmin > tmax {
		return false, tmax
	}
	return true, tmin
}

// slab returns the ordered entry/exit distances for one axis.
func slab(o, d, lo, hi float32) (float32, float32) {
	inf := float32(math.Inf(1))
	inv := 1 / d
	t1 := (lo - o) * inv
	t2 := (hi - o) * inv
	// 0 * Inf is NaN when the origin lies on a plane of a parallel slab
	if isNaN(t1) || isNaN(t2) {
		if o < lo || o > hi {
			return inf, -inf
		}
		return -inf, inf
	}
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	return t1, t2
}
