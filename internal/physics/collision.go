package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// SeparationEpsilon is added to every push-out so the resolved shapes are
// strictly apart instead of touching on the boundary.
const SeparationEpsilon float32 = 0.01

// BoxIntersectsBox is true iff the boxes overlap on all three axes (closed intervals).
func BoxIntersectsBox(a, b Box) bool {
	return a.Min.X <= b.Max.X && a.Max.X >= b.Min.X &&
		a.Min.Y <= b.Max.Y && a.Max.Y >= b.Min.Y &&
		a.Min.Z <= b.Max.Z && a.Max.Z >= b.Min.Z
}

// SphereIntersectsSphere is true iff the center distance is strictly below the radius sum.
func SphereIntersectsSphere(a, b Sphere) bool {
	return rl.Vector3Distance(a.Center, b.Center) < a.Radius+b.Radius
}

// SphereIntersectsBox is true iff the closest point of b to the sphere center is
// strictly closer than the radius.
func SphereIntersectsBox(s Sphere, b Box) bool {
	closest := b.ClosestPoint(s.Center)
	return rl.Vector3Distance(closest, s.Center) < s.Radius
}

// Contact describes how a sphere penetrates a box.
type Contact struct {
	Normal rl.Vector3 // unit, points from the box toward the sphere
	Depth  float32    // travel along Normal needed to reach zero overlap, >= 0
	Point  rl.Vector3 // closest point on the box
}

// Displacement is the push-out to apply to the sphere owner, including the
// separation epsilon.
func (c Contact) Displacement(epsilon float32) rl.Vector3 {
	return rl.Vector3Scale(c.Normal, c.Depth+epsilon)
}

var worldUp = rl.Vector3{X: 0, Y: 1, Z: 0}

// ResolvePushOut computes the surface normal and penetration depth of s against b.
// Returns false when the shapes do not touch.
//
// When the sphere center is on or inside the box the closest point carries no
// direction, so the normal falls back to the direction from the box center. The
// depth in that case is measured to the nearest face crossing along the normal,
// so applying the displacement once always clears the box.
func ResolvePushOut(s Sphere, b Box) (Contact, bool) {
	closest := b.ClosestPoint(s.Center)
	diff := rl.Vector3Subtract(s.Center, closest)
	dist := rl.Vector3Length(diff)

	if dist >= s.Radius {
		return Contact{}, false
	}

	if dist > nearZero {
		return Contact{
			Normal: rl.Vector3Scale(diff, 1/dist),
			Depth:  s.Radius - dist,
			Point:  closest,
		}, true
	}

	normal := NormalizeOr(rl.Vector3Subtract(s.Center, b.Center()), worldUp)
	return Contact{
		Normal: normal,
		Depth:  insideDepth(s, b, normal),
		Point:  closest,
	}, true
}

// insideDepth is the smallest travel along normal that puts the sphere center at
// least one radius beyond some face of b.
func insideDepth(s Sphere, b Box, normal rl.Vector3) float32 {
	best := float32(-1)
	try := func(n, c, lo, hi float32) {
		var d float32
		switch {
		case n > nearZero:
			d = (hi - c + s.Radius) / n
		case n < -nearZero:
			d = (c - lo + s.Radius) / -n
		default:
			return
		}
		if best < 0 || d < best {
			best = d
		}
	}
	try(normal.X, s.Center.X, b.Min.X, b.Max.X)
	try(normal.Y, s.Center.Y, b.Min.Y, b.Max.Y)
	try(normal.Z, s.Center.Z, b.Min.Z, b.Max.Z)
	if best < 0 {
		return s.Radius
	}
	return best
}
