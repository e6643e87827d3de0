package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// Shape selects which half of a Volume is authoritative.
type Shape uint8

const (
	ShapeBox Shape = iota
	ShapeSphere
)

func (s Shape) String() string {
	if s == ShapeSphere {
		return "sphere"
	}
	return "box"
}

// Volume keeps both bounding shapes of an entity. Only the one named by Shape
// takes part in collision tests; the other is kept current so readers never
// see stale data.
type Volume struct {
	Shape  Shape
	Box    Box
	Sphere Sphere
}

// IntersectsSphere runs the test matching the volume's shape.
func (v Volume) IntersectsSphere(s Sphere) bool {
	if v.Shape == ShapeSphere {
		return SphereIntersectsSphere(s, v.Sphere)
	}
	return SphereIntersectsBox(s, v.Box)
}

// Center of the authoritative shape.
func (v Volume) Center() rl.Vector3 {
	if v.Shape == ShapeSphere {
		return v.Sphere.Center
	}
	return v.Box.Center()
}
