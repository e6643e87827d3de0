package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// Box is an axis-aligned bounding box. Min is component-wise <= Max.
type Box struct {
	Min rl.Vector3
	Max rl.Vector3
}

// NewBoxFromCenter creates a Box from a center point and full size dimensions.
// Negative sizes are treated by magnitude so Min <= Max always holds.
func NewBoxFromCenter(center, size rl.Vector3) Box {
	half := rl.Vector3{X: abs(size.X) / 2, Y: abs(size.Y) / 2, Z: abs(size.Z) / 2}
	return Box{
		Min: rl.Vector3Subtract(center, half),
		Max: rl.Vector3Add(center, half),
	}
}

func (b Box) Center() rl.Vector3 {
	return rl.Vector3Scale(rl.Vector3Add(b.Min, b.Max), 0.5)
}

func (b Box) Size() rl.Vector3 {
	return rl.Vector3Subtract(b.Max, b.Min)
}

// BoundingBox returns the raylib representation, used by the debug renderer.
func (b Box) BoundingBox() rl.BoundingBox {
	return rl.NewBoundingBox(b.Min, b.Max)
}

// Contains reports whether p lies inside the box, boundary included.
func (b Box) Contains(p rl.Vector3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// ClosestPoint clamps p component-wise into the box.
func (b Box) ClosestPoint(p rl.Vector3) rl.Vector3 {
	return rl.Vector3{
		X: clamp(p.X, b.Min.X, b.Max.X),
		Y: clamp(p.Y, b.Min.Y, b.Max.Y),
		Z: clamp(p.Z, b.Min.Z, b.Max.Z),
	}
}

// Sphere is a center point and a non-negative radius.
type Sphere struct {
	Center rl.Vector3
	Radius float32
}

func NewSphere(center rl.Vector3, radius float32) Sphere {
	if radius < 0 {
		radius = 0
	}
	return Sphere{Center: center, Radius: radius}
}
