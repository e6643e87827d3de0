package world

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"relicrun/internal/physics"
)

const (
	frustumNear float32 = 0.1
	frustumFar  float32 = 1000.0
)

// Plane is n·p + d = 0 with a unit normal pointing into the frustum.
type Plane struct {
	Normal rl.Vector3
	D      float32
}

func planeFrom(v rl.Vector4) Plane {
	p := Plane{Normal: rl.Vector3{X: v.X, Y: v.Y, Z: v.Z}, D: v.W}
	length := rl.Vector3Length(p.Normal)
	if length == 0 {
		return p
	}
	p.Normal = rl.Vector3Scale(p.Normal, 1/length)
	p.D /= length
	return p
}

// Distance is signed, positive on the inside.
func (p Plane) Distance(point rl.Vector3) float32 {
	return rl.Vector3DotProduct(p.Normal, point) + p.D
}

// Frustum holds the left, right, bottom, top, near and far planes.
type Frustum struct {
	planes [6]Plane
}

// ExtractFrustum builds the planes from the camera's view-projection matrix
// (Gribb/Hartmann): each plane is the last row plus or minus one of the others.
func ExtractFrustum(camera rl.Camera3D, aspect float32) Frustum {
	view := rl.GetCameraMatrix(camera)

	var proj rl.Matrix
	if camera.Projection == rl.CameraPerspective {
		proj = rl.MatrixPerspective(camera.Fovy*rl.Deg2rad, aspect, frustumNear, frustumFar)
	} else {
		halfH := camera.Fovy / 2
		halfW := halfH * aspect
		proj = rl.MatrixOrtho(-halfW, halfW, -halfH, halfH, frustumNear, frustumFar)
	}
	m := rl.MatrixMultiply(view, proj)

	rows := [4]rl.Vector4{
		{X: m.M0, Y: m.M4, Z: m.M8, W: m.M12},
		{X: m.M1, Y: m.M5, Z: m.M9, W: m.M13},
		{X: m.M2, Y: m.M6, Z: m.M10, W: m.M14},
		{X: m.M3, Y: m.M7, Z: m.M11, W: m.M15},
	}
	w := rows[3]

	var f Frustum
	for i := 0; i < 3; i++ {
		r := rows[i]
		f.planes[2*i] = planeFrom(rl.Vector4{X: w.X + r.X, Y: w.Y + r.Y, Z: w.Z + r.Z, W: w.W + r.W})
		f.planes[2*i+1] = planeFrom(rl.Vector4{X: w.X - r.X, Y: w.Y - r.Y, Z: w.Z - r.Z, W: w.W - r.W})
	}
	return f
}

// ContainsSphere is false only when the sphere is fully behind some plane.
func (f *Frustum) ContainsSphere(s physics.Sphere) bool {
	for _, p := range f.planes {
		if p.Distance(s.Center) < -s.Radius {
			return false
		}
	}
	return true
}

// ContainsBox tests the box corner furthest along each plane normal. Boxes
// near a frustum corner may pass without being visible.
func (f *Frustum) ContainsBox(b physics.Box) bool {
	for _, p := range f.planes {
		corner := b.Min
		if p.Normal.X >= 0 {
			corner.X = b.Max.X
		}
		if p.Normal.Y >= 0 {
			corner.Y = b.Max.Y
		}
		if p.Normal.Z >= 0 {
			corner.Z = b.Max.Z
		}
		if p.Distance(corner) < 0 {
			return false
		}
	}
	return true
}

func (f *Frustum) ContainsPoint(point rl.Vector3) bool {
	for _, p := range f.planes {
		if p.Distance(point) < 0 {
			return false
		}
	}
	return true
}
