package world

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"relicrun/internal/effects"
	"relicrun/internal/engine"
)

const FloorSize = 60.0

var (
	floorColor  = rl.Color{R: 58, G: 54, B: 50, A: 255}
	playerColor = rl.Color{R: 80, G: 160, B: 255, A: 255}
	flashColor  = rl.Color{R: 255, G: 77, B: 77, A: 255}
	boundsColor = rl.Color{R: 0, G: 255, B: 128, A: 160}
)

// Renderer draws a level with raylib primitives. It never touches
// simulation state.
type Renderer struct {
	ShowBounds bool
	ShowLights bool
}

func NewRenderer() *Renderer {
	return &Renderer{ShowLights: true}
}

// DrawLevel draws active walls and objects inside the camera frustum and
// returns how many were drawn. Must be called between BeginMode3D and
// EndMode3D.
func (r *Renderer) DrawLevel(l *Level, camera rl.Camera3D) int {
	rl.DrawPlane(rl.Vector3{}, rl.Vector2{X: FloorSize, Y: FloorSize}, floorColor)

	aspect := float32(rl.GetScreenWidth()) / float32(max(rl.GetScreenHeight(), 1))
	frustum := ExtractFrustum(camera, aspect)
	drawn := 0
	for e := range l.Scene.All() {
		if !e.Active || !Visible(&frustum, e) {
			continue
		}
		r.drawEntity(e)
		drawn++
	}

	if l.Exit != nil {
		rl.DrawBoundingBox(l.Exit.BoundingBox(), rl.Lime)
	}

	if r.ShowLights {
		for _, light := range l.Lights {
			rl.DrawSphere(light.Position, 0.1+light.Intensity*0.01, light.Color)
		}
	}
	return drawn
}

// Visible reports whether an entity's authoritative bounds touch the frustum.
func Visible(f *Frustum, e *engine.Entity) bool {
	if e.UsesSphere() {
		return f.ContainsSphere(e.Sphere())
	}
	return f.ContainsBox(e.Box())
}

func (r *Renderer) drawEntity(e *engine.Entity) {
	color := Shade(e.Color, e.Alpha, e.Emissive)
	pos := e.Transform.Position

	if e.UsesSphere() {
		rl.DrawSphere(pos, e.SphereRadius*0.6, color)
	} else {
		rot := e.Transform.Rotation
		rl.PushMatrix()
		rl.Translatef(pos.X, pos.Y, pos.Z)
		rl.Rotatef(rot.Z, 0, 0, 1)
		rl.Rotatef(rot.Y, 0, 1, 0)
		rl.Rotatef(rot.X, 1, 0, 0)
		rl.DrawCubeV(rl.Vector3{}, e.Transform.Scale, color)
		rl.PopMatrix()
	}

	if r.ShowBounds {
		if e.UsesSphere() {
			rl.DrawSphereWires(e.Sphere().Center, e.Sphere().Radius, 8, 8, boundsColor)
		} else {
			rl.DrawBoundingBox(e.Box().BoundingBox(), boundsColor)
		}
	}
}

func (r *Renderer) DrawPlayer(p Body, flashing bool) {
	color := playerColor
	if flashing {
		color = flashColor
	}
	s := p.Sphere()
	rl.DrawSphere(s.Center, s.Radius, color)
	if r.ShowBounds {
		rl.DrawSphereWires(s.Center, s.Radius, 8, 8, boundsColor)
	}
}

func (r *Renderer) DrawParticles(pool *effects.Pool) {
	for _, p := range pool.Particles() {
		rl.DrawCubeV(p.Position, rl.Vector3{X: p.Size * 0.05, Y: p.Size * 0.05, Z: p.Size * 0.05}, rl.Fade(p.Color, p.Alpha()))
	}
}

// Shade applies transparency and brightens toward white by emissive.
func Shade(c rl.Color, alpha, emissive float32) rl.Color {
	emissive = min(max(emissive, 0), 1)
	lift := func(v uint8) uint8 {
		return uint8(float32(v) + (255-float32(v))*emissive*0.5)
	}
	return rl.Color{
		R: lift(c.R),
		G: lift(c.G),
		B: lift(c.B),
		A: uint8(float32(c.A) * min(max(alpha, 0), 1)),
	}
}
