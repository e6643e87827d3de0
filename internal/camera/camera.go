package camera

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"relicrun/internal/config"
)

// Orbit follows a target from behind, or sits on it in first person.
type Orbit struct {
	Target      rl.Vector3
	Yaw         float32 // degrees
	Pitch       float32 // degrees, negative looks down
	Distance    float32
	Sensitivity float32
	FirstPerson bool

	minPitch, maxPitch float32
	fovy               float32
	// EyeHeight is the look-at offset above the target
	EyeHeight float32
}

func New(cfg config.Camera, target rl.Vector3) *Orbit {
	return &Orbit{
		Target:      target,
		Pitch:       cfg.Pitch,
		Distance:    cfg.Distance,
		Sensitivity: cfg.Sensitivity,
		minPitch:    cfg.MinPitch,
		maxPitch:    cfg.MaxPitch,
		fovy:        cfg.Fovy,
		EyeHeight:   1,
	}
}

// Rotate applies a mouse delta in pixels.
func (c *Orbit) Rotate(dx, dy float32) {
	c.Yaw -= dx * c.Sensitivity
	c.Pitch -= dy * c.Sensitivity

	// Clamp pitch
	if c.Pitch > c.maxPitch {
		c.Pitch = c.maxPitch
	}
	if c.Pitch < c.minPitch {
		c.Pitch = c.minPitch
	}
}

func (c *Orbit) Toggle() {
	c.FirstPerson = !c.FirstPerson
}

// Follow moves the orbit center.
func (c *Orbit) Follow(target rl.Vector3) {
	c.Target = target
}

// LookAt is the point the camera aims at in third person.
func (c *Orbit) LookAt() rl.Vector3 {
	return rl.Vector3Add(c.Target, rl.Vector3{Y: c.EyeHeight})
}

// Position of the eye.
func (c *Orbit) Position() rl.Vector3 {
	if c.FirstPerson {
		return c.LookAt()
	}
	yaw := float64(c.Yaw) * math.Pi / 180
	pitch := float64(c.Pitch) * math.Pi / 180
	ground := float64(c.Distance) * math.Cos(pitch)

	offset := rl.Vector3{
		X: float32(ground * math.Sin(yaw)),
		Y: float32(float64(c.Distance) * math.Sin(-pitch)),
		Z: float32(ground * math.Cos(yaw)),
	}
	return rl.Vector3Add(c.Target, offset)
}

// Directions returns the camera's forward and right vectors flattened to XZ.
// Both are unit length.
func (c *Orbit) Directions() (forward, right rl.Vector3) {
	yaw := float64(c.Yaw) * math.Pi / 180
	// Forward points from the eye toward the target
	forward = rl.Vector3{
		X: float32(-math.Sin(yaw)),
		Z: float32(-math.Cos(yaw)),
	}
	right = rl.Vector3{
		X: float32(math.Cos(yaw)),
		Z: float32(-math.Sin(yaw)),
	}
	return
}

// MoveInput maps forward/strafe axes in [-1, 1] to a world XZ direction,
// normalized so diagonals are not faster.
func (c *Orbit) MoveInput(forwardAxis, rightAxis float32) rl.Vector3 {
	forward, right := c.Directions()
	dir := rl.Vector3Add(rl.Vector3Scale(forward, forwardAxis), rl.Vector3Scale(right, rightAxis))
	if rl.Vector3Length(dir) > 0 {
		dir = rl.Vector3Normalize(dir)
	}
	return dir
}

func (c *Orbit) GetRaylibCamera() rl.Camera3D {
	target := c.LookAt()
	if c.FirstPerson {
		forward, _ := c.Directions()
		pitch := float64(c.Pitch) * math.Pi / 180
		look := rl.Vector3Scale(forward, float32(math.Cos(pitch)))
		look.Y = float32(math.Sin(pitch))
		target = rl.Vector3Add(c.LookAt(), look)
	}

	return rl.Camera3D{
		Position:   c.Position(),
		Target:     target,
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       c.fovy,
		Projection: rl.CameraPerspective,
	}
}
