package camera

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"

	"relicrun/internal/config"
)

func near(a, b float32) bool {
	d := a - b
	return d < 1e-4 && d > -1e-4
}

func newOrbit() *Orbit {
	return New(config.Defaults().Camera, rl.Vector3{})
}

func TestOrbitPositionBehindTarget(t *testing.T) {
	c := newOrbit()
	c.Pitch = 0

	pos := c.Position()
	if !near(pos.X, 0) || !near(pos.Y, 0) || !near(pos.Z, 8) {
		t.Errorf("Expected (0,0,8) at zero yaw and pitch, got %v", pos)
	}

	c.Pitch = -30
	pos = c.Position()
	if !near(pos.Y, 4) {
		t.Errorf("Expected height 4 at -30 pitch, got %f", pos.Y)
	}
	if !near(rl.Vector3Length(pos), 8) {
		t.Errorf("Expected distance 8 from target, got %f", rl.Vector3Length(pos))
	}
}

func TestOrbitFollow(t *testing.T) {
	c := newOrbit()
	c.Follow(rl.Vector3{X: 3, Y: 1, Z: -2})

	if d := rl.Vector3Distance(c.Position(), c.Target); !near(d, 8) {
		t.Errorf("Expected orbit distance 8, got %f", d)
	}
	if c.LookAt() != (rl.Vector3{X: 3, Y: 2, Z: -2}) {
		t.Errorf("Expected look-at one unit above target, got %v", c.LookAt())
	}
}

func TestRotateClampsPitch(t *testing.T) {
	c := newOrbit()

	c.Rotate(0, 10000)
	if c.Pitch != -89 {
		t.Errorf("Expected pitch clamped to -89, got %f", c.Pitch)
	}
	c.Rotate(0, -10000)
	if c.Pitch != 10 {
		t.Errorf("Expected pitch clamped to 10, got %f", c.Pitch)
	}

	c.Rotate(100, 0)
	if !near(c.Yaw, -15) {
		t.Errorf("Expected yaw -15, got %f", c.Yaw)
	}
}

func TestDirectionsAreFlatUnitAndFaceTarget(t *testing.T) {
	c := newOrbit()
	for _, yaw := range []float32{0, 45, 90, 200, -135} {
		c.Yaw = yaw
		forward, right := c.Directions()

		if forward.Y != 0 || right.Y != 0 {
			t.Errorf("yaw %f: directions should be flat", yaw)
		}
		if !near(rl.Vector3Length(forward), 1) || !near(rl.Vector3Length(right), 1) {
			t.Errorf("yaw %f: expected unit directions", yaw)
		}
		if !near(rl.Vector3DotProduct(forward, right), 0) {
			t.Errorf("yaw %f: forward and right should be perpendicular", yaw)
		}

		toTarget := rl.Vector3Subtract(c.Target, c.Position())
		toTarget.Y = 0
		if rl.Vector3DotProduct(forward, toTarget) <= 0 {
			t.Errorf("yaw %f: forward should point toward the target", yaw)
		}
	}
}

func TestMoveInputNormalizesDiagonal(t *testing.T) {
	c := newOrbit()
	dir := c.MoveInput(1, 1)
	if !near(rl.Vector3Length(dir), 1) {
		t.Errorf("Expected unit diagonal, got %f", rl.Vector3Length(dir))
	}
	if dir = c.MoveInput(0, 0); rl.Vector3Length(dir) != 0 {
		t.Errorf("Expected zero input to stay zero, got %v", dir)
	}
}

func TestFirstPersonToggle(t *testing.T) {
	c := newOrbit()
	c.Toggle()

	if !c.FirstPerson {
		t.Fatal("Expected first person after toggle")
	}
	if c.Position() != c.LookAt() {
		t.Errorf("Expected eye at look-at point, got %v", c.Position())
	}
	cam := c.GetRaylibCamera()
	if cam.Target == cam.Position {
		t.Error("First person target must differ from position")
	}
	if cam.Fovy != 45 {
		t.Errorf("Expected fovy 45, got %f", cam.Fovy)
	}
}

func TestRightIsScreenRight(t *testing.T) {
	c := newOrbit()
	// Eye on +Z looking toward -Z: screen right is +X
	_, right := c.Directions()
	if !near(right.X, 1) || !near(right.Z, 0) {
		t.Errorf("Expected right (1,0,0), got %v", right)
	}
}
