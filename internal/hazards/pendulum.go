package hazards

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"relicrun/internal/engine"
	"relicrun/internal/physics"
)

// Pendulum swings a blade along a circular arc under Pivot. Always solid.
type Pendulum struct {
	engine.BaseBehavior
	Pivot      rl.Vector3
	Length     float32
	SwingSpeed float32
	MaxAngle   float32 // degrees
	Phase      float32
	Angle      float32 // radians, current swing
}

func newPendulum(e *engine.Entity, s engine.Spawn) (engine.Behavior, error) {
	cfg := s.Tuning.Pendulum
	p := &Pendulum{MaxAngle: cfg.MaxAngle}

	var err error
	if p.Pivot, err = engine.PropVec3(s.Props, "pivot", e.Transform.Position); err != nil {
		return nil, err
	}
	if p.Length, err = engine.PropFloat(s.Props, "length", cfg.Length); err != nil {
		return nil, err
	}
	if p.SwingSpeed, err = engine.PropFloat(s.Props, "speed", cfg.SwingSpeed); err != nil {
		return nil, err
	}
	if p.Phase, err = engine.PropFloat(s.Props, "phase", 0); err != nil {
		return nil, err
	}

	scaleOr(e, rl.Vector3{X: 0.3, Y: 2, Z: 1.5})
	colorOr(e, rl.Color{R: 38, G: 38, B: 46, A: 255})
	p.SetEntity(e)
	p.pose()
	return p, nil
}

func (p *Pendulum) Update(deltaTime float32) {
	p.Phase += p.SwingSpeed * deltaTime
	p.pose()
}

func (p *Pendulum) pose() {
	e := p.GetEntity()
	p.Angle = sin(p.Phase) * p.MaxAngle * rl.Deg2rad
	e.Transform.Position = rl.Vector3{
		X: p.Pivot.X + sin(p.Angle)*p.Length,
		Y: p.Pivot.Y - cos(p.Angle)*p.Length,
		Z: p.Pivot.Z,
	}
	e.Transform.Rotation.Z = p.Angle * rl.Rad2deg
}

// Knockback pushes the player directly away from the blade.
func (p *Pendulum) Knockback(player rl.Vector3) (rl.Vector3, bool) {
	dir := rl.Vector3Subtract(player, p.GetEntity().Transform.Position)
	return physics.NormalizeOr(dir, worldUp), true
}
