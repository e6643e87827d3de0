package hazards

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"relicrun/internal/config"
	"relicrun/internal/effects"
	"relicrun/internal/engine"
	"relicrun/internal/physics"
)

var steamColor = rl.Color{R: 204, G: 204, B: 230, A: 128}

// Geyser toggles between dormant and erupting on a fixed schedule. While
// erupting it pushes and scalds anyone standing in its steam column.
type Geyser struct {
	engine.BaseBehavior
	cfg      config.Geyser
	Interval float32
	Duration float32
	Erupting bool
	Timer    float32
	Cooldown float32
}

func newGeyser(e *engine.Entity, s engine.Spawn) (engine.Behavior, error) {
	cfg := s.Tuning.Geyser
	g := &Geyser{cfg: cfg}

	var err error
	if g.Interval, err = engine.PropFloat(s.Props, "interval", cfg.Interval); err != nil {
		return nil, err
	}
	if g.Duration, err = engine.PropFloat(s.Props, "duration", cfg.Duration); err != nil {
		return nil, err
	}
	if g.Timer, err = engine.PropFloat(s.Props, "offset", 0); err != nil {
		return nil, err
	}

	scaleOr(e, rl.Vector3{X: 1.2, Y: 0.15, Z: 1.2})
	colorOr(e, rl.Color{R: 115, G: 89, B: 64, A: 255})
	return g, nil
}

func (g *Geyser) Update(deltaTime float32) {
	g.Timer += deltaTime
	// Overshoot carries into the next phase so the schedule does not drift.
	if !g.Erupting && reached(g.Timer, g.Interval) {
		g.Erupting = true
		g.Timer = overshoot(g.Timer, g.Interval)
	} else if g.Erupting && reached(g.Timer, g.Duration) {
		g.Erupting = false
		g.Timer = overshoot(g.Timer, g.Duration)
	}

	if g.Cooldown > 0 {
		g.Cooldown = max(0, g.Cooldown-deltaTime)
	}

	e := g.GetEntity()
	if g.Erupting {
		e.Emissive = 0.3
	} else {
		e.Emissive = 0
	}
}

// InColumn reports whether p is inside the steam column while erupting.
func (g *Geyser) InColumn(p rl.Vector3) bool {
	if !g.Erupting {
		return false
	}
	vent := g.GetEntity().Transform.Position
	return physics.HorizontalDistance(p, vent) < g.cfg.ColumnRadius &&
		p.Y >= vent.Y && p.Y < vent.Y+g.cfg.ColumnHeight
}

// Affect emits steam every erupting frame and, for a player in the column,
// returns an outward and upward push plus damage gated by the cooldown.
func (g *Geyser) Affect(player rl.Vector3, deltaTime float32, fx effects.Sink) (rl.Vector3, bool) {
	if !g.Erupting {
		return rl.Vector3{}, false
	}
	vent := g.GetEntity().Transform.Position
	fx.Emit(effects.Burst{
		Position: rl.Vector3Add(vent, rl.Vector3{Y: 0.5}),
		Velocity: rl.Vector3{Y: 5},
		Color:    steamColor,
		Size:     0.3,
		Lifetime: 1,
		Count:    8,
	})

	if !g.InColumn(player) {
		return rl.Vector3{}, false
	}

	dir := physics.HorizontalDirection(player, vent, rl.Vector3{X: 1})
	push := rl.Vector3Scale(rl.Vector3{
		X: dir.X * g.cfg.Push,
		Y: g.cfg.Lift,
		Z: dir.Z * g.cfg.Push,
	}, deltaTime)

	damage := false
	if g.Cooldown <= 0 {
		damage = true
		g.Cooldown = g.cfg.DamageCooldown
	}
	return push, damage
}
