package hazards

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"relicrun/internal/config"
	"relicrun/internal/effects"
	"relicrun/internal/engine"
	"relicrun/internal/physics"
)

type TileState uint8

const (
	TileIdle TileState = iota
	TileShaking
	TileFalling
	TileGone
)

func (s TileState) String() string {
	switch s {
	case TileShaking:
		return "shaking"
	case TileFalling:
		return "falling"
	case TileGone:
		return "gone"
	}
	return "idle"
}

// CrumblingTile shakes once stood on, drops, then disappears for good.
type CrumblingTile struct {
	engine.BaseBehavior
	cfg    config.CrumblingTile
	State  TileState
	Timer  float32
	origin rl.Vector3
}

func newCrumblingTile(e *engine.Entity, s engine.Spawn) (engine.Behavior, error) {
	scaleOr(e, rl.Vector3{X: 1, Y: 0.1, Z: 1})
	colorOr(e, rl.Color{R: 153, G: 140, B: 128, A: 255})
	return &CrumblingTile{cfg: s.Tuning.CrumblingTile, origin: e.Transform.Position}, nil
}

func (t *CrumblingTile) OnTrigger(fx effects.Sink) engine.TriggerResult {
	if t.State != TileIdle {
		return engine.TriggerResult{}
	}
	t.State = TileShaking
	t.Timer = 0
	t.origin = t.GetEntity().Transform.Position
	fx.PlayCue(effects.CueTileCrack, 0.7)
	return engine.TriggerResult{Fired: true}
}

func (t *CrumblingTile) Update(deltaTime float32) {
	if t.State == TileIdle || t.State == TileGone {
		return
	}
	e := t.GetEntity()
	t.Timer += deltaTime

	switch {
	case !reached(t.Timer, t.cfg.ShakeDuration):
		e.Transform.Position.X = t.origin.X + sin(t.Timer*20)*t.cfg.ShakeAmount
		e.Transform.Position.Z = t.origin.Z + cos(t.Timer*15)*t.cfg.ShakeAmount
	case !reached(t.Timer, t.cfg.ShakeDuration+t.cfg.FallDuration):
		t.State = TileFalling
		e.Transform.Position.Y -= t.cfg.FallSpeed * deltaTime
	default:
		t.State = TileGone
		e.Active = false
	}
}

// Touches is true when the player hovers over the tile footprint within the
// trigger height band. Flying high over a tile does not count.
func (t *CrumblingTile) Touches(player physics.Sphere) bool {
	e := t.GetEntity()
	pos := e.Transform.Position
	dy := player.Center.Y - pos.Y
	if dy <= 0 || dy >= t.cfg.TriggerHeight {
		return false
	}
	halfX := e.Transform.Scale.X/2 + player.Radius
	halfZ := e.Transform.Scale.Z/2 + player.Radius
	return abs(player.Center.X-pos.X) < halfX && abs(player.Center.Z-pos.Z) < halfZ
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
