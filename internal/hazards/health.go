package hazards

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"relicrun/internal/config"
	"relicrun/internal/effects"
	"relicrun/internal/engine"
)

var healthColor = rl.Color{R: 255, G: 77, B: 128, A: 255}

// HealthPickup bobs above its base and restores hearts once.
type HealthPickup struct {
	engine.BaseBehavior
	cfg         config.HealthPickup
	Collected   bool
	FloatOffset float32
	base        rl.Vector3
}

func newHealthPickup(e *engine.Entity, s engine.Spawn) (engine.Behavior, error) {
	cfg := s.Tuning.HealthPickup
	colorOr(e, healthColor)
	e.SphereRadius = cfg.Radius
	return &HealthPickup{cfg: cfg, base: e.Transform.Position}, nil
}

func (h *HealthPickup) Update(deltaTime float32) {
	e := h.GetEntity()
	if h.Collected {
		e.Active = false
		return
	}

	h.FloatOffset += h.cfg.FloatSpeed * deltaTime
	e.Transform.Position.Y = h.base.Y + sin(h.FloatOffset)*h.cfg.BobHeight + h.cfg.BobOffset
	spinY(e, h.cfg.SpinSpeed, deltaTime)

	pulse := (sin(h.FloatOffset*2) + 1) * 0.5
	e.Emissive = 0.4 + pulse*0.6
}

// OnTrigger deactivates the pickup immediately and reports the heal amount.
func (h *HealthPickup) OnTrigger(fx effects.Sink) engine.TriggerResult {
	if h.Collected {
		return engine.TriggerResult{}
	}
	e := h.GetEntity()
	h.Collected = true
	e.Active = false

	fx.PlayCue(effects.CueCollectiblePickup, 0.9)
	fx.Emit(effects.Burst{
		Shape:    effects.BurstExplosion,
		Position: e.Transform.Position,
		Color:    e.Color,
		Count:    20,
	})
	return engine.TriggerResult{Fired: true, Collected: true, Heal: h.cfg.Heal}
}
