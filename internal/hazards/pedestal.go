package hazards

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"relicrun/internal/effects"
	"relicrun/internal/engine"
)

// Pedestal completes the level when the player brings the relic to it.
type Pedestal struct {
	engine.BaseBehavior
	Armed  bool
	Placed bool
}

func newPedestal(e *engine.Entity, s engine.Spawn) (engine.Behavior, error) {
	scaleOr(e, rl.Vector3{X: 1.5, Y: 1.2, Z: 1.5})
	colorOr(e, rl.Color{R: 128, G: 120, B: 110, A: 255})
	return &Pedestal{}, nil
}

// Arm is called once the relic has been collected.
func (p *Pedestal) Arm() {
	p.Armed = true
}

func (p *Pedestal) OnTrigger(fx effects.Sink) engine.TriggerResult {
	if !p.Armed || p.Placed {
		return engine.TriggerResult{}
	}
	p.Placed = true
	p.GetEntity().Emissive = 1
	fx.PlayCue(effects.CueLevelComplete, 1)
	return engine.TriggerResult{Fired: true, CompletesLevel: true}
}
