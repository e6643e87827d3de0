package hazards

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"relicrun/internal/config"
	"relicrun/internal/effects"
	"relicrun/internal/engine"
)

// Collectible floats and spins until picked up, then spins faster while
// shrinking to nothing.
type Collectible struct {
	engine.BaseBehavior
	cfg          config.Collectible
	Relic        bool
	Cue          effects.Cue
	Collected    bool
	Elapsed      float32 // time since collection
	FloatOffset  float32
	initialScale rl.Vector3
}

func newCollectible(e *engine.Entity, s engine.Spawn) (engine.Behavior, error) {
	relic, err := engine.PropBool(s.Props, "relic", false)
	if err != nil {
		return nil, err
	}
	cueName, err := engine.PropString(s.Props, "cue", "coin")
	if err != nil {
		return nil, err
	}

	c := &Collectible{
		cfg:         s.Tuning.Collectible,
		Relic:       relic,
		FloatOffset: s.Rand.Float32() * 3.14,
	}
	switch cueName {
	case "coin":
		c.Cue = effects.CueCollectiblePickup
	case "gem":
		c.Cue = effects.CueGemPickup
	default:
		return nil, fmt.Errorf("prop cue: unknown cue %q", cueName)
	}

	scaleOr(e, rl.Vector3{X: 1, Y: 1, Z: 1})
	colorOr(e, rl.Gold)
	e.SphereRadius = c.cfg.RadiusScale * e.Transform.Scale.X
	return c, nil
}

// Progress is the shrink fraction in [0, 1].
func (c *Collectible) Progress() float32 {
	if !c.Collected {
		return 0
	}
	if c.shrunk() {
		return 1
	}
	return c.Elapsed / c.cfg.ShrinkDuration
}

func (c *Collectible) shrunk() bool {
	return reached(c.Elapsed, c.cfg.ShrinkDuration)
}

func (c *Collectible) Update(deltaTime float32) {
	e := c.GetEntity()

	if c.Collected {
		c.Elapsed += deltaTime
		done := c.shrunk()
		remaining := 1 - c.Progress()
		spinY(e, c.cfg.SpinSpeed*c.cfg.ShrinkSpin, deltaTime)
		e.Transform.Scale = rl.Vector3Scale(c.initialScale, remaining)
		e.SphereRadius = c.cfg.RadiusScale * e.Transform.Scale.X
		if done {
			e.Active = false
		}
		return
	}

	c.FloatOffset += c.cfg.FloatSpeed * deltaTime
	e.Transform.Position.Y += sin(c.FloatOffset) * c.cfg.FloatAmount * deltaTime
	spinY(e, c.cfg.SpinSpeed, deltaTime)
	e.SphereRadius = c.cfg.RadiusScale * e.Transform.Scale.X
}

// OnTrigger collects on first contact. Already collected pickups ignore it.
func (c *Collectible) OnTrigger(fx effects.Sink) engine.TriggerResult {
	if c.Collected {
		return engine.TriggerResult{}
	}
	e := c.GetEntity()
	c.Collected = true
	c.Elapsed = 0
	c.initialScale = e.Transform.Scale

	fx.PlayCue(c.Cue, 0.9)
	fx.Emit(effects.Burst{
		Shape:    effects.BurstExplosion,
		Position: e.Transform.Position,
		Color:    e.Color,
		Count:    20,
	})
	return engine.TriggerResult{Fired: true, Collected: true, Relic: c.Relic}
}
