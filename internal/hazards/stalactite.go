package hazards

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"relicrun/internal/config"
	"relicrun/internal/effects"
	"relicrun/internal/engine"
	"relicrun/internal/physics"
)

type StalactiteState uint8

const (
	// StalactiteHanging counts down to a drop when Timed, otherwise waits
	// for a trigger.
	StalactiteHanging StalactiteState = iota
	StalactiteFalling
	StalactiteDespawned
)

func (s StalactiteState) String() string {
	switch s {
	case StalactiteFalling:
		return "falling"
	case StalactiteDespawned:
		return "despawned"
	}
	return "hanging"
}

// Stalactite hangs from the ceiling until its countdown runs out or the
// player comes close, then drops under constant acceleration.
type Stalactite struct {
	engine.BaseBehavior
	cfg       config.Stalactite
	State     StalactiteState
	Timed     bool
	Countdown float32
	FallSpeed float32
}

func newStalactite(e *engine.Entity, s engine.Spawn) (engine.Behavior, error) {
	cfg := s.Tuning.Stalactite
	span := cfg.MaxCountdown - cfg.MinCountdown
	def := cfg.MinCountdown + s.Rand.Float32()*span

	countdown, err := engine.PropFloat(s.Props, "countdown", def)
	if err != nil {
		return nil, err
	}
	timed, err := engine.PropBool(s.Props, "timed", true)
	if err != nil {
		return nil, err
	}

	colorOr(e, rl.Color{R: 102, G: 89, B: 77, A: 255})
	e.SphereRadius = cfg.HangingRadius
	return &Stalactite{cfg: cfg, Timed: timed, Countdown: countdown}, nil
}

func (st *Stalactite) Falling() bool {
	return st.State == StalactiteFalling
}

func (st *Stalactite) Update(deltaTime float32) {
	e := st.GetEntity()
	switch st.State {
	case StalactiteHanging:
		if !st.Timed {
			return
		}
		st.Countdown -= deltaTime
		if st.Countdown <= 0 {
			st.release()
		}
	case StalactiteFalling:
		st.FallSpeed += st.cfg.Gravity * deltaTime
		e.Transform.Position.Y -= st.FallSpeed * deltaTime
		if e.Transform.Position.Y < st.cfg.DespawnY {
			st.State = StalactiteDespawned
			e.Active = false
		}
	}
}

func (st *Stalactite) release() {
	st.State = StalactiteFalling
	st.GetEntity().SphereRadius = st.cfg.FallingRadius
}

// OnTrigger releases a hanging stalactite. Later calls do nothing.
func (st *Stalactite) OnTrigger(fx effects.Sink) engine.TriggerResult {
	if st.State != StalactiteHanging {
		return engine.TriggerResult{}
	}
	st.release()
	return engine.TriggerResult{Fired: true}
}

// InRange is true while hanging and the player is under it in the XZ plane.
func (st *Stalactite) InRange(player rl.Vector3) bool {
	if st.State != StalactiteHanging {
		return false
	}
	return physics.HorizontalDistance(player, st.GetEntity().Transform.Position) < st.cfg.Proximity
}

// Knockback only applies mid-fall, with an upward bias.
func (st *Stalactite) Knockback(player rl.Vector3) (rl.Vector3, bool) {
	if st.State != StalactiteFalling {
		return rl.Vector3{}, false
	}
	dir := physics.NormalizeOr(rl.Vector3Subtract(player, st.GetEntity().Transform.Position), worldUp)
	dir.Y = st.cfg.KnockbackLift
	return physics.NormalizeOr(dir, worldUp), true
}
