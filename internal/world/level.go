package world

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"relicrun/internal/config"
	"relicrun/internal/effects"
	"relicrun/internal/engine"
	"relicrun/internal/hazards"
	"relicrun/internal/physics"
)

// Body is the player as the level sees it. The level only moves it through
// Displace and the reaction methods.
type Body interface {
	Position() rl.Vector3
	Sphere() physics.Sphere
	Displace(d rl.Vector3)
	OnWallCollision(normal rl.Vector3, fx effects.Sink)
	OnObstacleHit(dir rl.Vector3, fx effects.Sink)
	TakeDamage() (died bool)
	Heal(n int)
}

// Frame summarizes what one Update did.
type Frame struct {
	WallContacts int
	ObstacleHits int
	Triggers     int
	Damaged      bool
	Died         bool
	Completed    bool
}

var pedestalLightColor = rl.Color{R: 230, G: 51, B: 51, A: 255}

// Level owns a scene and runs the collision and trigger passes against one
// player per frame.
type Level struct {
	Name        string
	Scene       *engine.Scene
	Lights      []*Light
	PlayerStart rl.Vector3
	Exit        *physics.Box

	// Collected counts coins toward door unlocks; relics are counted apart.
	Collected int
	Relics    int
	Complete  bool

	cfg config.Collision
	log *slog.Logger
}

func NewLevel(name string, cfg config.Collision, log *slog.Logger) *Level {
	if log == nil {
		log = slog.Default()
	}
	return &Level{
		Name:  name,
		Scene: engine.NewScene(name),
		cfg:   cfg,
		log:   log.With("level", name),
	}
}

func (l *Level) AddLight(light *Light) {
	l.Lights = append(l.Lights, light)
}

// Update advances one frame: behaviors, lights, the solid pass, proximity
// and trigger passes, door gates, then continuous hazard effects.
func (l *Level) Update(deltaTime float32, p Body, fx effects.Sink) Frame {
	if fx == nil {
		fx = effects.Discard
	}
	var f Frame

	l.Scene.Update(deltaTime)
	for _, light := range l.Lights {
		light.Update(deltaTime)
	}

	l.solidPass(p, fx, &f)
	l.proximityPass(p, fx, &f)
	l.triggerPass(p, fx, &f)
	l.gatePass(fx)
	l.areaPass(deltaTime, p, fx, &f)

	if l.Exit != nil && !l.Complete && l.Exit.Contains(p.Position()) {
		l.Complete = true
		fx.PlayCue(effects.CueLevelComplete, 1)
		l.log.Debug("exit reached")
	}
	f.Completed = l.Complete
	return f
}

func (l *Level) solidPass(p Body, fx effects.Sink, f *Frame) {
	for _, wall := range l.Scene.Walls {
		if !wall.Active || wall.Trigger {
			continue
		}
		// Re-read each time, earlier walls may have moved the player
		c, ok := physics.ResolvePushOut(p.Sphere(), wall.Box())
		if !ok {
			continue
		}
		p.Displace(c.Displacement(l.cfg.SeparationEpsilon))
		p.OnWallCollision(c.Normal, fx)
		f.WallContacts++
	}

	for _, obj := range l.Scene.Objects {
		if !obj.Active || obj.Trigger {
			continue
		}
		if !obj.Volume().IntersectsSphere(p.Sphere()) {
			continue
		}
		if ob, ok := obj.Behavior().(engine.Obstacle); ok {
			if dir, hit := ob.Knockback(p.Position()); hit {
				p.OnObstacleHit(dir, fx)
				f.ObstacleHits++
			}
		}
		// Impact counts as a trigger for kinds that care, e.g. a hanging stalactite
		l.apply(obj, obj.OnTrigger(fx), p, f)
	}
}

func (l *Level) proximityPass(p Body, fx effects.Sink, f *Frame) {
	for _, obj := range l.Scene.Objects {
		if !obj.Active {
			continue
		}
		pt, ok := obj.Behavior().(engine.ProximityTrigger)
		if !ok || !pt.InRange(p.Position()) {
			continue
		}
		l.apply(obj, obj.OnTrigger(fx), p, f)
	}
}

func (l *Level) triggerPass(p Body, fx effects.Sink, f *Frame) {
	sphere := p.Sphere()
	for _, obj := range l.Scene.Objects {
		if !obj.Active || !obj.Trigger {
			continue
		}
		var touched bool
		if ct, ok := obj.Behavior().(engine.ContactTest); ok {
			touched = ct.Touches(sphere)
		} else {
			touched = obj.Volume().IntersectsSphere(sphere)
		}
		if touched {
			l.apply(obj, obj.OnTrigger(fx), p, f)
		}
	}
}

func (l *Level) apply(e *engine.Entity, res engine.TriggerResult, p Body, f *Frame) {
	if !res.Fired {
		return
	}
	f.Triggers++
	l.log.Debug("triggered", "entity", e.Name, "kind", e.Kind)

	if res.Collected {
		if res.Relic {
			l.Relics++
			l.armAll()
		} else {
			l.Collected++
		}
	}
	if res.Heal > 0 {
		p.Heal(res.Heal)
	}
	if res.CompletesLevel {
		l.Complete = true
		l.AddLight(NewLight(rl.Vector3Add(e.Transform.Position, rl.Vector3{Y: 1}), pedestalLightColor, 20, 3, 0.5))
		l.log.Debug("level complete", "entity", e.Name)
	}
}

func (l *Level) armAll() {
	for e := range l.Scene.All() {
		if a, ok := e.Behavior().(engine.Armable); ok {
			a.Arm()
		}
	}
}

// gatePass opens every door whose coin requirement is met.
func (l *Level) gatePass(fx effects.Sink) {
	for _, wall := range l.Scene.Walls {
		if !wall.Active {
			continue
		}
		g, ok := wall.Behavior().(engine.Gate)
		if !ok || l.Collected < g.Required() {
			continue
		}
		if wall.OnTrigger(fx).Fired {
			l.log.Debug("door unlocked", "entity", wall.Name, "collected", l.Collected)
		}
	}
}

func (l *Level) areaPass(deltaTime float32, p Body, fx effects.Sink, f *Frame) {
	for _, obj := range l.Scene.Objects {
		if !obj.Active {
			continue
		}
		area, ok := obj.Behavior().(engine.AreaEffect)
		if !ok {
			continue
		}
		push, damage := area.Affect(p.Position(), deltaTime, fx)
		if push != (rl.Vector3{}) {
			p.Displace(push)
		}
		if damage {
			f.Damaged = true
			if p.TakeDamage() {
				f.Died = true
			}
		}
	}
}

// Occlude marks walls between target and the camera as see-through for this
// frame and returns how many were marked. Walls within the configured margin
// of either end are left alone.
func (l *Level) Occlude(cameraPos, target rl.Vector3) int {
	l.ResetAlpha()

	toCamera := rl.Vector3Subtract(cameraPos, target)
	dist := rl.Vector3Length(toCamera)
	if dist <= 2*l.cfg.OcclusionMargin {
		return 0
	}
	dir := rl.Vector3Scale(toCamera, 1/dist)

	n := 0
	for _, wall := range l.Scene.Walls {
		if !wall.Active {
			continue
		}
		ok, t := physics.RayIntersectsBox(target, dir, wall.Box())
		if ok && t > l.cfg.OcclusionMargin && t < dist-l.cfg.OcclusionMargin {
			wall.Alpha = l.cfg.OccludedAlpha
			n++
		}
	}
	return n
}

// ResetAlpha restores every wall to its base transparency.
func (l *Level) ResetAlpha() {
	for _, wall := range l.Scene.Walls {
		wall.Alpha = wall.BaseAlpha
	}
}

// Remaining counts coins the player has not picked up yet.
func (l *Level) Remaining() int {
	n := 0
	for _, e := range l.Scene.FindByKind(engine.KindCollectible) {
		if c, ok := e.Behavior().(*hazards.Collectible); ok && !c.Collected && !c.Relic {
			n++
		}
	}
	return n
}
