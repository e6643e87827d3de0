package engine

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"relicrun/internal/effects"
	"relicrun/internal/physics"
)

type Transform struct {
	Position rl.Vector3
	Rotation rl.Vector3 // Euler angles in degrees
	Scale    rl.Vector3
}

// Entity is a positioned object owned by a Level. Inactive entities are soft
// deleted: they stay in the level but take part in nothing.
type Entity struct {
	Name      string
	Kind      Kind
	Transform Transform
	Color     rl.Color

	// Alpha is the current render transparency; BaseAlpha is what the
	// occlusion pass restores it to every frame.
	Alpha     float32
	BaseAlpha float32
	Emissive  float32

	Active  bool
	Trigger bool

	// SphereRadius sizes the bounding sphere. Behaviors may change it, the
	// next RefreshBounds picks it up.
	SphereRadius float32

	volume   physics.Volume
	behavior Behavior
}

// NewEntity creates an active, solid entity with unit scale. The bounding
// shape is fixed for the entity's lifetime.
func NewEntity(name string, kind Kind, shape physics.Shape) *Entity {
	e := &Entity{
		Name:  name,
		Kind:  kind,
		Color: rl.White,
		Transform: Transform{
			Scale: rl.Vector3{X: 1, Y: 1, Z: 1},
		},
		Alpha:        1,
		BaseAlpha:    1,
		Active:       true,
		SphereRadius: 0.5,
	}
	e.volume.Shape = shape
	e.RefreshBounds()
	return e
}

// RefreshBounds recomputes both bounding shapes from the transform. Call it
// after every transform mutation.
func (e *Entity) RefreshBounds() {
	pos := e.Transform.Position
	e.volume.Box = physics.NewBoxFromCenter(pos, e.Transform.Scale)
	e.volume.Sphere = physics.NewSphere(pos, e.SphereRadius)
}

func (e *Entity) UsesSphere() bool {
	return e.volume.Shape == physics.ShapeSphere
}

func (e *Entity) Volume() physics.Volume {
	return e.volume
}

func (e *Entity) Box() physics.Box {
	return e.volume.Box
}

func (e *Entity) Sphere() physics.Sphere {
	return e.volume.Sphere
}

func (e *Entity) SetBehavior(b Behavior) {
	if b != nil {
		b.SetEntity(e)
	}
	e.behavior = b
}

func (e *Entity) Behavior() Behavior {
	return e.behavior
}

// Update advances the behavior one frame and refreshes bounds.
func (e *Entity) Update(deltaTime float32) {
	if !e.Active || e.behavior == nil {
		return
	}
	e.behavior.Update(deltaTime)
	e.RefreshBounds()
}

// OnTrigger forwards player contact to the behavior. Entities without a
// behavior or already inactive report nothing.
func (e *Entity) OnTrigger(fx effects.Sink) TriggerResult {
	if !e.Active || e.behavior == nil {
		return TriggerResult{}
	}
	if fx == nil {
		fx = effects.Discard
	}
	res := e.behavior.OnTrigger(fx)
	e.RefreshBounds()
	return res
}
