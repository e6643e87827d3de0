package engine

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"relicrun/internal/effects"
	"relicrun/internal/physics"
)

// Behavior is the per-kind state machine attached to an entity.
type Behavior interface {
	SetEntity(e *Entity)
	GetEntity() *Entity
	Update(deltaTime float32)
	// OnTrigger is called on player contact. Calls that are no longer
	// eligible for a transition return the zero TriggerResult.
	OnTrigger(fx effects.Sink) TriggerResult
}

// TriggerResult reports the one-shot transition a trigger caused, if any.
type TriggerResult struct {
	Fired          bool
	Collected      bool
	Relic          bool
	Heal           int
	CompletesLevel bool
}

// Obstacle is implemented by solid behaviors that knock the player back on
// contact. ok is false when the behavior is currently harmless.
type Obstacle interface {
	Knockback(player rl.Vector3) (dir rl.Vector3, ok bool)
}

// ProximityTrigger is implemented by behaviors that fire from a distance
// instead of on volume contact.
type ProximityTrigger interface {
	InRange(player rl.Vector3) bool
}

// ContactTest replaces the generic volume test in the trigger pass.
type ContactTest interface {
	Touches(player physics.Sphere) bool
}

// AreaEffect is a continuous hazard applied every frame regardless of volume
// contact. push is added straight to the player position.
type AreaEffect interface {
	Affect(player rl.Vector3, deltaTime float32, fx effects.Sink) (push rl.Vector3, damage bool)
}

// Gate is a door that opens once enough collectibles are gathered.
type Gate interface {
	Required() int
}

// Armable is a trigger that only fires after Arm is called.
type Armable interface {
	Arm()
}

// BaseBehavior provides default implementations for Behavior.
type BaseBehavior struct {
	entity *Entity
}

func (b *BaseBehavior) SetEntity(e *Entity) {
	b.entity = e
}

func (b *BaseBehavior) GetEntity() *Entity {
	return b.entity
}

func (b *BaseBehavior) Update(deltaTime float32) {}

func (b *BaseBehavior) OnTrigger(fx effects.Sink) TriggerResult {
	return TriggerResult{}
}
