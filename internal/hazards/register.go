// Package hazards implements the per-kind state machines attached to level
// entities. Importing it registers every kind with the engine.
package hazards

import (
	"relicrun/internal/engine"
	"relicrun/internal/physics"
)

func init() {
	engine.RegisterBehavior(engine.KindPendulum, engine.Traits{Shape: physics.ShapeBox}, newPendulum)
	engine.RegisterBehavior(engine.KindCrumblingTile, engine.Traits{Shape: physics.ShapeBox, Trigger: true}, newCrumblingTile)
	engine.RegisterBehavior(engine.KindStalactite, engine.Traits{Shape: physics.ShapeSphere}, newStalactite)
	engine.RegisterBehavior(engine.KindGeyser, engine.Traits{Shape: physics.ShapeBox, Trigger: true}, newGeyser)
	engine.RegisterBehavior(engine.KindCollectible, engine.Traits{Shape: physics.ShapeSphere, Trigger: true}, newCollectible)
	engine.RegisterBehavior(engine.KindHealthPickup, engine.Traits{Shape: physics.ShapeSphere, Trigger: true}, newHealthPickup)
	engine.RegisterBehavior(engine.KindDoor, engine.Traits{Shape: physics.ShapeBox}, newDoor)
	engine.RegisterBehavior(engine.KindPedestal, engine.Traits{Shape: physics.ShapeBox, Trigger: true}, newPedestal)
}
