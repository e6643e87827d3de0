package engine

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	rl "github.com/gen2brain/raylib-go/raylib"

	"relicrun/internal/config"
	"relicrun/internal/physics"
)

// ErrUnknownKind is returned when no behavior is registered for a kind.
var ErrUnknownKind = errors.New("unknown entity kind")

// Spawn carries what a behavior factory may read while building an entity.
type Spawn struct {
	Props  map[string]any
	Tuning *config.Tuning
	Rand   *rand.Rand
}

// Traits are fixed per kind: the authoritative bounding shape and whether the
// entity joins the trigger pass instead of the solid pass.
type Traits struct {
	Shape   physics.Shape
	Trigger bool
}

// BehaviorFactory builds the behavior for a freshly created entity. The
// entity's transform is already set; the factory may adjust it. A zero
// scale left by the factory becomes unit scale.
type BehaviorFactory func(e *Entity, s Spawn) (Behavior, error)

type behaviorEntry struct {
	traits  Traits
	factory BehaviorFactory
}

// registry is filled from init functions and read-only afterwards.
var registry = map[Kind]behaviorEntry{}

// RegisterBehavior registers the factory for kind. Registering a kind twice panics.
func RegisterBehavior(kind Kind, traits Traits, factory BehaviorFactory) {
	if _, exists := registry[kind]; exists {
		panic(fmt.Sprintf("behavior for %q already registered", kind))
	}
	registry[kind] = behaviorEntry{traits: traits, factory: factory}
}

// CreateEntity builds an entity of the given kind with its registered
// behavior attached and bounds refreshed. Plain walls need no registration.
func CreateEntity(name string, kind Kind, tr Transform, s Spawn) (*Entity, error) {
	if s.Tuning == nil {
		d := config.Defaults()
		s.Tuning = &d
	}
	if s.Rand == nil {
		s.Rand = rand.New(rand.NewSource(1))
	}

	if kind == KindWall {
		e := NewEntity(name, kind, physics.ShapeBox)
		e.Transform = tr
		if e.Transform.Scale == (rl.Vector3{}) {
			e.Transform.Scale = rl.Vector3{X: 1, Y: 1, Z: 1}
		}
		e.RefreshBounds()
		return e, nil
	}

	entry, ok := registry[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}

	e := NewEntity(name, kind, entry.traits.Shape)
	e.Transform = tr
	e.Trigger = entry.traits.Trigger

	b, err := entry.factory(e, s)
	if err != nil {
		return nil, fmt.Errorf("%s %q: %w", kind, name, err)
	}
	e.SetBehavior(b)
	if e.Transform.Scale == (rl.Vector3{}) {
		e.Transform.Scale = rl.Vector3{X: 1, Y: 1, Z: 1}
	}
	e.RefreshBounds()
	return e, nil
}

// RegisteredKinds returns the registered kinds in declaration order.
func RegisteredKinds() []Kind {
	kinds := make([]Kind, 0, len(registry))
	for k := range registry {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}
