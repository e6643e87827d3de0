package hazards

import (
	"math/rand"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"

	"relicrun/internal/config"
	"relicrun/internal/effects"
	"relicrun/internal/engine"
	"relicrun/internal/physics"
)

func spawn(t *testing.T, kind engine.Kind, pos rl.Vector3, props map[string]any) *engine.Entity {
	t.Helper()
	tuning := config.Defaults()
	e, err := engine.CreateEntity(kind.String(), kind, engine.Transform{Position: pos}, engine.Spawn{
		Props:  props,
		Tuning: &tuning,
		Rand:   rand.New(rand.NewSource(42)),
	})
	if err != nil {
		t.Fatalf("CreateEntity(%s) failed: %v", kind, err)
	}
	return e
}

func step(e *engine.Entity, dt float32, n int) {
	for i := 0; i < n; i++ {
		e.Update(dt)
	}
}

// frames is how many steps of dt add up to d.
func frames(d, dt float32) int {
	return int(d/dt + 0.5)
}

var frameRates = []float32{0.1, 0.05, 1.0 / 60, 0.01}

func TestEveryKindRegistered(t *testing.T) {
	kinds := engine.RegisteredKinds()
	if len(kinds) != 8 {
		t.Errorf("Expected 8 registered kinds, got %d: %v", len(kinds), kinds)
	}
}

func TestTraitsPerKind(t *testing.T) {
	tests := []struct {
		kind    engine.Kind
		sphere  bool
		trigger bool
	}{
		{engine.KindPendulum, false, false},
		{engine.KindCrumblingTile, false, true},
		{engine.KindStalactite, true, false},
		{engine.KindGeyser, false, true},
		{engine.KindCollectible, true, true},
		{engine.KindHealthPickup, true, true},
		{engine.KindPedestal, false, true},
	}
	for _, tt := range tests {
		e := spawn(t, tt.kind, rl.Vector3{}, nil)
		if e.UsesSphere() != tt.sphere || e.Trigger != tt.trigger {
			t.Errorf("%s: expected sphere=%v trigger=%v, got %v/%v", tt.kind, tt.sphere, tt.trigger, e.UsesSphere(), e.Trigger)
		}
	}
}

func TestPendulumArc(t *testing.T) {
	pivot := rl.Vector3{X: 0, Y: 8, Z: 3}
	e := spawn(t, engine.KindPendulum, pivot, map[string]any{"length": 5})
	p := e.Behavior().(*Pendulum)

	if e.Transform.Position != (rl.Vector3{X: 0, Y: 3, Z: 3}) {
		t.Errorf("Expected rest position under pivot, got %v", e.Transform.Position)
	}

	for i := 0; i < 200; i++ {
		e.Update(0.016)
		d := rl.Vector3Distance(e.Transform.Position, pivot)
		if d < 4.999 || d > 5.001 {
			t.Fatalf("Blade left the arc: distance %f", d)
		}
		if p.Angle > 45*rl.Deg2rad+1e-5 || p.Angle < -45*rl.Deg2rad-1e-5 {
			t.Fatalf("Angle exceeded max: %f", p.Angle)
		}
		if rl.Vector3Distance(e.Box().Center(), e.Transform.Position) > 1e-4 {
			t.Fatal("Bounds not refreshed after swing")
		}
	}
}

func TestPendulumKnockback(t *testing.T) {
	e := spawn(t, engine.KindPendulum, rl.Vector3{Y: 8}, nil)
	p := e.Behavior().(*Pendulum)

	player := rl.Vector3Add(e.Transform.Position, rl.Vector3{X: 2})
	dir, ok := p.Knockback(player)
	if !ok {
		t.Fatal("Pendulum should always knock back")
	}
	if dir != (rl.Vector3{X: 1}) {
		t.Errorf("Expected knockback (1,0,0), got %v", dir)
	}
}

func TestCrumblingTileTimeline(t *testing.T) {
	e := spawn(t, engine.KindCrumblingTile, rl.Vector3{Y: 0.1}, nil)
	tile := e.Behavior().(*CrumblingTile)
	rec := &effects.Recorder{}

	step(e, 0.5, 4)
	if tile.State != TileIdle || e.Transform.Position.Y != 0.1 {
		t.Fatal("Untriggered tile should stay idle")
	}

	if res := e.OnTrigger(rec); !res.Fired {
		t.Fatal("First trigger should fire")
	}
	if rec.Count(effects.CueTileCrack) != 1 {
		t.Errorf("Expected one crack cue, got %d", rec.Count(effects.CueTileCrack))
	}

	step(e, 0.25, 7) // 1.75s
	if tile.State != TileShaking {
		t.Errorf("Expected shaking at 1.75s, got %s", tile.State)
	}
	if e.Transform.Position.Y != 0.1 {
		t.Error("Shaking must not move the tile vertically")
	}

	step(e, 0.25, 1) // 2.0s
	if tile.State != TileFalling {
		t.Errorf("Expected falling at 2.0s, got %s", tile.State)
	}
	if e.Transform.Position.Y >= 0.1 {
		t.Error("Falling tile should drop")
	}

	step(e, 0.25, 2) // 2.5s
	if tile.State != TileGone || e.Active {
		t.Errorf("Expected gone and inactive, got %s active=%v", tile.State, e.Active)
	}
}

func TestCrumblingTileTimelineAtFrameRates(t *testing.T) {
	for _, dt := range frameRates {
		e := spawn(t, engine.KindCrumblingTile, rl.Vector3{Y: 0.1}, nil)
		tile := e.Behavior().(*CrumblingTile)
		e.OnTrigger(effects.Discard)

		shake := frames(2.0, dt)
		step(e, dt, shake-1)
		if tile.State != TileShaking {
			t.Errorf("dt=%g: expected shaking just before 2.0s, got %s", dt, tile.State)
		}
		step(e, dt, 1)
		if tile.State != TileFalling {
			t.Errorf("dt=%g: expected falling at 2.0s, got %s timer=%f", dt, tile.State, tile.Timer)
		}
		step(e, dt, frames(2.3, dt)-shake)
		if tile.State != TileGone || e.Active {
			t.Errorf("dt=%g: expected gone at 2.3s, got %s active=%v", dt, tile.State, e.Active)
		}
	}
}

func TestCrumblingTileTriggerIdempotent(t *testing.T) {
	e := spawn(t, engine.KindCrumblingTile, rl.Vector3{}, nil)
	tile := e.Behavior().(*CrumblingTile)
	rec := &effects.Recorder{}

	e.OnTrigger(rec)
	step(e, 0.5, 2)
	if res := e.OnTrigger(rec); res.Fired {
		t.Error("Second trigger while shaking must not fire")
	}
	if tile.Timer != 1 {
		t.Errorf("Shake timer was reset: expected 1, got %f", tile.Timer)
	}

	step(e, 0.5, 2) // falling
	e.OnTrigger(rec)
	if rec.Count(effects.CueTileCrack) != 1 {
		t.Errorf("Expected a single crack cue, got %d", rec.Count(effects.CueTileCrack))
	}
}

func TestCrumblingTileFootprint(t *testing.T) {
	e := spawn(t, engine.KindCrumblingTile, rl.Vector3{X: 0, Y: 0.1, Z: 0}, nil)
	tile := e.Behavior().(*CrumblingTile)

	tests := []struct {
		name string
		pos  rl.Vector3
		want bool
	}{
		{"standing on top", rl.Vector3{Y: 1}, true},
		{"edge within radius", rl.Vector3{X: 1.05, Y: 1}, true},
		{"beside the tile", rl.Vector3{X: 1.2, Y: 1}, false},
		{"flying over", rl.Vector3{Y: 2.5}, false},
		{"below", rl.Vector3{Y: -1}, false},
	}
	for _, tt := range tests {
		if got := tile.Touches(physics.NewSphere(tt.pos, 0.6)); got != tt.want {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, got)
		}
	}
}

func TestStalactiteTriggeredFall(t *testing.T) {
	e := spawn(t, engine.KindStalactite, rl.Vector3{Y: 13}, map[string]any{"countdown": 0, "timed": false})
	st := e.Behavior().(*Stalactite)

	if res := e.OnTrigger(effects.Discard); !res.Fired {
		t.Fatal("Trigger should release a hanging stalactite")
	}
	e.Update(0.1)

	if !st.Falling() {
		t.Error("Expected falling after trigger")
	}
	if e.Transform.Position.Y >= 13 {
		t.Errorf("Expected y < 13 after update, got %f", e.Transform.Position.Y)
	}
	if e.Sphere().Radius != 0.6 {
		t.Errorf("Expected falling radius 0.6, got %f", e.Sphere().Radius)
	}
	if res := e.OnTrigger(effects.Discard); res.Fired {
		t.Error("Trigger while falling must be a no-op")
	}
}

func TestStalactiteCountdownAndDespawn(t *testing.T) {
	e := spawn(t, engine.KindStalactite, rl.Vector3{Y: 10}, map[string]any{"countdown": 1})
	st := e.Behavior().(*Stalactite)

	step(e, 0.25, 3)
	if st.State != StalactiteHanging {
		t.Fatal("Should still hang before the countdown ends")
	}
	if e.Sphere().Radius != 0.8 {
		t.Errorf("Expected hanging radius 0.8, got %f", e.Sphere().Radius)
	}
	step(e, 0.25, 1)
	if !st.Falling() {
		t.Fatal("Countdown should release the stalactite")
	}

	for i := 0; i < 500 && e.Active; i++ {
		e.Update(0.05)
	}
	if e.Active || st.State != StalactiteDespawned {
		t.Error("Stalactite should despawn below the floor threshold")
	}
}

func TestStalactiteRandomCountdownInRange(t *testing.T) {
	e := spawn(t, engine.KindStalactite, rl.Vector3{Y: 10}, nil)
	st := e.Behavior().(*Stalactite)
	if st.Countdown < 2 || st.Countdown > 8 {
		t.Errorf("Expected countdown in [2,8], got %f", st.Countdown)
	}
}

func TestStalactiteProximityAndKnockback(t *testing.T) {
	e := spawn(t, engine.KindStalactite, rl.Vector3{Y: 10}, map[string]any{"timed": false})
	st := e.Behavior().(*Stalactite)

	if !st.InRange(rl.Vector3{X: 1.5, Y: 1}) {
		t.Error("Player 1.5 units away horizontally should be in range")
	}
	if st.InRange(rl.Vector3{X: 2.5, Y: 1}) {
		t.Error("Player 2.5 units away should be out of range")
	}
	if _, ok := st.Knockback(rl.Vector3{X: 1}); ok {
		t.Error("Hanging stalactite should not knock back")
	}

	e.OnTrigger(effects.Discard)
	dir, ok := st.Knockback(rl.Vector3{X: 1, Y: 10})
	if !ok {
		t.Fatal("Falling stalactite should knock back")
	}
	if dir.Y <= 0 {
		t.Errorf("Expected upward bias, got %v", dir)
	}
	if l := rl.Vector3Length(dir); l < 0.999 || l > 1.001 {
		t.Errorf("Expected unit knockback, got length %f", l)
	}
	if st.InRange(rl.Vector3{}) {
		t.Error("Falling stalactite is no longer a proximity trigger")
	}
}

func TestGeyserSchedule(t *testing.T) {
	e := spawn(t, engine.KindGeyser, rl.Vector3{}, map[string]any{"interval": 2.5, "duration": 2.0})
	g := e.Behavior().(*Geyser)

	step(e, 0.5, 4)
	if g.Erupting {
		t.Fatal("Should be dormant before the interval")
	}
	step(e, 0.5, 1)
	if !g.Erupting {
		t.Fatal("Expected eruption after 2.5s")
	}
	step(e, 0.5, 4)
	if g.Erupting {
		t.Error("Expected dormant after a further 2.0s")
	}
	if !e.Active {
		t.Error("Geyser never deactivates")
	}
	if res := e.OnTrigger(effects.Discard); res.Fired {
		t.Error("Geyser trigger should be a no-op")
	}
}

func TestGeyserScheduleAtFrameRates(t *testing.T) {
	for _, dt := range frameRates {
		e := spawn(t, engine.KindGeyser, rl.Vector3{}, map[string]any{"interval": 2.5, "duration": 2.0})
		g := e.Behavior().(*Geyser)
		dormant, erupting := frames(2.5, dt), frames(2.0, dt)

		for cycle := 0; cycle < 3; cycle++ {
			step(e, dt, dormant-1)
			if g.Erupting {
				t.Fatalf("dt=%g cycle %d: erupted a frame early", dt, cycle)
			}
			step(e, dt, 1)
			if !g.Erupting {
				t.Fatalf("dt=%g cycle %d: expected eruption after 2.5s, timer=%f", dt, cycle, g.Timer)
			}
			step(e, dt, erupting-1)
			if !g.Erupting {
				t.Fatalf("dt=%g cycle %d: stopped a frame early", dt, cycle)
			}
			step(e, dt, 1)
			if g.Erupting {
				t.Fatalf("dt=%g cycle %d: expected dormant after a further 2.0s, timer=%f", dt, cycle, g.Timer)
			}
		}
	}
}

func TestGeyserCarriesOvershoot(t *testing.T) {
	e := spawn(t, engine.KindGeyser, rl.Vector3{}, map[string]any{"interval": 1, "duration": 1})
	g := e.Behavior().(*Geyser)

	// 0.3s frames cross 1s, 2s and 3s on frames 4, 7 and 10.
	var toggles []int
	was := false
	for i := 1; i <= 10; i++ {
		e.Update(0.3)
		if g.Erupting != was {
			toggles = append(toggles, i)
			was = g.Erupting
		}
	}
	want := []int{4, 7, 10}
	if len(toggles) != len(want) {
		t.Fatalf("Expected toggles on frames %v, got %v", want, toggles)
	}
	for i := range want {
		if toggles[i] != want[i] {
			t.Errorf("Expected toggles on frames %v, got %v", want, toggles)
			break
		}
	}
}

func TestGeyserColumnPushAndCooldown(t *testing.T) {
	e := spawn(t, engine.KindGeyser, rl.Vector3{}, nil)
	g := e.Behavior().(*Geyser)
	rec := &effects.Recorder{}

	player := rl.Vector3{X: 0.5, Y: 1}
	if push, dmg := g.Affect(player, 0.1, rec); push != (rl.Vector3{}) || dmg || len(rec.Bursts) != 0 {
		t.Fatal("Dormant geyser should have no effect")
	}

	step(e, 0.5, 5)
	push, dmg := g.Affect(player, 0.1, rec)
	if !dmg {
		t.Error("First frame in the column should damage")
	}
	if push.Y <= 0 || push.X <= 0 || push.Z != 0 {
		t.Errorf("Expected up and outward push along +X, got %v", push)
	}
	if len(rec.Bursts) != 1 {
		t.Errorf("Expected a steam burst, got %d", len(rec.Bursts))
	}

	if _, dmg := g.Affect(player, 0.1, rec); dmg {
		t.Error("Damage should be gated by the cooldown")
	}

	e.Update(0.5)
	e.Update(0.5)
	if _, dmg := g.Affect(player, 0.1, rec); !dmg {
		t.Error("Damage should resume after the cooldown")
	}
}

func TestGeyserCenteredDefaultsDirection(t *testing.T) {
	e := spawn(t, engine.KindGeyser, rl.Vector3{}, nil)
	g := e.Behavior().(*Geyser)
	step(e, 0.5, 5)

	push, _ := g.Affect(rl.Vector3{Y: 1}, 1, effects.Discard)
	if push.X != 8 || push.Z != 0 || push.Y != 15 {
		t.Errorf("Expected default push (8,15,0), got %v", push)
	}
}

func TestGeyserColumnBounds(t *testing.T) {
	e := spawn(t, engine.KindGeyser, rl.Vector3{}, nil)
	g := e.Behavior().(*Geyser)
	step(e, 0.5, 5)

	if g.InColumn(rl.Vector3{X: 2, Y: 1}) {
		t.Error("Outside column radius")
	}
	if g.InColumn(rl.Vector3{Y: 6}) {
		t.Error("Above column height")
	}
	if g.InColumn(rl.Vector3{Y: -0.5}) {
		t.Error("Below vent")
	}
}

func TestCollectibleShrinksToZero(t *testing.T) {
	e := spawn(t, engine.KindCollectible, rl.Vector3{Y: 1}, nil)
	c := e.Behavior().(*Collectible)
	rec := &effects.Recorder{}

	res := e.OnTrigger(rec)
	if !res.Fired || !res.Collected {
		t.Fatalf("Expected collection, got %+v", res)
	}
	if rec.Count(effects.CueCollectiblePickup) != 1 || len(rec.Bursts) != 1 {
		t.Error("Expected pickup cue and burst")
	}

	prev := e.Transform.Scale.X
	steps := 0
	for e.Active {
		e.Update(0.05)
		steps++
		if e.Transform.Scale.X > prev {
			t.Fatalf("Scale grew from %f to %f", prev, e.Transform.Scale.X)
		}
		prev = e.Transform.Scale.X
		if steps > 10 {
			t.Fatal("Collectible never finished shrinking")
		}
	}

	if steps != 5 {
		t.Errorf("Expected shrink to end after 0.25s (5 frames), took %d", steps)
	}
	if e.Transform.Scale != (rl.Vector3{}) {
		t.Errorf("Expected scale exactly zero, got %v", e.Transform.Scale)
	}
	if c.Progress() != 1 {
		t.Errorf("Expected progress 1, got %f", c.Progress())
	}
}

func TestCollectibleRecollectIsNoop(t *testing.T) {
	e := spawn(t, engine.KindCollectible, rl.Vector3{}, map[string]any{"relic": true, "cue": "gem"})
	c := e.Behavior().(*Collectible)
	rec := &effects.Recorder{}

	if res := e.OnTrigger(rec); !res.Relic {
		t.Error("Expected relic flag on collection")
	}
	e.Update(0.1)
	elapsed := c.Elapsed

	if res := c.OnTrigger(rec); res.Fired {
		t.Error("Second collect must not fire")
	}
	if c.Elapsed != elapsed {
		t.Error("Second collect reset the animation")
	}
	if rec.Count(effects.CueGemPickup) != 1 {
		t.Errorf("Expected one gem cue, got %d", rec.Count(effects.CueGemPickup))
	}
}

func TestCollectibleRejectsUnknownCue(t *testing.T) {
	tuning := config.Defaults()
	_, err := engine.CreateEntity("x", engine.KindCollectible, engine.Transform{}, engine.Spawn{
		Props:  map[string]any{"cue": "trumpet"},
		Tuning: &tuning,
	})
	if err == nil {
		t.Error("Expected error for unknown cue")
	}
}

func TestCollectibleFloatsAndSpins(t *testing.T) {
	e := spawn(t, engine.KindCollectible, rl.Vector3{Y: 1}, nil)
	step(e, 0.1, 10)

	if e.Transform.Rotation.Y == 0 {
		t.Error("Idle collectible should spin")
	}
	if e.Sphere().Radius != 1.2 {
		t.Errorf("Expected radius 1.2, got %f", e.Sphere().Radius)
	}
}

func TestHealthPickupHealsOnce(t *testing.T) {
	e := spawn(t, engine.KindHealthPickup, rl.Vector3{Y: 1}, nil)
	rec := &effects.Recorder{}

	step(e, 0.1, 3)
	if e.Emissive < 0.4 || e.Emissive > 1 {
		t.Errorf("Expected emissive in [0.4,1], got %f", e.Emissive)
	}

	res := e.OnTrigger(rec)
	if res.Heal != 1 || !res.Fired {
		t.Errorf("Expected heal 1, got %+v", res)
	}
	if e.Active {
		t.Error("Health pickup should deactivate immediately")
	}

	h := e.Behavior().(*HealthPickup)
	if res := h.OnTrigger(rec); res.Heal != 0 {
		t.Error("Second pickup must not heal")
	}
}

func TestDoorOpensAndDeactivates(t *testing.T) {
	e := spawn(t, engine.KindDoor, rl.Vector3{Y: 2.5}, map[string]any{"unlock": 3})
	e.Transform.Scale = rl.Vector3{X: 3, Y: 5, Z: 0.3}
	d := e.Behavior().(*Door)
	rec := &effects.Recorder{}

	if d.Required() != 3 || d.State != DoorLocked {
		t.Fatalf("Expected locked door requiring 3, got %s/%d", d.State, d.Required())
	}

	e.OnTrigger(rec)
	e.OnTrigger(rec)
	if rec.Count(effects.CueDoorOpen) != 1 {
		t.Errorf("Expected one door cue, got %d", rec.Count(effects.CueDoorOpen))
	}

	step(e, 0.5, 1)
	if d.State != DoorOpening || e.Transform.Position.Y <= 2.5 {
		t.Errorf("Expected door rising, got %s at y=%f", d.State, e.Transform.Position.Y)
	}
	if diff := e.Box().Center().Y - e.Transform.Position.Y; diff > 1e-4 || diff < -1e-4 {
		t.Error("Door bounds not refreshed while opening")
	}

	step(e, 0.5, 2)
	if d.State != DoorOpen || e.Active {
		t.Errorf("Expected open and inactive, got %s active=%v", d.State, e.Active)
	}
	if e.Transform.Position.Y != 7.5 {
		t.Errorf("Expected door raised by its height to 7.5, got %f", e.Transform.Position.Y)
	}
}

func TestDoorOpensAtFrameRates(t *testing.T) {
	for _, dt := range frameRates {
		e := spawn(t, engine.KindDoor, rl.Vector3{Y: 2}, map[string]any{"unlock": 1})
		e.Transform.Scale = rl.Vector3{X: 4, Y: 4, Z: 1}
		d := e.Behavior().(*Door)
		e.OnTrigger(effects.Discard)

		open := frames(1.5, dt)
		step(e, dt, open-1)
		if d.State != DoorOpening {
			t.Errorf("dt=%g: expected opening just before 1.5s, got %s", dt, d.State)
		}
		step(e, dt, 1)
		if d.State != DoorOpen || e.Active {
			t.Errorf("dt=%g: expected open at 1.5s, got %s timer=%f", dt, d.State, d.Timer)
		}
		if e.Transform.Position.Y != 6 {
			t.Errorf("dt=%g: expected door raised to 6, got %f", dt, e.Transform.Position.Y)
		}
	}
}

func TestDoorWithoutRequirementStartsOpen(t *testing.T) {
	e := spawn(t, engine.KindDoor, rl.Vector3{}, nil)
	if e.Active || e.Behavior().(*Door).State != DoorOpen {
		t.Error("Door with unlock 0 should start open")
	}
}

func TestPedestalNeedsArming(t *testing.T) {
	e := spawn(t, engine.KindPedestal, rl.Vector3{}, nil)
	p := e.Behavior().(*Pedestal)
	rec := &effects.Recorder{}

	if res := e.OnTrigger(rec); res.Fired {
		t.Error("Unarmed pedestal must not fire")
	}
	p.Arm()
	if res := e.OnTrigger(rec); !res.CompletesLevel {
		t.Error("Armed pedestal should complete the level")
	}
	if res := e.OnTrigger(rec); res.Fired {
		t.Error("Pedestal fires only once")
	}
	if rec.Count(effects.CueLevelComplete) != 1 {
		t.Errorf("Expected one completion cue, got %d", rec.Count(effects.CueLevelComplete))
	}
}
