package hazards

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"relicrun/internal/config"
	"relicrun/internal/effects"
	"relicrun/internal/engine"
)

type DoorState uint8

const (
	DoorLocked DoorState = iota
	DoorOpening
	DoorOpen
)

func (s DoorState) String() string {
	switch s {
	case DoorOpening:
		return "opening"
	case DoorOpen:
		return "open"
	}
	return "locked"
}

// Door is a solid wall that slides up out of the way once enough
// collectibles have been gathered.
type Door struct {
	engine.BaseBehavior
	cfg     config.Door
	State   DoorState
	Unlock  int
	Timer   float32
	closedY float32
}

func newDoor(e *engine.Entity, s engine.Spawn) (engine.Behavior, error) {
	unlock, err := engine.PropFloat(s.Props, "unlock", 0)
	if err != nil {
		return nil, err
	}

	colorOr(e, rl.Color{R: 51, G: 153, B: 255, A: 255})
	e.BaseAlpha = 0.6
	e.Alpha = e.BaseAlpha

	d := &Door{cfg: s.Tuning.Door, Unlock: int(unlock), closedY: e.Transform.Position.Y}
	if d.Unlock <= 0 {
		d.State = DoorOpen
		e.Active = false
	}
	return d, nil
}

func (d *Door) Required() int {
	return d.Unlock
}

// OnTrigger starts opening a locked door.
func (d *Door) OnTrigger(fx effects.Sink) engine.TriggerResult {
	if d.State != DoorLocked {
		return engine.TriggerResult{}
	}
	d.State = DoorOpening
	d.Timer = 0
	fx.PlayCue(effects.CueDoorOpen, 1)
	return engine.TriggerResult{Fired: true}
}

func (d *Door) Update(deltaTime float32) {
	if d.State != DoorOpening {
		return
	}
	e := d.GetEntity()
	d.Timer += deltaTime
	frac := min(1, d.Timer/d.cfg.OpenDuration)
	if reached(d.Timer, d.cfg.OpenDuration) {
		frac = 1
	}
	e.Transform.Position.Y = d.closedY + e.Transform.Scale.Y*frac
	if frac >= 1 {
		d.State = DoorOpen
		e.Active = false
	}
}
