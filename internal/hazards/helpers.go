package hazards

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"relicrun/internal/engine"
)

var worldUp = rl.Vector3{X: 0, Y: 1, Z: 0}

// timerSlack absorbs float32 error in timers summed from frame deltas, so a
// duration is reached on the frame whose deltas add up to it.
const timerSlack = 1e-4

func reached(elapsed, duration float32) bool {
	return elapsed+timerSlack >= duration
}

// overshoot is the time past duration that carries into the next phase.
// Anything within the slack is rounding and is dropped.
func overshoot(elapsed, duration float32) float32 {
	if over := elapsed - duration; over > timerSlack {
		return over
	}
	return 0
}

func sin(x float32) float32 {
	return float32(math.Sin(float64(x)))
}

func cos(x float32) float32 {
	return float32(math.Cos(float64(x)))
}

// scaleOr sets a default scale when the level file left it out.
func scaleOr(e *engine.Entity, def rl.Vector3) {
	if e.Transform.Scale == (rl.Vector3{}) {
		e.Transform.Scale = def
	}
}

// colorOr sets a default tint when the level file left it out.
func colorOr(e *engine.Entity, def rl.Color) {
	if e.Color == (rl.Color{}) || e.Color == rl.White {
		e.Color = def
	}
}

// spinY advances a yaw rotation given in radians per second. Rotation is
// stored in degrees.
func spinY(e *engine.Entity, radPerSec, deltaTime float32) {
	e.Transform.Rotation.Y += radPerSec * deltaTime * rl.Rad2deg
	if e.Transform.Rotation.Y >= 360 {
		e.Transform.Rotation.Y -= 360
	}
}
