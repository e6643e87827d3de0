package effects

import rl "github.com/gen2brain/raylib-go/raylib"

// BurstShape selects how a burst spreads its particles.
type BurstShape uint8

const (
	// BurstDirected launches every particle with Velocity plus a small jitter.
	BurstDirected BurstShape = iota
	// BurstExplosion launches particles in random directions, ignoring Velocity.
	BurstExplosion
)

// Burst is a fire-and-forget particle request.
type Burst struct {
	Shape    BurstShape
	Position rl.Vector3
	Velocity rl.Vector3
	Color    rl.Color
	Size     float32
	Lifetime float32
	Count    int
}

// Sink receives the side effects raised by collision reactions and hazard
// transitions. Implementations must not call back into the simulation.
type Sink interface {
	PlayCue(c Cue, volume float32)
	Emit(b Burst)
}

// Discard drops every effect.
var Discard Sink = discard{}

type discard struct{}

func (discard) PlayCue(Cue, float32) {}
func (discard) Emit(Burst)           {}

// CueRequest is one recorded PlayCue call.
type CueRequest struct {
	Cue    Cue
	Volume float32
}

// Recorder keeps every effect it receives, in order.
type Recorder struct {
	Cues   []CueRequest
	Bursts []Burst
}

func (r *Recorder) PlayCue(c Cue, volume float32) {
	r.Cues = append(r.Cues, CueRequest{Cue: c, Volume: volume})
}

func (r *Recorder) Emit(b Burst) {
	r.Bursts = append(r.Bursts, b)
}

// Count returns how many times c was played.
func (r *Recorder) Count(c Cue) int {
	n := 0
	for _, req := range r.Cues {
		if req.Cue == c {
			n++
		}
	}
	return n
}

func (r *Recorder) Reset() {
	r.Cues = r.Cues[:0]
	r.Bursts = r.Bursts[:0]
}

// Bus fans every effect out to its listeners.
type Bus struct {
	OnCue   EventWithArg[CueRequest]
	OnBurst EventWithArg[Burst]
}

func (b *Bus) PlayCue(c Cue, volume float32) {
	b.OnCue.Invoke(CueRequest{Cue: c, Volume: volume})
}

func (b *Bus) Emit(burst Burst) {
	b.OnBurst.Invoke(burst)
}

// Attach forwards both channels to s.
func (b *Bus) Attach(s Sink) {
	b.OnCue.AddListener(func(r CueRequest) { s.PlayCue(r.Cue, r.Volume) })
	b.OnBurst.AddListener(s.Emit)
}
