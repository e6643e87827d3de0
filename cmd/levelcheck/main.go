// Headless soak run of the built-in levels with a scripted walk.
package main

import (
	"flag"
	"log/slog"
	"math"
	"os"
	"time"

	"relicrun/internal/config"
	"relicrun/internal/game"
	"relicrun/internal/levels"
)

func main() {
	tuningPath := flag.String("tuning", config.DefaultFile, "tuning file, embedded defaults when missing")
	levelName := flag.String("level", "", "single level to soak, all levels when empty")
	seconds := flag.Float64("seconds", 60, "simulated seconds per level")
	fps := flag.Int("fps", 60, "simulated frame rate")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	tuning, err := config.Load(*tuningPath)
	if err != nil {
		log.Error("load tuning", "error", err)
		os.Exit(1)
	}

	names := levels.Names()
	if *levelName != "" {
		names = []string{*levelName}
	}

	failed := false
	for _, name := range names {
		if !soak(name, tuning, *seconds, *fps, log) {
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

// soak loops one level with a walk that changes heading every two seconds
// and jumps now and then. Returns false on a load error or a broken state.
func soak(name string, tuning config.Tuning, seconds float64, fps int, log *slog.Logger) bool {
	s, err := game.NewSession(tuning, []string{name}, log.With("level", name))
	if err != nil {
		log.Error("load level", "level", name, "error", err)
		return false
	}

	dt := float32(1) / float32(fps)
	frames := int(seconds * float64(fps))
	start := time.Now()

	for i := 0; i < frames; i++ {
		t := float32(i) * dt
		heading := int(t/2) % 4
		in := game.Input{
			Forward: []float32{1, 0, -1, 0}[heading],
			Right:   []float32{0, 1, 0, -1}[heading],
			Jump:    i%90 == 0,
			LookDX:  float32(math.Sin(float64(t))) * 2,
		}
		if _, err := s.Step(dt, in); err != nil {
			log.Error("step", "level", name, "frame", i, "error", err)
			return false
		}

		p := s.Player.Position()
		if isNaN(p.X) || isNaN(p.Y) || isNaN(p.Z) {
			log.Error("player position is NaN", "level", name, "frame", i)
			return false
		}
		if s.Particles.Len() > tuning.Session.Particles {
			log.Error("particle pool overflow", "level", name, "frame", i, "len", s.Particles.Len())
			return false
		}
	}

	elapsed := time.Since(start)
	st := s.Stats
	log.Info("soak done",
		"level", name,
		"frames", st.Frames,
		"wall", elapsed.Round(time.Millisecond),
		"per_frame", (elapsed / time.Duration(max(1, st.Frames))).Round(time.Microsecond),
		"triggers", st.Triggers,
		"hits", st.Hits,
		"restarts", st.Restarts,
		"deaths", st.Deaths,
		"completions", st.Completions,
		"cues", len(st.Cues),
	)
	for cue, n := range st.Cues {
		log.Debug("cue", "level", name, "cue", cue.String(), "count", n)
	}
	return true
}

func isNaN(v float32) bool {
	return v != v
}
