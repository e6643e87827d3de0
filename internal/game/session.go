package game

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"relicrun/internal/camera"
	"relicrun/internal/config"
	"relicrun/internal/effects"
	"relicrun/internal/player"
	"relicrun/internal/world"
)

// Input is one frame of player intent.
type Input struct {
	Forward    float32 // -1..1 along the camera's forward
	Right      float32 // -1..1 along the camera's right
	Jump       bool
	LookDX     float32 // mouse delta in pixels
	LookDY     float32
	ToggleView bool
}

type Stats struct {
	Frames      int
	Restarts    int
	Deaths      int
	Completions int
	Triggers    int
	Hits        int
	Cues        map[effects.Cue]int
}

// Session runs a sequence of levels with one player. Everything it owns is
// advanced by Step on the caller's goroutine.
type Session struct {
	Tuning    config.Tuning
	Levels    []string
	Index     int
	Level     *world.Level
	Player    *player.Player
	Camera    *camera.Orbit
	Particles *effects.Pool
	Bus       *effects.Bus
	Stats     Stats

	// OnLevelLoaded fires after every load, restarts included.
	OnLevelLoaded effects.EventWithArg[*world.Level]

	log *slog.Logger
}

func NewSession(tuning config.Tuning, levels []string, log *slog.Logger) (*Session, error) {
	if len(levels) == 0 {
		return nil, errors.New("session: no levels")
	}
	if log == nil {
		log = slog.Default()
	}
	s := &Session{
		Tuning:    tuning,
		Levels:    levels,
		Particles: effects.NewPool(tuning.Session.Particles, 1),
		Bus:       &effects.Bus{},
		Stats:     Stats{Cues: make(map[effects.Cue]int)},
		log:       log,
	}
	s.Bus.OnBurst.AddListener(s.Particles.Emit)
	s.Bus.OnCue.AddListener(func(r effects.CueRequest) { s.Stats.Cues[r.Cue]++ })

	s.Player = player.New(tuning.Player, rl.Vector3{Y: tuning.Player.GroundLevel})
	s.Camera = s.newCamera()

	if err := s.load(0); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) newCamera() *camera.Orbit {
	cam := camera.New(s.Tuning.Camera, s.Player.Position())
	cam.EyeHeight = s.Tuning.Collision.TargetHeight
	return cam
}

// Attach forwards every cue and burst to sink, e.g. an audio bank.
func (s *Session) Attach(sink effects.Sink) {
	s.Bus.Attach(sink)
}

func (s *Session) load(index int) error {
	name := s.Levels[index]
	l, err := world.LoadLevel(name, &s.Tuning, s.log)
	if err != nil {
		return fmt.Errorf("load level %s: %w", name, err)
	}
	s.Index = index
	s.Level = l
	s.Player.Reset(l.PlayerStart)
	s.Camera.Follow(s.Player.Position())
	s.Particles.Clear()
	s.OnLevelLoaded.Invoke(l)
	return nil
}

// Restart reloads the current level, keeping hearts.
func (s *Session) Restart() error {
	s.Stats.Restarts++
	return s.load(s.Index)
}

// Step advances one frame: player movement, camera, level passes, occlusion
// and particles, then handles falling, death and completion.
func (s *Session) Step(deltaTime float32, in Input) (world.Frame, error) {
	if limit := s.Tuning.Collision.MaxDelta; deltaTime > limit {
		deltaTime = limit
	}
	s.Stats.Frames++

	if in.ToggleView {
		s.Camera.Toggle()
	}
	s.Camera.Rotate(in.LookDX, in.LookDY)

	move := s.Camera.MoveInput(in.Forward, in.Right)
	s.Player.Move(move, in.Jump, deltaTime, s.Bus)
	s.Camera.Follow(s.Player.Position())

	f := s.Level.Update(deltaTime, s.Player, s.Bus)
	s.Stats.Triggers += f.Triggers
	s.Stats.Hits += f.ObstacleHits

	if s.Camera.FirstPerson {
		s.Level.ResetAlpha()
	} else {
		s.Level.Occlude(s.Camera.Position(), s.Camera.LookAt())
	}
	s.Particles.Update(deltaTime)

	switch {
	case f.Died:
		s.Stats.Deaths++
		s.log.Info("player died", "level", s.Level.Name)
		s.Player.RestoreHearts()
		return f, s.load(0)
	case s.Player.Position().Y < s.Tuning.Session.FallLimit:
		s.log.Info("player fell", "level", s.Level.Name)
		return f, s.Restart()
	case f.Completed:
		s.Stats.Completions++
		next := (s.Index + 1) % len(s.Levels)
		s.log.Info("level complete", "level", s.Level.Name, "next", s.Levels[next])
		return f, s.load(next)
	}
	return f, nil
}

// ApplyTuning swaps in new tuning and restarts the current level with a
// player built from it. Hearts carry over.
func (s *Session) ApplyTuning(t config.Tuning) error {
	if err := t.Validate(); err != nil {
		return err
	}
	hearts := min(s.Player.Hearts, t.Player.MaxHearts)
	cam := s.Camera

	s.Tuning = t
	s.Player = player.New(t.Player, s.Player.Position())
	s.Player.Hearts = hearts
	s.Camera = s.newCamera()
	s.Camera.Yaw, s.Camera.FirstPerson = cam.Yaw, cam.FirstPerson
	return s.load(s.Index)
}

// ReloadIfCurrent restarts when file names the level being played.
func (s *Session) ReloadIfCurrent(file string) (bool, error) {
	base := strings.TrimSuffix(filepath.Base(file), ".yaml")
	if base != strings.TrimSuffix(s.Levels[s.Index], ".yaml") {
		return false, nil
	}
	return true, s.load(s.Index)
}
