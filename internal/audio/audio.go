// Package audio plays effect cues through raylib sounds.
package audio

import (
	"log/slog"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"

	"relicrun/internal/effects"
)

// Backend loads and plays sounds. The raylib backend is the default; tests
// substitute their own.
type Backend interface {
	Load(path string) (rl.Sound, bool)
	Play(s rl.Sound, volume float32)
	Unload(s rl.Sound)
}

type raylibBackend struct{}

func (raylibBackend) Load(path string) (rl.Sound, bool) {
	sound := rl.LoadSound(path)
	return sound, rl.IsSoundValid(sound)
}

func (raylibBackend) Play(s rl.Sound, volume float32) {
	rl.SetSoundVolume(s, volume)
	rl.PlaySound(s)
}

func (raylibBackend) Unload(s rl.Sound) {
	rl.UnloadSound(s)
}

// Bank holds one sound per cue and implements effects.Sink. Cues without a
// sound file are silent.
type Bank struct {
	backend Backend
	sounds  map[effects.Cue]rl.Sound
	Master  float32
	Enabled bool
	played  map[effects.Cue]int
}

// CuePath is where the bank looks for a cue's sound.
func CuePath(dir string, c effects.Cue) string {
	return filepath.Join(dir, c.String()+".wav")
}

// Open initializes the audio device and loads every cue found under dir.
func Open(dir string, log *slog.Logger) *Bank {
	rl.InitAudioDevice()
	return Load(raylibBackend{}, dir, log)
}

// Load fills a bank through backend.
func Load(backend Backend, dir string, log *slog.Logger) *Bank {
	if log == nil {
		log = slog.Default()
	}
	b := &Bank{
		backend: backend,
		sounds:  make(map[effects.Cue]rl.Sound),
		Master:  1,
		Enabled: true,
		played:  make(map[effects.Cue]int),
	}
	for _, c := range effects.Cues() {
		path := CuePath(dir, c)
		sound, ok := backend.Load(path)
		if !ok {
			log.Debug("no sound for cue", "cue", c, "path", path)
			continue
		}
		b.sounds[c] = sound
	}
	log.Info("audio loaded", "cues", len(b.sounds))
	return b
}

func (b *Bank) PlayCue(c effects.Cue, volume float32) {
	if !b.Enabled {
		return
	}
	sound, ok := b.sounds[c]
	if !ok {
		return
	}
	b.backend.Play(sound, clamp01(volume*b.Master))
	b.played[c]++
}

// Emit ignores particle bursts.
func (b *Bank) Emit(effects.Burst) {}

// Has reports whether c has a loaded sound.
func (b *Bank) Has(c effects.Cue) bool {
	_, ok := b.sounds[c]
	return ok
}

// Played counts how often c was actually played.
func (b *Bank) Played(c effects.Cue) int {
	return b.played[c]
}

// Close unloads every sound. Call CloseDevice afterwards when the bank
// came from Open.
func (b *Bank) Close() {
	for _, s := range b.sounds {
		b.backend.Unload(s)
	}
	b.sounds = map[effects.Cue]rl.Sound{}
}

func CloseDevice() {
	rl.CloseAudioDevice()
}

func clamp01(v float32) float32 {
	if v < 0.0 {
		return 0.0
	} else if v > 1.0 {
		return 1.0
	}
	return v
}
