package world

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"strconv"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"

	"relicrun/internal/config"
	"relicrun/internal/engine"
	"relicrun/internal/levels"
	"relicrun/internal/physics"
)

// --- YAML types ---

type LevelFile struct {
	Name        string      `yaml:"name"`
	PlayerStart []float32   `yaml:"player_start"`
	Seed        int64       `yaml:"seed"`
	DoorUnlock  int         `yaml:"door_unlock"`
	Exit        *BoxDef     `yaml:"exit,omitempty"`
	Walls       []ObjectDef `yaml:"walls"`
	Objects     []ObjectDef `yaml:"objects"`
	Lights      []LightDef  `yaml:"lights"`
}

type ObjectDef struct {
	Name     string         `yaml:"name"`
	Kind     string         `yaml:"kind"`
	Position []float32      `yaml:"position"`
	Rotation []float32      `yaml:"rotation,omitempty"`
	Scale    []float32      `yaml:"scale,omitempty"`
	Color    string         `yaml:"color,omitempty"`
	Props    map[string]any `yaml:"props,omitempty"`
}

type BoxDef struct {
	Min []float32 `yaml:"min"`
	Max []float32 `yaml:"max"`
}

type LightDef struct {
	Position      []float32 `yaml:"position"`
	Color         string    `yaml:"color"`
	Intensity     float32   `yaml:"intensity"`
	FlickerSpeed  float32   `yaml:"flicker_speed"`
	FlickerAmount float32   `yaml:"flicker_amount"`
}

// --- Color mapping ---

var colorByName = map[string]rl.Color{
	"Red":       rl.Red,
	"Blue":      rl.Blue,
	"Green":     rl.Green,
	"Purple":    rl.Purple,
	"Orange":    rl.Orange,
	"Yellow":    rl.Yellow,
	"Pink":      rl.Pink,
	"SkyBlue":   rl.SkyBlue,
	"Lime":      rl.Lime,
	"Magenta":   rl.Magenta,
	"White":     rl.White,
	"LightGray": rl.LightGray,
	"Gray":      rl.Gray,
	"DarkGray":  rl.DarkGray,
	"Black":     rl.Black,
	"Brown":     rl.Brown,
	"Beige":     rl.Beige,
	"Maroon":    rl.Maroon,
	"Gold":      rl.Gold,
}

// ParseColor accepts a raylib color name or #rrggbb[aa].
func ParseColor(s string) (rl.Color, error) {
	if c, ok := colorByName[s]; ok {
		return c, nil
	}
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || (len(hex) != 6 && len(hex) != 8) {
		return rl.Color{}, fmt.Errorf("unknown color %q", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return rl.Color{}, fmt.Errorf("bad color %q: %w", s, err)
	}
	return rl.Color{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

func vec3(field string, v []float32, def rl.Vector3) (rl.Vector3, error) {
	switch len(v) {
	case 0:
		return def, nil
	case 3:
		return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}, nil
	}
	return def, fmt.Errorf("%s: want 3 components, got %d", field, len(v))
}

// --- Loading ---

// LoadLevel reads a level by name (disk override first, then embedded) and
// builds it.
func LoadLevel(name string, tuning *config.Tuning, log *slog.Logger) (*Level, error) {
	data, err := levels.Load(name)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	def, err := ParseLevel(data)
	if err != nil {
		return nil, err
	}
	if def.Name == "" {
		def.Name = strings.TrimSuffix(name, ".yaml")
	}
	return BuildLevel(def, tuning, log)
}

func ParseLevel(data []byte) (LevelFile, error) {
	var lf LevelFile
	if err := yaml.Unmarshal(data, &lf); err != nil {
		return LevelFile{}, fmt.Errorf("parse level: %w", err)
	}
	return lf, nil
}

// BuildLevel creates every entity in def. All object errors are reported
// together.
func BuildLevel(def LevelFile, tuning *config.Tuning, log *slog.Logger) (*Level, error) {
	if tuning == nil {
		d := config.Defaults()
		tuning = &d
	}
	l := NewLevel(def.Name, tuning.Collision, log)

	var errs []error
	start, err := vec3("player_start", def.PlayerStart, rl.Vector3{Y: tuning.Player.GroundLevel})
	if err != nil {
		errs = append(errs, err)
	}
	l.PlayerStart = start

	if def.Exit != nil {
		lo, err1 := vec3("exit min", def.Exit.Min, rl.Vector3{})
		hi, err2 := vec3("exit max", def.Exit.Max, rl.Vector3{})
		if err := errors.Join(err1, err2); err != nil {
			errs = append(errs, err)
		} else {
			exit := physics.NewBoxFromCenter(rl.Vector3Lerp(lo, hi, 0.5), rl.Vector3Subtract(hi, lo))
			l.Exit = &exit
		}
	}

	spawn := engine.Spawn{Tuning: tuning, Rand: rand.New(rand.NewSource(def.Seed))}
	seen := make(map[string]bool)

	all := make([]ObjectDef, 0, len(def.Walls)+len(def.Objects))
	all = append(all, def.Walls...)
	all = append(all, def.Objects...)
	for i, od := range all {
		e, err := buildObject(i, od, def, spawn)
		if err != nil {
			errs = append(errs, fmt.Errorf("level %s: object %d: %w", def.Name, i, err))
			continue
		}
		if seen[e.Name] {
			errs = append(errs, fmt.Errorf("level %s: object %d: duplicate name %q", def.Name, i, e.Name))
			continue
		}
		seen[e.Name] = true

		switch e.Kind {
		case engine.KindWall, engine.KindDoor:
			l.Scene.AddWall(e)
		default:
			l.Scene.AddObject(e)
		}
	}

	for i, ld := range def.Lights {
		pos, err := vec3("position", ld.Position, rl.Vector3{})
		if err != nil {
			errs = append(errs, fmt.Errorf("level %s: light %d: %w", def.Name, i, err))
			continue
		}
		color := rl.White
		if ld.Color != "" {
			if color, err = ParseColor(ld.Color); err != nil {
				errs = append(errs, fmt.Errorf("level %s: light %d: %w", def.Name, i, err))
				continue
			}
		}
		l.AddLight(NewLight(pos, color, ld.Intensity, ld.FlickerSpeed, ld.FlickerAmount))
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	l.log.Info("level loaded", "walls", len(l.Scene.Walls), "objects", len(l.Scene.Objects), "lights", len(l.Lights))
	return l, nil
}

func buildObject(index int, od ObjectDef, def LevelFile, spawn engine.Spawn) (*engine.Entity, error) {
	kind := engine.KindWall
	if od.Kind != "" {
		k, ok := engine.ParseKind(od.Kind)
		if !ok {
			return nil, fmt.Errorf("%w: %q", engine.ErrUnknownKind, od.Kind)
		}
		kind = k
	}

	var tr engine.Transform
	var err error
	if tr.Position, err = vec3("position", od.Position, rl.Vector3{}); err != nil {
		return nil, err
	}
	if tr.Rotation, err = vec3("rotation", od.Rotation, rl.Vector3{}); err != nil {
		return nil, err
	}
	if tr.Scale, err = vec3("scale", od.Scale, rl.Vector3{}); err != nil {
		return nil, err
	}

	props := od.Props
	if kind == engine.KindDoor {
		if _, ok := props["unlock"]; !ok {
			props = withProp(props, "unlock", def.DoorUnlock)
		}
	}
	spawn.Props = props

	name := od.Name
	if name == "" {
		name = fmt.Sprintf("%s_%d", kind, index)
	}
	e, err := engine.CreateEntity(name, kind, tr, spawn)
	if err != nil {
		return nil, err
	}

	if od.Color != "" {
		c, err := ParseColor(od.Color)
		if err != nil {
			return nil, err
		}
		e.Color = c
	}
	return e, nil
}

// withProp copies props so the parsed definition is never mutated.
func withProp(props map[string]any, key string, v any) map[string]any {
	out := make(map[string]any, len(props)+1)
	for k, pv := range props {
		out[k] = pv
	}
	out[key] = v
	return out
}
