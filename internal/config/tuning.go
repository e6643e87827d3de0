package config

import (
	"embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed tuning.yaml
var defaultsFS embed.FS

// DefaultFile is the name of the embedded tuning file.
const DefaultFile = "tuning.yaml"

type Collision struct {
	SeparationEpsilon float32 `yaml:"separation_epsilon"`
	MaxDelta          float32 `yaml:"max_delta"`
	OcclusionMargin   float32 `yaml:"occlusion_margin"`
	OccludedAlpha     float32 `yaml:"occluded_alpha"`
	TargetHeight      float32 `yaml:"target_height"`
}

type Player struct {
	Radius              float32 `yaml:"radius"`
	MoveSpeed           float32 `yaml:"move_speed"`
	Gravity             float32 `yaml:"gravity"`
	GroundLevel         float32 `yaml:"ground_level"`
	Acceleration        float32 `yaml:"acceleration"`
	Friction            float32 `yaml:"friction"`
	JumpForce           float32 `yaml:"jump_force"`
	Hearts              int     `yaml:"hearts"`
	MaxHearts           int     `yaml:"max_hearts"`
	Knockback           float32 `yaml:"knockback"`
	FlashDuration       float32 `yaml:"flash_duration"`
	WallBounce          float32 `yaml:"wall_bounce"`
	WallCueCooldown     float32 `yaml:"wall_cue_cooldown"`
	MovementCueInterval float32 `yaml:"movement_cue_interval"`
}

type Pendulum struct {
	MaxAngle   float32 `yaml:"max_angle"` // degrees
	SwingSpeed float32 `yaml:"swing_speed"`
	Length     float32 `yaml:"length"`
}

type CrumblingTile struct {
	ShakeDuration float32 `yaml:"shake_duration"`
	FallDuration  float32 `yaml:"fall_duration"`
	FallSpeed     float32 `yaml:"fall_speed"`
	ShakeAmount   float32 `yaml:"shake_amount"`
	TriggerHeight float32 `yaml:"trigger_height"`
}

type Stalactite struct {
	MinCountdown  float32 `yaml:"min_countdown"`
	MaxCountdown  float32 `yaml:"max_countdown"`
	Gravity       float32 `yaml:"gravity"`
	DespawnY      float32 `yaml:"despawn_y"`
	Proximity     float32 `yaml:"proximity"`
	HangingRadius float32 `yaml:"hanging_radius"`
	FallingRadius float32 `yaml:"falling_radius"`
	KnockbackLift float32 `yaml:"knockback_lift"`
}

type Geyser struct {
	Interval       float32 `yaml:"interval"`
	Duration       float32 `yaml:"duration"`
	ColumnRadius   float32 `yaml:"column_radius"`
	ColumnHeight   float32 `yaml:"column_height"`
	Push           float32 `yaml:"push"`
	Lift           float32 `yaml:"lift"`
	DamageCooldown float32 `yaml:"damage_cooldown"`
}

type Collectible struct {
	FloatSpeed     float32 `yaml:"float_speed"`
	FloatAmount    float32 `yaml:"float_amount"`
	SpinSpeed      float32 `yaml:"spin_speed"` // radians per second
	ShrinkDuration float32 `yaml:"shrink_duration"`
	ShrinkSpin     float32 `yaml:"shrink_spin"`
	RadiusScale    float32 `yaml:"radius_scale"`
}

type HealthPickup struct {
	FloatSpeed float32 `yaml:"float_speed"`
	BobHeight  float32 `yaml:"bob_height"`
	BobOffset  float32 `yaml:"bob_offset"`
	SpinSpeed  float32 `yaml:"spin_speed"`
	Radius     float32 `yaml:"radius"`
	Heal       int     `yaml:"heal"`
}

type Door struct {
	OpenDuration float32 `yaml:"open_duration"`
}

type Camera struct {
	Distance    float32 `yaml:"distance"`
	Pitch       float32 `yaml:"pitch"` // degrees, negative looks down
	MinPitch    float32 `yaml:"min_pitch"`
	MaxPitch    float32 `yaml:"max_pitch"`
	Sensitivity float32 `yaml:"sensitivity"`
	Fovy        float32 `yaml:"fovy"`
}

type Session struct {
	FallLimit float32 `yaml:"fall_limit"`
	Particles int     `yaml:"particles"`
}

// Tuning holds every simulation constant that level designers may want to
// adjust without a rebuild.
type Tuning struct {
	Collision     Collision     `yaml:"collision"`
	Player        Player        `yaml:"player"`
	Pendulum      Pendulum      `yaml:"pendulum"`
	CrumblingTile CrumblingTile `yaml:"crumbling_tile"`
	Stalactite    Stalactite    `yaml:"stalactite"`
	Geyser        Geyser        `yaml:"geyser"`
	Collectible   Collectible   `yaml:"collectible"`
	HealthPickup  HealthPickup  `yaml:"health_pickup"`
	Door          Door          `yaml:"door"`
	Camera        Camera        `yaml:"camera"`
	Session       Session       `yaml:"session"`
}

// Defaults returns the built-in tuning. tuning.yaml mirrors these values.
func Defaults() Tuning {
	return Tuning{
		Collision: Collision{
			SeparationEpsilon: 0.01,
			MaxDelta:          0.1,
			OcclusionMargin:   0.5,
			OccludedAlpha:     0.3,
			TargetHeight:      1,
		},
		Player: Player{
			Radius:              0.6,
			MoveSpeed:           8,
			Gravity:             20,
			GroundLevel:         1,
			Acceleration:        15,
			Friction:            10,
			JumpForce:           8,
			Hearts:              3,
			MaxHearts:           5,
			Knockback:           5,
			FlashDuration:       0.3,
			WallBounce:          0.5,
			WallCueCooldown:     0.2,
			MovementCueInterval: 0.5,
		},
		Pendulum: Pendulum{
			MaxAngle:   45,
			SwingSpeed: 2,
			Length:     5,
		},
		CrumblingTile: CrumblingTile{
			ShakeDuration: 2,
			FallDuration:  0.3,
			FallSpeed:     30,
			ShakeAmount:   0.05,
			TriggerHeight: 2,
		},
		Stalactite: Stalactite{
			MinCountdown:  2,
			MaxCountdown:  8,
			Gravity:       12,
			DespawnY:      -10,
			Proximity:     2,
			HangingRadius: 0.8,
			FallingRadius: 0.6,
			KnockbackLift: 0.5,
		},
		Geyser: Geyser{
			Interval:       2.5,
			Duration:       2,
			ColumnRadius:   1.5,
			ColumnHeight:   5,
			Push:           8,
			Lift:           15,
			DamageCooldown: 1,
		},
		Collectible: Collectible{
			FloatSpeed:     1,
			FloatAmount:    0.2,
			SpinSpeed:      2,
			ShrinkDuration: 0.25,
			ShrinkSpin:     5,
			RadiusScale:    1.2,
		},
		HealthPickup: HealthPickup{
			FloatSpeed: 2.5,
			BobHeight:  0.4,
			BobOffset:  0.5,
			SpinSpeed:  1.5,
			Radius:     1.5,
			Heal:       1,
		},
		Door: Door{
			OpenDuration: 1.5,
		},
		Camera: Camera{
			Distance:    8,
			Pitch:       -30,
			MinPitch:    -89,
			MaxPitch:    10,
			Sensitivity: 0.15,
			Fovy:        45,
		},
		Session: Session{
			FallLimit: -5,
			Particles: 1000,
		},
	}
}

// Load overlays the tuning file at path on top of Defaults. An empty path,
// or a path that does not exist on disk, falls back to the embedded file.
func Load(path string) (Tuning, error) {
	t := Defaults()

	data, err := read(path)
	if err != nil {
		return t, err
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return t, fmt.Errorf("config: unmarshal %s: %w", sourceName(path), err)
	}
	if err := t.Validate(); err != nil {
		return t, fmt.Errorf("config: %s: %w", sourceName(path), err)
	}
	return t, nil
}

func read(path string) ([]byte, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}
	data, err := defaultsFS.ReadFile(DefaultFile)
	if err != nil {
		return nil, fmt.Errorf("config: read embedded %s: %w", DefaultFile, err)
	}
	return data, nil
}

func sourceName(path string) string {
	if path == "" {
		return "embedded " + DefaultFile
	}
	return path
}

// Validate rejects values that would stall or invert a state machine.
func (t Tuning) Validate() error {
	var errs []error
	positive := func(name string, v float32) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be > 0, got %g", name, v))
		}
	}

	positive("collision.max_delta", t.Collision.MaxDelta)
	positive("player.radius", t.Player.Radius)
	positive("player.move_speed", t.Player.MoveSpeed)
	positive("crumbling_tile.shake_duration", t.CrumblingTile.ShakeDuration)
	positive("crumbling_tile.fall_duration", t.CrumblingTile.FallDuration)
	positive("crumbling_tile.trigger_height", t.CrumblingTile.TriggerHeight)
	positive("stalactite.hanging_radius", t.Stalactite.HangingRadius)
	positive("stalactite.falling_radius", t.Stalactite.FallingRadius)
	positive("geyser.interval", t.Geyser.Interval)
	positive("geyser.duration", t.Geyser.Duration)
	positive("geyser.column_radius", t.Geyser.ColumnRadius)
	positive("geyser.column_height", t.Geyser.ColumnHeight)
	positive("collectible.shrink_duration", t.Collectible.ShrinkDuration)
	positive("health_pickup.radius", t.HealthPickup.Radius)
	positive("door.open_duration", t.Door.OpenDuration)
	positive("camera.distance", t.Camera.Distance)

	if t.Collision.SeparationEpsilon < 0 {
		errs = append(errs, fmt.Errorf("collision.separation_epsilon must be >= 0, got %g", t.Collision.SeparationEpsilon))
	}
	if t.Stalactite.MaxCountdown < t.Stalactite.MinCountdown {
		errs = append(errs, fmt.Errorf("stalactite.max_countdown %g is below min_countdown %g",
			t.Stalactite.MaxCountdown, t.Stalactite.MinCountdown))
	}
	if t.Player.Hearts <= 0 || t.Player.MaxHearts < t.Player.Hearts {
		errs = append(errs, fmt.Errorf("player hearts %d / max %d out of range", t.Player.Hearts, t.Player.MaxHearts))
	}
	if t.Camera.MinPitch > t.Camera.MaxPitch {
		errs = append(errs, fmt.Errorf("camera.min_pitch %g exceeds max_pitch %g", t.Camera.MinPitch, t.Camera.MaxPitch))
	}
	return errors.Join(errs...)
}
