// Package player holds the controllable sphere the level collides against.
package player

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"relicrun/internal/config"
	"relicrun/internal/effects"
	"relicrun/internal/physics"
)

var (
	sparkColor  = rl.Color{R: 255, G: 204, B: 51, A: 255}
	impactColor = rl.Color{R: 255, G: 77, B: 77, A: 255}
)

// Player owns its position during free movement. The level only writes to it
// through Displace and the reaction methods.
type Player struct {
	cfg      config.Player
	position rl.Vector3
	velocity rl.Vector3
	sphere   physics.Sphere

	Hearts     int
	FlashTimer float32

	// wallCueCooldown throttles the wall collision cue.
	wallCueCooldown float32
	moveCueTimer    float32
	grounded        bool
}

func New(cfg config.Player, start rl.Vector3) *Player {
	p := &Player{cfg: cfg, Hearts: cfg.Hearts}
	p.Reset(start)
	return p
}

// Reset puts the player at start with no motion. Hearts are kept.
func (p *Player) Reset(start rl.Vector3) {
	p.position = start
	p.velocity = rl.Vector3{}
	p.FlashTimer = 0
	p.wallCueCooldown = 0
	p.moveCueTimer = 0
	p.sync()
}

func (p *Player) Position() rl.Vector3 {
	return p.position
}

func (p *Player) Velocity() rl.Vector3 {
	return p.velocity
}

func (p *Player) Sphere() physics.Sphere {
	return p.sphere
}

func (p *Player) Grounded() bool {
	return p.grounded
}

func (p *Player) Flashing() bool {
	return p.FlashTimer > 0
}

func (p *Player) sync() {
	p.sphere = physics.NewSphere(p.position, p.cfg.Radius)
}

// Move integrates one frame of free movement. input is a horizontal
// direction, jump requests a jump when grounded.
func (p *Player) Move(input rl.Vector3, jump bool, deltaTime float32, fx effects.Sink) {
	p.velocity.Y -= p.cfg.Gravity * deltaTime
	p.position.Y += p.velocity.Y * deltaTime

	if p.position.Y < p.cfg.GroundLevel {
		p.position.Y = p.cfg.GroundLevel
		p.velocity.Y = 0
	}

	input.Y = 0
	moving := rl.Vector3Length(input) > 0
	if moving {
		target := rl.Vector3Scale(input, p.cfg.MoveSpeed)
		p.velocity.X = lerp(p.velocity.X, target.X, p.cfg.Acceleration*deltaTime)
		p.velocity.Z = lerp(p.velocity.Z, target.Z, p.cfg.Acceleration*deltaTime)
	} else {
		p.velocity.X = lerp(p.velocity.X, 0, p.cfg.Friction*deltaTime)
		p.velocity.Z = lerp(p.velocity.Z, 0, p.cfg.Friction*deltaTime)
	}
	p.position.X += p.velocity.X * deltaTime
	p.position.Z += p.velocity.Z * deltaTime

	p.grounded = abs(p.velocity.Y) < 0.1 && p.position.Y >= p.cfg.GroundLevel
	if jump && p.grounded {
		p.velocity.Y = p.cfg.JumpForce
		p.grounded = false
	}

	p.sync()
	p.Tick(deltaTime)

	if rl.Vector3Length(input) > 0.1 {
		p.moveCueTimer += deltaTime
		if p.moveCueTimer > p.cfg.MovementCueInterval {
			fx.PlayCue(effects.CueMovement, 0.3)
			p.moveCueTimer = 0
		}
	}
}

// Tick advances the player's own timers.
func (p *Player) Tick(deltaTime float32) {
	if p.FlashTimer > 0 {
		p.FlashTimer = max(0, p.FlashTimer-deltaTime)
	}
	if p.wallCueCooldown > 0 {
		p.wallCueCooldown = max(0, p.wallCueCooldown-deltaTime)
	}
}

// Displace moves the player by d and re-centers its sphere.
func (p *Player) Displace(d rl.Vector3) {
	p.position = rl.Vector3Add(p.position, d)
	p.sync()
}

// Teleport places the player without touching velocity.
func (p *Player) Teleport(pos rl.Vector3) {
	p.position = pos
	p.sync()
}

// OnWallCollision reacts to a push-out along normal. Floor contacts land
// quietly. Side contacts bounce back horizontally, throw sparks and play the
// collision cue at most once per cooldown.
func (p *Player) OnWallCollision(normal rl.Vector3, fx effects.Sink) {
	if normal.Y > 0.5 {
		if p.velocity.Y < 0 {
			p.velocity.Y = 0
		}
		return
	}

	bounce := rl.Vector3{X: normal.X, Z: normal.Z}
	if rl.Vector3Length(bounce) > 0 {
		p.Displace(rl.Vector3Scale(rl.Vector3Normalize(bounce), p.cfg.WallBounce))
	}

	fx.Emit(effects.Burst{
		Position: rl.Vector3Add(p.position, rl.Vector3Scale(normal, 0.6)),
		Velocity: rl.Vector3Scale(normal, 3),
		Color:    sparkColor,
		Size:     5,
		Lifetime: 0.5,
		Count:    10,
	})

	if p.wallCueCooldown <= 0 {
		fx.PlayCue(effects.CueWallCollision, 0.6)
		p.wallCueCooldown = p.cfg.WallCueCooldown
	}
}

// OnObstacleHit knocks the player along dir and flashes red.
func (p *Player) OnObstacleHit(dir rl.Vector3, fx effects.Sink) {
	p.Displace(rl.Vector3Scale(dir, p.cfg.Knockback))
	p.FlashTimer = p.cfg.FlashDuration

	fx.Emit(effects.Burst{
		Position: p.position,
		Velocity: rl.Vector3Scale(dir, 8),
		Color:    impactColor,
		Size:     8,
		Lifetime: 0.7,
		Count:    20,
	})
	fx.PlayCue(effects.CueObstacleHit, 0.8)
}

// TakeDamage removes one heart and reports whether the player died.
func (p *Player) TakeDamage() bool {
	if p.Hearts > 0 {
		p.Hearts--
	}
	p.FlashTimer = p.cfg.FlashDuration
	return p.Hearts <= 0
}

// Heal adds hearts up to the configured maximum.
func (p *Player) Heal(n int) {
	p.Hearts = min(p.cfg.MaxHearts, p.Hearts+n)
}

// RestoreHearts refills to the starting amount.
func (p *Player) RestoreHearts() {
	p.Hearts = p.cfg.Hearts
}

func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

func abs(x float32) float32 {
	return float32(math.Abs(float64(x)))
}
