package effects

import (
	"math"
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	particleGravity = 9.8
	jitterScale     = 0.2
	explosionSize   = 0.2
	explosionLife   = 1.0
)

type Particle struct {
	Position rl.Vector3
	Velocity rl.Vector3
	Color    rl.Color
	Size     float32
	Lifetime float32
	Age      float32
}

// Alpha fades linearly from 1 to 0 over the particle's life.
func (p Particle) Alpha() float32 {
	if p.Lifetime <= 0 {
		return 0
	}
	return 1 - p.Age/p.Lifetime
}

// Pool is a bounded particle system. Requests beyond capacity are dropped.
type Pool struct {
	particles []Particle
	max       int
	rng       *rand.Rand
}

func NewPool(max int, seed int64) *Pool {
	if max < 0 {
		max = 0
	}
	return &Pool{
		particles: make([]Particle, 0, max),
		max:       max,
		rng:       rand.New(rand.NewSource(seed)),
	}
}

// Emit spawns b.Count particles. Directed bursts get a small random spread
// around b.Velocity; explosion bursts pick a random direction per particle.
func (p *Pool) Emit(b Burst) {
	if b.Shape == BurstExplosion {
		p.explode(b)
		return
	}
	for i := 0; i < b.Count && len(p.particles) < p.max; i++ {
		p.particles = append(p.particles, Particle{
			Position: b.Position,
			Velocity: rl.Vector3Add(b.Velocity, rl.Vector3Scale(p.jitter(), jitterScale)),
			Color:    b.Color,
			Size:     b.Size,
			Lifetime: b.Lifetime,
		})
	}
}

func (p *Pool) explode(b Burst) {
	size, life := b.Size, b.Lifetime
	if size <= 0 {
		size = explosionSize
	}
	if life <= 0 {
		life = explosionLife
	}
	for i := 0; i < b.Count && len(p.particles) < p.max; i++ {
		theta := p.rng.Float64() * 2 * math.Pi
		phi := p.rng.Float64() * math.Pi
		speed := float32(2 + p.rng.Float64()*3)
		dir := rl.Vector3{
			X: float32(math.Sin(phi) * math.Cos(theta)),
			Y: float32(math.Cos(phi)),
			Z: float32(math.Sin(phi) * math.Sin(theta)),
		}
		p.particles = append(p.particles, Particle{
			Position: b.Position,
			Velocity: rl.Vector3Scale(dir, speed),
			Color:    b.Color,
			Size:     size,
			Lifetime: life,
		})
	}
}

func (p *Pool) jitter() rl.Vector3 {
	return rl.Vector3{
		X: p.rng.Float32() - 0.5,
		Y: p.rng.Float32() - 0.5,
		Z: p.rng.Float32() - 0.5,
	}
}

// Update ages, moves, and drops expired particles in place.
func (p *Pool) Update(deltaTime float32) {
	alive := p.particles[:0]
	for _, pt := range p.particles {
		pt.Age += deltaTime
		if pt.Age >= pt.Lifetime {
			continue
		}
		pt.Position = rl.Vector3Add(pt.Position, rl.Vector3Scale(pt.Velocity, deltaTime))
		pt.Velocity.Y -= particleGravity * deltaTime
		alive = append(alive, pt)
	}
	p.particles = alive
}

// Particles returns the live particles. The slice is reused by the next Update.
func (p *Pool) Particles() []Particle {
	return p.particles
}

func (p *Pool) Len() int {
	return len(p.particles)
}

func (p *Pool) Clear() {
	p.particles = p.particles[:0]
}
