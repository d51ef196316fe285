package button

import (
	"math/rand"

	"github.com/Faultbox/squish/pkg/math"
)

// confettiPalette is the fixed set of burst colors.
var confettiPalette = [][3]float32{
	{0.95, 0.26, 0.21},
	{1.00, 0.76, 0.03},
	{0.30, 0.69, 0.31},
	{0.13, 0.59, 0.95},
	{0.61, 0.15, 0.69},
	{1.00, 0.44, 0.26},
}

// ConfettiParticle is one pooled burst particle.
type ConfettiParticle struct {
	Position   math.Vec3
	Velocity   math.Vec3
	Rotation   math.Vec3
	AngularVel math.Vec3
	Color      [3]float32
	Life       float32 // decays to 0
	SwayPhase  float32 // per-particle, seeded at spawn
	Scale      float32
	Visible    bool
}

// ConfettiPool is a fixed-capacity particle pool. Bursts write cyclically,
// recycling the oldest entries regardless of remaining life; the pool
// never grows.
type ConfettiPool struct {
	particles []ConfettiParticle
	next      int // cyclic write index
	age       float32
	gravity   float32
	drag      float32
	sway      float32
	deathY    float32
	rng       *rand.Rand
}

// NewConfettiPool allocates a pool with the given fixed capacity.
func NewConfettiPool(tun Tuning, rng *rand.Rand) *ConfettiPool {
	capacity := tun.ConfettiCapacity
	if capacity < 1 {
		capacity = 1
	}
	return &ConfettiPool{
		particles: make([]ConfettiParticle, capacity),
		gravity:   tun.ConfettiGravity,
		drag:      tun.ConfettiDrag,
		sway:      tun.ConfettiSway,
		deathY:    tun.ConfettiDeathY,
		rng:       rng,
	}
}

// Burst resets count particles around center with randomized outward
// velocities. Requesting more than the capacity simply recycles across the
// whole pool.
func (p *ConfettiPool) Burst(center math.Vec3, count int) {
	for i := 0; i < count; i++ {
		part := &p.particles[p.next]
		p.next = (p.next + 1) % len(p.particles)

		jitter := math.Vec3{
			X: (p.rng.Float32() - 0.5) * 0.3,
			Y: (p.rng.Float32() - 0.5) * 0.3,
			Z: (p.rng.Float32() - 0.5) * 0.3,
		}
		part.Position = center.Add(jitter)

		// Outward radial velocity with upward bias.
		dir := math.Vec3{
			X: p.rng.Float32()*2 - 1,
			Y: p.rng.Float32()*1.2 + 0.4,
			Z: p.rng.Float32()*2 - 1,
		}.Normalize()
		speed := 0.04 + p.rng.Float32()*0.06
		part.Velocity = dir.Scale(speed)

		part.AngularVel = math.Vec3{
			X: (p.rng.Float32() - 0.5) * 0.4,
			Y: (p.rng.Float32() - 0.5) * 0.4,
			Z: (p.rng.Float32() - 0.5) * 0.4,
		}
		part.Rotation = math.Vec3{}
		part.Color = confettiPalette[p.rng.Intn(len(confettiPalette))]
		part.Life = 0.7 + p.rng.Float32()*0.5
		part.SwayPhase = p.rng.Float32() * 2 * 3.14159265
		part.Scale = 1
		part.Visible = true
	}
}

// Update integrates every visible particle. f is the frame factor
// (dt * 60), so per-tick constants stay stable across frame rates.
func (p *ConfettiPool) Update(f float32) {
	p.age += f

	for i := range p.particles {
		part := &p.particles[i]
		if !part.Visible {
			continue
		}

		part.Position = part.Position.Add(part.Velocity.Scale(f))
		part.Velocity.Y -= p.gravity * f
		part.Velocity = part.Velocity.Scale(dragFactor(p.drag, f))

		// Sinusoidal lateral sway keyed by pool age plus the particle's
		// own phase, so particles flutter out of lockstep.
		part.Position.X += math.Sin(p.age*0.15+part.SwayPhase) * p.sway * f

		part.Rotation = part.Rotation.Add(part.AngularVel.Scale(f))

		part.Life -= 0.011 * f
		part.Scale = math.Clamp(part.Life, 0, 1)

		if part.Life <= 0 || part.Position.Y < p.deathY {
			part.Visible = false
		}
	}
}

// VisibleCount returns the number of live particles, never above capacity.
func (p *ConfettiPool) VisibleCount() int {
	n := 0
	for i := range p.particles {
		if p.particles[i].Visible {
			n++
		}
	}
	return n
}

// Particles exposes the pool for rendering. Entries with Visible false
// must be skipped.
func (p *ConfettiPool) Particles() []ConfettiParticle {
	return p.particles
}

// dragFactor converts a per-tick drag multiplier to a frame factor f.
func dragFactor(drag, f float32) float32 {
	d := 1 - (1-drag)*f
	if d < 0 {
		return 0
	}
	return d
}
