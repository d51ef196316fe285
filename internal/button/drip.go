package button

import (
	"math/rand"

	"github.com/Faultbox/squish/pkg/math"
)

// DripPhase is the lifecycle phase of a drip.
type DripPhase int

// A drip pools outward along the surface, then falls off the rim. The
// transition happens exactly once; there is no way back.
const (
	PhasePooling DripPhase = iota
	PhaseFalling
)

// Drip is one viscous drip. A frozen drip (Active false) stays in place
// as residue until evicted.
type Drip struct {
	Position math.Vec3
	Velocity math.Vec3 // XZ while pooling, Y while falling
	Scale    math.Vec3
	Phase    DripPhase
	Friction float32
	StopY    float32 // per-drip depth at which a falling drip freezes
	Active   bool
}

// DripSystem owns a bounded collection of drips. Spawning past the cap
// evicts the oldest drip regardless of its phase.
type DripSystem struct {
	drips      []Drip
	capacity   int
	gravity    float32
	edgeRadius float32
	rng        *rand.Rand
}

// NewDripSystem creates a drip collection with the given cap.
func NewDripSystem(tun Tuning, rng *rand.Rand) *DripSystem {
	capacity := tun.DripCapacity
	if capacity < 1 {
		capacity = 1
	}
	return &DripSystem{
		drips:      make([]Drip, 0, capacity),
		capacity:   capacity,
		gravity:    tun.DripGravity,
		edgeRadius: tun.DripEdgeRadius,
		rng:        rng,
	}
}

// Spawn creates 1-3 drips at randomized angle and radius around origin,
// flattened into puddles, drifting outward.
func (d *DripSystem) Spawn(origin math.Vec3) {
	count := 1 + d.rng.Intn(3)
	for i := 0; i < count; i++ {
		angle := d.rng.Float32() * 2 * 3.14159265
		radius := 0.2 + d.rng.Float32()*0.4
		dir := math.Vec3{X: math.Cos(angle), Z: math.Sin(angle)}

		drip := Drip{
			Position: origin.Add(dir.Scale(radius)),
			Velocity: dir.Scale(0.006 + d.rng.Float32()*0.008),
			Scale:    math.Vec3{X: 0.22, Y: 0.06, Z: 0.22},
			Phase:    PhasePooling,
			Friction: 0.90 + d.rng.Float32()*0.06,
			StopY:    -(1.2 + d.rng.Float32()*1.6),
			Active:   true,
		}

		d.drips = append(d.drips, drip)
	}

	// Oldest-first eviction keeps the collection bounded.
	if excess := len(d.drips) - d.capacity; excess > 0 {
		d.drips = append(d.drips[:0], d.drips[excess:]...)
	}
}

// Update advances every active drip by frame factor f (dt * 60).
func (d *DripSystem) Update(f float32) {
	for i := range d.drips {
		drip := &d.drips[i]
		if !drip.Active {
			continue
		}

		switch drip.Phase {
		case PhasePooling:
			drip.Position.X += drip.Velocity.X * f
			drip.Position.Z += drip.Velocity.Z * f
			drip.Velocity = drip.Velocity.Scale(dragFactor(drip.Friction, f))

			if drip.Position.XZ().LengthSq() >= d.edgeRadius*d.edgeRadius {
				// Tip over the rim: snap to the boundary, stop spreading
				// and round the puddle into a drop. Happens exactly once.
				edge := drip.Position.XZ().Normalize().Scale(d.edgeRadius)
				drip.Position.X = edge.X
				drip.Position.Z = edge.Y
				drip.Velocity = math.Vec3{}
				drip.Scale = math.Vec3{X: 0.12, Y: 0.2, Z: 0.12}
				drip.Phase = PhaseFalling
			}

		case PhaseFalling:
			drip.Velocity.Y -= d.gravity * f
			drip.Position.Y += drip.Velocity.Y * f
			drip.Velocity.Y *= dragFactor(drip.Friction, f) // viscosity

			stalled := drip.Position.Y < drip.StopY ||
				(drip.Velocity.Y < 0 && -drip.Velocity.Y < 1e-5)
			if stalled {
				if drip.Position.Y < drip.StopY {
					drip.Position.Y = drip.StopY
				}
				drip.Active = false
			}
		}
	}
}

// Drips exposes the collection for rendering.
func (d *DripSystem) Drips() []Drip {
	return d.drips
}

// Count returns the number of drips currently held.
func (d *DripSystem) Count() int {
	return len(d.drips)
}
