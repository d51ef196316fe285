package mesh

import (
	gomath "math"

	"github.com/Faultbox/squish/pkg/math"
)

// NewButton builds the squishy button: a gumdrop dome sitting on the y=0
// plane, closed with a base disk. segments is the number of longitude
// steps (>= 3), rings the number of latitude rows between apex and base
// (>= 2). radius is the footprint radius, height the apex height.
func NewButton(segments, rings int, radius, height float32) *Mesh {
	if segments < 3 {
		segments = 3
	}
	if rings < 2 {
		rings = 2
	}

	var positions []math.Vec3
	var indices []uint32

	// Apex.
	positions = append(positions, math.Vec3{X: 0, Y: height, Z: 0})

	// Latitude rings from just below the apex down to the rim at y=0.
	// The dome follows a hemisphere profile with a slight outward bulge
	// near the base so the silhouette reads as a gumdrop, not a ball.
	for r := 1; r <= rings; r++ {
		lat := float64(r) / float64(rings) * gomath.Pi / 2
		y := height * float32(gomath.Cos(lat))
		ringRadius := radius * float32(gomath.Sin(lat))
		bulge := 1 + 0.08*float32(gomath.Sin(lat*2))
		ringRadius *= bulge

		for s := 0; s < segments; s++ {
			lon := float64(s) / float64(segments) * 2 * gomath.Pi
			positions = append(positions, math.Vec3{
				X: ringRadius * float32(gomath.Cos(lon)),
				Y: y,
				Z: ringRadius * float32(gomath.Sin(lon)),
			})
		}
	}

	// Base center, closing the bottom.
	baseCenter := uint32(len(positions))
	positions = append(positions, math.Vec3{})

	ringStart := func(r int) uint32 { return uint32(1 + (r-1)*segments) }

	// Apex fan.
	first := ringStart(1)
	for s := 0; s < segments; s++ {
		next := (s + 1) % segments
		indices = append(indices, 0, first+uint32(next), first+uint32(s))
	}

	// Quads between consecutive rings.
	for r := 1; r < rings; r++ {
		a := ringStart(r)
		b := ringStart(r + 1)
		for s := 0; s < segments; s++ {
			next := (s + 1) % segments
			indices = append(indices,
				a+uint32(s), a+uint32(next), b+uint32(s),
				b+uint32(s), a+uint32(next), b+uint32(next),
			)
		}
	}

	// Base fan, wound downward.
	rim := ringStart(rings)
	for s := 0; s < segments; s++ {
		next := (s + 1) % segments
		indices = append(indices, baseCenter, rim+uint32(s), rim+uint32(next))
	}

	return New(positions, indices)
}
