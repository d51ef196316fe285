// Package lighting provides the scene's light setup.
package lighting

import (
	gomath "math"

	"github.com/Faultbox/squish/pkg/math"
)

// Directional is a single infinite light. Direction points from the light
// toward the scene.
type Directional struct {
	Direction math.Vec3
	Ambient   float32
	Diffuse   float32
}

// FromAngles builds a light direction from a longitude/latitude pair in
// degrees. Longitude rotates around the Y axis, latitude is the elevation
// above the horizon.
func FromAngles(longitude, latitude float32) math.Vec3 {
	lon := float64(longitude) * gomath.Pi / 180
	lat := float64(latitude) * gomath.Pi / 180

	// Spherical to Cartesian; the result points toward the light, so the
	// direction onto the scene is its negation.
	toLight := math.Vec3{
		X: float32(gomath.Cos(lat) * gomath.Sin(lon)),
		Y: float32(gomath.Sin(lat)),
		Z: float32(gomath.Cos(lat) * gomath.Cos(lon)),
	}
	return toLight.Scale(-1)
}

// Key returns the default key light: high and slightly behind the camera's
// left shoulder, with enough ambient that the unlit side stays readable.
func Key() Directional {
	return Directional{
		Direction: FromAngles(220, 55),
		Ambient:   0.35,
		Diffuse:   0.65,
	}
}
