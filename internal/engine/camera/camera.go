// Package camera provides the fixed orbit camera framing the button.
package camera

import (
	gomath "math"

	"github.com/Faultbox/squish/pkg/math"
)

// OrbitCamera orbits a center point at a fixed distance and pitch. The toy
// does not expose camera controls; the camera only reacts to window resize.
type OrbitCamera struct {
	Center   math.Vec3
	Distance float32
	Pitch    float32 // vertical angle, radians
	Yaw      float32 // horizontal angle, radians

	FovY   float32
	Near   float32
	Far    float32
	aspect float32
}

// New creates the default camera looking slightly down at the button.
func New() *OrbitCamera {
	return &OrbitCamera{
		Center:   math.Vec3{Y: 0.4},
		Distance: 5.0,
		Pitch:    0.45,
		Yaw:      0.0,
		FovY:     0.9,
		Near:     0.1,
		Far:      100.0,
		aspect:   4.0 / 3.0,
	}
}

// SetViewport updates the aspect ratio from the drawable size.
func (c *OrbitCamera) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.aspect = float32(width) / float32(height)
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	x := c.Distance * float32(gomath.Cos(float64(c.Pitch))*gomath.Sin(float64(c.Yaw)))
	y := c.Distance * float32(gomath.Sin(float64(c.Pitch)))
	z := c.Distance * float32(gomath.Cos(float64(c.Pitch))*gomath.Cos(float64(c.Yaw)))

	return c.Center.Add(math.Vec3{X: x, Y: y, Z: z})
}

// Forward returns the normalized view direction.
func (c *OrbitCamera) Forward() math.Vec3 {
	return c.Center.Sub(c.Position()).Normalize()
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), c.Center, math.Vec3{Y: 1})
}

// ProjMatrix returns the perspective projection matrix.
func (c *OrbitCamera) ProjMatrix() math.Mat4 {
	return math.Perspective(c.FovY, c.aspect, c.Near, c.Far)
}

// ViewProj returns projection * view.
func (c *OrbitCamera) ViewProj() math.Mat4 {
	return c.ProjMatrix().Mul(c.ViewMatrix())
}

// InvViewProj returns the inverse view-projection matrix for unprojection.
func (c *OrbitCamera) InvViewProj() math.Mat4 {
	return c.ViewProj().Inverse()
}
