// Package picking provides ray casting utilities for pointer hit testing.
package picking

import (
	"github.com/Faultbox/squish/pkg/math"
)

// epsilon guards the degenerate denominators of the intersection tests.
const epsilon = 1e-4

// Ray represents a ray in 3D space with origin and normalized direction.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3
}

// FromNDC converts normalized device coordinates (-1..1, y up) to a
// world-space ray. invViewProj is the inverse of the view-projection matrix.
func FromNDC(ndcX, ndcY float32, invViewProj math.Mat4) Ray {
	nearWorld := invViewProj.MulVec4(math.Vec4{ndcX, ndcY, -1, 1})
	farWorld := invViewProj.MulVec4(math.Vec4{ndcX, ndcY, 1, 1})

	if nearWorld[3] != 0 {
		nearWorld[0] /= nearWorld[3]
		nearWorld[1] /= nearWorld[3]
		nearWorld[2] /= nearWorld[3]
	}
	if farWorld[3] != 0 {
		farWorld[0] /= farWorld[3]
		farWorld[1] /= farWorld[3]
		farWorld[2] /= farWorld[3]
	}

	origin := math.Vec3{X: nearWorld[0], Y: nearWorld[1], Z: nearWorld[2]}
	dir := math.Vec3{
		X: farWorld[0] - nearWorld[0],
		Y: farWorld[1] - nearWorld[1],
		Z: farWorld[2] - nearWorld[2],
	}.Normalize()

	return Ray{Origin: origin, Direction: dir}
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) math.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// IntersectPlane intersects the ray with the plane through point with the
// given normal. Returns ok=false for near-parallel rays or hits behind the
// origin, never dividing by a degenerate denominator.
func (r Ray) IntersectPlane(point, normal math.Vec3) (math.Vec3, bool) {
	denom := r.Direction.Dot(normal)
	if math.Abs(denom) < epsilon {
		return math.Vec3{}, false
	}

	t := point.Sub(r.Origin).Dot(normal) / denom
	if t < 0 {
		return math.Vec3{}, false
	}
	return r.At(t), true
}

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min math.Vec3
	Max math.Vec3
}

// IntersectAABB runs the slab test against the box and returns the entry
// distance. A ray starting inside the box reports the exit distance.
func (r Ray) IntersectAABB(box AABB) (float32, bool) {
	origin := [3]float32{r.Origin.X, r.Origin.Y, r.Origin.Z}
	dir := [3]float32{r.Direction.X, r.Direction.Y, r.Direction.Z}
	lo := [3]float32{box.Min.X, box.Min.Y, box.Min.Z}
	hi := [3]float32{box.Max.X, box.Max.Y, box.Max.Z}

	tmin := math.Inf(-1)
	tmax := math.Inf(1)

	for axis := 0; axis < 3; axis++ {
		if dir[axis] == 0 {
			if origin[axis] < lo[axis] || origin[axis] > hi[axis] {
				return 0, false
			}
			continue
		}
		t1 := (lo[axis] - origin[axis]) / dir[axis]
		t2 := (hi[axis] - origin[axis]) / dir[axis]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
	}

	if tmax < tmin || tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return tmax, true // inside the box
	}
	return tmin, true
}

// IntersectSphere tests the ray against a sphere and returns the nearest
// hit point in front of the origin.
func (r Ray) IntersectSphere(center math.Vec3, radius float32) (math.Vec3, bool) {
	oc := r.Origin.Sub(center)
	b := oc.Dot(r.Direction)
	c := oc.LengthSq() - radius*radius

	disc := b*b - c
	if disc < 0 {
		return math.Vec3{}, false
	}

	sq := math.Sqrt(disc)
	t := -b - sq
	if t < 0 {
		t = -b + sq // ray starts inside the sphere
	}
	if t < 0 {
		return math.Vec3{}, false
	}
	return r.At(t), true
}
