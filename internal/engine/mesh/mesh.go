// Package mesh provides the deformable mesh data model: an immutable
// rest-pose vertex buffer paired with a live buffer rewritten every tick.
package mesh

import (
	"github.com/Faultbox/squish/pkg/math"
)

// Mesh holds an indexed triangle mesh with a rest pose and a live pose.
// Rest is set once at construction and never written again; Live is owned
// by the deformation tick. Dirty signals the renderer to re-upload.
type Mesh struct {
	Rest    []math.Vec3
	Live    []math.Vec3
	Normals []math.Vec3
	Indices []uint32
	Dirty   bool
}

// New creates a mesh from positions and triangle indices. The live buffer
// starts as a copy of the rest pose with normals computed.
func New(positions []math.Vec3, indices []uint32) *Mesh {
	m := &Mesh{
		Rest:    positions,
		Live:    make([]math.Vec3, len(positions)),
		Normals: make([]math.Vec3, len(positions)),
		Indices: indices,
	}
	copy(m.Live, m.Rest)
	m.RecomputeNormals()
	return m
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Rest)
}

// ResetLive restores the live buffer to the exact rest pose.
func (m *Mesh) ResetLive() {
	copy(m.Live, m.Rest)
	m.RecomputeNormals()
}

// RecomputeNormals rebuilds smooth per-vertex normals from the live buffer
// by accumulating area-weighted face normals. Must be called after every
// live-buffer write or lighting goes stale.
func (m *Mesh) RecomputeNormals() {
	for i := range m.Normals {
		m.Normals[i] = math.Vec3{}
	}

	for i := 0; i+2 < len(m.Indices); i += 3 {
		i0, i1, i2 := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		a := m.Live[i0]
		e1 := m.Live[i1].Sub(a)
		e2 := m.Live[i2].Sub(a)
		// Unnormalized cross weights large faces more, which reads better
		// on the stretched regions of a deformed surface.
		n := e1.Cross(e2)
		m.Normals[i0] = m.Normals[i0].Add(n)
		m.Normals[i1] = m.Normals[i1].Add(n)
		m.Normals[i2] = m.Normals[i2].Add(n)
	}

	for i := range m.Normals {
		m.Normals[i] = m.Normals[i].Normalize()
	}

	m.Dirty = true
}

// BoundingSphere returns a sphere enclosing the rest pose, used for grab
// hit-testing.
func (m *Mesh) BoundingSphere() (center math.Vec3, radius float32) {
	if len(m.Rest) == 0 {
		return math.Vec3{}, 0
	}

	for _, p := range m.Rest {
		center = center.Add(p)
	}
	center = center.Scale(1 / float32(len(m.Rest)))

	for _, p := range m.Rest {
		if d := p.DistanceSq(center); d > radius {
			radius = d
		}
	}
	return center, math.Sqrt(radius)
}

// Interleave appends position+normal pairs for every vertex to buf and
// returns it, in the layout the renderer's vertex attributes expect.
func (m *Mesh) Interleave(buf []float32) []float32 {
	buf = buf[:0]
	for i, p := range m.Live {
		n := m.Normals[i]
		buf = append(buf, p.X, p.Y, p.Z, n.X, n.Y, n.Z)
	}
	return buf
}
