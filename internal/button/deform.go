package button

import (
	"github.com/Faultbox/squish/internal/engine/mesh"
	"github.com/Faultbox/squish/pkg/math"
)

// applyDeformation rewrites the mesh's live buffer for the current drag
// offset and press depth, then recomputes normals. Drag is given in world
// units and divided by scale first, since displacement applies before the
// object's scale transform.
//
// Pressing inward (net vertical drag below the rest surface) does not sink
// the button: the vertical component is dampened by CompressionFactor and
// traded for a radial squash proportional to each vertex's own lateral
// rest offset, which is what produces the outward splat silhouette.
//
// With a zero offset, zero press and all-zero weights this restores the
// exact rest pose.
func applyDeformation(m *mesh.Mesh, weights []float32, drag math.Vec3, pressY float32, scale math.Vec3, tun Tuning) {
	local := drag.Div(scale)
	vert := local.Y + pressY

	var squash float32
	if vert < 0 {
		squash = -vert * tun.SquashGain
		vert *= tun.CompressionFactor
	}

	// The press floor deepens with press depth but never below
	// FloorFraction of a vertex's rest height. Tuned by eye, kept verbatim.
	sink := math.Clamp(-vert/tun.PressDepth, 0, 1) * (1 - tun.FloorFraction)

	for i, w := range weights {
		rest := m.Rest[i]
		if w == 0 {
			m.Live[i] = rest
			continue
		}

		nx := rest.X + local.X*w + rest.X*squash*w
		nz := rest.Z + local.Z*w + rest.Z*squash*w
		ny := rest.Y + vert*w

		if floor := rest.Y * (1 - sink); ny < floor {
			ny = floor
		}

		m.Live[i] = math.Vec3{X: nx, Y: ny, Z: nz}
	}

	m.RecomputeNormals()
}
