package button

import (
	"github.com/Faultbox/squish/pkg/math"
)

// grabHeightEpsilon guards the base-pinning division for grabs at the rim.
const grabHeightEpsilon = 1e-4

// falloff is the Gaussian grab influence for a squared distance dSq and
// softness sigma. Monotonically non-increasing in dSq, 1 at dSq = 0.
func falloff(dSq, sigma float32) float32 {
	return math.Exp(-dSq / (2 * sigma * sigma))
}

// computeWeights builds the per-vertex influence field for a grab at the
// given point in mesh-local rest coordinates. Weights are in [0,1], exactly
// 1 at the grab point, pinned toward 0 near the base so the button stays
// anchored, and snapped to exactly 0 below WeightEpsilon so far vertices
// never drift off their rest pose.
//
// Called once per grab, not per tick.
func computeWeights(rest []math.Vec3, grab math.Vec3, tun Tuning) []float32 {
	weights := make([]float32, len(rest))

	for i, p := range rest {
		w := falloff(p.DistanceSq(grab), tun.Softness)

		// Vertices below the grab height follow less the closer they sit
		// to the base, anchoring the silhouette.
		if p.Y < grab.Y && grab.Y > grabHeightEpsilon {
			pin := math.Pow(math.Clamp(p.Y/grab.Y, 0, 1), tun.PinExponent)
			w *= pin
		}

		if w < tun.WeightEpsilon {
			w = 0
		}
		weights[i] = w
	}

	return weights
}

// anyWeight reports whether the field still influences any vertex.
func anyWeight(weights []float32) bool {
	for _, w := range weights {
		if w != 0 {
			return true
		}
	}
	return false
}
