package button

import (
	"math/rand"
	"testing"

	"github.com/Faultbox/squish/internal/engine/mesh"
	"github.com/Faultbox/squish/pkg/math"
)

func TestWeightsInUnitRange(t *testing.T) {
	tun := DefaultTuning()
	rng := rand.New(rand.NewSource(1))

	for trial := 0; trial < 20; trial++ {
		points := make([]math.Vec3, 200)
		for i := range points {
			points[i] = math.Vec3{
				X: rng.Float32()*4 - 2,
				Y: rng.Float32() * 2,
				Z: rng.Float32()*4 - 2,
			}
		}
		grab := points[rng.Intn(len(points))]

		weights := computeWeights(points, grab, tun)
		for i, w := range weights {
			if w < 0 || w > 1 {
				t.Fatalf("trial %d: weight[%d] = %v out of [0,1]", trial, i, w)
			}
		}
	}
}

func TestWeightAtGrabVertexIsOne(t *testing.T) {
	tun := DefaultTuning()
	m := mesh.NewButton(16, 8, 1.0, 0.8)
	grab := m.Rest[0] // apex

	weights := computeWeights(m.Rest, grab, tun)
	if weights[0] < 0.9999 {
		t.Errorf("weight at grab vertex = %v, want 1.0", weights[0])
	}
}

func TestFalloffMonotonic(t *testing.T) {
	tun := DefaultTuning()
	rng := rand.New(rand.NewSource(2))

	for trial := 0; trial < 1000; trial++ {
		a := rng.Float32() * 10
		b := a + rng.Float32()*10
		wa := falloff(a, tun.Softness)
		wb := falloff(b, tun.Softness)
		if wb > wa {
			t.Fatalf("falloff not monotone: f(%v)=%v < f(%v)=%v", a, wa, b, wb)
		}
	}
}

func TestWeightEpsilonSnapsToZero(t *testing.T) {
	tun := DefaultTuning()
	points := []math.Vec3{
		{X: 0, Y: 1, Z: 0},   // grab point
		{X: 50, Y: 1, Z: 0},  // far away
		{X: 0, Y: 1, Z: -50}, // far away
	}

	weights := computeWeights(points, points[0], tun)
	if weights[1] != 0 || weights[2] != 0 {
		t.Errorf("distant weights = %v, %v, want exactly 0", weights[1], weights[2])
	}
}

func TestBasePinningAnchorsLowVertices(t *testing.T) {
	tun := DefaultTuning()
	grab := math.Vec3{Y: 1}
	points := []math.Vec3{
		{X: 0.1, Y: 1, Z: 0},    // beside the grab
		{X: 0.1, Y: 0.05, Z: 0}, // near the base
	}

	weights := computeWeights(points, grab, tun)
	if weights[1] >= weights[0] {
		t.Errorf("base vertex weight %v not pinned below grab-height weight %v", weights[1], weights[0])
	}
}

func TestZeroGrabHeightDoesNotDivide(t *testing.T) {
	tun := DefaultTuning()
	points := []math.Vec3{{X: 0.2}, {X: -0.2, Y: 0.0}}

	// Grab exactly at the base plane: pinning must be skipped, not divide
	// by zero.
	weights := computeWeights(points, math.Vec3{}, tun)
	for i, w := range weights {
		if w != w { // NaN check
			t.Fatalf("weight[%d] is NaN", i)
		}
	}
}
