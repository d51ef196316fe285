package button

import (
	"math/rand"
	"testing"

	"github.com/Faultbox/squish/pkg/math"
)

func TestHeartbeatFiresOncePerPeriod(t *testing.T) {
	tun := DefaultTuning()
	h := newHeartbeat(tun)
	rng := rand.New(rand.NewSource(1))

	const dt = 1.0 / 60.0
	fires := 0
	for i := 0; i < 375; i++ {
		_, _, fire := h.Advance(dt, rng)
		if fire {
			fires++
		}
	}

	// Float accumulation can tip the clock into one more period right at
	// a boundary tick, so count against the periods the clock entered
	// rather than a wall-clock tally of our own.
	periods := int(h.localTime/h.period) + 1
	if fires != periods {
		t.Fatalf("expected %d beat cues over %d periods, got %d", periods, periods, fires)
	}
}

func TestHeartbeatFireGuardSurvivesTinySteps(t *testing.T) {
	tun := DefaultTuning()
	h := newHeartbeat(tun)
	rng := rand.New(rand.NewSource(2))

	// Many sub-millisecond ticks inside the firing window must still
	// produce a single cue.
	fires := 0
	for i := 0; i < 50; i++ {
		_, _, fire := h.Advance(0.0005, rng)
		if fire {
			fires++
		}
	}
	if fires != 1 {
		t.Fatalf("expected one cue inside the firing window, got %d", fires)
	}
}

func TestHeartbeatPulseBounds(t *testing.T) {
	tun := DefaultTuning()
	h := newHeartbeat(tun)
	rng := rand.New(rand.NewSource(3))

	const dt = 1.0 / 60.0
	sawSwell := false
	for i := 0; i < 300; i++ {
		pulse, tremor, _ := h.Advance(dt, rng)
		if pulse < 1 || pulse > 1+tun.PulseAmplitude+1e-5 {
			t.Fatalf("pulse %v outside [1, 1+amplitude]", pulse)
		}
		if pulse > 1.001 {
			sawSwell = true
		}
		if math.Abs(tremor.X) > tun.TremorAmplitude || math.Abs(tremor.Y) > tun.TremorAmplitude {
			t.Fatalf("tremor %v exceeds amplitude %v", tremor, tun.TremorAmplitude)
		}
	}
	if !sawSwell {
		t.Fatal("pulse never swelled above baseline")
	}
}

func TestRegrowthCompletesInFixedTicks(t *testing.T) {
	tun := DefaultTuning()
	r := newRegrowth(tun)
	r.Start(rand.New(rand.NewSource(4)))

	want := int(1/tun.RegenStep + 0.5)
	ticks := 0
	for !r.Advance() {
		ticks++
		if ticks > want*2 {
			t.Fatalf("regrowth did not complete within %d ticks", want*2)
		}
	}
	ticks++
	if ticks != want {
		t.Fatalf("regrowth took %d ticks, want %d", ticks, want)
	}
}

func TestRegrowthSnapsToRestExactly(t *testing.T) {
	tun := DefaultTuning()
	r := newRegrowth(tun)
	r.Start(rand.New(rand.NewSource(5)))

	restPos := math.Vec3{X: 0.1, Y: 0.2, Z: 0.3}
	restScale := math.Vec3{X: 1, Y: 1, Z: 1}

	for !r.Advance() {
	}
	pos, scale, rotZ := r.Transform(restPos, restScale)
	if pos != restPos || scale != restScale || rotZ != 0 {
		t.Fatalf("completed regrowth = (%v, %v, %v), want exact rest transform", pos, scale, rotZ)
	}
}

func TestRegrowthScaleGrowsFromZero(t *testing.T) {
	tun := DefaultTuning()
	r := newRegrowth(tun)
	r.Start(rand.New(rand.NewSource(6)))

	restScale := math.Vec3{X: 1, Y: 1, Z: 1}
	_, scale0, _ := r.Transform(math.Vec3{}, restScale)
	if scale0.X > 0.01 {
		t.Fatalf("regrowth should start near zero scale, got %v", scale0)
	}

	r.Advance()
	prev := scale0.X
	for i := 0; i < 10; i++ {
		_, s, _ := r.Transform(math.Vec3{}, restScale)
		if s.X < prev-tun.RegenWobble {
			t.Fatalf("scale shrank sharply mid-regrowth: %v -> %v", prev, s.X)
		}
		prev = s.X
		r.Advance()
	}
}
