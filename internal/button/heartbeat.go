package button

import (
	"math/rand"

	"github.com/Faultbox/squish/pkg/math"
)

// firingFraction is the leading slice of each beat period inside which the
// audio cue may fire.
const firingFraction = 0.06

// heartbeat is the periodic pulse clock. localTime accrues only while the
// button is active, so a pulse never fires silently off-screen and resumes
// without a jump.
type heartbeat struct {
	localTime float32
	period    float32
	beatFired bool

	pulseFraction  float32
	pulseAmplitude float32
	tremor         float32
}

func newHeartbeat(tun Tuning) heartbeat {
	return heartbeat{
		period:         tun.BeatPeriod,
		pulseFraction:  tun.PulseFraction,
		pulseAmplitude: tun.PulseAmplitude,
		tremor:         tun.TremorAmplitude,
	}
}

// Advance moves the clock by dt seconds and returns the pulse scale factor,
// an X/Z tremor offset, and whether the beat cue fires this tick. The cue
// fires at most once per period: beatFired guards it and resets only when
// the phase leaves the firing window.
func (h *heartbeat) Advance(dt float32, rng *rand.Rand) (pulse float32, tremor math.Vec2, fire bool) {
	h.localTime += dt
	phase := math.Mod(h.localTime, h.period)

	pulse = 1
	window := h.period * h.pulseFraction
	if phase < window {
		// One sine arch layered onto the current scale baseline.
		pulse = 1 + h.pulseAmplitude*math.Sin(3.14159265*phase/window)
		tremor = math.Vec2{
			X: (rng.Float32() - 0.5) * 2 * h.tremor,
			Y: (rng.Float32() - 0.5) * 2 * h.tremor,
		}
	}

	if phase < h.period*firingFraction {
		if !h.beatFired {
			h.beatFired = true
			fire = true
		}
	} else {
		h.beatFired = false
	}

	return pulse, tremor, fire
}

// regrowth drives the fixed-duration eased recovery after an explosion.
type regrowth struct {
	progress float32
	step     float32
	ease     float32
	wobble   float32
	origin   math.Vec3 // random regrowth start position
}

func newRegrowth(tun Tuning) regrowth {
	return regrowth{
		step:   tun.RegenStep,
		ease:   tun.RegenEase,
		wobble: tun.RegenWobble,
	}
}

// Start resets progress and picks a small random origin offset around rest.
func (r *regrowth) Start(rng *rand.Rand) {
	r.progress = 0
	r.origin = math.Vec3{
		X: (rng.Float32() - 0.5) * 0.8,
		Y: rng.Float32() * 0.3,
		Z: (rng.Float32() - 0.5) * 0.8,
	}
}

// Advance adds one tick of progress and reports completion.
func (r *regrowth) Advance() bool {
	r.progress += r.step
	return r.progress >= 1
}

// Transform interpolates position, scale and rotation from the regrowth
// origin back to the rest transform with an ease-out curve and a sin(t*pi)
// overshoot wobble. At completion it returns the exact rest values.
func (r *regrowth) Transform(restPos, restScale math.Vec3) (pos, scale math.Vec3, rotZ float32) {
	if r.progress >= 1 {
		return restPos, restScale, 0
	}

	t := math.Clamp(r.progress, 0, 1)
	eased := math.EaseOut(t, r.ease)
	wob := math.Sin(t*3.14159265) * r.wobble

	pos = r.origin.Add(restPos.Sub(r.origin).Scale(eased))
	grow := eased * (1 + wob)
	scale = restScale.Scale(grow)
	rotZ = wob * 0.6
	return pos, scale, rotZ
}
