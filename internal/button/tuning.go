// Package button implements the deformable soft-button interaction engine:
// grab-weighted mesh deformation, spring return, explosion confetti, viscous
// drips and the heartbeat clock, all driven from a single frame tick.
package button

// Tuning gathers every behavioral constant of the engine in one place.
// Ranges document the envelope the visuals were tuned in; values outside
// them are not clamped but have not been balanced.
type Tuning struct {
	// Softness is the Gaussian sigma of the grab weight field. Larger
	// values move the surface more uniformly (stiffer look). Range 0.2-2.0.
	Softness float32
	// PinExponent shapes base pinning below the grab height. Range 0.5-1.2.
	PinExponent float32
	// WeightEpsilon is the cutoff under which a weight snaps to exactly 0,
	// so far vertices return to rest pose with no drift. Range 1e-4 - 1e-2.
	WeightEpsilon float32

	// SpringK is the return-spring restoring constant per tick. Range 0.05-0.3.
	SpringK float32
	// SpringDamping is the return-spring viscosity per tick. Keep <= 0.85:
	// the return must read sticky, never bouncy. Range 0.5-0.85.
	SpringDamping float32
	// SpringEpsilon terminates the return once offset and velocity are both
	// under it, killing sub-pixel jitter. Range 1e-4 - 1e-2.
	SpringEpsilon float32

	// CompressionFactor dampens downward press displacement. Range 0.2-0.6.
	CompressionFactor float32
	// SquashGain converts inverse press depth into the radial splat term.
	// Range 0.2-1.0.
	SquashGain float32
	// FloorFraction is the lowest fraction of a vertex's rest height it can
	// be pressed to; keeps the surface out of the base plane. Range 0.1-0.5.
	FloorFraction float32
	// PressDepth is the target vertical press while the pointer is held.
	// Range 0.1-0.8.
	PressDepth float32
	// PressEase is the per-tick easing of pressY toward its target.
	// Range 0.1-0.5.
	PressEase float32

	// SnapLimit is the drag distance in world units that rips the button
	// off. Range 1.0-4.0.
	SnapLimit float32
	// EdgeThreshold is the pointer NDC magnitude that also triggers the
	// rip-off, whatever the drag distance. Range 0.8-1.0.
	EdgeThreshold float32
	// ExplodeDelay is the pause in seconds between the explosion and the
	// start of regrowth. Range 0.2-1.0.
	ExplodeDelay float32

	// RegenStep is the regrowth progress added per tick; 0.04 means a
	// 25-tick recovery. Range 0.01-0.1.
	RegenStep float32
	// RegenEase is the ease-out exponent of the recovery curve. Range 2-4.
	RegenEase float32
	// RegenWobble scales the sin(t*pi) overshoot on scale and rotation
	// while regrowing. Range 0.05-0.3.
	RegenWobble float32

	// BeatPeriod is the heartbeat cycle in seconds. Range 0.6-3.0.
	BeatPeriod float32
	// PulseFraction is the leading fraction of each period carrying the
	// pulse envelope. Range 0.15-0.4.
	PulseFraction float32
	// PulseAmplitude is the scale gain at pulse peak. Range 0.02-0.12.
	PulseAmplitude float32
	// TremorAmplitude is the X/Z micro jitter making the button look alive.
	// Range 0-0.01.
	TremorAmplitude float32

	// ConfettiCapacity is the fixed pool size; bursts recycle cyclically
	// past it. Range 100-2000.
	ConfettiCapacity int
	// ConfettiBurst is how many particles one explosion requests.
	// Range 50-600.
	ConfettiBurst int
	// ConfettiGravity, ConfettiDrag and ConfettiSway shape the ballistic
	// fall, air resistance and lateral flutter of burst particles.
	ConfettiGravity float32
	ConfettiDrag    float32
	ConfettiSway    float32
	// ConfettiDeathY is the altitude below which a particle is hidden.
	ConfettiDeathY float32

	// DripCapacity caps live drips; the oldest is evicted past it.
	// Range 10-100.
	DripCapacity int
	// DripGravity accelerates falling drips, per tick. Range 0.001-0.02.
	DripGravity float32
	// DripEdgeRadius is the pooling boundary where a drip tips over and
	// starts falling. Must sit within reach of the spawn radius plus the
	// friction-limited pooling travel. Range 0.4-1.0.
	DripEdgeRadius float32
}

// DefaultTuning returns the values the toy shipped with.
func DefaultTuning() Tuning {
	return Tuning{
		Softness:      0.55,
		PinExponent:   0.8,
		WeightEpsilon: 1e-3,

		SpringK:       0.12,
		SpringDamping: 0.82,
		SpringEpsilon: 1e-3,

		CompressionFactor: 0.35,
		SquashGain:        0.55,
		FloorFraction:     0.25,
		PressDepth:        0.4,
		PressEase:         0.25,

		SnapLimit:     2.2,
		EdgeThreshold: 0.92,
		ExplodeDelay:  0.35,

		RegenStep:   0.04,
		RegenEase:   3,
		RegenWobble: 0.15,

		BeatPeriod:      1.25,
		PulseFraction:   0.28,
		PulseAmplitude:  0.06,
		TremorAmplitude: 0.004,

		ConfettiCapacity: 800,
		ConfettiBurst:    180,
		ConfettiGravity:  0.010,
		ConfettiDrag:     0.985,
		ConfettiSway:     0.012,
		ConfettiDeathY:   -6,

		DripCapacity:   40,
		DripGravity:    0.004,
		DripEdgeRadius: 0.55,
	}
}
