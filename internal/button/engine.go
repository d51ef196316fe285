package button

import (
	"math/rand"
	"sync"

	"go.uber.org/zap"

	"github.com/Faultbox/squish/internal/engine/audio"
	"github.com/Faultbox/squish/internal/engine/mesh"
	"github.com/Faultbox/squish/internal/engine/picking"
	"github.com/Faultbox/squish/internal/logger"
	"github.com/Faultbox/squish/pkg/math"
)

// maxTickDelta clamps dt so a stalled window resuming with a huge gap
// cannot destabilize the integration.
const maxTickDelta = 0.1

// TonePlayer is the audio cue service the engine fires into. Calls are
// fire-and-forget and may silently no-op when the backend is down.
type TonePlayer interface {
	Resume()
	PlayTone(freq float64, wave audio.Waveform, duration, volume float64)
}

type noopPlayer struct{}

func (noopPlayer) Resume()                                            {}
func (noopPlayer) PlayTone(float64, audio.Waveform, float64, float64) {}

// pointer intent kinds, recorded by event handlers and consumed at tick
// start. Handlers never touch the mesh or the pools directly.
type intentKind int

const (
	intentDown intentKind = iota
	intentMove
	intentUp
	intentCancel
)

type pointerIntent struct {
	kind intentKind
	x, y float32 // NDC
}

// Engine owns the deformable button: its mesh buffers, drag state, state
// machine, particle pools and heartbeat. All mutation happens inside
// Tick; pointer handlers only record intent.
type Engine struct {
	tun  Tuning
	mesh *mesh.Mesh
	rng  *rand.Rand

	audio TonePlayer

	// Base transform. The render transform layers pulse/regrowth on top.
	basePos   math.Vec3
	baseScale math.Vec3

	renderPos   math.Vec3
	renderScale math.Vec3
	renderRotZ  float32

	state  State
	active bool
	hidden bool

	// Drag state, owned by the tick.
	grabPoint      math.Vec3
	localGrabPoint math.Vec3
	dragOffset     math.Vec3
	weights        []float32
	spring         returnSpring
	pressY         float32
	targetPressY   float32
	deformed       bool

	explodeTimer float32

	heart    heartbeat
	regrow   regrowth
	confetti *ConfettiPool
	drips    *DripSystem

	// Camera view for ray casting, set from the tick goroutine.
	invViewProj math.Mat4
	camPos      math.Vec3
	haveView    bool

	mu      sync.Mutex
	pending []pointerIntent
}

// New creates an engine around the given mesh. player may be nil for a
// silent engine. seed fixes the randomness for reproducible tests.
func New(m *mesh.Mesh, tun Tuning, player TonePlayer, seed int64) *Engine {
	if player == nil {
		player = noopPlayer{}
	}
	rng := rand.New(rand.NewSource(seed))

	return &Engine{
		tun:         tun,
		mesh:        m,
		rng:         rng,
		audio:       player,
		baseScale:   math.Vec3{X: 1, Y: 1, Z: 1},
		renderScale: math.Vec3{X: 1, Y: 1, Z: 1},
		state:       StateIdle,
		active:      true,
		spring:      newReturnSpring(tun),
		heart:       newHeartbeat(tun),
		regrow:      newRegrowth(tun),
		confetti:    NewConfettiPool(tun, rng),
		drips:       NewDripSystem(tun, rng),
		pending:     make([]pointerIntent, 0, 8),
	}
}

// SetView updates the camera matrices used for pointer ray casting.
// Must be called from the tick goroutine.
func (e *Engine) SetView(invViewProj math.Mat4, camPos math.Vec3) {
	e.invViewProj = invViewProj
	e.camPos = camPos
	e.haveView = true
}

// SetActive pauses or resumes the toy. Idempotent and safe before the
// first tick: the heartbeat clock simply stops accruing while inactive.
func (e *Engine) SetActive(active bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.active = active
}

// PointerDown records a press at NDC coordinates.
func (e *Engine) PointerDown(x, y float32) { e.push(pointerIntent{intentDown, x, y}) }

// PointerMove records pointer motion at NDC coordinates.
func (e *Engine) PointerMove(x, y float32) { e.push(pointerIntent{intentMove, x, y}) }

// PointerUp records a release.
func (e *Engine) PointerUp(x, y float32) { e.push(pointerIntent{intentUp, x, y}) }

// PointerCancel records an aborted pointer stream (e.g. touch cancel).
func (e *Engine) PointerCancel() { e.push(pointerIntent{kind: intentCancel}) }

func (e *Engine) push(in pointerIntent) {
	e.mu.Lock()
	e.pending = append(e.pending, in)
	e.mu.Unlock()
}

// Tick advances the engine by dt seconds: drains pointer intent, runs the
// return spring, rewrites the mesh, advances heartbeat or regrowth, then
// integrates both particle systems. Mesh and pools are mutated only here.
func (e *Engine) Tick(dt float32) {
	if dt > maxTickDelta {
		dt = maxTickDelta
	}
	if dt < 0 {
		dt = 0
	}
	f := dt * 60 // frame factor for per-tick-tuned constants

	e.mu.Lock()
	intents := append([]pointerIntent(nil), e.pending...)
	e.pending = e.pending[:0]
	active := e.active
	e.mu.Unlock()

	for _, in := range intents {
		e.applyIntent(in, active)
	}

	e.stepDrag()
	e.stepDeformation()

	switch e.state {
	case StateExploding:
		e.explodeTimer -= dt
		if e.explodeTimer <= 0 {
			e.beginRegrowth()
		}

	case StateRegenerating:
		done := e.regrow.Advance()
		e.renderPos, e.renderScale, e.renderRotZ = e.regrow.Transform(e.basePos, e.baseScale)
		if done {
			e.setState(StateIdle)
			e.cueRegrown()
		}

	default:
		if active {
			pulse, tremor, fire := e.heart.Advance(dt, e.rng)
			e.renderScale = e.baseScale.Scale(pulse)
			e.renderPos = e.basePos.Add(math.Vec3{X: tremor.X, Z: tremor.Y})
			e.renderRotZ = 0
			if fire {
				e.cueBeat()
				if e.state == StateIdle {
					e.drips.Spawn(e.basePos)
				}
			}
		}
	}

	e.confetti.Update(f)
	e.drips.Update(f)
}

// applyIntent resolves one recorded pointer event against the current state.
// active is the snapshot taken under the lock at the top of Tick.
func (e *Engine) applyIntent(in pointerIntent, active bool) {
	switch in.kind {
	case intentDown:
		e.tryGrab(in.x, in.y, active)

	case intentMove:
		if e.state == StateDragging {
			e.updateDrag(in.x, in.y)
		}

	case intentUp, intentCancel:
		e.release()
	}
}

// tryGrab hit-tests the press against the button and starts a drag.
func (e *Engine) tryGrab(x, y float32, active bool) {
	if e.state != StateIdle || !active || !e.haveView {
		return
	}

	center, radius := e.mesh.BoundingSphere()
	worldCenter := e.basePos.Add(center.Mul(e.baseScale))
	worldRadius := radius * maxComponent(e.baseScale)

	ray := picking.FromNDC(x, y, e.invViewProj)
	hit, ok := ray.IntersectSphere(worldCenter, worldRadius)
	if !ok {
		return
	}

	e.grabPoint = hit
	e.localGrabPoint = hit.Sub(e.basePos).Div(e.baseScale)
	e.dragOffset = math.Vec3{}
	e.spring.Stop()
	e.weights = computeWeights(e.mesh.Rest, e.localGrabPoint, e.tun)
	e.targetPressY = -e.tun.PressDepth
	e.setState(StateDragging)
	e.cueGrab()
}

// updateDrag projects the pointer ray onto the camera-facing plane through
// the grab point and derives the new drag offset.
func (e *Engine) updateDrag(x, y float32) {
	if !e.haveView {
		return
	}

	toCam := e.camPos.Sub(e.grabPoint)
	if toCam.LengthSq() < 1e-8 {
		return // degenerate: camera sits on the grab point
	}

	ray := picking.FromNDC(x, y, e.invViewProj)
	proj, ok := ray.IntersectPlane(e.grabPoint, toCam.Normalize())
	if !ok {
		return
	}
	e.dragOffset = proj.Sub(e.grabPoint)

	overLimit := e.dragOffset.Length() > e.tun.SnapLimit
	offEdge := math.Abs(x) > e.tun.EdgeThreshold || math.Abs(y) > e.tun.EdgeThreshold
	if overLimit || offEdge {
		e.explode()
	}
}

// release hands the drag offset to the return spring. The offset is kept,
// not reset, so the surface eases back without a visual pop.
func (e *Engine) release() {
	if e.state != StateDragging {
		return
	}
	e.targetPressY = 0
	e.spring.Start(e.dragOffset)
	e.setState(StateIdle)
}

// explode rips the button off: hide the mesh, burst confetti, and schedule
// regrowth. Already-exploding engines ignore the request.
func (e *Engine) explode() {
	if e.state == StateExploding || e.state == StateRegenerating {
		return
	}

	burstAt := e.grabPoint.Add(e.dragOffset)
	e.setState(StateExploding)
	e.hidden = true
	e.explodeTimer = e.tun.ExplodeDelay
	e.dragOffset = math.Vec3{}
	e.spring.Stop()
	e.weights = nil
	e.pressY = 0
	e.targetPressY = 0
	e.mesh.ResetLive()
	e.deformed = false

	e.confetti.Burst(burstAt, e.tun.ConfettiBurst)
	e.cueExplode()
}

// beginRegrowth shows the button again at a small random offset origin.
func (e *Engine) beginRegrowth() {
	e.regrow.Start(e.rng)
	e.hidden = false
	e.setState(StateRegenerating)
	e.renderPos, e.renderScale, e.renderRotZ = e.regrow.Transform(e.basePos, e.baseScale)
}

// stepDrag eases the press depth and runs the return spring.
func (e *Engine) stepDrag() {
	e.pressY += (e.targetPressY - e.pressY) * e.tun.PressEase
	if math.Abs(e.pressY-e.targetPressY) < 1e-4 {
		e.pressY = e.targetPressY
	}

	if e.spring.Active() {
		e.dragOffset = e.spring.Step(e.dragOffset)
	}
}

// stepDeformation rewrites the live buffer while anything displaces it,
// and restores the exact rest pose once everything has settled.
func (e *Engine) stepDeformation() {
	displaced := anyWeight(e.weights) &&
		(e.dragOffset.LengthSq() > 0 || e.pressY != 0)

	if displaced {
		applyDeformation(e.mesh, e.weights, e.dragOffset, e.pressY, e.baseScale, e.tun)
		e.deformed = true
		return
	}

	if e.deformed {
		e.mesh.ResetLive()
		e.deformed = false
	}
	if e.state != StateDragging && !e.spring.Active() {
		e.weights = nil
	}
}

func (e *Engine) setState(s State) {
	if e.state == s {
		return
	}
	if logger.Log != nil {
		logger.Debug("button state",
			zap.String("from", e.state.String()),
			zap.String("to", s.String()))
	}
	e.state = s
}

// Audio cues. Resume first: the backend may be suspended and repeated
// no-op resumes are tolerated.

func (e *Engine) cueGrab() {
	e.audio.Resume()
	e.audio.PlayTone(330, audio.WaveTriangle, 0.08, 0.5)
}

func (e *Engine) cueBeat() {
	e.audio.Resume()
	e.audio.PlayTone(55, audio.WaveSine, 0.18, 0.6)
}

func (e *Engine) cueExplode() {
	e.audio.Resume()
	e.audio.PlayTone(110, audio.WaveSawtooth, 0.3, 0.7)
}

func (e *Engine) cueRegrown() {
	e.audio.Resume()
	e.audio.PlayTone(523, audio.WaveSine, 0.12, 0.4)
}

// State returns the current animation state.
func (e *Engine) State() State { return e.state }

// Mesh returns the engine's mesh for rendering.
func (e *Engine) Mesh() *mesh.Mesh { return e.mesh }

// Visible reports whether the renderer should draw the button.
func (e *Engine) Visible() bool {
	e.mu.Lock()
	active := e.active
	e.mu.Unlock()
	return active && !e.hidden
}

// Transform returns the render transform: position, scale and Z rotation.
func (e *Engine) Transform() (pos, scale math.Vec3, rotZ float32) {
	return e.renderPos, e.renderScale, e.renderRotZ
}

// DragOffset returns the current drag displacement.
func (e *Engine) DragOffset() math.Vec3 { return e.dragOffset }

// Confetti returns the confetti pool for rendering.
func (e *Engine) Confetti() *ConfettiPool { return e.confetti }

// Drips returns the drip system for rendering.
func (e *Engine) Drips() *DripSystem { return e.drips }

func maxComponent(v math.Vec3) float32 {
	m := v.X
	if v.Y > m {
		m = v.Y
	}
	if v.Z > m {
		m = v.Z
	}
	return m
}
