package button

import (
	"testing"

	"github.com/Faultbox/squish/internal/engine/audio"
	"github.com/Faultbox/squish/internal/engine/mesh"
	"github.com/Faultbox/squish/pkg/math"
)

const testDT = float32(1.0 / 60.0)

// recordingPlayer captures cue frequencies so scenarios can assert on them.
type recordingPlayer struct {
	resumes int
	freqs   []float64
}

func (p *recordingPlayer) Resume() { p.resumes++ }

func (p *recordingPlayer) PlayTone(freq float64, _ audio.Waveform, _, _ float64) {
	p.freqs = append(p.freqs, freq)
}

func (p *recordingPlayer) played(freq float64) bool {
	for _, f := range p.freqs {
		if f == freq {
			return true
		}
	}
	return false
}

// newTestEngine builds an engine with a fixed orbit-style camera and returns
// the view-projection matrix used to convert world points to pointer NDC.
func newTestEngine(player TonePlayer) (*Engine, math.Mat4) {
	m := mesh.NewButton(24, 8, 1.0, 1.2)
	e := New(m, DefaultTuning(), player, 7)

	camPos := math.Vec3{Y: 2.5, Z: 5}
	view := math.LookAt(camPos, math.Vec3{Y: 0.4}, math.Vec3{Y: 1})
	proj := math.Perspective(0.9, 4.0/3.0, 0.1, 100)
	vp := proj.Mul(view)
	e.SetView(vp.Inverse(), camPos)
	return e, vp
}

func ndcOf(vp math.Mat4, world math.Vec3) (float32, float32) {
	p := vp.TransformVec3(world)
	return p.X, p.Y
}

func grab(e *Engine, vp math.Mat4) {
	x, y := ndcOf(vp, math.Vec3{Y: 1.2}) // apex
	e.PointerDown(x, y)
	e.Tick(testDT)
}

func TestGrabStartsDragging(t *testing.T) {
	player := &recordingPlayer{}
	e, vp := newTestEngine(player)

	grab(e, vp)

	if e.State() != StateDragging {
		t.Fatalf("state after apex press = %v, want %v", e.State(), StateDragging)
	}
	if !player.played(330) {
		t.Error("grab cue did not fire")
	}
}

func TestPressOffButtonDoesNothing(t *testing.T) {
	player := &recordingPlayer{}
	e, _ := newTestEngine(player)

	e.PointerDown(0.9, 0.9)
	e.Tick(testDT)

	if e.State() != StateIdle {
		t.Fatalf("state after missed press = %v, want %v", e.State(), StateIdle)
	}
	if player.played(330) {
		t.Error("grab cue fired without a hit")
	}
}

func TestDragPastLimitExplodes(t *testing.T) {
	player := &recordingPlayer{}
	e, vp := newTestEngine(player)
	tun := DefaultTuning()

	grab(e, vp)

	// A world point far below the grab plane; its NDC stays well inside
	// the screen edge, so only the stretch limit can trigger.
	x, y := ndcOf(vp, math.Vec3{Y: -2.6})
	if math.Abs(x) > tun.EdgeThreshold || math.Abs(y) > tun.EdgeThreshold {
		t.Fatalf("test pointer (%v, %v) crosses the edge threshold", x, y)
	}
	e.PointerMove(x, y)
	e.Tick(testDT)

	if e.State() != StateExploding {
		t.Fatalf("state after over-stretch = %v, want %v", e.State(), StateExploding)
	}
	if e.Visible() {
		t.Error("mesh still visible after explosion")
	}
	if got := e.Confetti().VisibleCount(); got != tun.ConfettiBurst {
		t.Errorf("visible confetti after burst = %d, want %d", got, tun.ConfettiBurst)
	}
	if !player.played(110) {
		t.Error("explosion cue did not fire")
	}
}

func TestDragOffScreenEdgeExplodes(t *testing.T) {
	player := &recordingPlayer{}
	e, vp := newTestEngine(player)

	grab(e, vp)
	e.PointerMove(0.95, 0)
	e.Tick(testDT)

	if e.State() != StateExploding {
		t.Fatalf("state after edge drag = %v, want %v", e.State(), StateExploding)
	}
}

func TestReleaseSpringsBackToRest(t *testing.T) {
	player := &recordingPlayer{}
	e, vp := newTestEngine(player)

	grab(e, vp)
	e.PointerMove(0, 0) // moderate pull toward screen center
	e.Tick(testDT)

	if e.State() != StateDragging {
		t.Fatalf("moderate drag flipped state to %v", e.State())
	}
	if e.DragOffset().Length() < 0.2 {
		t.Fatalf("drag offset %v too small for a meaningful pull", e.DragOffset())
	}

	e.PointerUp(0, 0)
	for i := 0; i < 120; i++ {
		e.Tick(testDT)
	}

	if e.State() != StateIdle {
		t.Fatalf("state after release = %v, want %v", e.State(), StateIdle)
	}
	if got := e.DragOffset().Length(); got > 0.01 {
		t.Errorf("drag offset %v did not settle", got)
	}
	for i, v := range e.Mesh().Live {
		if v != e.Mesh().Rest[i] {
			t.Fatalf("vertex %d = %v after settling, want rest %v", i, v, e.Mesh().Rest[i])
		}
	}
}

func TestPointerCancelReleasesDrag(t *testing.T) {
	player := &recordingPlayer{}
	e, vp := newTestEngine(player)

	grab(e, vp)
	e.PointerMove(0, 0)
	e.Tick(testDT)
	e.PointerCancel()
	e.Tick(testDT)

	if e.State() != StateIdle {
		t.Fatalf("state after cancel = %v, want %v", e.State(), StateIdle)
	}
}

func TestExplosionRegeneratesToExactRest(t *testing.T) {
	player := &recordingPlayer{}
	e, vp := newTestEngine(player)

	grab(e, vp)
	e.PointerMove(0.95, 0)
	e.Tick(testDT)
	if e.State() != StateExploding {
		t.Fatalf("setup failed: state %v", e.State())
	}

	sawRegen := false
	for i := 0; i < 300 && e.State() != StateIdle; i++ {
		e.Tick(testDT)
		if e.State() == StateRegenerating {
			sawRegen = true
		}
	}
	if !sawRegen {
		t.Fatal("engine never entered regeneration")
	}
	if e.State() != StateIdle {
		t.Fatal("engine never returned to idle after explosion")
	}
	if !e.Visible() {
		t.Error("mesh hidden after regeneration")
	}
	if !player.played(523) {
		t.Error("regrown cue did not fire")
	}

	// The first idle tick layers the heartbeat pulse back on; the return
	// transform from regeneration itself must be the exact rest values.
	pos, scale, rotZ := e.Transform()
	if pos.DistanceSq(math.Vec3{}) > 0.01 {
		t.Errorf("position %v far from rest after regeneration", pos)
	}
	if math.Abs(scale.X-1) > 0.1 || rotZ != 0 {
		t.Errorf("transform (%v, %v) not settled at rest", scale, rotZ)
	}
}

func TestInactiveEngineIsSilentAndUngrabbable(t *testing.T) {
	player := &recordingPlayer{}
	e, vp := newTestEngine(player)

	e.SetActive(false)
	e.SetActive(false) // idempotent
	for i := 0; i < 120; i++ {
		e.Tick(testDT)
	}
	if len(player.freqs) != 0 {
		t.Fatalf("inactive engine played %d cues", len(player.freqs))
	}
	if e.Visible() {
		t.Error("inactive engine reports visible")
	}

	x, y := ndcOf(vp, math.Vec3{Y: 1.2})
	e.PointerDown(x, y)
	e.Tick(testDT)
	if e.State() != StateIdle {
		t.Fatalf("inactive engine accepted a grab: %v", e.State())
	}

	e.SetActive(true)
	e.Tick(testDT)
	if !player.played(55) {
		t.Error("heartbeat did not resume after reactivation")
	}
}

func TestTickClampsRunawayDelta(t *testing.T) {
	e, _ := newTestEngine(nil)

	e.Tick(10)
	e.Tick(-5)

	if e.State() != StateIdle {
		t.Fatalf("oversized ticks disturbed state: %v", e.State())
	}
	_, scale, _ := e.Transform()
	if scale.X < 0.5 || scale.X > 1.5 {
		t.Errorf("scale %v blew up under clamped ticks", scale)
	}
}
