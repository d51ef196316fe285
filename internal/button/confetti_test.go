package button

import (
	"math/rand"
	"testing"

	"github.com/Faultbox/squish/pkg/math"
)

func TestConfettiCapacityNeverExceeded(t *testing.T) {
	tun := DefaultTuning()
	tun.ConfettiCapacity = 100
	pool := NewConfettiPool(tun, rand.New(rand.NewSource(1)))

	// Repeated bursts each requesting more than the capacity: the pool
	// recycles, it never grows.
	for i := 0; i < 100; i++ {
		pool.Burst(math.Vec3{}, 250)
		if n := pool.VisibleCount(); n > 100 {
			t.Fatalf("burst %d: visible count %d exceeds capacity 100", i, n)
		}
	}
	if len(pool.Particles()) != 100 {
		t.Errorf("pool slice grew to %d, want fixed 100", len(pool.Particles()))
	}
}

func TestConfettiBurstActivatesCount(t *testing.T) {
	tun := DefaultTuning()
	tun.ConfettiCapacity = 800
	pool := NewConfettiPool(tun, rand.New(rand.NewSource(2)))

	pool.Burst(math.Vec3{Y: 1}, 180)
	if n := pool.VisibleCount(); n != 180 {
		t.Errorf("visible count = %d, want 180", n)
	}
}

func TestConfettiLifeDecayHides(t *testing.T) {
	tun := DefaultTuning()
	tun.ConfettiCapacity = 50
	pool := NewConfettiPool(tun, rand.New(rand.NewSource(3)))

	pool.Burst(math.Vec3{Y: 1}, 50)
	for tick := 0; tick < 600; tick++ {
		pool.Update(1)
	}
	if n := pool.VisibleCount(); n != 0 {
		t.Errorf("%d particles still visible after their life span", n)
	}
}

func TestConfettiShrinksWithLife(t *testing.T) {
	tun := DefaultTuning()
	pool := NewConfettiPool(tun, rand.New(rand.NewSource(4)))

	pool.Burst(math.Vec3{Y: 1}, 10)
	for tick := 0; tick < 30; tick++ {
		pool.Update(1)
	}

	for i := range pool.Particles() {
		p := &pool.Particles()[i]
		if !p.Visible {
			continue
		}
		if p.Scale > 1 {
			t.Fatalf("particle %d scale %v exceeds 1", i, p.Scale)
		}
		if p.Life < 1 && p.Scale != math.Clamp(p.Life, 0, 1) {
			t.Fatalf("particle %d scale %v does not track life %v", i, p.Scale, p.Life)
		}
	}
}

func TestConfettiDeathAltitude(t *testing.T) {
	tun := DefaultTuning()
	tun.ConfettiDeathY = -0.5
	pool := NewConfettiPool(tun, rand.New(rand.NewSource(5)))

	pool.Burst(math.Vec3{Y: 0}, 20)
	for tick := 0; tick < 400; tick++ {
		pool.Update(1)
	}
	for i := range pool.Particles() {
		p := &pool.Particles()[i]
		if p.Visible && p.Position.Y < tun.ConfettiDeathY {
			t.Fatalf("particle %d visible below the death altitude at %v", i, p.Position.Y)
		}
	}
}

func TestConfettiSwayPhasesDiffer(t *testing.T) {
	tun := DefaultTuning()
	pool := NewConfettiPool(tun, rand.New(rand.NewSource(6)))

	pool.Burst(math.Vec3{}, 20)
	phases := map[float32]bool{}
	for i := 0; i < 20; i++ {
		phases[pool.Particles()[i].SwayPhase] = true
	}
	// Seeded per particle at spawn; lockstep sway would need equal phases.
	if len(phases) < 15 {
		t.Errorf("only %d distinct sway phases across 20 particles", len(phases))
	}
}
