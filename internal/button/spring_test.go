package button

import (
	"testing"

	"github.com/Faultbox/squish/pkg/math"
)

func TestSpringConvergesBounded(t *testing.T) {
	starts := []math.Vec3{
		{X: 50},
		{X: 0.5, Y: -0.2, Z: 0.3},
		{Z: -3},
		{X: 1e-2},
	}

	for _, start := range starts {
		s := newReturnSpring(DefaultTuning())
		s.Start(start)
		offset := start

		converged := false
		for tick := 0; tick < 120; tick++ {
			offset = s.Step(offset)
			if offset == (math.Vec3{}) && !s.Active() {
				converged = true
				break
			}
		}
		if !converged {
			t.Errorf("spring from %v did not converge within 120 ticks (left %v)", start, offset)
		}
	}
}

func TestSpringNeverOvershoots(t *testing.T) {
	start := math.Vec3{X: 50}
	dir := start.Normalize()

	s := newReturnSpring(DefaultTuning())
	s.Start(start)
	offset := start

	for tick := 0; tick < 200; tick++ {
		offset = s.Step(offset)
		if offset.Dot(dir) < 0 {
			t.Fatalf("tick %d: offset %v crossed past the release direction", tick, offset)
		}
		if offset.Length() > start.Length()+1e-3 {
			t.Fatalf("tick %d: offset %v grew past its start magnitude", tick, offset)
		}
		if !s.Active() {
			break
		}
	}
}

func TestSpringReleaseScenario(t *testing.T) {
	// Release with dragOffset = (50,0,0): magnitude must fall below 0.1
	// within 60 ticks at 60 fps.
	s := newReturnSpring(DefaultTuning())
	start := math.Vec3{X: 50}
	s.Start(start)
	offset := start

	for tick := 0; tick < 60; tick++ {
		offset = s.Step(offset)
		if offset.Length() < 0.1 {
			return
		}
	}
	t.Errorf("offset still %v after 60 ticks, want < 0.1", offset.Length())
}

func TestSpringInactiveIsIdentity(t *testing.T) {
	s := newReturnSpring(DefaultTuning())
	offset := math.Vec3{X: 2}
	if got := s.Step(offset); got != offset {
		t.Errorf("inactive Step() = %v, want unchanged %v", got, offset)
	}
}

func TestSpringStartZeroStaysInactive(t *testing.T) {
	s := newReturnSpring(DefaultTuning())
	s.Start(math.Vec3{})
	if s.Active() {
		t.Error("spring armed on a zero offset")
	}
}
