package button

import (
	"github.com/Faultbox/squish/pkg/math"
)

// returnSpring integrates the damped spring-back that pulls the drag offset
// to zero after release. It is deliberately not a physical oscillator: the
// direction guard below makes the return overdamped by construction, so the
// button snaps back sticky instead of ringing.
type returnSpring struct {
	k       float32
	damping float32
	epsilon float32

	velocity math.Vec3
	dir      math.Vec3 // offset direction at release
	active   bool
}

func newReturnSpring(tun Tuning) returnSpring {
	return returnSpring{
		k:       tun.SpringK,
		damping: tun.SpringDamping,
		epsilon: tun.SpringEpsilon,
	}
}

// Start arms the spring for the offset present at release.
func (s *returnSpring) Start(offset math.Vec3) {
	s.velocity = math.Vec3{}
	s.dir = offset.Normalize()
	s.active = offset.LengthSq() > 0
}

// Active reports whether a return is still in flight.
func (s *returnSpring) Active() bool {
	return s.active
}

// Stop disarms the spring and clears its velocity.
func (s *returnSpring) Stop() {
	s.velocity = math.Vec3{}
	s.active = false
}

// Step advances one tick and returns the new drag offset. The return
// terminates, zeroing both vectors, when offset and velocity fall under
// epsilon, or the moment the offset would cross past zero against its
// release direction, so it never overshoots.
func (s *returnSpring) Step(offset math.Vec3) math.Vec3 {
	if !s.active {
		return offset
	}

	s.velocity = s.velocity.Add(offset.Scale(-s.k)).Scale(s.damping)
	offset = offset.Add(s.velocity)

	crossed := offset.Dot(s.dir) <= 0
	settled := offset.Length() < s.epsilon && s.velocity.Length() < s.epsilon
	if crossed || settled {
		s.Stop()
		return math.Vec3{}
	}
	return offset
}
