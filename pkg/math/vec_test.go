package math

import (
	"testing"
)

func TestVec2Length(t *testing.T) {
	v := Vec2{3, 4}
	got := v.Length()
	want := float32(5)
	if got != want {
		t.Errorf("Vec2.Length() = %v, want %v", got, want)
	}
}

func TestVec2LengthSq(t *testing.T) {
	v := Vec2{3, 4}
	if got := v.LengthSq(); got != 25 {
		t.Errorf("Vec2.LengthSq() = %v, want 25", got)
	}
	if l := v.Length(); l*l-v.LengthSq() > 1e-4 {
		t.Errorf("Length()^2 = %v disagrees with LengthSq() = %v", l*l, v.LengthSq())
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := Vec3{3, 0, 4}
	n := v.Normalize()
	l := n.Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}

	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Errorf("zero Vec3.Normalize() = %v, want zero", got)
	}
}

func TestVec3Div(t *testing.T) {
	v := Vec3{2, 4, 6}
	got := v.Div(Vec3{2, 2, 2})
	want := Vec3{1, 2, 3}
	if got != want {
		t.Errorf("Vec3.Div() = %v, want %v", got, want)
	}

	// Zero divisor components pass the original component through.
	got = v.Div(Vec3{0, 2, 0})
	want = Vec3{2, 2, 6}
	if got != want {
		t.Errorf("Vec3.Div() with zero divisor = %v, want %v", got, want)
	}
}

func TestVec3Lerp(t *testing.T) {
	a := Vec3{0, 0, 0}
	b := Vec3{10, -2, 4}
	got := a.Lerp(b, 0.5)
	want := Vec3{5, -1, 2}
	if got != want {
		t.Errorf("Vec3.Lerp() = %v, want %v", got, want)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float32
	}{
		{0.5, 0, 1, 0.5},
		{-1, 0, 1, 0},
		{2, 0, 1, 1},
		{0, 0, 1, 0},
		{1, 0, 1, 1},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestEaseOut(t *testing.T) {
	if got := EaseOut(0, 3); got != 0 {
		t.Errorf("EaseOut(0) = %v, want 0", got)
	}
	if got := EaseOut(1, 3); got != 1 {
		t.Errorf("EaseOut(1) = %v, want 1", got)
	}
	// Ease-out front-loads progress.
	if got := EaseOut(0.5, 3); got <= 0.5 {
		t.Errorf("EaseOut(0.5) = %v, want > 0.5", got)
	}
	// Out-of-range input clamps rather than extrapolating.
	if got := EaseOut(1.5, 3); got != 1 {
		t.Errorf("EaseOut(1.5) = %v, want 1", got)
	}
}

func TestMat4MulIdentity(t *testing.T) {
	m := Translate(1, 2, 3).Mul(Scale(2, 2, 2))
	got := m.Mul(Identity())
	if got != m {
		t.Errorf("Mat4.Mul(Identity()) = %v, want %v", got, m)
	}
}

func TestMat4InverseRoundTrip(t *testing.T) {
	m := Perspective(1.0, 1.5, 0.1, 100).Mul(LookAt(Vec3{0, 2, 5}, Vec3{}, Vec3{0, 1, 0}))
	inv := m.Inverse()

	p := Vec3{0.3, -0.2, 0.5}
	back := inv.TransformVec3(m.TransformVec3(p))
	if back.Distance(p) > 1e-3 {
		t.Errorf("inverse round trip drifted: got %v, want %v", back, p)
	}
}
