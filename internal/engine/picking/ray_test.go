package picking

import (
	"testing"

	"github.com/Faultbox/squish/pkg/math"
)

func TestIntersectPlane(t *testing.T) {
	r := Ray{Origin: math.Vec3{Y: 5}, Direction: math.Vec3{Y: -1}}

	hit, ok := r.IntersectPlane(math.Vec3{}, math.Vec3{Y: 1})
	if !ok {
		t.Fatal("expected plane hit")
	}
	if hit.Distance(math.Vec3{}) > 1e-5 {
		t.Errorf("hit = %v, want origin", hit)
	}
}

func TestIntersectPlaneParallel(t *testing.T) {
	r := Ray{Origin: math.Vec3{Y: 5}, Direction: math.Vec3{X: 1}}
	if _, ok := r.IntersectPlane(math.Vec3{}, math.Vec3{Y: 1}); ok {
		t.Error("parallel ray must not intersect")
	}
}

func TestIntersectPlaneBehind(t *testing.T) {
	r := Ray{Origin: math.Vec3{Y: 5}, Direction: math.Vec3{Y: 1}}
	if _, ok := r.IntersectPlane(math.Vec3{}, math.Vec3{Y: 1}); ok {
		t.Error("plane behind ray origin must not intersect")
	}
}

func TestIntersectSphere(t *testing.T) {
	r := Ray{Origin: math.Vec3{Z: 10}, Direction: math.Vec3{Z: -1}}

	hit, ok := r.IntersectSphere(math.Vec3{}, 2)
	if !ok {
		t.Fatal("expected sphere hit")
	}
	want := math.Vec3{Z: 2}
	if hit.Distance(want) > 1e-4 {
		t.Errorf("hit = %v, want %v", hit, want)
	}
}

func TestIntersectSphereMiss(t *testing.T) {
	r := Ray{Origin: math.Vec3{Z: 10, X: 5}, Direction: math.Vec3{Z: -1}}
	if _, ok := r.IntersectSphere(math.Vec3{}, 2); ok {
		t.Error("offset ray must miss the sphere")
	}
}

func TestIntersectSphereFromInside(t *testing.T) {
	r := Ray{Origin: math.Vec3{}, Direction: math.Vec3{X: 1}}
	hit, ok := r.IntersectSphere(math.Vec3{}, 2)
	if !ok {
		t.Fatal("ray starting inside the sphere should exit-hit")
	}
	if hit.Distance(math.Vec3{X: 2}) > 1e-4 {
		t.Errorf("hit = %v, want (2,0,0)", hit)
	}
}

func TestIntersectAABB(t *testing.T) {
	box := AABB{Min: math.Vec3{X: -1, Y: -1, Z: -1}, Max: math.Vec3{X: 1, Y: 1, Z: 1}}

	tests := []struct {
		name    string
		ray     Ray
		wantHit bool
		wantT   float32
	}{
		{"head-on", Ray{math.Vec3{Z: 5}, math.Vec3{Z: -1}}, true, 4},
		{"miss", Ray{math.Vec3{Z: 5, X: 3}, math.Vec3{Z: -1}}, false, 0},
		{"inside exits", Ray{math.Vec3{}, math.Vec3{X: 1}}, true, 1},
		{"behind", Ray{math.Vec3{Z: 5}, math.Vec3{Z: 1}}, false, 0},
		{"parallel outside slab", Ray{math.Vec3{Y: 3, Z: 5}, math.Vec3{Z: -1}}, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dist, hit := tt.ray.IntersectAABB(box)
			if hit != tt.wantHit {
				t.Fatalf("hit = %v, want %v", hit, tt.wantHit)
			}
			if hit && math.Abs(dist-tt.wantT) > 1e-5 {
				t.Errorf("t = %v, want %v", dist, tt.wantT)
			}
		})
	}
}

func TestFromNDCCenterRay(t *testing.T) {
	view := math.LookAt(math.Vec3{Z: 5}, math.Vec3{}, math.Vec3{Y: 1})
	proj := math.Perspective(1.0, 1.0, 0.1, 100)
	inv := proj.Mul(view).Inverse()

	r := FromNDC(0, 0, inv)

	// The center ray looks straight down -Z from the camera.
	if r.Direction.Z > -0.99 {
		t.Errorf("center ray direction = %v, want ~(0,0,-1)", r.Direction)
	}
	if _, ok := r.IntersectSphere(math.Vec3{}, 1); !ok {
		t.Error("center ray should hit a sphere at the look target")
	}
}
