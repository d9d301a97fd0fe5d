package physics_test

import (
	"testing"

	"voxelworld/internal/physics"

	"github.com/go-gl/mathgl/mgl32"
)

// cells is a SolidQuery backed by a set.
type cells map[[3]int]bool

func (c cells) IsSolid(x, y, z int) bool { return c[[3]int{x, y, z}] }

// segmentToBox returns the closest approach of the capsule segment to the box.
func segmentToBox(c physics.Capsule, lo, hi mgl32.Vec3) float32 {
	best := float32(1e30)
	for i := 0; i <= 200; i++ {
		p := c.PointAt(float32(i) / 200)
		best = min(best, physics.ClosestPointOnBox(p, lo, hi).Sub(p).Len())
	}
	return best
}

func TestResolveNonPenetration(t *testing.T) {
	solid := cells{{0, 0, 0}: true}
	lo, hi := mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 1, 1}
	const eps = 1e-4

	bodies := map[string]physics.Body{
		"from above": {Capsule: physics.Capsule{Start: mgl32.Vec3{0.5, 1.2, 0.5}, End: mgl32.Vec3{0.5, 2.5, 0.5}, Radius: 0.35}, Velocity: mgl32.Vec3{0, -5, 0}},
		"from side":  {Capsule: physics.Capsule{Start: mgl32.Vec3{1.2, 0.5, 0.5}, End: mgl32.Vec3{1.2, 1.8, 0.5}, Radius: 0.35}, Velocity: mgl32.Vec3{-3, 0, 0}},
		"corner":     {Capsule: physics.Capsule{Start: mgl32.Vec3{1.15, 1.15, 1.15}, End: mgl32.Vec3{1.15, 2.4, 1.15}, Radius: 0.3}},
	}
	for name, body := range bodies {
		if d := segmentToBox(body.Capsule, lo, hi); d >= body.Capsule.Radius {
			t.Fatalf("%s: setup does not penetrate (%f)", name, d)
		}
		n := physics.Resolve(&body, solid)
		if n != 1 {
			t.Errorf("%s: expected 1 correction, got %d", name, n)
		}
		if d := segmentToBox(body.Capsule, lo, hi); d < body.Capsule.Radius-eps {
			t.Errorf("%s: closest approach %f < radius %f", name, d, body.Capsule.Radius)
		}
	}
}

func TestResolveSlidesVelocity(t *testing.T) {
	solid := cells{{0, 0, 0}: true}
	body := physics.Body{
		Capsule:  physics.Capsule{Start: mgl32.Vec3{0.5, 1.3, 0.5}, End: mgl32.Vec3{0.5, 2.6, 0.5}, Radius: 0.35},
		Velocity: mgl32.Vec3{2, -4, 1},
	}
	physics.Resolve(&body, solid)
	if mgl32.Abs(body.Velocity.Y()) > 1e-5 {
		t.Errorf("Expected vertical velocity removed, got %f", body.Velocity.Y())
	}
	if body.Velocity.X() != 2 || body.Velocity.Z() != 1 {
		t.Errorf("Expected tangential velocity kept, got %v", body.Velocity)
	}
}

func TestResolveCenterInsideCell(t *testing.T) {
	solid := cells{{0, 0, 0}: true}
	body := physics.Body{Capsule: physics.Capsule{Start: mgl32.Vec3{0.5, 0.9, 0.5}, End: mgl32.Vec3{0.5, 2.2, 0.5}, Radius: 0.3}}
	physics.Resolve(&body, solid)
	if d := segmentToBox(body.Capsule, mgl32.Vec3{}, mgl32.Vec3{1, 1, 1}); d < 0.3-1e-4 {
		t.Errorf("Expected capsule pushed out of the cell, closest %f", d)
	}
	if body.Capsule.Start.Y() < 1.3-1e-4 {
		t.Errorf("Expected push up through the top face, start y %f", body.Capsule.Start.Y())
	}
}

func TestOverlapsCell(t *testing.T) {
	c := physics.NewCapsule(mgl32.Vec3{0.5, 3, 0.5}, 0.35, 1.8)
	if !physics.OverlapsCell(c, 0, 3, 0) || !physics.OverlapsCell(c, 0, 4, 0) {
		t.Errorf("Expected the cells around the body to overlap")
	}
	if physics.OverlapsCell(c, 0, 3, -1) || physics.OverlapsCell(c, 2, 3, 0) {
		t.Errorf("Distant cells should not overlap")
	}
}

func TestResolveNothingNearby(t *testing.T) {
	body := physics.Body{Capsule: physics.NewCapsule(mgl32.Vec3{5, 5, 5}, 0.35, 1.8)}
	before := body.Capsule
	if n := physics.Resolve(&body, cells{{0, 0, 0}: true}); n != 0 {
		t.Errorf("Expected no corrections, got %d", n)
	}
	if body.Capsule != before {
		t.Errorf("Capsule moved without contact")
	}
}

func TestDetectGround(t *testing.T) {
	solid := cells{{0, 0, 0}: true}
	body := physics.Body{Capsule: physics.NewCapsule(mgl32.Vec3{0.5, 1.005, 0.5}, 0.35, 1.8), Velocity: mgl32.Vec3{0, -1, 0}}
	if !physics.DetectGround(&body, solid) || !body.Grounded {
		t.Fatalf("Expected grounded")
	}
	if body.Velocity.Y() != 0 {
		t.Errorf("Expected downward velocity cleared, got %f", body.Velocity.Y())
	}

	body.Velocity = mgl32.Vec3{0, 3, 0}
	if physics.DetectGround(&body, solid) || body.Grounded {
		t.Errorf("Rising body must not be grounded")
	}

	air := physics.Body{Capsule: physics.NewCapsule(mgl32.Vec3{0.5, 1.5, 0.5}, 0.35, 1.8)}
	if physics.DetectGround(&air, solid) {
		t.Errorf("Body 0.5 above ground must not be grounded")
	}
}

func TestClampFloor(t *testing.T) {
	body := physics.Body{Capsule: physics.NewCapsule(mgl32.Vec3{0, -12, 0}, 0.35, 1.8), Velocity: mgl32.Vec3{0, -20, 0}}
	if !physics.ClampFloor(&body, -10) {
		t.Fatalf("Expected clamp")
	}
	if !mgl32.FloatEqualThreshold(body.Capsule.Feet().Y(), -10, 1e-5) || !body.Grounded || body.Velocity.Y() != 0 {
		t.Errorf("Unexpected body after clamp: feet %f grounded %v vel %f", body.Capsule.Feet().Y(), body.Grounded, body.Velocity.Y())
	}
	if physics.ClampFloor(&physics.Body{Capsule: physics.NewCapsule(mgl32.Vec3{0, 3, 0}, 0.35, 1.8)}, -10) {
		t.Errorf("Body above the floor must not be clamped")
	}
}

func TestStepLandsOnGround(t *testing.T) {
	solid := cells{}
	for x := -2; x <= 2; x++ {
		for z := -2; z <= 2; z++ {
			solid[[3]int{x, 0, z}] = true
		}
	}
	body := physics.Body{Capsule: physics.NewCapsule(mgl32.Vec3{0.5, 3, 0.5}, 0.35, 1.8)}
	dt := float32(1.0 / 60)
	for range 240 {
		body.Velocity[1] -= 30 * dt
		physics.Step(&body, solid, dt, -50)
	}
	if !body.Grounded {
		t.Fatalf("Expected body to come to rest")
	}
	if feet := body.Capsule.Feet().Y(); feet < 1-1e-3 || feet > 1.02 {
		t.Errorf("Expected feet on top of the ground at y=1, got %f", feet)
	}
}

func BenchmarkResolve(b *testing.B) {
	solid := cells{}
	for x := -4; x <= 4; x++ {
		for z := -4; z <= 4; z++ {
			solid[[3]int{x, 0, z}] = true
		}
	}
	for i := 0; i < b.N; i++ {
		body := physics.Body{Capsule: physics.NewCapsule(mgl32.Vec3{0.5, 0.9, 0.5}, 0.35, 1.8)}
		physics.Resolve(&body, solid)
	}
}
