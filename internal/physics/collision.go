package physics

import (
	"math"

	"voxelworld/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// capsuleSamples is the number of points tested along the center segment.
	capsuleSamples = 6
	// GroundEpsilon is the slack allowed between the capsule bottom and a ground cell.
	GroundEpsilon = 0.01
)

// SolidQuery reports occupancy of integer cells.
type SolidQuery interface {
	IsSolid(x, y, z int) bool
}

// cellBox is the inclusive cell range covering the capsule segment expanded by radius+1.
type cellBox struct {
	minX, minY, minZ int
	maxX, maxY, maxZ int
}

func boxAround(c Capsule) cellBox {
	lo, hi := c.SegmentBounds()
	pad := c.Radius + 1
	return cellBox{
		minX: floorInt(lo.X() - pad), minY: floorInt(lo.Y() - pad), minZ: floorInt(lo.Z() - pad),
		maxX: floorInt(hi.X() + pad), maxY: floorInt(hi.Y() + pad), maxZ: floorInt(hi.Z() + pad),
	}
}

// each calls fn for every solid cell of the box until fn returns false.
func (b cellBox) each(solid SolidQuery, fn func(x, y, z int) bool) {
	for x := b.minX; x <= b.maxX; x++ {
		for y := b.minY; y <= b.maxY; y++ {
			for z := b.minZ; z <= b.maxZ; z++ {
				if solid.IsSolid(x, y, z) && !fn(x, y, z) {
					return
				}
			}
		}
	}
}

// Integrate moves the body by its velocity over dt seconds.
func Integrate(b *Body, dt float32) {
	b.Capsule.Translate(b.Velocity.Mul(dt))
}

// Resolve pushes the capsule out of every solid cell near it, one correction
// per cell. Each correction removes the velocity component along the push
// normal so the body slides instead of bouncing. Returns the number of cells
// that pushed the body.
func Resolve(b *Body, solid SolidQuery) int {
	defer profiling.Track("physics.Resolve")()
	corrections := 0
	boxAround(b.Capsule).each(solid, func(x, y, z int) bool {
		lo := mgl32.Vec3{float32(x), float32(y), float32(z)}
		hi := lo.Add(mgl32.Vec3{1, 1, 1})
		for i := range capsuleSamples {
			p := b.Capsule.PointAt(float32(i) / (capsuleSamples - 1))
			normal, depth, ok := penetration(p, b.Capsule.Radius, lo, hi)
			if !ok {
				continue
			}
			b.Capsule.Translate(normal.Mul(depth))
			b.Velocity = b.Velocity.Sub(normal.Mul(b.Velocity.Dot(normal)))
			corrections++
			break
		}
		return true
	})
	return corrections
}

// OverlapsCell reports whether the capsule reaches into the unit cube of cell (x, y, z).
func OverlapsCell(c Capsule, x, y, z int) bool {
	lo := mgl32.Vec3{float32(x), float32(y), float32(z)}
	hi := lo.Add(mgl32.Vec3{1, 1, 1})
	for i := range capsuleSamples {
		if _, _, ok := penetration(c.PointAt(float32(i)/(capsuleSamples-1)), c.Radius, lo, hi); ok {
			return true
		}
	}
	return false
}

// penetration returns the push-out normal and depth of a sphere at p against
// the box [lo, hi].
func penetration(p mgl32.Vec3, radius float32, lo, hi mgl32.Vec3) (mgl32.Vec3, float32, bool) {
	closest := ClosestPointOnBox(p, lo, hi)
	d := p.Sub(closest)
	dist := d.Len()
	if dist >= radius {
		return mgl32.Vec3{}, 0, false
	}
	if dist > 1e-6 {
		return d.Mul(1 / dist), radius - dist, true
	}

	// center inside the box: leave through the nearest face
	best := float32(math.MaxFloat32)
	var normal mgl32.Vec3
	for axis := range 3 {
		if in := p[axis] - lo[axis]; in < best {
			best = in
			normal = mgl32.Vec3{}
			normal[axis] = -1
		}
		if in := hi[axis] - p[axis]; in < best {
			best = in
			normal = mgl32.Vec3{}
			normal[axis] = 1
		}
	}
	return normal, best + radius, true
}

// DetectGround marks the body grounded when the bottom sphere rests within
// radius+GroundEpsilon of a solid cell while not moving up. A grounded body
// has its downward velocity cleared.
func DetectGround(b *Body, solid SolidQuery) bool {
	if b.Velocity.Y() > 0 {
		b.Grounded = false
		return false
	}
	reach := b.Capsule.Radius + GroundEpsilon
	found := false
	boxAround(b.Capsule).each(solid, func(x, y, z int) bool {
		lo := mgl32.Vec3{float32(x), float32(y), float32(z)}
		hi := lo.Add(mgl32.Vec3{1, 1, 1})
		if ClosestPointOnBox(b.Capsule.Start, lo, hi).Sub(b.Capsule.Start).Len() <= reach {
			found = true
			return false
		}
		return true
	})
	b.Grounded = found
	if found {
		b.Velocity[1] = max(b.Velocity[1], 0)
	}
	return found
}

// ClampFloor keeps the capsule bottom at or above floorY. Touching the floor grounds the body.
func ClampFloor(b *Body, floorY float32) bool {
	feet := b.Capsule.Feet().Y()
	if feet > floorY {
		return false
	}
	b.Capsule.Translate(mgl32.Vec3{0, floorY - feet, 0})
	b.Velocity[1] = max(b.Velocity[1], 0)
	b.Grounded = true
	return true
}

// Step integrates the body over dt, resolves collisions against solid cells,
// then runs ground detection and the hard floor.
func Step(b *Body, solid SolidQuery, dt, floorY float32) {
	Integrate(b, dt)
	Resolve(b, solid)
	DetectGround(b, solid)
	ClampFloor(b, floorY)
}

// ClosestPointOnBox clamps p into the box [lo, hi].
func ClosestPointOnBox(p, lo, hi mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{
		mgl32.Clamp(p.X(), lo.X(), hi.X()),
		mgl32.Clamp(p.Y(), lo.Y(), hi.Y()),
		mgl32.Clamp(p.Z(), lo.Z(), hi.Z()),
	}
}

func floorInt(v float32) int {
	return int(math.Floor(float64(v)))
}
