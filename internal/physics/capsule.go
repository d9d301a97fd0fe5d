package physics

import "github.com/go-gl/mathgl/mgl32"

// Capsule is a segment from Start (bottom sphere center) to End (top sphere
// center) swept by Radius.
type Capsule struct {
	Start  mgl32.Vec3
	End    mgl32.Vec3
	Radius float32
}

// NewCapsule builds an upright capsule whose lowest point is feet.
func NewCapsule(feet mgl32.Vec3, radius, height float32) Capsule {
	top := max(height-radius, radius)
	return Capsule{
		Start:  feet.Add(mgl32.Vec3{0, radius, 0}),
		End:    feet.Add(mgl32.Vec3{0, top, 0}),
		Radius: radius,
	}
}

// Translate moves both endpoints by v.
func (c *Capsule) Translate(v mgl32.Vec3) {
	c.Start = c.Start.Add(v)
	c.End = c.End.Add(v)
}

// Feet returns the lowest point of the capsule.
func (c Capsule) Feet() mgl32.Vec3 {
	return c.Start.Sub(mgl32.Vec3{0, c.Radius, 0})
}

// PointAt returns the point at fraction t of the center segment.
func (c Capsule) PointAt(t float32) mgl32.Vec3 {
	return c.Start.Add(c.End.Sub(c.Start).Mul(t))
}

// SegmentBounds returns the axis-aligned extent of the center segment.
func (c Capsule) SegmentBounds() (lo, hi mgl32.Vec3) {
	for i := range 3 {
		lo[i] = min(c.Start[i], c.End[i])
		hi[i] = max(c.Start[i], c.End[i])
	}
	return lo, hi
}

// Body is the player's collidable volume with its velocity.
type Body struct {
	Capsule  Capsule
	Velocity mgl32.Vec3
	Grounded bool
}
