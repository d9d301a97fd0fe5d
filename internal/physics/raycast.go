package physics

import (
	"voxelworld/internal/profiling"
	"voxelworld/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

// Hit is the nearest instance intersected by a ray. Batch and Slot are only
// valid until the next removal from that batch.
type Hit struct {
	Point    mgl32.Vec3
	Normal   mgl32.Vec3
	Distance float32
	Batch    *world.InstanceBatch
	Slot     int
}

// Center returns the center of the hit instance, read from its transform.
func (h Hit) Center() mgl32.Vec3 {
	return h.Batch.Get(h.Slot).Col(3).Vec3()
}

// Cell returns the cell of the hit instance.
func (h Hit) Cell() world.Cell {
	return world.CellAt(h.Center())
}

// PickTarget casts a ray from origin along dir against every instance of the
// chunks within searchRadius (Chebyshev, in chunks) of the origin's chunk and
// returns the nearest hit no farther than maxDist.
func PickTarget(store *world.ChunkStore, origin, dir mgl32.Vec3, searchRadius int, maxDist float32) (Hit, bool) {
	defer profiling.Track("physics.PickTarget")()
	if dir.Len() < 1e-6 {
		return Hit{}, false
	}
	dir = dir.Normalize()

	center := world.ChunkOf(origin, store.ChunkSize())
	chunks := store.AppendChunksInRadius(center, searchRadius, nil)

	best := Hit{Distance: maxDist}
	found := false
	half := mgl32.Vec3{0.5, 0.5, 0.5}
	for _, c := range chunks {
		for _, b := range c.Batches() {
			for slot := range b.Count() {
				tr := b.Get(slot).Col(3).Vec3()
				t, normal, ok := RayBox(origin, dir, tr.Sub(half), tr.Add(half))
				if !ok || t > best.Distance {
					continue
				}
				best = Hit{
					Point:    origin.Add(dir.Mul(t)),
					Normal:   normal,
					Distance: t,
					Batch:    b,
					Slot:     slot,
				}
				found = true
			}
		}
	}
	return best, found
}

// RayBox intersects a ray with the box [lo, hi] using the slab method. It
// returns the entry distance and the outward normal of the entry face.
// Rays starting inside the box do not hit it.
func RayBox(origin, dir, lo, hi mgl32.Vec3) (float32, mgl32.Vec3, bool) {
	tNear := float32(-1e30)
	tFar := float32(1e30)
	axis := -1
	var sign float32

	for i := range 3 {
		if dir[i] > -1e-8 && dir[i] < 1e-8 {
			if origin[i] < lo[i] || origin[i] > hi[i] {
				return 0, mgl32.Vec3{}, false
			}
			continue
		}
		t1 := (lo[i] - origin[i]) / dir[i]
		t2 := (hi[i] - origin[i]) / dir[i]
		s := float32(-1)
		if t1 > t2 {
			t1, t2 = t2, t1
			s = 1
		}
		if t1 > tNear {
			tNear, axis, sign = t1, i, s
		}
		tFar = min(tFar, t2)
		if tNear > tFar {
			return 0, mgl32.Vec3{}, false
		}
	}
	if axis < 0 || tNear < 0 {
		return 0, mgl32.Vec3{}, false
	}

	var normal mgl32.Vec3
	normal[axis] = sign
	return tNear, normal, true
}
