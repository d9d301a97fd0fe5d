package physics_test

import (
	"testing"

	"voxelworld/internal/physics"
	"voxelworld/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

func newStore(entries ...world.CellEntry) *world.ChunkStore {
	cs := world.NewChunkStore(16, nil, nil)
	cs.Build(world.ChunkCoord{}, entries)
	cs.Build(world.ChunkCoord{X: 1}, nil)
	return cs
}

func TestPickTarget(t *testing.T) {
	cs := newStore(
		world.CellEntry{Cell: world.Cell{X: 5, Y: 0, Z: 0}, Material: world.MaterialGround},
		world.CellEntry{Cell: world.Cell{X: 8, Y: 0, Z: 0}, Material: world.MaterialPlaced},
	)
	start := mgl32.Vec3{0.5, 0.5, 0.5}

	hit, ok := physics.PickTarget(cs, start, mgl32.Vec3{1, 0, 0}, 1, 10)
	if !ok {
		t.Fatalf("Expected hit, got miss")
	}
	if hit.Cell() != (world.Cell{X: 5, Y: 0, Z: 0}) {
		t.Errorf("Expected nearest hit at {5,0,0}, got %v", hit.Cell())
	}
	if hit.Batch.Material() != world.MaterialGround {
		t.Errorf("Expected ground batch, got %v", hit.Batch.Material())
	}
	if !hit.Normal.ApproxEqual(mgl32.Vec3{-1, 0, 0}) {
		t.Errorf("Expected normal (-1,0,0), got %v", hit.Normal)
	}
	if !mgl32.FloatEqualThreshold(hit.Distance, 4.5, 1e-4) {
		t.Errorf("Expected distance 4.5, got %f", hit.Distance)
	}
	if !hit.Point.ApproxEqualThreshold(mgl32.Vec3{5, 0.5, 0.5}, 1e-4) {
		t.Errorf("Expected point (5,0.5,0.5), got %v", hit.Point)
	}

	if _, ok := physics.PickTarget(cs, start, mgl32.Vec3{1, 0, 0}, 1, 4); ok {
		t.Errorf("Expected miss due to maxDist")
	}
	if _, ok := physics.PickTarget(cs, start, mgl32.Vec3{0, 1, 0}, 1, 10); ok {
		t.Errorf("Expected miss looking at the sky")
	}
	if _, ok := physics.PickTarget(cs, start, mgl32.Vec3{}, 1, 10); ok {
		t.Errorf("Expected miss for zero direction")
	}
}

func TestPickTargetFromAbove(t *testing.T) {
	cs := newStore(world.CellEntry{Cell: world.Cell{X: 2, Y: 2, Z: 2}, Material: world.MaterialGround})
	start := mgl32.Vec3{0.5, 6, 0.5}
	dir := mgl32.Vec3{2.5, 3, 2.5}.Sub(start)
	hit, ok := physics.PickTarget(cs, start, dir, 0, 20)
	if !ok {
		t.Fatalf("Expected hit")
	}
	if !hit.Normal.ApproxEqual(mgl32.Vec3{0, 1, 0}) {
		t.Errorf("Expected top face normal, got %v", hit.Normal)
	}
	if !hit.Center().ApproxEqual(mgl32.Vec3{2.5, 2.5, 2.5}) {
		t.Errorf("Expected center (2.5,2.5,2.5), got %v", hit.Center())
	}
}

func TestPickTargetSearchRadius(t *testing.T) {
	cs := world.NewChunkStore(16, nil, nil)
	cs.Build(world.ChunkCoord{X: 2}, []world.CellEntry{{Cell: world.Cell{X: 33, Y: 0, Z: 0}, Material: world.MaterialGround}})
	start := mgl32.Vec3{0.5, 0.5, 0.5}
	if _, ok := physics.PickTarget(cs, start, mgl32.Vec3{1, 0, 0}, 1, 100); ok {
		t.Errorf("Chunk outside search radius must not be hit")
	}
	if _, ok := physics.PickTarget(cs, start, mgl32.Vec3{1, 0, 0}, 2, 100); !ok {
		t.Errorf("Expected hit with search radius 2")
	}
}

func TestRayBoxInside(t *testing.T) {
	if _, _, ok := physics.RayBox(mgl32.Vec3{0.5, 0.5, 0.5}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{}, mgl32.Vec3{1, 1, 1}); ok {
		t.Errorf("Ray starting inside the box must not hit it")
	}
}

func BenchmarkPickTarget(b *testing.B) {
	cs := world.NewChunkStore(16, nil, nil)
	gen := world.NewFlatGenerator(16, 3)
	for _, c := range world.Desired(world.ChunkCoord{}, 1) {
		cs.Build(c, gen.Generate(c))
	}
	start := mgl32.Vec3{0.5, 8, 0.5}
	dir := mgl32.Vec3{0.3, -1, 0.2}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = physics.PickTarget(cs, start, dir, 1, 10)
	}
}
