package world

import (
	"voxelworld/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

// StreamStats summarizes one reconciliation pass.
type StreamStats struct {
	Loaded    int // chunks built this pass
	Generated int // of those, generated for the first time
	Unloaded  int
	Resident  int // resident chunks after the pass
}

// ChunkStreamer keeps the chunks around the viewer resident. Generation is
// synchronous: every chunk requested in a pass is complete when Update returns.
type ChunkStreamer struct {
	store *ChunkStore
	gen   TerrainGenerator

	center  ChunkCoord
	hasLast bool
}

// NewChunkStreamer creates a new chunk streamer.
func NewChunkStreamer(store *ChunkStore, gen TerrainGenerator) *ChunkStreamer {
	return &ChunkStreamer{store: store, gen: gen}
}

// Center returns the chunk the last Update was centered on.
func (cs *ChunkStreamer) Center() (ChunkCoord, bool) {
	return cs.center, cs.hasLast
}

// Update reconciles the resident set against the square neighborhood of
// radius chunks around the viewer: missing chunks are built (from the cache
// when present, otherwise generated and cached), chunks outside are unloaded.
func (cs *ChunkStreamer) Update(viewer mgl32.Vec3, radius int) StreamStats {
	defer profiling.Track("world.ChunkStreamer.Update")()
	center := ChunkOf(viewer, cs.store.ChunkSize())
	cs.center, cs.hasLast = center, true
	radius = max(radius, 0)

	var stats StreamStats
	for _, coord := range cs.store.Coords() {
		if coord.Chebyshev(center) > radius {
			if cs.store.Unload(coord) {
				stats.Unloaded++
			}
		}
	}

	for _, coord := range Desired(center, radius) {
		if cs.store.HasChunk(coord) {
			continue
		}
		if cs.load(coord) {
			stats.Generated++
		}
		stats.Loaded++
	}

	stats.Resident = cs.store.Len()
	return stats
}

// load builds coord and reports whether it had to be generated.
func (cs *ChunkStreamer) load(coord ChunkCoord) bool {
	cache := cs.store.Cache()
	entries, ok := cache.Get(coord)
	generated := false
	if !ok {
		entries = cs.gen.Generate(coord)
		cache.Put(coord, entries)
		generated = true
	}
	cs.store.Build(coord, entries)
	return generated
}

// Desired returns every chunk within Chebyshev distance radius of center,
// in rings moving outward so the viewer's own chunk comes first.
func Desired(center ChunkCoord, radius int) []ChunkCoord {
	side := 2*radius + 1
	out := make([]ChunkCoord, 0, side*side)
	out = append(out, center)
	for r := 1; r <= radius; r++ {
		x0, x1 := center.X-r, center.X+r
		z0, z1 := center.Z-r, center.Z+r
		for x := x0; x <= x1; x++ {
			out = append(out, ChunkCoord{X: x, Z: z0})
		}
		for z := z0 + 1; z <= z1-1; z++ {
			out = append(out, ChunkCoord{X: x1, Z: z})
		}
		for x := x1; x >= x0; x-- {
			out = append(out, ChunkCoord{X: x, Z: z1})
		}
		for z := z1 - 1; z >= z0+1; z-- {
			out = append(out, ChunkCoord{X: x0, Z: z})
		}
	}
	return out
}
