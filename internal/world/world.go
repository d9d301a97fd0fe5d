package world

import "github.com/go-gl/mathgl/mgl32"

// Options configures a World. Zero values pick the defaults.
type Options struct {
	ChunkSize int
	Generator TerrainGenerator
	Graph     RenderGraph
	Logf      func(format string, args ...any)
}

// World is the single owner of all chunk state: the data cache, the resident
// store and the streamer. Components receive it explicitly.
type World struct {
	chunkSize int
	cache     *DataCache
	store     *ChunkStore
	streamer  *ChunkStreamer
}

// New creates a world with empty maps; nothing is resident until the first Update.
func New(opts Options) *World {
	size := opts.ChunkSize
	if size <= 0 {
		size = DefaultChunkSize
	}
	gen := opts.Generator
	if gen == nil {
		gen = NewFlatGenerator(size, DefaultGroundLayers)
	}

	cache := NewDataCache()
	store := NewChunkStore(size, cache, opts.Graph)
	if opts.Logf != nil {
		store.SetLogger(opts.Logf)
	}
	return &World{
		chunkSize: size,
		cache:     cache,
		store:     store,
		streamer:  NewChunkStreamer(store, gen),
	}
}

func (w *World) ChunkSize() int           { return w.chunkSize }
func (w *World) Store() *ChunkStore       { return w.store }
func (w *World) Cache() *DataCache        { return w.cache }
func (w *World) Streamer() *ChunkStreamer { return w.streamer }

// Update streams chunks around the viewer.
func (w *World) Update(viewer mgl32.Vec3, radius int) StreamStats {
	return w.streamer.Update(viewer, radius)
}

// IsSolid checks if the cell at the specified world coordinates is occupied.
func (w *World) IsSolid(x, y, z int) bool {
	return w.store.IsSolid(x, y, z)
}

// AddBlock fills cell with m; see ChunkStore.AddCell.
func (w *World) AddBlock(cell Cell, m Material) bool {
	return w.store.AddCell(cell, m)
}

// RemoveBlock empties cell; see ChunkStore.RemoveCell.
func (w *World) RemoveBlock(cell Cell) (Material, bool) {
	return w.store.RemoveCell(cell)
}

// Close detaches every batch from the render graph.
func (w *World) Close() {
	w.store.Close()
}
