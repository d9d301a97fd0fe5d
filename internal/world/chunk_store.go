package world

import (
	"sync"

	"voxelworld/internal/profiling"

	"github.com/pkg/errors"
)

// ChunkStore owns the resident chunk records and keeps them in step with the
// data cache. Each call updates occupancy, batches and cache as one unit.
type ChunkStore struct {
	chunkSize int
	chunks    map[ChunkCoord]*Chunk
	cache     *DataCache
	graph     RenderGraph
	logf      func(format string, args ...any)

	mu       sync.Mutex
	modCount uint64 // Increases on any chunk build/unload
}

// NewChunkStore creates an empty store. A nil graph discards attach/detach calls.
func NewChunkStore(chunkSize int, cache *DataCache, graph RenderGraph) *ChunkStore {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	if cache == nil {
		cache = NewDataCache()
	}
	if graph == nil {
		graph = nopGraph{}
	}
	return &ChunkStore{
		chunkSize: chunkSize,
		chunks:    make(map[ChunkCoord]*Chunk),
		cache:     cache,
		graph:     graph,
	}
}

// SetLogger installs a printf-style logger for batch growth messages.
func (cs *ChunkStore) SetLogger(logf func(format string, args ...any)) {
	cs.mu.Lock()
	cs.logf = logf
	cs.mu.Unlock()
}

// ChunkSize returns the number of cells per chunk edge.
func (cs *ChunkStore) ChunkSize() int {
	return cs.chunkSize
}

// Cache returns the data cache backing the store.
func (cs *ChunkStore) Cache() *DataCache {
	return cs.cache
}

// Build creates the record for coord from entries and attaches its batches.
// The coordinate must not be resident.
func (cs *ChunkStore) Build(coord ChunkCoord, entries []CellEntry) *Chunk {
	defer profiling.Track("world.ChunkStore.Build")()
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if _, ok := cs.chunks[coord]; ok {
		panic(errors.Errorf("chunk store: chunk %v already resident", coord))
	}

	var counts [MaterialCount]int
	for _, e := range entries {
		if !e.Material.Valid() {
			panic(errors.Errorf("chunk store: invalid material %d at %v", e.Material, e.Cell))
		}
		if got := ChunkOfCell(e.Cell, cs.chunkSize); got != coord {
			panic(errors.Errorf("chunk store: cell %v belongs to %v, not %v", e.Cell, got, coord))
		}
		counts[e.Material]++
	}

	c := newChunk(coord, cs.graph, cs.logf)
	for m, n := range counts {
		c.batches[m].GrowTo(n)
	}
	for _, e := range entries {
		c.insert(e.Cell, e.Material)
	}
	c.attach()

	cs.chunks[coord] = c
	cs.modCount++
	if !cs.cache.Has(coord) {
		cs.cache.Put(coord, entries)
	}
	return c
}

// Unload detaches coord's batches and drops its record. The cached layout is
// kept. Returns false when coord was not resident.
func (cs *ChunkStore) Unload(coord ChunkCoord) bool {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	c, ok := cs.chunks[coord]
	if !ok {
		return false
	}
	c.detach()
	delete(cs.chunks, coord)
	cs.modCount++
	return true
}

// AddCell fills cell with material m. It fails when the cell is occupied or
// its chunk is not resident.
func (cs *ChunkStore) AddCell(cell Cell, m Material) bool {
	if !m.Valid() {
		return false
	}
	cs.mu.Lock()
	defer cs.mu.Unlock()

	coord := ChunkOfCell(cell, cs.chunkSize)
	c, ok := cs.chunks[coord]
	if !ok {
		return false
	}
	if _, occupied := c.occupancy[cell]; occupied {
		return false
	}
	c.insert(cell, m)
	cs.cache.Append(coord, CellEntry{Cell: cell, Material: m})
	return true
}

// RemoveCell empties cell and returns the material it held. It fails when the
// cell is empty or its chunk is not resident.
func (cs *ChunkStore) RemoveCell(cell Cell) (Material, bool) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	coord := ChunkOfCell(cell, cs.chunkSize)
	c, ok := cs.chunks[coord]
	if !ok {
		return 0, false
	}
	m, ok := c.remove(cell)
	if !ok {
		return 0, false
	}
	cs.cache.Remove(coord, cell)
	return m, true
}

// Chunk returns the resident record for coord.
func (cs *ChunkStore) Chunk(coord ChunkCoord) (*Chunk, bool) {
	cs.mu.Lock()
	c, ok := cs.chunks[coord]
	cs.mu.Unlock()
	return c, ok
}

// HasChunk reports whether coord is resident.
func (cs *ChunkStore) HasChunk(coord ChunkCoord) bool {
	_, ok := cs.Chunk(coord)
	return ok
}

// MaterialAt returns the material at cell when its chunk is resident and the cell is solid.
func (cs *ChunkStore) MaterialAt(cell Cell) (Material, bool) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	c, ok := cs.chunks[ChunkOfCell(cell, cs.chunkSize)]
	if !ok {
		return 0, false
	}
	return c.Get(cell)
}

// IsSolid checks if the cell at the specified world coordinates is occupied.
func (cs *ChunkStore) IsSolid(x, y, z int) bool {
	_, ok := cs.MaterialAt(Cell{X: x, Y: y, Z: z})
	return ok
}

// AppendChunksInRadius appends every resident chunk within Chebyshev distance
// radius of center to dst and returns the resulting slice.
func (cs *ChunkStore) AppendChunksInRadius(center ChunkCoord, radius int, dst []*Chunk) []*Chunk {
	defer profiling.Track("world.ChunkStore.AppendChunksInRadius")()
	cs.mu.Lock()
	defer cs.mu.Unlock()

	for dx := -radius; dx <= radius; dx++ {
		for dz := -radius; dz <= radius; dz++ {
			if c, ok := cs.chunks[ChunkCoord{X: center.X + dx, Z: center.Z + dz}]; ok {
				dst = append(dst, c)
			}
		}
	}
	return dst
}

// Coords returns the coordinates of every resident chunk.
func (cs *ChunkStore) Coords() []ChunkCoord {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	out := make([]ChunkCoord, 0, len(cs.chunks))
	for coord := range cs.chunks {
		out = append(out, coord)
	}
	return out
}

// Len returns the number of resident chunks.
func (cs *ChunkStore) Len() int {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return len(cs.chunks)
}

// ModCount returns the current modification count of the chunk map.
func (cs *ChunkStore) ModCount() uint64 {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cs.modCount
}

// Close detaches every resident batch and empties the store. The cache survives.
func (cs *ChunkStore) Close() {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	for coord, c := range cs.chunks {
		c.detach()
		delete(cs.chunks, coord)
		cs.modCount++
	}
}
