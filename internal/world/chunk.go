package world

// Chunk is the resident, render-ready record of one chunk column.
type Chunk struct {
	Coord ChunkCoord

	occupancy map[Cell]Material
	batches   [MaterialCount]*InstanceBatch
}

func newChunk(coord ChunkCoord, graph RenderGraph, logf func(string, ...any)) *Chunk {
	c := &Chunk{
		Coord:     coord,
		occupancy: make(map[Cell]Material),
	}
	for m := range MaterialCount {
		b := NewInstanceBatch(m, graph)
		b.logf = logf
		c.batches[m] = b
	}
	return c
}

// Get returns the material at cell and whether it is solid.
func (c *Chunk) Get(cell Cell) (Material, bool) {
	m, ok := c.occupancy[cell]
	return m, ok
}

// Len returns the number of occupied cells.
func (c *Chunk) Len() int {
	return len(c.occupancy)
}

// Batch returns the instance batch drawing material m.
func (c *Chunk) Batch(m Material) *InstanceBatch {
	return c.batches[m]
}

// Batches returns every batch of the chunk, indexed by material.
func (c *Chunk) Batches() []*InstanceBatch {
	return c.batches[:]
}

// Occupancy returns a copy of the cell -> material map.
func (c *Chunk) Occupancy() map[Cell]Material {
	out := make(map[Cell]Material, len(c.occupancy))
	for k, v := range c.occupancy {
		out[k] = v
	}
	return out
}

func (c *Chunk) insert(cell Cell, m Material) {
	c.batches[m].Insert(cell)
	c.occupancy[cell] = m
}

func (c *Chunk) remove(cell Cell) (Material, bool) {
	m, ok := c.occupancy[cell]
	if !ok {
		return 0, false
	}
	c.batches[m].Remove(cell)
	delete(c.occupancy, cell)
	return m, true
}

func (c *Chunk) attach() {
	for _, b := range c.batches {
		b.Attach()
	}
}

func (c *Chunk) detach() {
	for _, b := range c.batches {
		b.Detach()
	}
}
