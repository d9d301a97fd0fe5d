package world

// DataCache holds the authoritative layout of every chunk ever generated or
// edited, independent of residency. Entries keep insertion order.
type DataCache struct {
	entries map[ChunkCoord][]CellEntry
}

// NewDataCache creates an empty cache.
func NewDataCache() *DataCache {
	return &DataCache{entries: make(map[ChunkCoord][]CellEntry)}
}

// Get returns a copy of the cached layout for coord.
func (dc *DataCache) Get(coord ChunkCoord) ([]CellEntry, bool) {
	list, ok := dc.entries[coord]
	if !ok {
		return nil, false
	}
	return append([]CellEntry(nil), list...), true
}

// Has reports whether coord has a cached layout.
func (dc *DataCache) Has(coord ChunkCoord) bool {
	_, ok := dc.entries[coord]
	return ok
}

// Put replaces the layout for coord with a copy of entries.
func (dc *DataCache) Put(coord ChunkCoord, entries []CellEntry) {
	dc.entries[coord] = append(make([]CellEntry, 0, len(entries)), entries...)
}

// Append records a new cell at the end of coord's layout.
func (dc *DataCache) Append(coord ChunkCoord, e CellEntry) {
	dc.entries[coord] = append(dc.entries[coord], e)
}

// Remove filters cell out of coord's layout, keeping the order of the rest.
func (dc *DataCache) Remove(coord ChunkCoord, cell Cell) bool {
	list, ok := dc.entries[coord]
	if !ok {
		return false
	}
	kept := list[:0]
	found := false
	for _, e := range list {
		if e.Cell == cell {
			found = true
			continue
		}
		kept = append(kept, e)
	}
	dc.entries[coord] = kept
	return found
}

// Len returns the number of cached chunks.
func (dc *DataCache) Len() int {
	return len(dc.entries)
}
