package world

import "math"

// TerrainGenerator produces the initial layout of a chunk. Implementations
// must be pure: the same coordinate always yields the same entries.
type TerrainGenerator interface {
	Generate(coord ChunkCoord) []CellEntry
}

// DefaultGroundLayers is the number of ground cells stacked per column by the flat generator.
const DefaultGroundLayers = 3

// FlatGenerator fills every column of a chunk with the same number of ground cells from y=0.
type FlatGenerator struct {
	chunkSize int
	layers    int
}

// NewFlatGenerator creates a flat generator with layers ground cells per column.
func NewFlatGenerator(chunkSize, layers int) *FlatGenerator {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &FlatGenerator{chunkSize: chunkSize, layers: max(layers, 0)}
}

// Generate emits layers ground cells for each (x, z) of the chunk footprint.
func (g *FlatGenerator) Generate(coord ChunkCoord) []CellEntry {
	origin := coord.Origin(g.chunkSize)
	out := make([]CellEntry, 0, g.chunkSize*g.chunkSize*g.layers)
	for lx := range g.chunkSize {
		for lz := range g.chunkSize {
			for y := range g.layers {
				out = append(out, CellEntry{
					Cell:     Cell{X: origin.X + lx, Y: y, Z: origin.Z + lz},
					Material: MaterialGround,
				})
			}
		}
	}
	return out
}

// NoiseGenerator builds a rolling heightmap from octave value noise.
type NoiseGenerator struct {
	chunkSize  int
	noise      ValueNoise
	scale      float64
	baseHeight int
	amp        float64
	maxHeight  int
}

// NewNoiseGenerator creates a heightmap generator with default settings.
func NewNoiseGenerator(chunkSize int, seed int64) *NoiseGenerator {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &NoiseGenerator{
		chunkSize:  chunkSize,
		noise:      NewValueNoise(seed),
		scale:      1.0 / 48.0,
		baseHeight: 3,
		amp:        6,
		maxHeight:  chunkSize,
	}
}

// HeightAt returns the number of solid cells in the column at world X,Z (at least 1).
func (g *NoiseGenerator) HeightAt(worldX, worldZ int) int {
	n := g.noise.Sample(float64(worldX)*g.scale, float64(worldZ)*g.scale)
	h := int(math.Floor(float64(g.baseHeight) + n*g.amp))
	return min(max(h, 1), g.maxHeight)
}

// Generate emits ground cells from y=0 up to the column height.
func (g *NoiseGenerator) Generate(coord ChunkCoord) []CellEntry {
	origin := coord.Origin(g.chunkSize)
	out := make([]CellEntry, 0, g.chunkSize*g.chunkSize*g.baseHeight)
	for lx := range g.chunkSize {
		for lz := range g.chunkSize {
			wx, wz := origin.X+lx, origin.Z+lz
			for y := range g.HeightAt(wx, wz) {
				out = append(out, CellEntry{Cell: Cell{X: wx, Y: y, Z: wz}, Material: MaterialGround})
			}
		}
	}
	return out
}
