package game

import (
	"voxelworld/internal/config"
	"voxelworld/internal/world"

	"github.com/pkg/errors"
)

// NewGenerator returns the terrain generator named in cfg.
func NewGenerator(cfg config.Config) (world.TerrainGenerator, error) {
	switch cfg.Generator {
	case config.GeneratorFlat, "":
		return world.NewFlatGenerator(cfg.ChunkSize, world.DefaultGroundLayers), nil
	case config.GeneratorNoise:
		return world.NewNoiseGenerator(cfg.ChunkSize, cfg.Seed), nil
	default:
		return nil, errors.Errorf("unknown generator %q", cfg.Generator)
	}
}

// surfaceY returns the y of the first empty cell above the highest solid
// cell of column (x, z) at or below top, or 0 for an empty column.
func surfaceY(w *world.World, x, z, top int) int {
	for y := top; y >= 0; y-- {
		if w.IsSolid(x, y, z) {
			return y + 1
		}
	}
	return 0
}
