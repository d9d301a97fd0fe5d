package game

import (
	"voxelworld/internal/physics"
	"voxelworld/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

// snap moves v to the nearest cell center (floor+0.5 per axis) and returns that cell.
func snap(v mgl32.Vec3) world.Cell {
	return world.CellAt(world.SnapToCellCenter(v))
}

// PlacementCell is the empty cell in front of the hit face.
func PlacementCell(hit physics.Hit) world.Cell {
	return snap(hit.Center().Add(hit.Normal))
}

// RemovalCell is the cell of the hit instance.
func RemovalCell(hit physics.Hit) world.Cell {
	return snap(hit.Center())
}

// Place fills the cell in front of the hit face with m.
func Place(w *world.World, hit physics.Hit, m world.Material) (world.Cell, bool) {
	cell := PlacementCell(hit)
	return cell, w.AddBlock(cell, m)
}

// Break empties the hit cell and returns the material it held.
func Break(w *world.World, hit physics.Hit) (world.Cell, world.Material, bool) {
	cell := RemovalCell(hit)
	m, ok := w.RemoveBlock(cell)
	return cell, m, ok
}
