package world

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// DefaultChunkSize is the number of cells per chunk edge on X and Z.
const DefaultChunkSize = 16

// Cell identifies a unit cube of the lattice by integer coordinates.
type Cell struct {
	X, Y, Z int
}

// ChunkCoord identifies a chunk column. Y is always 0 for chunks owned by the store.
type ChunkCoord struct {
	X, Y, Z int
}

// Center returns the world-space center of the cell.
func (c Cell) Center() mgl32.Vec3 {
	return mgl32.Vec3{float32(c.X) + 0.5, float32(c.Y) + 0.5, float32(c.Z) + 0.5}
}

// Offset returns the cell displaced by (dx, dy, dz).
func (c Cell) Offset(dx, dy, dz int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy, Z: c.Z + dz}
}

// CellAt returns the cell containing the world-space point p.
func CellAt(p mgl32.Vec3) Cell {
	return Cell{
		X: floorToInt(p.X()),
		Y: floorToInt(p.Y()),
		Z: floorToInt(p.Z()),
	}
}

// ChunkOfCell returns the chunk column owning the cell.
func ChunkOfCell(c Cell, chunkSize int) ChunkCoord {
	return ChunkCoord{X: floorDiv(c.X, chunkSize), Z: floorDiv(c.Z, chunkSize)}
}

// ChunkOf returns the chunk column containing the world-space point p.
func ChunkOf(p mgl32.Vec3, chunkSize int) ChunkCoord {
	return ChunkOfCell(CellAt(p), chunkSize)
}

// SnapToCellCenter moves every axis of v to the nearest cell-center grid line (floor(v)+0.5).
func SnapToCellCenter(v mgl32.Vec3) mgl32.Vec3 {
	return CellAt(v).Center()
}

// Chebyshev returns the chessboard distance between two chunk coordinates on the XZ plane.
func (c ChunkCoord) Chebyshev(o ChunkCoord) int {
	return max(absInt(c.X-o.X), absInt(c.Z-o.Z))
}

// Origin returns the minimum cell of the chunk footprint.
func (c ChunkCoord) Origin(chunkSize int) Cell {
	return Cell{X: c.X * chunkSize, Z: c.Z * chunkSize}
}

func floorToInt(v float32) int {
	return int(math.Floor(float64(v)))
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
