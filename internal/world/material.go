package world

// Material tags an occupied cell. The set is fixed; each chunk keeps one batch per material.
type Material uint8

const (
	MaterialGround Material = iota
	MaterialPlaced

	MaterialCount // Sentinel value for array sizing
)

func (m Material) String() string {
	switch m {
	case MaterialGround:
		return "ground"
	case MaterialPlaced:
		return "placed"
	default:
		return "unknown"
	}
}

// Valid reports whether m is one of the fixed materials.
func (m Material) Valid() bool {
	return m < MaterialCount
}

// CellEntry is one (cell, material) pair of a chunk's authoritative layout.
type CellEntry struct {
	Cell     Cell
	Material Material
}
